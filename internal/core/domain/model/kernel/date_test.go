package kernel_test

import (
	"testing"
	"time"

	"gasfleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	t.Run("should truncate to UTC midnight", func(t *testing.T) {
		ts := time.Date(2026, 9, 14, 17, 45, 30, 12345, time.UTC)

		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), kernel.DateOnly(ts))
	})

	t.Run("should convert to UTC before truncating", func(t *testing.T) {
		nairobi := time.FixedZone("EAT", 3*60*60)
		// 01:30 local on the 15th is still the 14th in UTC.
		ts := time.Date(2026, 9, 15, 1, 30, 0, 0, nairobi)

		assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), kernel.DateOnly(ts))
	})
}

func TestSameDate(t *testing.T) {
	t.Run("should match different times on the same day", func(t *testing.T) {
		a := time.Date(2026, 9, 14, 6, 0, 0, 0, time.UTC)
		b := time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)

		assert.True(t, kernel.SameDate(a, b))
	})

	t.Run("should not match adjacent days", func(t *testing.T) {
		a := time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)
		b := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

		assert.False(t, kernel.SameDate(a, b))
	})
}
