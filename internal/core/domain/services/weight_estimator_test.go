package services_test

import (
	"testing"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"
	"gasfleet/internal/core/domain/model/product"
	"gasfleet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func mustLine(t *testing.T, productID kernel.UUID, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), productID, quantity, 0)
	require.NoError(t, err)
	return line
}

func TestWeightEstimator_EstimateOrderWeight(t *testing.T) {
	estimator := services.NewWeightEstimator(product.DefaultWeightTable())

	t.Run("full variant of 13kg class uses reference full weight", func(t *testing.T) {
		parentID := kernel.NewUUID()
		parent, err := product.NewProduct(parentID, "Gas 13kg", floatPtr(13), floatPtr(14))
		require.NoError(t, err)

		variantID := kernel.NewUUID()
		variant, err := product.NewVariant(variantID, "Gas 13kg (full)", product.VariantFull, parentID)
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{parentID: parent, variantID: variant}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, variantID, 10)}, catalog)

		assert.InDelta(t, 270, estimate.TotalKg, 0.001)
		require.Len(t, estimate.Lines, 1)
		assert.InDelta(t, 27, estimate.Lines[0].UnitKg, 0.001)
		assert.Equal(t, 10, estimate.Lines[0].Quantity)
	})

	t.Run("empty variant uses reference empty weight", func(t *testing.T) {
		parentID := kernel.NewUUID()
		parent, err := product.NewProduct(parentID, "Gas 13kg", floatPtr(13), floatPtr(14))
		require.NoError(t, err)

		variantID := kernel.NewUUID()
		variant, err := product.NewVariant(variantID, "Gas 13kg (empty)", product.VariantEmpty, parentID)
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{parentID: parent, variantID: variant}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, variantID, 4)}, catalog)

		assert.InDelta(t, 56, estimate.TotalKg, 0.001)
	})

	t.Run("standalone product with capacity assumes full plus tare", func(t *testing.T) {
		productID := kernel.NewUUID()
		p, err := product.NewProduct(productID, "Gas 48kg", floatPtr(48), floatPtr(40))
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{productID: p}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, productID, 2)}, catalog)

		assert.InDelta(t, 176, estimate.TotalKg, 0.001)
	})

	t.Run("standalone product without recorded tare uses default tare", func(t *testing.T) {
		productID := kernel.NewUUID()
		p, err := product.NewProduct(productID, "Gas 6kg", floatPtr(6), nil)
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{productID: p}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, productID, 1)}, catalog)

		assert.InDelta(t, 16, estimate.TotalKg, 0.001)
	})

	t.Run("product without capacity falls back to default reference weight", func(t *testing.T) {
		productID := kernel.NewUUID()
		p, err := product.NewProduct(productID, "Mystery cylinder", nil, nil)
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{productID: p}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, productID, 3)}, catalog)

		assert.InDelta(t, 81, estimate.TotalKg, 0.001)
	})

	t.Run("unknown product reference never fails", func(t *testing.T) {
		estimate := estimator.EstimateOrderWeight(
			[]order.Line{mustLine(t, kernel.NewUUID(), 2)},
			map[kernel.UUID]*product.Product{},
		)

		assert.InDelta(t, 54, estimate.TotalKg, 0.001)
	})

	t.Run("variant with unresolvable parent degrades to defaults", func(t *testing.T) {
		variantID := kernel.NewUUID()
		variant, err := product.NewVariant(variantID, "Orphan (empty)", product.VariantEmpty, kernel.NewUUID())
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{variantID: variant}
		estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, variantID, 1)}, catalog)

		assert.InDelta(t, product.DefaultEmptyCylinderKg, estimate.TotalKg, 0.001)
	})

	t.Run("empty order estimates to zero", func(t *testing.T) {
		estimate := estimator.EstimateOrderWeight(nil, nil)

		assert.Zero(t, estimate.TotalKg)
		assert.Empty(t, estimate.Lines)
	})

	t.Run("per line breakdown sums to total", func(t *testing.T) {
		firstID := kernel.NewUUID()
		first, err := product.NewProduct(firstID, "Gas 13kg", floatPtr(13), floatPtr(14))
		require.NoError(t, err)
		secondID := kernel.NewUUID()
		second, err := product.NewProduct(secondID, "Gas 48kg", floatPtr(48), floatPtr(40))
		require.NoError(t, err)

		catalog := map[kernel.UUID]*product.Product{firstID: first, secondID: second}
		estimate := estimator.EstimateOrderWeight(
			[]order.Line{mustLine(t, firstID, 5), mustLine(t, secondID, 2)},
			catalog,
		)

		var sum float64
		for _, line := range estimate.Lines {
			sum += line.TotalKg
		}
		assert.InDelta(t, estimate.TotalKg, sum, 0.001)
	})
}

func TestWeightTable_SubstitutableInTests(t *testing.T) {
	custom := product.WeightTable{
		13: {CapacityKg: 13, FullKg: 30, EmptyKg: 15, NetKg: 13},
	}
	estimator := services.NewWeightEstimator(custom)

	parentID := kernel.NewUUID()
	parent, err := product.NewProduct(parentID, "Gas 13kg", floatPtr(13), nil)
	require.NoError(t, err)
	variantID := kernel.NewUUID()
	variant, err := product.NewVariant(variantID, "Gas 13kg (full)", product.VariantFull, parentID)
	require.NoError(t, err)

	catalog := map[kernel.UUID]*product.Product{parentID: parent, variantID: variant}
	estimate := estimator.EstimateOrderWeight([]order.Line{mustLine(t, variantID, 2)}, catalog)

	assert.InDelta(t, 60, estimate.TotalKg, 0.001)
}
