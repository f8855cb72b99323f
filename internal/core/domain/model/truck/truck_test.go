package truck_test

import (
	"testing"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidTruck(t *testing.T) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "KBX 412T", 40, 1000)
	require.NoError(t, err)
	require.NotNil(t, tr)
	return tr
}

func createItem(t *testing.T, productID kernel.UUID, qtyFull, qtyEmpty int, weightKg *float64) truck.InventoryItem {
	t.Helper()
	item, err := truck.NewInventoryItem(productID, qtyFull, qtyEmpty, weightKg)
	require.NoError(t, err)
	return item
}

func TestNewTruck(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create truck with valid parameters", func(t *testing.T) {
		tr, err := truck.NewTruck(validID, "KBX 412T", 40, 1000)

		require.NoError(t, err)
		require.NotNil(t, tr)
		require.NoError(t, tr.Validate())
		assert.True(t, tr.ID().IsEqual(validID))
		assert.Equal(t, "KBX 412T", tr.Plate())
		assert.True(t, tr.IsActive())
		assert.Equal(t, truck.StatusActive, tr.Status())
		assert.Equal(t, 40, tr.CapacityCylinders())
		assert.InDelta(t, 1000, tr.CapacityKg(), 0.001)
		assert.Nil(t, tr.NextMaintenanceDate())
		assert.Empty(t, tr.Inventory())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		tr, err := truck.NewTruck(invalidID, "KBX 412T", 40, 1000)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty plate", func(t *testing.T) {
		tr, err := truck.NewTruck(validID, "", 40, 1000)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.Contains(t, err.Error(), "plate")
	})

	t.Run("should return error for non-positive cylinder capacity", func(t *testing.T) {
		for _, capacity := range []int{0, -1, -40} {
			tr, err := truck.NewTruck(validID, "KBX 412T", capacity, 1000)

			require.Error(t, err)
			assert.Nil(t, tr)
			assert.Contains(t, err.Error(), "capacityCylinders")
		}
	})

	t.Run("should return error for negative weight capacity", func(t *testing.T) {
		tr, err := truck.NewTruck(validID, "KBX 412T", 40, -1)

		require.Error(t, err)
		assert.Nil(t, tr)
		assert.Contains(t, err.Error(), "capacityKg")
	})

	t.Run("should allow zero weight capacity", func(t *testing.T) {
		tr, err := truck.NewTruck(validID, "KBX 412T", 40, 0)

		require.NoError(t, err)
		assert.InDelta(t, 0, tr.CapacityKg(), 0.001)
	})
}

func TestTruck_EffectiveCapacityKg(t *testing.T) {
	t.Run("should use explicit weight capacity when set", func(t *testing.T) {
		tr := createValidTruck(t)

		assert.InDelta(t, 1000, tr.EffectiveCapacityKg(), 0.001)
	})

	t.Run("should derive capacity from cylinder slots when unset", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), "KBX 412T", 40, 0)
		require.NoError(t, err)

		// 40 slots x 27 kg per full cylinder
		assert.InDelta(t, 1080, tr.EffectiveCapacityKg(), 0.001)
	})
}

func TestTruck_Load(t *testing.T) {
	t.Run("should add new items to inventory", func(t *testing.T) {
		tr := createValidTruck(t)
		first := createItem(t, kernel.NewUUID(), 10, 0, nil)
		second := createItem(t, kernel.NewUUID(), 0, 5, nil)

		err := tr.Load([]truck.InventoryItem{first, second})

		require.NoError(t, err)
		assert.Len(t, tr.Inventory(), 2)
		assert.Equal(t, 15, tr.InventoryUnits())
		// 10x27 + 5x14
		assert.InDelta(t, 340, tr.InventoryWeightKg(), 0.001)
	})

	t.Run("should merge quantities for the same product", func(t *testing.T) {
		tr := createValidTruck(t)
		productID := kernel.NewUUID()

		require.NoError(t, tr.Load([]truck.InventoryItem{createItem(t, productID, 10, 2, nil)}))
		require.NoError(t, tr.Load([]truck.InventoryItem{createItem(t, productID, 5, 3, nil)}))

		inventory := tr.Inventory()
		require.Len(t, inventory, 1)
		assert.Equal(t, 15, inventory[0].QtyFull())
		assert.Equal(t, 5, inventory[0].QtyEmpty())
	})

	t.Run("should sum measured weights when merging", func(t *testing.T) {
		tr := createValidTruck(t)
		productID := kernel.NewUUID()
		firstWeight := 250.0
		secondWeight := 130.0

		require.NoError(t, tr.Load([]truck.InventoryItem{createItem(t, productID, 10, 0, &firstWeight)}))
		require.NoError(t, tr.Load([]truck.InventoryItem{createItem(t, productID, 5, 0, &secondWeight)}))

		inventory := tr.Inventory()
		require.Len(t, inventory, 1)
		assert.InDelta(t, 380, inventory[0].WeightKg(), 0.001)
	})

	t.Run("should reject load containing an unconstructed item", func(t *testing.T) {
		tr := createValidTruck(t)

		err := tr.Load([]truck.InventoryItem{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, truck.ErrInventoryItemIsNotConstructed)
		assert.Empty(t, tr.Inventory())
	})
}

func TestTruck_Unload(t *testing.T) {
	t.Run("should clear inventory", func(t *testing.T) {
		tr := createValidTruck(t)
		require.NoError(t, tr.Load([]truck.InventoryItem{createItem(t, kernel.NewUUID(), 10, 0, nil)}))

		tr.Unload()

		assert.Empty(t, tr.Inventory())
		assert.Equal(t, 0, tr.InventoryUnits())
		assert.InDelta(t, 0, tr.InventoryWeightKg(), 0.001)
	})
}

func TestTruck_IsOperational(t *testing.T) {
	t.Run("should be operational when active", func(t *testing.T) {
		tr := createValidTruck(t)

		assert.True(t, tr.IsOperational())
	})

	t.Run("should not be operational under maintenance", func(t *testing.T) {
		tr := createValidTruck(t)
		require.NoError(t, tr.ChangeStatus(truck.StatusMaintenance))

		assert.False(t, tr.IsOperational())
	})

	t.Run("should not be operational after deactivation", func(t *testing.T) {
		tr := createValidTruck(t)

		tr.Deactivate()

		assert.False(t, tr.IsOperational())
		assert.False(t, tr.IsActive())
		assert.Equal(t, truck.StatusInactive, tr.Status())
	})
}

func TestTruck_ScheduleMaintenance(t *testing.T) {
	t.Run("should record the due date truncated to a calendar day", func(t *testing.T) {
		tr := createValidTruck(t)

		tr.ScheduleMaintenance(time.Date(2026, 10, 3, 15, 45, 0, 0, time.UTC))

		due := tr.NextMaintenanceDate()
		require.NotNil(t, due)
		assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), *due)
	})
}

func TestTruck_SetFuel(t *testing.T) {
	t.Run("should record tank size and consumption", func(t *testing.T) {
		tr := createValidTruck(t)

		require.NoError(t, tr.SetFuel(120, 14))

		assert.InDelta(t, 120, tr.FuelTankLiters(), 0.001)
		assert.InDelta(t, 14, tr.FuelConsumptionLPer100Km(), 0.001)
	})

	t.Run("should fall back to default consumption when unknown", func(t *testing.T) {
		tr := createValidTruck(t)

		assert.InDelta(t, 12, tr.FuelConsumptionLPer100Km(), 0.001)
	})

	t.Run("should reject negative figures", func(t *testing.T) {
		tr := createValidTruck(t)

		assert.Error(t, tr.SetFuel(-1, 14))
		assert.Error(t, tr.SetFuel(120, -1))
	})
}

func TestRestoreTruck(t *testing.T) {
	t.Run("should reconstruct full state", func(t *testing.T) {
		id := kernel.NewUUID()
		due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		inventory := []truck.InventoryItem{createItem(t, kernel.NewUUID(), 8, 4, nil)}

		tr, err := truck.RestoreTruck(
			id, "KCA 003F", false, truck.StatusMaintenance, 32, 900, &due, 110, 13, inventory)

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.True(t, tr.ID().IsEqual(id))
		assert.False(t, tr.IsActive())
		assert.Equal(t, truck.StatusMaintenance, tr.Status())
		assert.Equal(t, 32, tr.CapacityCylinders())
		assert.InDelta(t, 900, tr.CapacityKg(), 0.001)
		require.NotNil(t, tr.NextMaintenanceDate())
		assert.Equal(t, due, *tr.NextMaintenanceDate())
		assert.InDelta(t, 110, tr.FuelTankLiters(), 0.001)
		assert.InDelta(t, 13, tr.FuelConsumptionLPer100Km(), 0.001)
		assert.Len(t, tr.Inventory(), 1)
	})

	t.Run("should return error for invalid status", func(t *testing.T) {
		tr, err := truck.RestoreTruck(
			kernel.NewUUID(), "KCA 003F", true, truck.StatusUnknown, 32, 900, nil, 0, 0, nil)

		require.Error(t, err)
		assert.Nil(t, tr)
	})
}

func TestNewInventoryItem(t *testing.T) {
	validProductID := kernel.NewUUID()

	t.Run("should create item with valid parameters", func(t *testing.T) {
		weight := 300.0
		item, err := truck.NewInventoryItem(validProductID, 10, 2, &weight)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, 10, item.QtyFull())
		assert.Equal(t, 2, item.QtyEmpty())
		assert.Equal(t, 12, item.Units())
		assert.InDelta(t, 300, item.WeightKg(), 0.001)
	})

	t.Run("should derive weight from defaults when not measured", func(t *testing.T) {
		item, err := truck.NewInventoryItem(validProductID, 10, 2, nil)

		require.NoError(t, err)
		assert.Nil(t, item.MeasuredWeightKg())
		// 10x27 + 2x14
		assert.InDelta(t, 298, item.WeightKg(), 0.001)
	})

	t.Run("should return error for negative quantities", func(t *testing.T) {
		_, err := truck.NewInventoryItem(validProductID, -1, 0, nil)
		require.Error(t, err)

		_, err = truck.NewInventoryItem(validProductID, 0, -1, nil)
		require.Error(t, err)
	})

	t.Run("should return error when both quantities are zero", func(t *testing.T) {
		_, err := truck.NewInventoryItem(validProductID, 0, 0, nil)

		require.Error(t, err)
	})

	t.Run("should return error for negative measured weight", func(t *testing.T) {
		weight := -5.0
		_, err := truck.NewInventoryItem(validProductID, 1, 0, &weight)

		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid statuses", func(t *testing.T) {
		for name, want := range map[string]truck.Status{
			"active":      truck.StatusActive,
			"inactive":    truck.StatusInactive,
			"maintenance": truck.StatusMaintenance,
		} {
			status, err := truck.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, want, status)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should return error for unknown status", func(t *testing.T) {
		status, err := truck.StatusFromString("scrapped")

		require.Error(t, err)
		assert.Equal(t, truck.StatusUnknown, status)
	})
}
