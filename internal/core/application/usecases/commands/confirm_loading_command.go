package commands

import (
	"errors"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
	"gasfleet/internal/pkg/guard"
)

var (
	ErrConfirmLoadingCommandIsNotConstructed = errors.New(
		"ConfirmLoadingCommand must be created via NewConfirmLoadingCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ConfirmLoadingCommand represents a request to physically load the proposed
// items onto a truck for a delivery date. It is the authoritative gate: the
// handler re-runs the capacity validation against the truck's state inside
// the transaction before anything is written.
type ConfirmLoadingCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	date    time.Time
	items   []truck.InventoryItem

	guard guard.ConstructorGuard
}

// NewConfirmLoadingCommand creates a command to confirm a truck loading.
func NewConfirmLoadingCommand(
	truckID kernel.UUID, date time.Time, items []truck.InventoryItem,
) (ConfirmLoadingCommand, error) {
	command := ConfirmLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(truckID),
		command.setDate(date),
		command.setItems(items),
	); err != nil {
		return ConfirmLoadingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmLoadingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmLoadingCommandIsNotConstructed)
}

// TruckID returns the target truck's identifier.
func (c ConfirmLoadingCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Date returns the delivery date the loading belongs to (UTC midnight).
func (c ConfirmLoadingCommand) Date() time.Time {
	return c.date
}

// Items returns the proposed load.
func (c ConfirmLoadingCommand) Items() []truck.InventoryItem {
	return c.items
}

func (c *ConfirmLoadingCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *ConfirmLoadingCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = kernel.DateOnly(date)
	return nil
}

func (c *ConfirmLoadingCommand) setItems(items []truck.InventoryItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
