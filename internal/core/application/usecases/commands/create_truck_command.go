package commands

import (
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrPlateIsRequired            = errors.New("plate is required")
	ErrCapacityCylindersIsInvalid = errors.New("capacityCylinders must be greater than 0")
	ErrCapacityKgIsInvalid        = errors.New("capacityKg must not be negative")
)

// CreateTruckCommand represents a request to register a new truck in the fleet.
// Encapsulates the truck's plate and capacity limits.
//
// Example:
//
//	cmd, err := NewCreateTruckCommand("KBX 412T", 40, 1000)
//	if err != nil {
//	    return fmt.Errorf("invalid truck data: %w", err)
//	}
//
//	handler := NewCreateTruckCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create truck: %w", err)
//	}
//	fmt.Printf("Created truck with ID: %s", cmd.TruckID())
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID           kernel.UUID
	plate             string
	capacityCylinders int
	capacityKg        float64

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a new truck.
// Automatically generates a unique ID for the truck. Pass capacityKg of 0
// when the mass limit is not explicitly known; the loading validator derives
// it from the cylinder slots.
func NewCreateTruckCommand(plate string, capacityCylinders int, capacityKg float64) (CreateTruckCommand, error) {
	command := CreateTruckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTruckID(kernel.NewUUID()),
		command.setPlate(plate),
		command.setCapacityCylinders(capacityCylinders),
		command.setCapacityKg(capacityKg),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTruckCommandIsNotConstructed if validation fails.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// TruckID returns the generated truck ID from the command.
func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Plate returns the registration plate from the command.
func (c CreateTruckCommand) Plate() string {
	return c.plate
}

// CapacityCylinders returns the cylinder slot capacity from the command.
func (c CreateTruckCommand) CapacityCylinders() int {
	return c.capacityCylinders
}

// CapacityKg returns the mass capacity from the command.
func (c CreateTruckCommand) CapacityKg() float64 {
	return c.capacityKg
}

func (c *CreateTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.truckID = id
	return nil
}

func (c *CreateTruckCommand) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}

	c.plate = plate
	return nil
}

func (c *CreateTruckCommand) setCapacityCylinders(capacityCylinders int) error {
	if capacityCylinders <= 0 {
		return ErrCapacityCylindersIsInvalid
	}

	c.capacityCylinders = capacityCylinders
	return nil
}

func (c *CreateTruckCommand) setCapacityKg(capacityKg float64) error {
	if capacityKg < 0 {
		return ErrCapacityKgIsInvalid
	}

	c.capacityKg = capacityKg
	return nil
}
