package product

import (
	"errors"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVariantRequiresParent is returned when a full/empty variant has no parent product.
	ErrVariantRequiresParent = errs.NewValueIsRequiredError("parentID is required for variant products")
)

// Variant identifies whether a product represents the full or empty state of
// a parent cylinder product, or is a standalone product.
type Variant int

const (
	// VariantNone marks a standalone product that is not a full/empty variant.
	VariantNone Variant = iota
	// VariantFull marks the "full cylinder" variant of a parent product.
	VariantFull
	// VariantEmpty marks the "empty cylinder" variant of a parent product.
	VariantEmpty
)

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantFull:
		return "full"
	case VariantEmpty:
		return "empty"
	default:
		return "none"
	}
}

// Product is immutable reference data describing a sellable cylinder product.
// A product either stands alone or is the full/empty variant of a parent
// product with a known nominal capacity. Capacity and tare weight may be
// unknown; the weight estimator degrades to documented defaults in that case.
//
// Products are owned by an external catalog; within this service they are a
// read-only snapshot.
type Product struct {
	id kernel.UUID

	name string

	// capacityKg is the nominal content capacity in kg (nil if unknown)
	capacityKg *float64

	// tareKg is the weight of the empty vessel in kg (nil if unknown)
	tareKg *float64

	// variant marks the full/empty state relative to the parent product
	variant Variant

	// parentID references the parent product for variants (nil for standalone)
	parentID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewProduct creates a standalone product with optional capacity and tare weight.
// Pass nil for capacityKg or tareKg when the figure is unknown.
func NewProduct(id kernel.UUID, name string, capacityKg, tareKg *float64) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCapacityKg(capacityKg),
		p.setTareKg(tareKg),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// NewVariant creates a full or empty variant of a parent product.
// The variant inherits its physical figures from the parent's weight class,
// so capacity and tare are carried by the parent, not the variant itself.
func NewVariant(id kernel.UUID, name string, variant Variant, parentID kernel.UUID) (*Product, error) {
	if variant == VariantNone {
		return nil, errs.NewValueIsInvalidError("variant")
	}
	if err := parentID.Validate(); err != nil {
		return nil, ErrVariantRequiresParent
	}

	p := &Product{
		variant:  variant,
		parentID: &parentID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// CapacityKg returns the nominal content capacity in kg, or nil if unknown.
func (p *Product) CapacityKg() *float64 {
	return p.capacityKg
}

// TareKg returns the empty vessel weight in kg, or nil if unknown.
func (p *Product) TareKg() *float64 {
	return p.tareKg
}

// Variant returns the full/empty variant marker.
func (p *Product) Variant() Variant {
	return p.variant
}

// ParentID returns the parent product's identifier for variants, nil otherwise.
func (p *Product) ParentID() *kernel.UUID {
	return p.parentID
}

// IsVariant reports whether the product is a full/empty variant of a parent.
func (p *Product) IsVariant() bool {
	return p.variant != VariantNone && p.parentID != nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setCapacityKg(capacityKg *float64) error {
	if capacityKg != nil && *capacityKg <= 0 {
		return errs.NewValueIsInvalidError("capacityKg")
	}

	p.capacityKg = capacityKg
	return nil
}

func (p *Product) setTareKg(tareKg *float64) error {
	if tareKg != nil && *tareKg <= 0 {
		return errs.NewValueIsInvalidError("tareKg")
	}

	p.tareKg = tareKg
	return nil
}

// Validate checks that the Product was created via its constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}
