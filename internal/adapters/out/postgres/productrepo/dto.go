// Package productrepo provides data transfer objects and mapping functions for the
// product catalog snapshot. Products are reference data owned by an external
// catalog; this repository only reads them back for weight estimation.
package productrepo

import (
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for the product catalog snapshot.
type ProductDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(255);not null"`
	CapacityKg *float64   `gorm:"type:numeric"`
	TareKg     *float64   `gorm:"type:numeric"`
	Variant    int        `gorm:"type:int;not null"`
	ParentID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	dto := ProductDTO{
		ID:         p.ID().Bytes(),
		Name:       p.Name(),
		CapacityKg: p.CapacityKg(),
		TareKg:     p.TareKg(),
		Variant:    int(p.Variant()),
	}

	if parentID := p.ParentID(); parentID != nil {
		raw := parentID.Bytes()
		dto.ParentID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a product. Standalone products and
// full/empty variants go through their respective constructors.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	if product.Variant(dto.Variant) == product.VariantNone || dto.ParentID == nil {
		return product.NewProduct(id, dto.Name, dto.CapacityKg, dto.TareKg)
	}

	parentID, err := kernel.UUIDFromBytes(dto.ParentID[:])
	if err != nil {
		return nil, err
	}

	return product.NewVariant(id, dto.Name, product.Variant(dto.Variant), parentID)
}
