// Package cartrepo persists cart entries, one row per (client, store, product).
package cartrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartEntryDTO is a pending selection. UpdatedAt only serves support tooling.
type CartEntryDTO struct {
	ClientID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;default:''"`
	Description string          `gorm:"type:text;not null;default:''"`
	PhotoRef    string          `gorm:"type:varchar(512);not null;default:''"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	UpdatedAt   time.Time
}

func (CartEntryDTO) TableName() string {
	return "cart_entries"
}

func fromDomain(entry *cart.Entry) CartEntryDTO {
	d := entry.Details()
	return CartEntryDTO{
		ClientID:    entry.ClientID().Bytes(),
		StoreID:     entry.StoreID().Bytes(),
		ProductID:   d.ProductID.Bytes(),
		Name:        d.Name,
		Description: d.Description,
		PhotoRef:    d.PhotoRef,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice.Decimal(),
		Discount:    d.Discount.Decimal(),
	}
}

func toDomain(dto CartEntryDTO) (*cart.Entry, error) {
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewPercent(dto.Discount)
	if err != nil {
		return nil, err
	}

	return cart.NewCartEntry(clientID, storeID, order.ItemDetails{
		ProductID:   productID,
		Name:        dto.Name,
		Description: dto.Description,
		PhotoRef:    dto.PhotoRef,
		Quantity:    dto.Quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
	})
}
