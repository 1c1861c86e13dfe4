// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the order header. The stored total is what reports sum.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_store_purchased,priority:1"`
	PaymentMethod    string          `gorm:"type:varchar(64);not null"`
	PaymentReference string          `gorm:"type:varchar(255);not null;default:''"`
	PurchasedAt      time.Time       `gorm:"not null;index:idx_orders_store_purchased,priority:2"`
	Status           int             `gorm:"type:smallint;not null;index"`
	Total            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Items            []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Its primary key is (order, product);
// store_id is denormalized so stage queues filter without a join on orders.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_store_status,priority:1"`
	Name        string          `gorm:"type:varchar(255);not null;default:''"`
	Description string          `gorm:"type:text;not null;default:''"`
	PhotoRef    string          `gorm:"type:varchar(512);not null;default:''"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Discount    decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Status      int             `gorm:"type:smallint;not null;index:idx_order_items_store_status,priority:2"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			StoreID:     item.StoreID().Bytes(),
			Name:        item.Name(),
			Description: item.Description(),
			PhotoRef:    item.PhotoRef(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Discount:    item.Discount().Decimal(),
			Status:      int(item.Status()),
		})
	}

	return OrderDTO{
		ID:               orderID,
		ClientID:         aggregate.ClientID().Bytes(),
		StoreID:          aggregate.StoreID().Bytes(),
		PaymentMethod:    aggregate.PaymentMethod(),
		PaymentReference: aggregate.PaymentReference(),
		PurchasedAt:      aggregate.PurchasedAt().UTC(),
		Status:           int(aggregate.Status()),
		Total:            aggregate.Total().Decimal(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, storeID, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, clientID, storeID, dto.PaymentMethod, dto.PaymentReference,
		dto.PurchasedAt, order.Status(dto.Status), total, items)
}

func itemToDomain(orderID, storeID kernel.UUID, dto OrderItemDTO) (*order.OrderItem, error) {
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

	return order.RestoreOrderItem(orderID, storeID, order.ItemDetails{
		ProductID:   productID,
		Name:        dto.Name,
		Description: dto.Description,
		PhotoRef:    dto.PhotoRef,
		Quantity:    dto.Quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
	}, order.ItemStatus(dto.Status))
}
