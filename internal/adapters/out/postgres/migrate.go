package postgres

import (
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/storerepo"

	"gorm.io/gorm"
)

// Models lists every table of the fulfillment schema in dependency order.
func Models() []any {
	return []any{
		&storerepo.StoreDTO{},
		&storerepo.RoleDTO{},
		&storerepo.MembershipDTO{},
		&storerepo.JoinRequestDTO{},
		&cartrepo.CartEntryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
