package postgres

import (
	"catering/internal/adapters/out/postgres/customerrepo"
	"catering/internal/adapters/out/postgres/historyrepo"
	"catering/internal/adapters/out/postgres/menurepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Models lists every table owned or read by the service, parents first.
func Models() []any {
	return []any{
		&customerrepo.UserDTO{},
		&menurepo.MenuDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderMenuDTO{},
		&historyrepo.HistoryEntryDTO{},
		&outboxrepo.EventDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
