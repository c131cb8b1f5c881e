// Package pgtest starts a disposable PostgreSQL for integration tests and
// seeds the catalog tables orders depend on.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/customerrepo"
	"catering/internal/adapters/out/postgres/menurepo"
	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Start runs postgres:15-alpine, connects GORM the way the service does and
// migrates the schema.
func Start(ctx context.Context) (*tcpostgres.PostgresContainer, *gorm.DB, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return container, nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return container, nil, fmt.Errorf("migrate: %w", err)
	}
	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE order_events, order_status_history, order_menus, orders, menus, users").Error
}

// SeedCustomer inserts a customer living at address in city. An empty address
// seeds a profile without postal address.
func SeedCustomer(db *gorm.DB, address, city string) (customer.Customer, error) {
	dto := customerrepo.UserDTO{
		ID:            uuid.New(),
		Email:         uuid.NewString() + "@example.com",
		FirstName:     "Julie",
		PostalAddress: address,
		City:          city,
		Role:          string(kernel.RoleCustomer),
	}
	if err := db.Create(&dto).Error; err != nil {
		return customer.Customer{}, err
	}

	var a kernel.Address
	if strings.TrimSpace(address) != "" {
		parsed, err := kernel.NewAddress(address)
		if err != nil {
			return customer.Customer{}, err
		}
		a = parsed
	}
	return customer.Customer{
		ID:            dto.ID,
		Email:         dto.Email,
		FirstName:     dto.FirstName,
		PostalAddress: a,
		City:          city,
		Role:          kernel.RoleCustomer,
	}, nil
}

// SeedMenu inserts a menu.
func SeedMenu(db *gorm.DB, title string, unitPrice decimal.Decimal, minHeadcount int) (order.MenuSnapshot, error) {
	dto := menurepo.MenuDTO{
		ID:           uuid.New(),
		Title:        title,
		UnitPrice:    unitPrice,
		MinHeadcount: minHeadcount,
	}
	if err := db.Create(&dto).Error; err != nil {
		return order.MenuSnapshot{}, err
	}
	return order.MenuSnapshot{
		ID:           dto.ID,
		Title:        title,
		UnitPrice:    unitPrice,
		MinHeadcount: minHeadcount,
	}, nil
}
