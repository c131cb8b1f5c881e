// Package customerrepo reads user accounts from the users table.
package customerrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catering/internal/core/domain/model/customer"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO is the subset of the users table needed to price and notify.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName     string    `gorm:"type:varchar(50)"`
	PostalAddress string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	Role          string    `gorm:"type:varchar(16);not null;default:customer"`
}

func (UserDTO) TableName() string {
	return "users"
}

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Get(ctx context.Context, id uuid.UUID) (customer.Customer, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Customer{}, errs.NewObjectNotFoundError("user", id)
		}
		return customer.Customer{}, err
	}

	// an empty profile address stays the zero Address, which the delivery
	// fee policy treats as a different place
	var address kernel.Address
	if strings.TrimSpace(dto.PostalAddress) != "" {
		a, err := kernel.NewAddress(dto.PostalAddress)
		if err != nil {
			return customer.Customer{}, fmt.Errorf("user %s postal address: %w", dto.ID, err)
		}
		address = a
	}
	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return customer.Customer{}, err
	}

	return customer.Customer{
		ID:            dto.ID,
		Email:         dto.Email,
		FirstName:     dto.FirstName,
		PostalAddress: address,
		City:          dto.City,
		Role:          role,
	}, nil
}
