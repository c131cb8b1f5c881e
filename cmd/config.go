package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	MongoURI                string
	MongoDatabase           string
	JWTSecret               string
	HomeCity                string
	DeliveryFee             string
	BusinessTimezone        string
	StatsProjectionSchedule string
}

// PostgresDSN builds the key/value connection string for the gorm driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location is the business time zone; calendar days of the statistics are
// computed in it. Defaults to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.BusinessTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return nil, fmt.Errorf("BUSINESS_TIMEZONE: %w", err)
	}
	return loc, nil
}

// DeliveryFeeAmount parses the flat delivery fee.
func (c Config) DeliveryFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.DeliveryFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("DELIVERY_FEE: %w", err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("DELIVERY_FEE: %s is negative", c.DeliveryFee)
	}
	return fee, nil
}

// Validate reports the first missing setting the service cannot start without.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_NAME", c.DBName},
		{"MONGO_URI", c.MongoURI},
		{"MONGO_DATABASE", c.MongoDatabase},
		{"JWT_SECRET", c.JWTSecret},
		{"HOME_CITY", c.HomeCity},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is not set", r.key)
		}
	}

	if _, err := c.DeliveryFeeAmount(); err != nil {
		return err
	}
	_, err := c.Location()
	return err
}
