package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Bouquet_Go/configs"
	"github.com/osse101/Bouquet_Go/internal/auction"
	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/plot"
	"github.com/osse101/Bouquet_Go/internal/validation"
	"github.com/osse101/Bouquet_Go/internal/weather"
)

var balanceSchema = validation.NewSchemaValidator(configs.Schemas)

// Balance holds every gameplay tunable
type Balance struct {
	Growth  plot.Config    `json:"growth"`
	Weather weather.Config `json:"weather"`
	Auction auction.Config `json:"auction"`
	Garden  garden.Config  `json:"garden"`
}

// DefaultBalance returns the stock tunables, matching configs/balance.json
func DefaultBalance() Balance {
	return Balance{
		Growth:  plot.DefaultConfig(),
		Weather: weather.DefaultConfig(),
		Auction: auction.DefaultConfig(),
		Garden:  garden.DefaultConfig(),
	}
}

// LoadBalance reads a balance file. Fields left out of the file keep their defaults; a
// weather share table, when given, replaces the default table whole.
func LoadBalance(path string) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("failed to read balance file: %w", err)
	}
	return ParseBalance(data)
}

// ParseBalance checks balance JSON against the shipped schema, then decodes and
// validates it
func ParseBalance(data []byte) (Balance, error) {
	if err := balanceSchema.ValidateBytes(data, configs.BalanceSchema); err != nil {
		return Balance{}, fmt.Errorf("%w: balance: %v", domain.ErrInvalidInput, err)
	}

	b := DefaultBalance()
	defaultShares := b.Weather.Shares
	b.Weather.Shares = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Balance{}, fmt.Errorf("%w: balance: %v", domain.ErrInvalidInput, err)
	}
	if len(b.Weather.Shares) == 0 {
		b.Weather.Shares = defaultShares
	}

	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// Validate checks struct tags and the weather share sum
func (b Balance) Validate() error {
	if err := validator.New().Struct(b); err != nil {
		return fmt.Errorf("%w: balance: %v", domain.ErrInvalidInput, err)
	}
	return b.Weather.Validate()
}
