package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// ENTITY: Dish
// =====================================================
// Options are stored as a JSONB column; an option may carry a flat
// extra cost or a list of priced choices.
type Dish struct {
	ID           uuid.UUID       `json:"id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Photo        *string         `json:"photo,omitempty"`
	Options      []DishOption    `json:"options,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type DishOption struct {
	Name    string           `json:"name"`
	Extra   *decimal.Decimal `json:"extra,omitempty"`
	Choices []DishChoice     `json:"choices,omitempty"`
}

type DishChoice struct {
	Name  string           `json:"name"`
	Extra *decimal.Decimal `json:"extra,omitempty"`
}

// FindOption returns the option with the given name, or nil.
func (d *Dish) FindOption(name string) *DishOption {
	for i := range d.Options {
		if d.Options[i].Name == name {
			return &d.Options[i]
		}
	}
	return nil
}

// FindChoice returns the choice with the given name, or nil.
func (o *DishOption) FindChoice(name string) *DishChoice {
	for i := range o.Choices {
		if o.Choices[i].Name == name {
			return &o.Choices[i]
		}
	}
	return nil
}
