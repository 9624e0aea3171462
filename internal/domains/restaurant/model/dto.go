package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const PageSize = 25

type CreateRestaurantRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CoverImage   string `json:"cover_image"`
	CategoryName string `json:"category_name"`
}

func (r CreateRestaurantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(5, 120)),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.CategoryName, validation.Required),
	)
}

type EditRestaurantRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         *string   `json:"name,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CoverImage   *string   `json:"cover_image,omitempty"`
	CategoryName *string   `json:"category_name,omitempty"`
}

func (r EditRestaurantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RestaurantID, validation.Required),
		validation.Field(&r.Name, validation.Length(5, 120)),
	)
}

type ListRestaurantsRequest struct {
	Page int `form:"page"`
}

type ListRestaurantsResponse struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int          `json:"total"`
	TotalPages  int          `json:"total_pages"`
}

type SearchRestaurantRequest struct {
	Query string `form:"query"`
	Page  int    `form:"page"`
}

func (r SearchRestaurantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
	)
}

type CreateDishRequest struct {
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Photo        *string         `json:"photo,omitempty"`
	Options      []DishOption    `json:"options,omitempty"`
}

func (r CreateDishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RestaurantID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
	)
}

type EditDishRequest struct {
	DishID      uuid.UUID        `json:"dish_id"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Photo       *string          `json:"photo,omitempty"`
	Options     []DishOption     `json:"options,omitempty"`
}

func (r EditDishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DishID, validation.Required),
		validation.Field(&r.Price, validation.By(nonNegativePricePtr)),
	)
}

func nonNegativePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_price", "must be a decimal")
	}
	if price.IsNegative() {
		return validation.NewError("validation_price_negative", "must not be negative")
	}
	return nil
}

func nonNegativePricePtr(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	return nonNegativePrice(*price)
}
