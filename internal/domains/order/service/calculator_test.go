package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	orderModel "eats-backend/internal/domains/order/model"
	restaurantModel "eats-backend/internal/domains/restaurant/model"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func strPtr(s string) *string { return &s }

func testDish() *restaurantModel.Dish {
	return &restaurantModel.Dish{
		Name:  "Fried Rice",
		Price: dec(10),
		Options: []restaurantModel.DishOption{
			{Name: "Extra Egg", Extra: decPtr(2)},
			{
				Name: "Size",
				Choices: []restaurantModel.DishChoice{
					{Name: "L", Extra: decPtr(3)},
					{Name: "M"},
				},
			},
			{Name: "Chopsticks"},
		},
	}
}

func TestDishPriceBase(t *testing.T) {
	price := DishPrice(testDish(), nil)
	assert.True(t, price.Equal(dec(10)))
}

func TestDishPriceFlatExtra(t *testing.T) {
	price := DishPrice(testDish(), []orderModel.OrderItemOption{
		{Name: "Extra Egg"},
	})
	assert.True(t, price.Equal(dec(12)))
}

func TestDishPriceChoiceExtra(t *testing.T) {
	price := DishPrice(testDish(), []orderModel.OrderItemOption{
		{Name: "Size", Choice: strPtr("L")},
	})
	assert.True(t, price.Equal(dec(13)))
}

func TestDishPriceChoiceWithoutExtra(t *testing.T) {
	price := DishPrice(testDish(), []orderModel.OrderItemOption{
		{Name: "Size", Choice: strPtr("M")},
	})
	assert.True(t, price.Equal(dec(10)))
}

func TestDishPriceUnknownSelectionsIgnored(t *testing.T) {
	price := DishPrice(testDish(), []orderModel.OrderItemOption{
		{Name: "Gold Leaf"},
		{Name: "Size", Choice: strPtr("XXL")},
		{Name: "Chopsticks"},
	})
	assert.True(t, price.Equal(dec(10)))
}

func TestDishPriceStacksSelections(t *testing.T) {
	price := DishPrice(testDish(), []orderModel.OrderItemOption{
		{Name: "Extra Egg"},
		{Name: "Size", Choice: strPtr("L")},
	})
	assert.True(t, price.Equal(dec(15)))
}

func TestDishPriceNeverBelowBase(t *testing.T) {
	dish := testDish()
	selections := []orderModel.OrderItemOption{
		{Name: "Extra Egg"},
		{Name: "Nonexistent", Choice: strPtr("Nope")},
	}
	price := DishPrice(dish, selections)
	assert.True(t, price.GreaterThanOrEqual(dish.Price))
}
