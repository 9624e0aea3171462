package service

import (
	"github.com/shopspring/decimal"

	orderModel "eats-backend/internal/domains/order/model"
	restaurantModel "eats-backend/internal/domains/restaurant/model"
)

// DishPrice computes the effective price of one dish given the
// customer's option selections. Starting from the base price, a
// selection that matches a dish option with a flat extra adds that
// extra; otherwise a matching nested choice with an extra adds the
// choice's extra. Selections that name unknown options or choices are
// ignored, so the result never drops below the base price.
func DishPrice(dish *restaurantModel.Dish, selections []orderModel.OrderItemOption) decimal.Decimal {
	price := dish.Price

	for _, sel := range selections {
		option := dish.FindOption(sel.Name)
		if option == nil {
			continue
		}

		if option.Extra != nil {
			price = price.Add(*option.Extra)
			continue
		}

		if sel.Choice == nil {
			continue
		}
		choice := option.FindChoice(*sel.Choice)
		if choice != nil && choice.Extra != nil {
			price = price.Add(*choice.Extra)
		}
	}

	return price
}
