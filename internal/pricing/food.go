package pricing

import (
	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

// FoodTotal looks up foodName on the menu and returns its unit price and the order total.
func FoodTotal(menu []domain.MenuItem, foodName string, quantity int) (unit, total int64, err error) {
	for _, item := range menu {
		if item.Name == foodName {
			if quantity < 1 {
				return item.Price, 0, nil
			}
			return item.Price, int64(quantity) * item.Price, nil
		}
	}
	return 0, 0, domain.ErrUnknownMenuItem
}
