package offer

import (
	"sort"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
)

// SortByPrice sorts offers in place, cheapest first. Offers with the same
// price keep their relative order.
func SortByPrice(offers []dto.Offer) []dto.Offer {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	return offers
}
