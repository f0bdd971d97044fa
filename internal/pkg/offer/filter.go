package offer

import (
	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
)

// FilterByBudget keeps the offers priced at or under budget.
// A NaN budget compares false against every price, so nothing is kept.
func FilterByBudget(offers []dto.Offer, budget float64) []dto.Offer {
	results := make([]dto.Offer, 0, len(offers))

	for _, offer := range offers {
		if !(float64(offer.Price) <= budget) {
			continue
		}

		results = append(results, offer)
	}

	return results
}
