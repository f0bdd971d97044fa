package mockoffer

import "github.com/ijalalfrz/destination-deals-service/internal/app/dto"

// DefaultBasePrice is used for codes missing from basePrices.
const DefaultBasePrice = 600

// Destinations is the fixed destination table, in display order.
var Destinations = []dto.Destination{
	{Code: "BCN", City: "Barcelone", Country: "Espagne", Flag: "🇪🇸"},
	{Code: "LIS", City: "Lisbonne", Country: "Portugal", Flag: "🇵🇹"},
	{Code: "MAD", City: "Madrid", Country: "Espagne", Flag: "🇪🇸"},
	{Code: "FCO", City: "Rome", Country: "Italie", Flag: "🇮🇹"},
	{Code: "CDG", City: "Paris", Country: "France", Flag: "🇫🇷"},
	{Code: "LHR", City: "Londres", Country: "Royaume-Uni", Flag: "🇬🇧"},
	{Code: "DUB", City: "Dublin", Country: "Irlande", Flag: "🇮🇪"},
	{Code: "AMS", City: "Amsterdam", Country: "Pays-Bas", Flag: "🇳🇱"},
	{Code: "MEX", City: "Mexico City", Country: "Mexique", Flag: "🇲🇽"},
	{Code: "BOG", City: "Bogotá", Country: "Colombie", Flag: "🇨🇴"},
}

// base fares in CAD
var basePrices = map[string]int{
	"BCN": 487,
	"LIS": 512,
	"MAD": 523,
	"FCO": 695,
	"CDG": 445,
	"LHR": 425,
	"DUB": 745,
	"AMS": 520,
	"MEX": 623,
	"BOG": 780,
}

// BasePrice returns the base fare of code, or DefaultBasePrice.
func BasePrice(code string) int {
	if price, ok := basePrices[code]; ok {
		return price
	}

	return DefaultBasePrice
}
