package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

const CurrencyCAD = "CAD"

var ErrNullRequest = errors.New("search request is null")

// Offer sources reported in the X-Offer-Source header.
const (
	SourceProvider = "provider"
	SourceMock     = "mock"
)

// SearchRequest is the inbound search payload. Fields keep the raw JSON the
// caller sent so they can be forwarded unchanged; a field absent from the
// body stays nil and is left out of the forwarded payload.
type SearchRequest struct {
	Origin json.RawMessage `json:"origin,omitempty"`
	Budget json.RawMessage `json:"budget,omitempty"`
	Period json.RawMessage `json:"period,omitempty"`
}

// UnmarshalJSON rejects a null body. Any other non-object body decodes to
// an empty request.
func (s *SearchRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return ErrNullRequest
	}

	if len(trimmed) == 0 || trimmed[0] != '{' {
		*s = SearchRequest{}
		return nil
	}

	type searchRequest SearchRequest

	var req searchRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return err
	}

	*s = SearchRequest(req)

	return nil
}

// Bind implements render.Binder. There is nothing to check.
func (s *SearchRequest) Bind(_ *http.Request) error {
	return nil
}

// BudgetAmount returns the budget coerced to a number the way a loose
// JavaScript comparison would. NaN means no price can fit.
func (s SearchRequest) BudgetAmount() float64 {
	return ToNumber(s.Budget)
}

// Destination is an entry of the static destination table.
type Destination struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

// Offer is a single destination/price result.
type Offer struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	Code     string `json:"code"`
	Price    int    `json:"price"`
	Currency string `json:"currency"`
	Flag     string `json:"flag"`
}

// SearchResponse holds either the provider payload, forwarded as is, or
// the offers built on the mock path. It always encodes as a JSON array
// on the mock path.
type SearchResponse struct {
	Source string
	Raw    json.RawMessage
	Offers []Offer
}

func (r SearchResponse) MarshalJSON() ([]byte, error) {
	if r.Raw != nil {
		return r.Raw, nil
	}

	if r.Offers == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(r.Offers)
}
