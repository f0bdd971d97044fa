package endpoints

// Endpoints groups every endpoint served over HTTP.
type Endpoints struct {
	SearchEndpoint SearchEndpoint
}
