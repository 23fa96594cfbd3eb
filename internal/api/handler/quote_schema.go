package handler

// prepareQuoteRequest asks the quote service for ranked vendor offers.
type prepareQuoteRequest struct {
	ProjectType string   `json:"project_type" validate:"required"`
	Address     string   `json:"address"      validate:"required"`
	Materials   []string `json:"materials"    validate:"required,min=1"`
	Quantity    string   `json:"quantity,omitempty"`
	SiteLat     *float64 `json:"site_lat,omitempty"`
	SiteLng     *float64 `json:"site_lng,omitempty"`
}

// messageResponse is the canonical error envelope.
type messageResponse struct {
	Message string `json:"message"`
}
