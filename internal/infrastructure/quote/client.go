// Package quote is the HTTP client for the external smart-quote service.
// Pricing, routing and ranking live entirely on the remote side; this
// client only shapes requests and classifies failures.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/core/domain"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

const (
	prepareSimplePath = "/v1/smart-quote/prepare-simple"
	requestTimeout    = 30 * time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type prepareSimplePayload struct {
	ProjectType string   `json:"project_type"`
	Address     string   `json:"address"`
	Materials   []string `json:"materials"`
	Quantity    string   `json:"quantity,omitempty"`
	SiteLat     *float64 `json:"site_lat,omitempty"`
	SiteLng     *float64 `json:"site_lng,omitempty"`
}

type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// PrepareSimple requests ranked vendor quotations for a free-form project
// description. Failure classification follows the three narratives the
// clients distinguish: unreachable service (ErrQuoteUnavailable), an error
// response (QuoteUpstreamError), and a request that could not be built.
func (c *Client) PrepareSimple(ctx context.Context, input ports.PrepareSimpleInput) (*ports.QuoteResult, error) {
	body, err := json.Marshal(prepareSimplePayload{
		ProjectType: input.ProjectType,
		Address:     input.Address,
		Materials:   input.Materials,
		Quantity:    input.Quantity,
		SiteLat:     input.SiteLat,
		SiteLng:     input.SiteLng,
	})
	if err != nil {
		return nil, fmt.Errorf("encode quote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+prepareSimplePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("request_id", requestID).Msg("quote service unreachable")
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ue upstreamError
		_ = json.NewDecoder(resp.Body).Decode(&ue)
		msg := ue.Detail
		if msg == "" {
			msg = ue.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("quote service returned status %d", resp.StatusCode)
		}
		c.log.Warn().Int("status", resp.StatusCode).Str("request_id", requestID).Msg("quote service error response")
		return nil, &domain.QuoteUpstreamError{Status: resp.StatusCode, Message: msg}
	}

	var result ports.QuoteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode quote response: %w", err)
	}
	return &result, nil
}
