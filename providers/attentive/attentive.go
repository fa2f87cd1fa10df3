package attentive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/smsflow/attentive-adapter/providers"
	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the Attentive public API endpoint.
	DefaultBaseURL = "https://api.attentivemobile.com/v1"

	// pageSize is the fixed page size for "return all" fetches.
	pageSize = 100

	// maxPages bounds a "return all" fetch to 100,000 records.
	maxPages = 1000
)

// Provider is the authenticated client for the Attentive REST API. It is
// stateless between calls; every request envelope is built fresh.
type Provider struct {
	providers.BaseProvider
	logger *logging.Logger
}

func NewProvider(config *utils.Config, logger *logging.Logger) *Provider {
	baseURL := config.AttentiveBaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Provider{
		BaseProvider: providers.BaseProvider{
			Name:    providers.Attentive,
			BaseURL: baseURL,
			APIKey:  config.AttentiveAPIKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		logger: logger,
	}
}

// Send issues one request against the API and decodes the JSON response.
// The body is attached only for non-GET methods and only when non-empty.
// Empty upstream responses (e.g. 204 on deletes) yield an empty map.
func (p *Provider) Send(ctx context.Context, method, path string, body, query map[string]any) (map[string]any, error) {
	raw, err := p.send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	if m, ok := decoded.(map[string]any); ok {
		return m, nil
	}
	// Non-object payloads (bare arrays) are wrapped so callers always see
	// a mapping.
	return map[string]any{"data": decoded}, nil
}

// SendAllPages repeatedly calls the API with an incrementing offset and a
// fixed limit of 100, flattening resultKey arrays into one list. The loop
// stops when the response declares no total or the accumulated length has
// reached it. Hitting the safety cap returns the partial list together with
// ErrResultTruncated so the caller can observe the truncation.
func (p *Provider) SendAllPages(ctx context.Context, method, path string, body, query map[string]any, resultKey string) ([]map[string]any, error) {
	all := make([]map[string]any, 0, pageSize)

	paged := make(map[string]any, len(query)+2)
	for k, v := range query {
		paged[k] = v
	}
	paged["limit"] = pageSize

	for page := 0; page < maxPages; page++ {
		paged["offset"] = page * pageSize

		raw, err := p.send(ctx, method, path, body, paged)
		if err != nil {
			return nil, err
		}

		for _, el := range gjson.GetBytes(raw, resultKey).Array() {
			if record, ok := el.Value().(map[string]any); ok {
				all = append(all, record)
			}
		}

		total := gjson.GetBytes(raw, "total")
		if !total.Exists() || int64(len(all)) >= total.Int() {
			return all, nil
		}
	}

	p.logger.WithField("path", path).
		Warnf("pagination cap reached after %d records, result set is incomplete", len(all))
	return all, fmt.Errorf("%w: stopped after %d records", ErrResultTruncated, len(all))
}

// send performs the HTTP round trip and returns the raw response bytes.
// Non-2xx responses are normalized into *APIError.
func (p *Provider) send(ctx context.Context, method, path string, body, query map[string]any) ([]byte, error) {
	if p.APIKey == "" {
		return nil, &AuthError{Provider: p.Name}
	}

	endpoint, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing base URL: %v", err)
	}
	endpoint.Path += path

	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, cast.ToString(v))
		}
		endpoint.RawQuery = values.Encode()
	}

	var payload interface{}
	if method != http.MethodGet && len(body) > 0 {
		payload = body
	}

	p.logger.WithFields(map[string]any{
		"method": method,
		"path":   path,
	}).Debug("Attentive request")

	resp, err := p.MakeRequest(ctx, method, endpoint.String(), payload, nil)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    classify(resp.StatusCode, upstreamMessage(raw)),
		}
	}

	return raw, nil
}

// upstreamMessage pulls the human-readable message out of an error payload,
// falling back to the raw body.
func upstreamMessage(raw []byte) string {
	for _, field := range []string{"message", "error", "detail"} {
		if v := gjson.GetBytes(raw, field); v.Exists() {
			return v.String()
		}
	}
	return string(raw)
}

// fetchList runs a list-returning operation: everything via pagination when
// returnAll is set, otherwise one bounded request reading the named array
// field (absent field means empty list). The explicit limit is clamped into
// 1..100 and defaults to 50.
func (p *Provider) fetchList(ctx context.Context, path string, params utils.Params, query map[string]any, resultKey string) ([]map[string]any, error) {
	if query == nil {
		query = map[string]any{}
	}

	if params.GetBool("returnAll") {
		return p.SendAllPages(ctx, http.MethodGet, path, nil, query, resultKey)
	}

	limit := params.GetInt("limit", 50)
	if limit < 1 {
		limit = 1
	}
	if limit > pageSize {
		limit = pageSize
	}
	query["limit"] = limit

	resp, err := p.Send(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return nil, err
	}

	items, _ := resp[resultKey].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, el := range items {
		if record, ok := el.(map[string]any); ok {
			out = append(out, record)
		}
	}
	return out, nil
}
