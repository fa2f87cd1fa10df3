package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

const (
	Attentive = "ATTENTIVE"
)

// BaseProvider contains the fields and request plumbing shared by upstream
// API clients.
type BaseProvider struct {
	Name    string
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// MakeRequest builds and issues one authenticated JSON request. A nil body
// sends no payload. Extra headers overwrite the pre-set ones.
func (p *BaseProvider) MakeRequest(ctx context.Context, method, url string, body interface{}, extraHeaders map[string]string) (*http.Response, error) {

	var req *http.Request
	var err error

	if body != nil {
		jsonBody, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, marshalErr
		}
		req, err = http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	// Allows for overwriting pre-set keys
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	return p.Client.Do(req)
}

func (p *BaseProvider) GetName() string         { return p.Name }
func (p *BaseProvider) GetBaseURL() string      { return p.BaseURL }
func (p *BaseProvider) GetClient() *http.Client { return p.Client }
