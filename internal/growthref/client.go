package growthref

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP implementation of Lookup against the growth-reference
// service. Lookups are synchronous and never retried: a failure means the
// input data is wrong, not that the service hiccupped.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client for the given service base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// lookupPayload is the wire form of a Request. Exactly one of date+dob or age
// is populated; the service owns the calendar math in the date case.
type lookupPayload struct {
	Gender     string   `json:"gender"`
	DOB        string   `json:"dob,omitempty"`
	Date       string   `json:"date,omitempty"`
	AgeSeconds *float64 `json:"age,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
}

type lookupResponse struct {
	Code    int                        `json:"code"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

// Lookup posts one observation to the service and decodes the SD-band fields.
func (c *Client) Lookup(ctx context.Context, req Request) (*Result, error) {
	p := lookupPayload{Gender: req.Gender, Height: req.Height, Weight: req.Weight}
	if !req.Observed.IsZero() {
		p.DOB = req.DOB.Format("2006-01-02")
		p.Date = req.Observed.Format("2006-01-02")
	} else {
		age := req.AgeSeconds
		p.AgeSeconds = &age
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/v1/lookup"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var out lookupResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &LookupError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Code != http.StatusOK {
		return nil, &LookupError{Code: out.Code, Message: out.Message}
	}

	res := &Result{Values: make(map[string]float64, len(out.Data))}
	for key, raw := range out.Data {
		if key == "age" {
			if err := json.Unmarshal(raw, &res.Age); err != nil {
				return nil, fmt.Errorf("decode age field: %w", err)
			}
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			// Non-numeric auxiliary fields are ignored rather than fatal.
			continue
		}
		res.Values[key] = v
	}
	return res, nil
}
