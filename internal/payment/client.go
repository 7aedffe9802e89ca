package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Client implements Gateway against the provider's REST API. Outbound calls
// go through a circuit breaker; webhook verification does not (inbound events
// must be judged on the signature alone, not on outbound health).
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL, apiKey string) *Client {
	settings := gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (c *Client) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	body, err := c.call(ctx, http.MethodPost, "/v1/checkout/sessions", req)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (c *Client) SessionLineItems(ctx context.Context, sessionID string) ([]LineItem, error) {
	body, err := c.call(ctx, http.MethodGet, "/v1/checkout/sessions/"+sessionID+"/line_items", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []LineItem `json:"data"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	return out.Data, nil
}

func (c *Client) Customer(ctx context.Context, customerID string) (*Customer, error) {
	body, err := c.call(ctx, http.MethodGet, "/v1/customers/"+customerID, nil)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("decode customer: %w", err)
	}
	return &customer, nil
}

func (c *Client) call(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var reqBody *bytes.Reader
		if payload != nil {
			data, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("marshal gateway request: %w", err)
			}
			reqBody = bytes.NewReader(data)
		} else {
			reqBody = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return nil, fmt.Errorf("build gateway request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("gateway request failed: %w", err)
		}
		defer resp.Body.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return nil, fmt.Errorf("read gateway response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, ErrSessionNotFound
		case resp.StatusCode >= 400:
			return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, buf.String())
		}
		return buf.Bytes(), nil
	})
}
