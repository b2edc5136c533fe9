// Package client provides a REST client for the Breedsnap server API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"time"
)

// Client talks to a running breedsnap-server.
type Client struct {
	baseURL    string
	deviceID   string
	httpClient *http.Client
}

// New creates a client. If baseURL is empty, uses BREEDSNAP_SERVER_URL
// or defaults to localhost:3001. Timeout is configurable via
// BREEDSNAP_CLIENT_TIMEOUT (default 2m: an upload pays for two model
// round-trips).
func New(baseURL, deviceID string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("BREEDSNAP_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}

	timeout := 2 * time.Minute
	if t := os.Getenv("BREEDSNAP_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Sighting mirrors the server's wire shape for one identification.
type Sighting struct {
	ID                string             `json:"id"`
	ImageURL          string             `json:"imageUrl"`
	BreedName         string             `json:"breedName"`
	Confidence        float64            `json:"confidence"`
	AlternativeBreeds []AlternativeBreed `json:"alternativeBreeds"`
	FunFacts          []string           `json:"funFacts"`
	Rarity            string             `json:"rarity"`
	Difficulty        string             `json:"difficulty"`
	PlaceOfOrigin     string             `json:"placeOfOrigin"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// AlternativeBreed is a lower-confidence candidate returned alongside
// the primary breed.
type AlternativeBreed struct {
	Breed      string  `json:"breed"`
	Percentage float64 `json:"percentage"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Reason  string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Reason)
	}
	return e.Message
}

// errorBody is the JSON shape of server error responses.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Upload sends one image for identification and returns the stored
// sighting.
func (c *Client) Upload(ctx context.Context, filename string, image []byte, mimeType string) (*Sighting, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create form part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write form part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Device-Id", c.deviceID)

	var sighting Sighting
	if err := c.do(req, &sighting); err != nil {
		return nil, err
	}
	return &sighting, nil
}

// ListSightings fetches this device's history, newest first.
func (c *Client) ListSightings(ctx context.Context) ([]Sighting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/cats", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Device-Id", c.deviceID)

	var sightings []Sighting
	if err := c.do(req, &sightings); err != nil {
		return nil, err
	}
	return sightings, nil
}

// Health probes the server health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	var status map[string]string
	return c.do(req, &status)
}

// Stats fetches the server's runtime statistics as raw JSON.
func (c *Client) Stats(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// do executes the request and decodes the JSON response into result,
// converting non-2xx responses into *APIError.
func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var parsed errorBody
		if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
			apiErr.Message = parsed.Error
			apiErr.Reason = parsed.Reason
		}
		return apiErr
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
