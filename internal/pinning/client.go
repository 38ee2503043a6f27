// Package pinning wraps the IPFS pinning service's public HTTP API. The
// service only receives bytes and returns a content address; nothing here
// interprets the CID.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

type Client struct {
	BaseURL string
	JWT     string
	HTTP    *http.Client
}

func NewClient(baseURL, jwt string) *Client {
	return &Client{
		BaseURL: baseURL,
		JWT:     jwt,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Enabled reports whether the client has credentials. Upload flows fall
// back to a generated placeholder hash when pinning is disabled.
func (c *Client) Enabled() bool {
	return c.JWT != ""
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// PinFile pins raw file bytes and returns the resulting content address.
func (c *Client) PinFile(ctx context.Context, name string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("pin file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("pin file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("pin file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/pinning/pinFileToIPFS", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.JWT)

	return c.do(req)
}

// PinJSON pins a JSON document (project metadata) and returns its address.
func (c *Client) PinJSON(ctx context.Context, v any) (string, error) {
	body, err := json.Marshal(map[string]any{"pinataContent": v})
	if err != nil {
		return "", fmt.Errorf("pin json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.JWT)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinning: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("pinning: status %d", resp.StatusCode)
	}

	var out pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pinning decode: %w", err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pinning: empty hash in response")
	}
	return out.IpfsHash, nil
}
