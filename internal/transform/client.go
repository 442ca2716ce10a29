package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
)

// Provider is the generative-text collaborator. Output is opaque
// replacement text; callers decide what to do when it fails.
type Provider interface {
	Transform(text string, action domain.TransformAction) (string, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) Provider {
	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type transformRequest struct {
	Action string `json:"action"`
	Text   string `json:"text"`
}

type transformResponse struct {
	Text string `json:"text"`
}

func (c *client) Transform(text string, action domain.TransformAction) (string, error) {
	data, err := json.Marshal(transformRequest{
		Action: string(action),
		Text:   text,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/transform", bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transform request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transform provider returned status %d", resp.StatusCode)
	}

	var result transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode transform response: %w", err)
	}

	return result.Text, nil
}
