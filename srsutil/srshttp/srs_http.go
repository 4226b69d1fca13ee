package srshttp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Get makes a GET request to the given URL and endpoint and unmarshals the response body into the given type.
func Get[K any](client *http.Client, url, endpoint string) (*K, error) {
	return GetWithContext[K](context.Background(), client, url, endpoint)
}

// GetWithContext is Get with request-scoped cancellation.
func GetWithContext[K any](ctx context.Context, client *http.Client, url, endpoint string) (*K, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s%s", resp.StatusCode, url, endpoint)
	}

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Unmarshal the response body
	var unmarshalledData K
	if err := json.Unmarshal(body, &unmarshalledData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	return &unmarshalledData, nil
}
