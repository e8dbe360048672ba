package usersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the SDKClient's HTTP client.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set custom headers
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON encodes payload as the request body and performs the request.
func (c *SDKClient) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return c.doRequest(ctx, method, path, bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
}

// decodeJSON decodes a JSON response into the target interface.
// Returns a typed *APIError if the status code is not the expected one.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// checkStatusNoContent returns a typed error if the response status is not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}
