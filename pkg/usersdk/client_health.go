package usersdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready to serve traffic.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
