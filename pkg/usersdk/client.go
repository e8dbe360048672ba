package usersdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the user management service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new user management client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
