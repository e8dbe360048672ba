package usermgmt_test

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/clinicwave/usermgmt/pkg/usersdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the user management end-to-end
 * tests. The service runs in a container built from cmd/usermgmt/Dockerfile;
 * notifications it sends are captured by a fake notification service running
 * in the test process.
 */

const testImageName = "clinicwave-usermgmt-test:latest"

// imageBuilt is false when docker is unavailable; every test then skips.
var imageBuilt bool

// TestMain builds the Docker image once before all tests and removes it
// after all tests complete.
func TestMain(m *testing.M) {
	flag.Parse()

	if !testing.Short() {
		fmt.Fprintf(os.Stdout, "Building usermgmt Docker image...")
		if err := buildDockerImage(); err != nil {
			fmt.Fprintf(os.Stdout, " skipped (%v)\n", err)
		} else {
			imageBuilt = true
			fmt.Fprintf(os.Stdout, " done\n")
		}
	}

	exitCode := m.Run()

	if imageBuilt {
		fmt.Fprintf(os.Stdout, "Cleaning up usermgmt Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/usermgmt/Dockerfile",
		"../../../")
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might already be gone
}

// notificationSink is a fake notification service recording the last
// message sent to each recipient.
type notificationSink struct {
	server *httptest.Server

	mu   sync.Mutex
	last map[string]sentMessage
}

type sentMessage struct {
	Recipient         string            `json:"recipient"`
	Subject           string            `json:"subject"`
	TemplateName      string            `json:"templateName"`
	TemplateVariables map[string]string `json:"templateVariables"`
	Type              string            `json:"type"`
	Category          string            `json:"category"`
}

func newNotificationSink(t *testing.T) *notificationSink {
	t.Helper()

	sink := &notificationSink{last: make(map[string]sentMessage)}
	sink.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notifications/send" {
			http.NotFound(w, r)
			return
		}

		var msg sentMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		sink.mu.Lock()
		sink.last[msg.Recipient] = msg
		sink.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(sink.server.Close)

	return sink
}

func (s *notificationSink) port(t *testing.T) int {
	t.Helper()

	_, portStr, err := net.SplitHostPort(s.server.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

// Await blocks until a message for recipient arrives. Delivery is
// asynchronous so the message can trail the API response.
func (s *notificationSink) Await(t *testing.T, recipient string) sentMessage {
	t.Helper()

	var msg sentMessage
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		var ok bool
		msg, ok = s.last[recipient]
		return ok
	}, 10*time.Second, 50*time.Millisecond, "no notification sent to %s", recipient)
	return msg
}

// Forget drops the recorded message so a later Await waits for a new one.
func (s *notificationSink) Forget(recipient string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.last, recipient)
}

// setupUserMgmtContainer starts the service with relaxed rate limits and
// notifications delivered to sink. Pass a nil sink to only log notifications.
func setupUserMgmtContainer(t *testing.T, sink *notificationSink) string {
	t.Helper()

	env := map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
	return startContainer(t, sink, env)
}

// setupUserMgmtContainerWithDefaultRateLimits starts the service with the
// production rate limits, for tests asserting the limits themselves.
func setupUserMgmtContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, nil, nil)
}

func startContainer(t *testing.T, sink *notificationSink, extraEnv map[string]string) string {
	t.Helper()
	if !imageBuilt {
		t.Skip("usermgmt image not built; docker unavailable or -short")
	}
	ctx := context.Background()

	env := map[string]string{
		"ENV":               "test",
		"LOG_LEVEL":         "info",
		"LOG_FORMAT":        "json",
		"DATABASE_DRIVER":   "sqlite",
		"DATABASE_FILE":     "/data/usermgmt.db",
		"FRONTEND_BASE_URL": "http://frontend.test",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}
	if sink != nil {
		port := sink.port(t)
		req.HostAccessPorts = []int{port}
		env["NOTIFICATION_SERVICE_URL"] = fmt.Sprintf("http://%s:%d", testcontainers.HostInternal, port)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

func newUserRequest(suffix string) usersdk.UserRequest {
	return usersdk.UserRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Mobile:      "041234560" + suffix,
		Username:    "jane" + suffix,
		Email:       "jane" + suffix + "@example.com",
		DateOfBirth: "1990-05-17",
		Gender:      "FEMALE",
		Bio:         "Clinic front desk",
	}
}

// tokenFromLink extracts the token query parameter of a verification link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *usersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies err is an API error with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) *usersdk.APIError {
	t.Helper()

	var apiErr *usersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
