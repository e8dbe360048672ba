package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	usermgmthttp "github.com/clinicwave/usermgmt/internal/usermgmt/http"
	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
	"github.com/stretchr/testify/require"
)

// inbox captures the verification messages sent to each recipient.
type inbox struct {
	mu   sync.Mutex
	last map[string]domain.NotificationRequest
}

func (i *inbox) Dispatch(_ context.Context, req domain.NotificationRequest) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.last == nil {
		i.last = make(map[string]domain.NotificationRequest)
	}
	i.last[req.Recipient] = req
}

// Code returns the latest code sent to recipient.
func (i *inbox) Code(t *testing.T, recipient string) string {
	t.Helper()
	return i.message(t, recipient).Variables[domain.VarVerificationCode]
}

// Token returns the token embedded in the latest verification link sent to recipient.
func (i *inbox) Token(t *testing.T, recipient string) string {
	t.Helper()

	link, err := url.Parse(i.message(t, recipient).Variables[domain.VarVerificationLink])
	require.NoError(t, err)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}

func (i *inbox) message(t *testing.T, recipient string) domain.NotificationRequest {
	t.Helper()

	i.mu.Lock()
	defer i.mu.Unlock()
	req, ok := i.last[recipient]
	require.True(t, ok, "no message sent to %s", recipient)
	return req
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	client  *usersdk.SDKClient
	baseURL string
	inbox   *inbox
	clock   *clock
	store   *sqlite.Store
}

// newTestEnv serves the full router over an in-memory database seeded with
// the default catalog.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	catalog := &service.CatalogService{Store: st}
	require.NoError(t, catalog.Seed(ctx, domain.DefaultCatalog()))

	env := &testEnv{
		inbox: &inbox{},
		clock: &clock{now: time.Now().UTC()},
		store: st,
	}

	verification := &service.VerificationService{Store: st, Now: env.clock.Now}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := usermgmthttp.NewRouter("test", st, logger)
	router.CatalogService = catalog
	router.VerificationService = verification
	router.ProvisioningService = &service.ProvisioningService{Store: st, Now: env.clock.Now}
	router.UserService = &service.UserService{
		Store:                st,
		Verification:         verification,
		Notifier:             env.inbox,
		VerificationLinkBase: "https://clinic.example.com",
		Now:                  env.clock.Now,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	env.baseURL = srv.URL
	env.client = usersdk.NewSDKClient(srv.URL)
	return env
}

func userRequest(suffix string) usersdk.UserRequest {
	return usersdk.UserRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Mobile:      "041234567" + suffix,
		Username:    "jdoe" + suffix,
		Email:       "jane" + suffix + "@example.com",
		DateOfBirth: "1990-05-01",
		Gender:      "FEMALE",
	}
}

func (e *testEnv) register(t *testing.T, suffix string) *usersdk.UserResponse {
	t.Helper()

	user, err := e.client.CreateUser(context.Background(), userRequest(suffix))
	require.NoError(t, err)
	return user
}

func (e *testEnv) roleID(t *testing.T, name string) int64 {
	t.Helper()

	roles, err := e.client.ListRoles(context.Background())
	require.NoError(t, err)
	for _, r := range roles {
		if r.Name == name {
			return r.ID
		}
	}
	require.FailNow(t, "role not found", name)
	return 0
}

// requireAPIError asserts err is an *usersdk.APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) *usersdk.APIError {
	t.Helper()

	var apiErr *usersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
