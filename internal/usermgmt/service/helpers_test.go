package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/domain"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
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

// recordingNotifier keeps every dispatched request.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.NotificationRequest
}

func (n *recordingNotifier) Dispatch(_ context.Context, req domain.NotificationRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, req)
}

func (n *recordingNotifier) Last(t *testing.T) domain.NotificationRequest {
	t.Helper()

	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent)
	return n.sent[len(n.sent)-1]
}

func (n *recordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// codeSequence returns random bytes that make successive issuances produce
// the given codes. Each issuance reads 4 bytes for the code and 16 for the
// token.
func codeSequence(codes ...uint32) *bytes.Reader {
	var buf bytes.Buffer
	for i, c := range codes {
		_ = binary.Write(&buf, binary.BigEndian, c)
		buf.Write(bytes.Repeat([]byte{byte(i + 1)}, 16))
	}
	return bytes.NewReader(buf.Bytes())
}

type fixture struct {
	store        *sqlite.Store
	clock        *clock
	notifier     *recordingNotifier
	verification *VerificationService
	provisioning *ProvisioningService
	users        *UserService
	catalog      *CatalogService
	defaultRole  domain.Role
	adminRole    domain.Role
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithCatalog(t, domain.DefaultCatalog())
}

func newFixtureWithCatalog(t *testing.T, c domain.Catalog) *fixture {
	t.Helper()
	ctx := context.Background()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	f := &fixture{
		store:    s,
		clock:    newClock(),
		notifier: &recordingNotifier{},
		catalog:  &CatalogService{Store: s},
	}
	require.NoError(t, f.catalog.Seed(ctx, c))

	f.verification = &VerificationService{Store: s, Now: f.clock.Now}
	f.provisioning = &ProvisioningService{Store: s, Now: f.clock.Now}
	f.users = &UserService{
		Store:                s,
		Verification:         f.verification,
		Notifier:             f.notifier,
		VerificationLinkBase: "https://clinic.example.com",
		Now:                  f.clock.Now,
	}

	if role, err := s.Roles().GetRoleByName(ctx, domain.DefaultRoleName); err == nil {
		f.defaultRole = role
	}
	if role, err := s.Roles().GetRoleByName(ctx, domain.AdminRoleName); err == nil {
		f.adminRole = role
	}
	return f
}

func profile(suffix string) domain.UserProfile {
	return domain.UserProfile{
		FirstName:   "Jane",
		LastName:    "Doe",
		Mobile:      "041234567" + suffix,
		Username:    "jdoe" + suffix,
		Email:       "jane" + suffix + "@example.com",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:      domain.GenderFemale,
	}
}

// createUser inserts a user straight into the store, bypassing registration.
func (f *fixture) createUser(t *testing.T, suffix string, status domain.UserStatus, roleID int64) domain.User {
	t.Helper()

	u, err := f.store.Users().CreateUser(context.Background(), domain.User{
		UserProfile: profile(suffix),
		Status:      status,
		RoleID:      roleID,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) reloadUser(t *testing.T, id int64) domain.User {
	t.Helper()

	u, err := f.store.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func (f *fixture) codeByToken(t *testing.T, token string) domain.VerificationCode {
	t.Helper()

	c, err := f.store.VerificationCodes().GetVerificationCodeByToken(context.Background(), token)
	require.NoError(t, err)
	return c
}

// wrongCode returns a well-formed code that differs from code.
func wrongCode(code string) string {
	if code == "000000" {
		return "000001"
	}
	return "000000"
}
