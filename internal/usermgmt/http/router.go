package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/service"
	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/slogx"

	_ "github.com/clinicwave/usermgmt/api/usermgmt" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	UserService         *service.UserService
	VerificationService *service.VerificationService
	ProvisioningService *service.ProvisioningService
	CatalogService      *service.CatalogService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerRoles()
	r.registerVerification()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ClinicWave User Management API
//	@version		0.1.0
//	@description	User registration, account verification and role provisioning for ClinicWave.
//	@description
//	@description	Verification codes are 6 digits, single use and valid for 72 hours.
//
//	@contact.name	ClinicWave Team
//	@contact.url	https://github.com/clinicwave/usermgmt
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// POST /users - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Reads - lenient rate limit by IP
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/users/{userId}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Administrative writes - moderate rate limit by IP
	writes := httpx.RateLimitByIP(httpx.ModerateLimit)
	r.Mux.Handle("PUT /v1/users/{userId}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), writes))
	r.Mux.Handle("PATCH /v1/users/{userId}/status", httpx.Chain(http.HandlerFunc(h.HandleSetStatus), writes))
	r.Mux.Handle("DELETE /v1/users/{userId}", httpx.Chain(http.HandlerFunc(h.HandleDelete), writes))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{CatalogService: r.CatalogService}

	reads := httpx.RateLimitByIP(httpx.LenientLimit)
	r.Mux.Handle("GET /v1/roles", httpx.Chain(http.HandlerFunc(h.HandleList), reads))
	r.Mux.Handle("GET /v1/roles/{roleId}", httpx.Chain(http.HandlerFunc(h.HandleGet), reads))

	// Role changes - moderate rate limit by IP + target user
	a := &RoleAssignmentHandler{ProvisioningService: r.ProvisioningService}
	assignments := httpx.RateLimitByIPAndPathValue(httpx.ModerateLimit, "userId")
	r.Mux.Handle("POST /v1/users/{userId}/roles/{roleId}", httpx.Chain(http.HandlerFunc(a.HandleProvision), assignments))
	r.Mux.Handle("DELETE /v1/users/{userId}/roles/{roleId}", httpx.Chain(http.HandlerFunc(a.HandleDeProvision), assignments))
}

func (r *Router) registerVerification() {
	h := &VerificationHandler{
		VerificationService: r.VerificationService,
		UserService:         r.UserService,
	}

	// GET /verify - moderate rate limit by IP (token lookups)
	r.Mux.Handle("GET /v1/verification/verify",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /verify - strict rate limit by IP + email to slow down code guessing
	r.Mux.Handle("POST /v1/verification/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /resend - strict rate limit by IP + email (each call sends a message)
	r.Mux.Handle("POST /v1/verification/resend",
		httpx.Chain(http.HandlerFunc(h.HandleResend),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
