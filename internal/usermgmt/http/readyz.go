package http

import (
	"net/http"
	"time"

	"github.com/clinicwave/usermgmt/internal/usermgmt/store"
	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that also pings the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	usersdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	usersdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &usersdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, usersdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
