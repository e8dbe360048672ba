package http

import (
	"net/http"
	"time"

	"github.com/clinicwave/usermgmt/pkg/httpx"
	"github.com/clinicwave/usermgmt/pkg/usersdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	usersdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, usersdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
