package http

import (
	"net/http"
)

// getServerVersion handles GET /api/version. The body is the bare version
// string; board editors use it as a reachability check before offering
// encryption.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
