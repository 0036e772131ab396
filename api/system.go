package api

import "net/http"

// SystemHandler answers the liveness and build-info endpoints. Both are open
// routes; the health body carries the running version so a probe log is
// enough to tell which build answered.
type SystemHandler struct {
	version   string
	buildTime string
}

func NewSystemHandler(version, buildTime string) *SystemHandler {
	return &SystemHandler{version: version, buildTime: buildTime}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "tadbeerx-admin",
		"version": h.version,
	}, http.StatusOK)
}

func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":   h.version,
		"buildTime": h.buildTime,
	}, http.StatusOK)
}
