package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finsolar/investordash/internal/portfolio"
	"github.com/finsolar/investordash/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidSlug), errors.Is(err, portfolio.ErrUnknownPolicy):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTenantNotFound), errors.Is(err, service.ErrNoDefaultTenant):
		return http.StatusNotFound
	case errors.Is(err, service.ErrManifestUnavailable), errors.Is(err, service.ErrTenantUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides backend detail from clients; the cause is logged by
// the service.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidSlug):
		return service.ErrInvalidSlug.Error()
	case errors.Is(err, portfolio.ErrUnknownPolicy):
		return err.Error()
	case errors.Is(err, service.ErrTenantNotFound):
		return service.ErrTenantNotFound.Error()
	case errors.Is(err, service.ErrNoDefaultTenant):
		return service.ErrNoDefaultTenant.Error()
	case errors.Is(err, service.ErrManifestUnavailable):
		return service.ErrManifestUnavailable.Error()
	case errors.Is(err, service.ErrTenantUnavailable):
		return service.ErrTenantUnavailable.Error()
	default:
		return "internal error"
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), publicMessage(err))
}
