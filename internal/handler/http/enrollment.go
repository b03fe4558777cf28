package http

import (
	"net/http"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
)

const (
	queryAccount = "account"
	querySecret  = "secret"
)

func (h *Handler) newSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	secret, err := h.services.Enrollment.NewSecret(r.Context(), r.URL.Query().Get(queryAccount))
	if err != nil {
		log.Err(err).Msg("error generating enrollment secret")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, secret, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing enrollment secret")
	}
}

func (h *Handler) qrCode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	png, err := h.services.Enrollment.QRCode(r.Context(), query.Get(querySecret), query.Get(queryAccount))
	if err != nil {
		log.Err(err).Msg("error rendering qr code")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(png); err != nil {
		log.Err(err).Msg("error writing qr code")
	}
}
