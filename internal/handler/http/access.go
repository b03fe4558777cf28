package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
	"github.com/MKhiriev/go-door-keeper/models"
)

// maxAccessBodyBytes bounds a protocol request. The largest legitimate body
// is a stage4 request of well under 300 bytes.
const maxAccessBodyBytes = 4 << 10

// authenticate runs one protocol step. Protocol refusals are 200 responses
// with status "err"; only an undecodable body is a transport error.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxAccessBodyBytes)

	var req models.AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("access request body too large")
			http.Error(w, ErrBodyTooLarge.Error(), statusFromError(ErrBodyTooLarge))
			return
		}
		log.Err(fmt.Errorf("%w: %w", ErrInvalidJSON, err)).Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	log.Debug().
		Str("cmd", string(req.Cmd)).
		Str("uid", req.UID).
		Str("device_id", req.DeviceID).
		Msg("access request received")

	resp := h.services.Access.Authenticate(r.Context(), req)

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing access response")
	}
}
