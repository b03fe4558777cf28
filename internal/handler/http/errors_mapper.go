package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                   http.StatusBadRequest,
	ErrBodyTooLarge:                  http.StatusRequestEntityTooLarge,
	service.ErrInvalidInput:          http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrReadingFile:        http.StatusInternalServerError,
	store.ErrWritingFile:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
