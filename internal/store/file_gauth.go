package store

import (
	"context"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

// gauthFileStorage reads the PIN database, a JSON object mapping each PIN to
// {"GAuthSecret": "..."}.
type gauthFileStorage struct {
	file   *jsonMapFile[models.GAuthRecord]
	logger *logger.Logger
}

// NewGAuthFileStorage returns a [GAuthRepository] over the JSON file at path.
func NewGAuthFileStorage(path string, logger *logger.Logger) GAuthRepository {
	logger.Debug().Str("path", path).Msg("creating gauth file storage")
	return &gauthFileStorage{file: newJSONMapFile[models.GAuthRecord](path), logger: logger}
}

func (s *gauthFileStorage) GetGAuth(ctx context.Context, pin string) (models.GAuthRecord, error) {
	rec, ok, err := s.file.get(pin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*gauthFileStorage.GetGAuth").Msg("error reading gauth database")
		return models.GAuthRecord{}, err
	}
	if !ok {
		return models.GAuthRecord{}, ErrPINNotFound
	}
	rec.PIN = pin
	return rec, nil
}
