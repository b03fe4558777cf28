package store

import (
	"context"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/models"
)

// tagFileStorage keeps the tag database as one JSON object keyed by UID.
type tagFileStorage struct {
	file   *jsonMapFile[models.TagRecord]
	logger *logger.Logger
}

// NewTagFileStorage returns a [TagRepository] over the JSON file at path.
// A missing file is an empty database and is created on the first write.
func NewTagFileStorage(path string, logger *logger.Logger) TagRepository {
	logger.Debug().Str("path", path).Msg("creating tag file storage")
	return &tagFileStorage{file: newJSONMapFile[models.TagRecord](path), logger: logger}
}

func (s *tagFileStorage) GetTag(ctx context.Context, uid string) (models.TagRecord, error) {
	rec, ok, err := s.file.get(uid)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagFileStorage.GetTag").Msg("error reading tag database")
		return models.TagRecord{}, err
	}
	if !ok {
		return models.TagRecord{}, ErrTagNotFound
	}
	return rec.Clone(), nil
}

func (s *tagFileStorage) PutTag(ctx context.Context, uid string, rec models.TagRecord) error {
	if err := s.file.put(uid, rec.Clone()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagFileStorage.PutTag").Msg("error writing tag database")
		return err
	}
	return nil
}
