// Package entityfile loads entity fixtures from YAML files.
package entityfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.EntityLoader = (*Loader)(nil)

// Loader implements ports.EntityLoader for YAML entity files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the entity file at path.
func (l *Loader) Load(path string) (domain.Sourced[[]*domain.BaseEntity], error) {
	var result domain.Sourced[[]*domain.BaseEntity]

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return result, loadError(domain.ErrEntitiesReadFailed, err, path)
	}

	var file EntityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return result, loadError(domain.ErrEntitiesParseFailed, err, path)
	}

	if file.Version != CurrentVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "load entities"), "path", path)
		return result, zerr.With(err, "version", file.Version)
	}

	entities := make([]*domain.BaseEntity, 0, len(file.Entities))
	for i, dto := range file.Entities {
		entity, err := dtoConverter.Convert(dto)
		if err != nil {
			return result, zerr.With(zerr.With(err, "path", path), "index", i)
		}
		entities = append(entities, entity)
	}

	l.Logger.Info(fmt.Sprintf("loaded %d entities from %s (checksum %016x)", len(entities), path, xxhash.Sum64(data)))

	result.Value = entities
	result.Source = path
	return result, nil
}

// dtoConverter maps a file entry onto a domain entity.
var dtoConverter domain.Converter[EntityDTO, *domain.BaseEntity] = domain.ConverterFunc[EntityDTO, *domain.BaseEntity](
	func(dto EntityDTO) (*domain.BaseEntity, error) {
		created, err := parseTimestamp(dto.CreatedOn)
		if err != nil {
			return nil, err
		}

		entity := &domain.BaseEntity{Created: created}
		if id := strings.TrimSpace(dto.ID); id != "" {
			parsed, err := uuid.Parse(id)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidEntityID, err), "convert entity"), "id", id)
			}
			entity.UUID = uuid.NullUUID{UUID: parsed, Valid: true}
		}
		return entity, nil
	},
)

// loadError tags cause with an error kind and the file it came from.
func loadError(kind, cause error, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(kind, cause), "load entities"), "path", path)
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, zerr.Wrap(domain.ErrInvalidTimestamp, "createdOn is required")
	}
	created, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidTimestamp, err), "convert entity"), "createdOn", raw)
	}
	return created, nil
}
