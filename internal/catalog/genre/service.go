package genre

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
	"github.com/wavecrate/wavecrate/pkg/abbrev"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListGenres(context context.Context) ([]*Genre, error) {
	return service.repo.ListGenres(context)
}

func (service *Service) GetGenre(context context.Context, abbreviation string) (*Genre, error) {
	abbreviation = strings.ToUpper(abbreviation)

	genre, err := service.repo.GetGenre(context, abbreviation)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.GenreNotFound(abbreviation)
		}
		return nil, err
	}
	return genre, nil
}

// CreateGenre files a new genre. When no abbreviation is supplied, one is
// derived from the genre name; a name too short to abbreviate requires an
// explicit abbreviation from the caller.
func (service *Service) CreateGenre(context context.Context, genre *Genre) error {
	if genre.Abbreviation == "" {
		genre.Abbreviation = abbrev.FromName(genre.Name)
	}
	genre.Abbreviation = strings.ToUpper(genre.Abbreviation)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, genre.Name).
		MaxLen(FieldName, genre.Name, 100).
		Required(FieldAbbreviation, genre.Abbreviation).
		ExactLen(FieldAbbreviation, genre.Abbreviation, constants.GenreAbbrLen)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateGenre(context, genre); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Genre " + genre.Abbreviation)
		}
		return err
	}

	service.logger.Info("genre_created",
		slog.String("abbreviation", genre.Abbreviation),
		slog.String("name", genre.Name),
	)
	return nil
}

func (service *Service) UpdateGenre(context context.Context, abbreviation string, genre *Genre) error {
	genre.Abbreviation = strings.ToUpper(abbreviation)

	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name).MaxLen(FieldName, genre.Name, 100)

	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.repo.UpdateGenre(context, genre); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.GenreNotFound(genre.Abbreviation)
		}
		return err
	}

	service.logger.Info("genre_updated", slog.String("abbreviation", genre.Abbreviation))
	return nil
}

// DeleteGenre removes a genre and, by cascade, every artist, album, review,
// and problem report filed under it.
func (service *Service) DeleteGenre(context context.Context, abbreviation string) error {
	if err := service.repo.DeleteGenre(context, strings.ToUpper(abbreviation)); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.GenreNotFound(strings.ToUpper(abbreviation))
		}
		return err
	}

	service.logger.Warn("genre_deleted", slog.String("abbreviation", abbreviation))
	return nil
}
