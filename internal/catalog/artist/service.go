package artist

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
)

type Service struct {
	repo    Repository
	genres  genre.Repository
	letters AlbumLetterLister
	logger  *slog.Logger
}

func NewService(repo Repository, genres genre.Repository, letters AlbumLetterLister, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		genres:  genres,
		letters: letters,
		logger:  logger,
	}
}

func (service *Service) ListArtists(context context.Context, genreAbbr string) ([]*Artist, error) {
	return service.repo.ListArtists(context, strings.ToUpper(genreAbbr))
}

func (service *Service) GetArtist(context context.Context, genreAbbr string, number int) (*Artist, error) {
	artist, err := service.repo.GetArtist(context, strings.ToUpper(genreAbbr), number)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.ArtistNotFound(tag.Compose(strings.ToUpper(genreAbbr), number, ""))
		}
		return nil, err
	}
	return artist, nil
}

// CreateArtist files a new artist under an existing genre. The number is
// caller-assigned and must be unique within the genre.
func (service *Service) CreateArtist(context context.Context, artist *Artist) error {
	artist.GenreAbbr = strings.ToUpper(artist.GenreAbbr)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, artist.Name).
		MaxLen(FieldName, artist.Name, 200).
		ExactLen(FieldGenreAbbr, artist.GenreAbbr, constants.GenreAbbrLen).
		Positive(FieldNumber, artist.Number)

	if err := validator.Err(); err != nil {
		return err
	}

	// The genre is a mandatory ancestor; nothing in the schema enforces it.
	if _, err := service.genres.GetGenre(context, artist.GenreAbbr); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.GenreNotFound(artist.GenreAbbr)
		}
		return err
	}

	if err := service.repo.CreateArtist(context, artist); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Artist " + artist.ID())
		}
		return err
	}

	service.logger.Info("artist_created",
		slog.String("id", artist.ID()),
		slog.String("name", artist.Name),
	)
	return nil
}

func (service *Service) UpdateArtist(context context.Context, genreAbbr string, number int, artist *Artist) error {
	artist.GenreAbbr = strings.ToUpper(genreAbbr)
	artist.Number = number

	validator := &validate.Validator{}
	validator.Required(FieldName, artist.Name).MaxLen(FieldName, artist.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.repo.UpdateArtist(context, artist); err != nil {
		return err
	}

	service.logger.Info("artist_updated", slog.String("id", artist.ID()))
	return nil
}

func (service *Service) DeleteArtist(context context.Context, genreAbbr string, number int) error {
	if err := service.repo.DeleteArtist(context, strings.ToUpper(genreAbbr), number); err != nil {
		return err
	}

	service.logger.Warn("artist_deleted", slog.String("id", tag.Compose(strings.ToUpper(genreAbbr), number, "")))
	return nil
}

// NextAlbumLetter derives the letter the artist's next album would receive.
// The value is computed from the current album set, never persisted.
func (service *Service) NextAlbumLetter(context context.Context, genreAbbr string, number int) (string, error) {
	artist, err := service.GetArtist(context, genreAbbr, number)
	if err != nil {
		return "", err
	}

	taken, err := service.letters.ListAlbumLetters(context, artist.GenreAbbr, artist.Number)
	if err != nil {
		return "", err
	}

	return NextFreeLetter(artist.ID(), taken)
}

// ResolveGenre resolves the artist's owning genre. A miss is a hard
// integrity error: the genre is a mandatory relationship.
func (service *Service) ResolveGenre(context context.Context, artist *Artist) (*genre.Genre, error) {
	owning, err := service.genres.GetGenre(context, artist.GenreAbbr)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.DanglingReference("Artist "+artist.ID(), "genre "+artist.GenreAbbr)
		}
		return nil, err
	}
	return owning, nil
}
