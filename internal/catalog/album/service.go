package album

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/label"
	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/validate"
	"github.com/wavecrate/wavecrate/pkg/pagination"
)

type Service struct {
	repo     Repository
	reviews  ReviewRepository
	problems ProblemRepository
	artists  artist.Repository
	labels   label.Repository
	djs      DJDirectory
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	reviews ReviewRepository,
	problems ProblemRepository,
	artists artist.Repository,
	labels label.Repository,
	djs DJDirectory,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		reviews:  reviews,
		problems: problems,
		artists:  artists,
		labels:   labels,
		djs:      djs,
		logger:   logger,
	}
}

func (service *Service) ListAlbums(context context.Context, genreAbbr string, artistNum int) ([]*Album, error) {
	return service.repo.ListAlbums(context, strings.ToUpper(genreAbbr), artistNum)
}

func (service *Service) ListAlbumsByGenre(context context.Context, genreAbbr string) ([]*Album, error) {
	return service.repo.ListAlbumsByGenre(context, strings.ToUpper(genreAbbr))
}

// ListNewAlbums returns one page of the new bin, newest first. The bin is
// the only station-wide album listing, so it is the only paginated one.
func (service *Service) ListNewAlbums(context context.Context, params pagination.Params) ([]*Album, pagination.Meta, error) {
	total, err := service.repo.CountNewAlbums(context)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	albums, err := service.repo.ListNewAlbums(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return albums, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetAlbum(context context.Context, genreAbbr string, artistNum int, letter string) (*Album, error) {
	album, err := service.repo.GetAlbum(context, strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter))
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Album " + tag.Compose(strings.ToUpper(genreAbbr), artistNum, strings.ToLower(letter)))
		}
		return nil, err
	}
	return album, nil
}

// GetAlbumByTag resolves an album from a full tag string ("RK12b"). A tag
// without the trailing letter names an artist, not an album, and is
// rejected.
func (service *Service) GetAlbumByTag(context context.Context, raw string) (*Album, error) {
	decomposed, err := tag.Decompose(raw)
	if err != nil {
		return nil, err
	}
	if !decomposed.HasAlbum() {
		return nil, apperr.InvalidTag(raw)
	}
	return service.GetAlbum(context, decomposed.GenreAbbr, decomposed.ArtistNum, decomposed.AlbumLetter)
}

// CreateAlbum files a new album under an existing artist. When no letter
// is given the store allocates the lowest free one; an explicit letter is
// honored as-is. A zero DateAdded is stamped with the current time, which
// starts the album's new-bin window.
func (service *Service) CreateAlbum(context context.Context, album *Album) error {
	album.GenreAbbr = strings.ToUpper(album.GenreAbbr)
	album.Letter = strings.ToLower(album.Letter)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, album.Name).
		MaxLen(FieldName, album.Name, 200)
	if album.Letter != "" {
		validator.Letter(FieldLetter, album.Letter)
	}
	validator.Custom(FieldFormat, !album.Format.Valid(), "Unknown format bits")
	if err := validator.Err(); err != nil {
		return err
	}

	// The artist is a mandatory ancestor; nothing in the schema enforces it.
	// Label and promoter references are soft and deliberately unchecked.
	if _, err := service.artists.GetArtist(context, album.GenreAbbr, album.ArtistNum); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.ArtistNotFound(tag.Compose(album.GenreAbbr, album.ArtistNum, ""))
		}
		return err
	}

	if album.DateAdded.IsZero() {
		album.DateAdded = time.Now()
	}

	if err := service.repo.CreateAlbum(context, album); err != nil {
		if apperr.HasCode(err, "DUPLICATE_KEY") {
			return apperr.DuplicateKey("Album " + album.ID())
		}
		return err
	}

	service.logger.Info("album_created",
		slog.String("id", album.ID()),
		slog.String("name", album.Name),
		slog.String("format", album.Format.String()),
	)
	return nil
}

// CreateAlbumFromTag files an album addressed by a tag string. The tag
// supplies genre and artist; a letter in the tag overrides any letter in
// the body, a bare artist tag leaves allocation to the store.
func (service *Service) CreateAlbumFromTag(context context.Context, raw string, album *Album) error {
	decomposed, err := tag.Decompose(raw)
	if err != nil {
		return err
	}

	album.GenreAbbr = decomposed.GenreAbbr
	album.ArtistNum = decomposed.ArtistNum
	if decomposed.HasAlbum() {
		album.Letter = decomposed.AlbumLetter
	}

	return service.CreateAlbum(context, album)
}

func (service *Service) UpdateAlbum(context context.Context, genreAbbr string, artistNum int, letter string, album *Album) error {
	album.GenreAbbr = strings.ToUpper(genreAbbr)
	album.ArtistNum = artistNum
	album.Letter = strings.ToLower(letter)

	validator := &validate.Validator{}
	validator.
		Required(FieldName, album.Name).
		MaxLen(FieldName, album.Name, 200).
		Letter(FieldLetter, album.Letter).
		Custom(FieldFormat, !album.Format.Valid(), "Unknown format bits")
	if err := validator.Err(); err != nil {
		return err
	}

	if album.DateAdded.IsZero() {
		album.DateAdded = time.Now()
	}

	if err := service.repo.UpdateAlbum(context, album); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Album " + album.ID())
		}
		return err
	}

	service.logger.Info("album_updated", slog.String("id", album.ID()))
	return nil
}

func (service *Service) DeleteAlbum(context context.Context, genreAbbr string, artistNum int, letter string) error {
	genreAbbr = strings.ToUpper(genreAbbr)
	letter = strings.ToLower(letter)

	if err := service.repo.DeleteAlbum(context, genreAbbr, artistNum, letter); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("Album " + tag.Compose(genreAbbr, artistNum, letter))
		}
		return err
	}

	service.logger.Warn("album_deleted", slog.String("id", tag.Compose(genreAbbr, artistNum, letter)))
	return nil
}

// ResolveArtist resolves the album's owning artist. A miss is a hard
// integrity error: the artist is a mandatory relationship.
func (service *Service) ResolveArtist(context context.Context, album *Album) (*artist.Artist, error) {
	owning, err := service.artists.GetArtist(context, album.GenreAbbr, album.ArtistNum)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.DanglingReference("Album "+album.ID(), "artist "+tag.Compose(album.GenreAbbr, album.ArtistNum, ""))
		}
		return nil, err
	}
	return owning, nil
}

// ResolveLabel resolves the album's label reference. The reference is
// soft: a nil label_id, or an id pointing at a deleted label, resolves to
// nil with no error.
func (service *Service) ResolveLabel(context context.Context, album *Album) (*label.Label, error) {
	if album.LabelID == nil {
		return nil, nil
	}

	resolved, err := service.labels.GetLabel(context, *album.LabelID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return resolved, nil
}

// ResolvePromoter resolves the album's promoter reference, soft like
// ResolveLabel.
func (service *Service) ResolvePromoter(context context.Context, album *Album) (*label.Promoter, error) {
	if album.PromoterID == nil {
		return nil, nil
	}

	resolved, err := service.labels.GetPromoter(context, *album.PromoterID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return resolved, nil
}
