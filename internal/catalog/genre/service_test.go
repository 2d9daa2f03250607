package genre_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/genre"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
)

type fakeRepo struct {
	genres map[string]*genre.Genre
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{genres: map[string]*genre.Genre{}}
}

func (f *fakeRepo) ListGenres(_ context.Context) ([]*genre.Genre, error) {
	var out []*genre.Genre
	for _, g := range f.genres {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) GetGenre(_ context.Context, abbreviation string) (*genre.Genre, error) {
	g, ok := f.genres[abbreviation]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return g, nil
}

func (f *fakeRepo) CreateGenre(_ context.Context, g *genre.Genre) error {
	if _, exists := f.genres[g.Abbreviation]; exists {
		return apperr.DuplicateKey("Record")
	}
	f.genres[g.Abbreviation] = g
	return nil
}

func (f *fakeRepo) UpdateGenre(_ context.Context, g *genre.Genre) error {
	if _, exists := f.genres[g.Abbreviation]; !exists {
		return dberr.ErrNotFound
	}
	f.genres[g.Abbreviation] = g
	return nil
}

func (f *fakeRepo) DeleteGenre(_ context.Context, abbreviation string) error {
	if _, exists := f.genres[abbreviation]; !exists {
		return dberr.ErrNotFound
	}
	delete(f.genres, abbreviation)
	return nil
}

func newTestService() (*genre.Service, *fakeRepo) {
	repo := newFakeRepo()
	return genre.NewService(repo, slog.Default()), repo
}

/*
TestCreateGenre_DerivesAbbreviation verifies a missing abbreviation is
derived from the name and an explicit one is kept as given.
*/
func TestCreateGenre_DerivesAbbreviation(t *testing.T) {
	service, _ := newTestService()

	derived := &genre.Genre{Name: "Rock"}
	require.NoError(t, service.CreateGenre(context.Background(), derived))
	assert.Equal(t, "RO", derived.Abbreviation)

	explicit := &genre.Genre{Name: "Rock Kollection", Abbreviation: "rk"}
	require.NoError(t, service.CreateGenre(context.Background(), explicit))
	assert.Equal(t, "RK", explicit.Abbreviation)
}

/*
TestCreateGenre_RequiresAbbreviation verifies a name too short to derive
two letters from fails validation without an explicit abbreviation.
*/
func TestCreateGenre_RequiresAbbreviation(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateGenre(context.Background(), &genre.Genre{Name: "X"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestCreateGenre_Duplicate verifies a second genre under the same
abbreviation is rejected.
*/
func TestCreateGenre_Duplicate(t *testing.T) {
	service, _ := newTestService()

	require.NoError(t, service.CreateGenre(context.Background(), &genre.Genre{Name: "Rock"}))

	err := service.CreateGenre(context.Background(), &genre.Genre{Name: "Romance"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "DUPLICATE_KEY"))
}

/*
TestGetGenre verifies lookup is case-insensitive on the abbreviation and
a miss carries the catalog error code.
*/
func TestGetGenre(t *testing.T) {
	service, repo := newTestService()
	repo.genres["RK"] = &genre.Genre{Abbreviation: "RK", Name: "Rock"}

	found, err := service.GetGenre(context.Background(), "rk")
	require.NoError(t, err)
	assert.Equal(t, "Rock", found.Name)

	_, err = service.GetGenre(context.Background(), "ZZ")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "GENRE_NOT_FOUND"))
}
