package album_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/album"
	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/catalog/label"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/pkg/pointer"
)

type fakeAlbumRepo struct {
	albums map[string]*album.Album
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{albums: map[string]*album.Album{}}
}

func (f *fakeAlbumRepo) ListAlbums(_ context.Context, genreAbbr string, artistNum int) ([]*album.Album, error) {
	var out []*album.Album
	for _, a := range f.albums {
		if a.GenreAbbr == genreAbbr && a.ArtistNum == artistNum {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlbumRepo) ListAlbumsByGenre(_ context.Context, genreAbbr string) ([]*album.Album, error) {
	var out []*album.Album
	for _, a := range f.albums {
		if a.GenreAbbr == genreAbbr {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlbumRepo) ListNewAlbums(_ context.Context, limit, offset int) ([]*album.Album, error) {
	var out []*album.Album
	for _, a := range f.albums {
		if a.IsNew() {
			out = append(out, a)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAlbumRepo) CountNewAlbums(_ context.Context) (int, error) {
	count := 0
	for _, a := range f.albums {
		if a.IsNew() {
			count++
		}
	}
	return count, nil
}

func (f *fakeAlbumRepo) GetAlbum(_ context.Context, genreAbbr string, artistNum int, letter string) (*album.Album, error) {
	a, ok := f.albums[genreAbbr+"/"+letter]
	if !ok || a.ArtistNum != artistNum {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (f *fakeAlbumRepo) ListAlbumLetters(_ context.Context, genreAbbr string, artistNum int) ([]string, error) {
	var letters []string
	for _, a := range f.albums {
		if a.GenreAbbr == genreAbbr && a.ArtistNum == artistNum {
			letters = append(letters, a.Letter)
		}
	}
	return letters, nil
}

func (f *fakeAlbumRepo) CreateAlbum(_ context.Context, a *album.Album) error {
	if a.Letter == "" {
		taken, _ := f.ListAlbumLetters(context.Background(), a.GenreAbbr, a.ArtistNum)
		letter, err := artist.NextFreeLetter(a.GenreAbbr, taken)
		if err != nil {
			return err
		}
		a.Letter = letter
	}
	key := a.GenreAbbr + "/" + a.Letter
	if _, exists := f.albums[key]; exists {
		return apperr.DuplicateKey("Record")
	}
	f.albums[key] = a
	return nil
}

func (f *fakeAlbumRepo) UpdateAlbum(_ context.Context, a *album.Album) error {
	key := a.GenreAbbr + "/" + a.Letter
	if _, exists := f.albums[key]; !exists {
		return dberr.ErrNotFound
	}
	f.albums[key] = a
	return nil
}

func (f *fakeAlbumRepo) DeleteAlbum(_ context.Context, genreAbbr string, _ int, letter string) error {
	key := genreAbbr + "/" + letter
	if _, exists := f.albums[key]; !exists {
		return dberr.ErrNotFound
	}
	delete(f.albums, key)
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*album.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*album.Review{}}
}

func (f *fakeReviewRepo) ListReviews(_ context.Context, _ string, _ int, _ string) ([]*album.Review, error) {
	var out []*album.Review
	for _, r := range f.reviews {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetReview(_ context.Context, genreAbbr string, artistNum int, letter, djID string) (*album.Review, error) {
	r, ok := f.reviews[genreAbbr+letter+djID]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) CreateReview(_ context.Context, r *album.Review) error {
	key := r.GenreAbbr + r.Letter + r.DJID
	if _, exists := f.reviews[key]; exists {
		return apperr.DuplicateKey("Record")
	}
	f.reviews[key] = r
	return nil
}

func (f *fakeReviewRepo) UpdateReview(_ context.Context, r *album.Review) error {
	key := r.GenreAbbr + r.Letter + r.DJID
	if _, exists := f.reviews[key]; !exists {
		return dberr.ErrNotFound
	}
	f.reviews[key] = r
	return nil
}

func (f *fakeReviewRepo) DeleteReview(_ context.Context, genreAbbr string, _ int, letter, djID string) error {
	key := genreAbbr + letter + djID
	if _, exists := f.reviews[key]; !exists {
		return dberr.ErrNotFound
	}
	delete(f.reviews, key)
	return nil
}

type fakeProblemRepo struct {
	problems map[string]*album.Problem
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{problems: map[string]*album.Problem{}}
}

func (f *fakeProblemRepo) ListProblems(_ context.Context, _ string, _ int, _ string) ([]*album.Problem, error) {
	var out []*album.Problem
	for _, p := range f.problems {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProblemRepo) CreateProblem(_ context.Context, p *album.Problem) error {
	f.problems[p.ID()] = p
	return nil
}

func (f *fakeProblemRepo) DeleteProblem(_ context.Context, genreAbbr string, artistNum int, letter, djID string) error {
	return nil
}

type fakeArtistRepo struct {
	artists map[string]*artist.Artist
}

func (f *fakeArtistRepo) ListArtists(_ context.Context, _ string) ([]*artist.Artist, error) {
	return nil, nil
}

func (f *fakeArtistRepo) GetArtist(_ context.Context, genreAbbr string, number int) (*artist.Artist, error) {
	a, ok := f.artists[genreAbbr]
	if !ok || a.Number != number {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtistRepo) CreateArtist(_ context.Context, _ *artist.Artist) error { return nil }
func (f *fakeArtistRepo) UpdateArtist(_ context.Context, _ *artist.Artist) error { return nil }
func (f *fakeArtistRepo) DeleteArtist(_ context.Context, _ string, _ int) error  { return nil }

type fakeLabelRepo struct {
	labels map[int]*label.Label
}

func (f *fakeLabelRepo) ListLabels(_ context.Context) ([]*label.Label, error) { return nil, nil }

func (f *fakeLabelRepo) GetLabel(_ context.Context, id int) (*label.Label, error) {
	l, ok := f.labels[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return l, nil
}

func (f *fakeLabelRepo) CreateLabel(_ context.Context, _ *label.Label) error { return nil }
func (f *fakeLabelRepo) UpdateLabel(_ context.Context, _ *label.Label) error { return nil }
func (f *fakeLabelRepo) DeleteLabel(_ context.Context, _ int) error          { return nil }

func (f *fakeLabelRepo) ListPromoters(_ context.Context) ([]*label.Promoter, error) {
	return nil, nil
}

func (f *fakeLabelRepo) GetPromoter(_ context.Context, _ int) (*label.Promoter, error) {
	return nil, dberr.ErrNotFound
}

func (f *fakeLabelRepo) CreatePromoter(_ context.Context, _ *label.Promoter) error { return nil }
func (f *fakeLabelRepo) UpdatePromoter(_ context.Context, _ *label.Promoter) error { return nil }
func (f *fakeLabelRepo) DeletePromoter(_ context.Context, _ int) error             { return nil }

type fakeDJDirectory struct {
	known map[string]bool
}

func (f *fakeDJDirectory) DJExists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func newTestService() (*album.Service, *fakeAlbumRepo, *fakeReviewRepo) {
	repo := newFakeAlbumRepo()
	reviews := newFakeReviewRepo()
	artists := &fakeArtistRepo{artists: map[string]*artist.Artist{
		"RK": {GenreAbbr: "RK", Number: 12, Name: "The Basement Dwellers"},
	}}
	labels := &fakeLabelRepo{labels: map[int]*label.Label{
		7: {ID: 7, Name: "Static Records"},
	}}
	djs := &fakeDJDirectory{known: map[string]bool{"dj-swift": true}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := album.NewService(repo, reviews, newFakeProblemRepo(), artists, labels, djs, logger)
	return service, repo, reviews
}

/*
TestCreateAlbum_Defaults verifies that a zero DateAdded is stamped with
the current time and a missing letter is allocated.
*/
func TestCreateAlbum_Defaults(t *testing.T) {
	service, _, _ := newTestService()

	a := &album.Album{GenreAbbr: "rk", ArtistNum: 12, Name: "First Pressing"}
	require.NoError(t, service.CreateAlbum(context.Background(), a))

	assert.Equal(t, "RK", a.GenreAbbr)
	assert.Equal(t, "a", a.Letter)
	assert.WithinDuration(t, time.Now(), a.DateAdded, time.Minute)
	assert.True(t, a.IsNew())
}

/*
TestCreateAlbum_ArtistNotFound verifies the mandatory-ancestor check.
*/
func TestCreateAlbum_ArtistNotFound(t *testing.T) {
	service, _, _ := newTestService()

	a := &album.Album{GenreAbbr: "EL", ArtistNum: 99, Name: "Orphan"}
	err := service.CreateAlbum(context.Background(), a)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "ARTIST_NOT_FOUND"))
}

/*
TestCreateAlbum_DuplicateLetter verifies the composite-key conflict path.
*/
func TestCreateAlbum_DuplicateLetter(t *testing.T) {
	service, _, _ := newTestService()

	first := &album.Album{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Original"}
	require.NoError(t, service.CreateAlbum(context.Background(), first))

	second := &album.Album{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Imposter"}
	err := service.CreateAlbum(context.Background(), second)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "DUPLICATE_KEY"))
}

/*
TestCreateAlbumFromTag verifies that the tag's letter wins over the body
and that a bare artist tag defers to allocation.
*/
func TestCreateAlbumFromTag(t *testing.T) {
	t.Run("tag_letter_overrides_body", func(t *testing.T) {
		service, _, _ := newTestService()

		a := &album.Album{Letter: "z", Name: "Overridden"}
		require.NoError(t, service.CreateAlbumFromTag(context.Background(), "RK12b", a))

		assert.Equal(t, "RK12b", a.ID())
	})

	t.Run("bare_artist_tag_allocates", func(t *testing.T) {
		service, _, _ := newTestService()

		a := &album.Album{Name: "Allocated"}
		require.NoError(t, service.CreateAlbumFromTag(context.Background(), "RK12", a))

		assert.Equal(t, "RK12a", a.ID())
	})

	t.Run("malformed_tag", func(t *testing.T) {
		service, _, _ := newTestService()

		err := service.CreateAlbumFromTag(context.Background(), "R", &album.Album{Name: "X"})

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, "INVALID_TAG"))
	})
}

/*
TestCreateReview_StampsDateEntered verifies that a backdated entry date
from the client is discarded.
*/
func TestCreateReview_StampsDateEntered(t *testing.T) {
	service, _, _ := newTestService()
	require.NoError(t, service.CreateAlbum(context.Background(), &album.Album{
		GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Reviewed",
	}))

	review := &album.Review{
		GenreAbbr:   "RK",
		ArtistNum:   12,
		Letter:      "b",
		DJID:        "dj-swift",
		Content:     "Side two is the keeper.",
		DateEntered: time.Now().Add(-90 * 24 * time.Hour),
	}
	require.NoError(t, service.CreateReview(context.Background(), review))

	assert.WithinDuration(t, time.Now(), review.DateEntered, time.Minute)
	assert.True(t, review.IsRecent())
}

/*
TestCreateReview_UnknownDJ verifies the reviewer existence check that
stands in for the absent foreign key.
*/
func TestCreateReview_UnknownDJ(t *testing.T) {
	service, _, _ := newTestService()
	require.NoError(t, service.CreateAlbum(context.Background(), &album.Album{
		GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Reviewed",
	}))

	review := &album.Review{
		GenreAbbr: "RK", ArtistNum: 12, Letter: "b",
		DJID: "dj-ghost", Content: "Who am I?",
	}
	err := service.CreateReview(context.Background(), review)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

/*
TestCreateReview_AlbumMissing verifies that a review cannot be attached
to an album that does not exist.
*/
func TestCreateReview_AlbumMissing(t *testing.T) {
	service, _, _ := newTestService()

	review := &album.Review{
		GenreAbbr: "RK", ArtistNum: 12, Letter: "q",
		DJID: "dj-swift", Content: "Reviewing thin air.",
	}
	err := service.CreateReview(context.Background(), review)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}

/*
TestResolveLabel verifies soft-reference semantics: nil id and dangling
id both resolve to nothing without error.
*/
func TestResolveLabel(t *testing.T) {
	service, _, _ := newTestService()

	t.Run("nil_reference", func(t *testing.T) {
		resolved, err := service.ResolveLabel(context.Background(), &album.Album{})

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("dangling_reference", func(t *testing.T) {
		resolved, err := service.ResolveLabel(context.Background(), &album.Album{LabelID: pointer.To(404)})

		require.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("live_reference", func(t *testing.T) {
		resolved, err := service.ResolveLabel(context.Background(), &album.Album{LabelID: pointer.To(7)})

		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, "Static Records", resolved.Name)
	})
}

/*
TestResolveArtist_Dangling verifies that a mandatory reference miss is a
hard integrity error, unlike the soft label path.
*/
func TestResolveArtist_Dangling(t *testing.T) {
	service, _, _ := newTestService()

	orphan := &album.Album{GenreAbbr: "EL", ArtistNum: 3, Letter: "a"}
	_, err := service.ResolveArtist(context.Background(), orphan)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "DANGLING_REFERENCE"))
}

/*
TestGetAlbumByTag verifies tag-addressed lookup, including rejection of
artist-only tags.
*/
func TestGetAlbumByTag(t *testing.T) {
	service, _, _ := newTestService()
	require.NoError(t, service.CreateAlbum(context.Background(), &album.Album{
		GenreAbbr: "RK", ArtistNum: 12, Letter: "b", Name: "Findable",
	}))

	found, err := service.GetAlbumByTag(context.Background(), "RK12b")
	require.NoError(t, err)
	assert.Equal(t, "Findable", found.Name)

	_, err = service.GetAlbumByTag(context.Background(), "RK12")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "INVALID_TAG"))
}
