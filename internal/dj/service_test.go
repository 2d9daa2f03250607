package dj_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/dj"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/platform/sec"
)

type fakeRepo struct {
	djs map[string]*dj.DJ
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{djs: map[string]*dj.DJ{}}
}

func (f *fakeRepo) ListDJs(_ context.Context) ([]*dj.DJ, error) {
	var out []*dj.DJ
	for _, d := range f.djs {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) GetDJ(_ context.Context, id string) (*dj.DJ, error) {
	d, ok := f.djs[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return d, nil
}

func (f *fakeRepo) FindByUsername(_ context.Context, username string) (*dj.DJ, error) {
	for _, d := range f.djs {
		if d.Username == username {
			return d, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*dj.DJ, error) {
	for _, d := range f.djs {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepo) CreateDJ(_ context.Context, d *dj.DJ) error {
	f.djs[d.ID] = d
	return nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	d, ok := f.djs[id]
	if !ok {
		return dberr.ErrNotFound
	}
	d.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepo) DeleteDJ(_ context.Context, id string) error {
	if _, ok := f.djs[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.djs, id)
	return nil
}

func (f *fakeRepo) DJExists(_ context.Context, id string) (bool, error) {
	_, ok := f.djs[id]
	return ok, nil
}

type fakeKV struct {
	values map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	return value, nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newTestService() (*dj.Service, *fakeRepo, *fakeKV) {
	repo := newFakeRepo()
	sessions := newFakeKV()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := dj.NewService(repo, sessions, newFakeKV(), fakeTokens{}, logger)
	return service, repo, sessions
}

/*
TestRegisterAndLogin walks the happy path: enroll, then authenticate with
the same credentials.
*/
func TestRegisterAndLogin(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.Register(context.Background(), dj.RegisterInput{
		Username: "swift",
		Email:    "swift@wavecrate.app",
		Password: "turntables1",
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleDJ, created.Role)
	assert.NotEqual(t, "turntables1", created.PasswordHash)

	session, err := service.Login(context.Background(), dj.LoginInput{
		Login:    "swift",
		Password: "turntables1",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+created.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
}

/*
TestLogin_BadCredentials verifies the uniform unauthorized response for
unknown accounts and wrong passwords alike.
*/
func TestLogin_BadCredentials(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), dj.RegisterInput{
		Username: "swift",
		Email:    "swift@wavecrate.app",
		Password: "turntables1",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input dj.LoginInput
	}{
		{"unknown_account", dj.LoginInput{Login: "ghost", Password: "whatever1"}},
		{"wrong_password", dj.LoginInput{Login: "swift", Password: "wrong-pass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
		})
	}
}

/*
TestRegister_Conflicts verifies username and email uniqueness.
*/
func TestRegister_Conflicts(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), dj.RegisterInput{
		Username: "swift",
		Email:    "swift@wavecrate.app",
		Password: "turntables1",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), dj.RegisterInput{
		Username: "swift",
		Email:    "other@wavecrate.app",
		Password: "turntables1",
	})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "CONFLICT"))
}

/*
TestRefreshSession_Rotation verifies that a refresh token dies on first
use.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), dj.RegisterInput{
		Username: "swift",
		Email:    "swift@wavecrate.app",
		Password: "turntables1",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), dj.LoginInput{Login: "swift", Password: "turntables1"})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	_, err = service.RefreshSession(context.Background(), session.RefreshToken)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
}
