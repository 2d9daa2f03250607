package program_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/dberr"
	"github.com/wavecrate/wavecrate/internal/program"
)

type fakeRepo struct {
	formats map[string]*program.Format
	logged  []*program.LogEntry
}

// dupRepo refuses every log insert the way the store reports a
// composite-key collision.
type dupRepo struct {
	*fakeRepo
}

func (dupRepo) CreateLogEntry(_ context.Context, _ *program.LogEntry) error {
	return apperr.DuplicateKey("Record")
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{formats: map[string]*program.Format{}}
}

func (f *fakeRepo) ListFormats(_ context.Context) ([]*program.Format, error) { return nil, nil }

func (f *fakeRepo) GetFormat(_ context.Context, formatType string) (*program.Format, error) {
	format, ok := f.formats[formatType]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return format, nil
}

func (f *fakeRepo) CreateFormat(_ context.Context, format *program.Format) error {
	if _, exists := f.formats[format.Type]; exists {
		return apperr.DuplicateKey("Record")
	}
	f.formats[format.Type] = format
	return nil
}

func (f *fakeRepo) UpdateFormat(_ context.Context, _ *program.Format) error { return nil }
func (f *fakeRepo) DeleteFormat(_ context.Context, formatType string) error {
	delete(f.formats, formatType)
	return nil
}

func (f *fakeRepo) ListPrograms(_ context.Context, _ string) ([]*program.Program, error) {
	return nil, nil
}
func (f *fakeRepo) CreateProgram(_ context.Context, _ *program.Program) error { return nil }
func (f *fakeRepo) DeleteProgram(_ context.Context, _, _ string) error        { return nil }

func (f *fakeRepo) ListSlots(_ context.Context) ([]*program.Slot, error) { return nil, nil }
func (f *fakeRepo) CreateSlot(_ context.Context, s *program.Slot) error {
	s.ID = 1
	return nil
}
func (f *fakeRepo) DeleteSlot(_ context.Context, _ int) error { return nil }

func (f *fakeRepo) ListLogEntries(_ context.Context, _ string, _ time.Time) ([]*program.LogEntry, error) {
	return f.logged, nil
}

func (f *fakeRepo) CreateLogEntry(_ context.Context, e *program.LogEntry) error {
	for _, existing := range f.logged {
		if existing.FormatType == e.FormatType && existing.SlotID == e.SlotID && existing.Timestamp.Equal(e.Timestamp) {
			return apperr.DuplicateKey("Record")
		}
	}
	f.logged = append(f.logged, e)
	return nil
}

func (f *fakeRepo) ListQuarters(_ context.Context) ([]*program.Quarter, error) { return nil, nil }
func (f *fakeRepo) CreateQuarter(_ context.Context, q *program.Quarter) error {
	q.ID = 1
	return nil
}
func (f *fakeRepo) DeleteQuarter(_ context.Context, _ int) error { return nil }

type fakeDJs struct {
	known map[string]bool
}

func (f fakeDJs) DJExists(_ context.Context, id string) (bool, error) {
	return f.known[id], nil
}

func newTestService() (*program.Service, *fakeRepo) {
	repo := newFakeRepo()
	repo.formats["rotation"] = &program.Format{Type: "rotation", Description: "Regular rotation"}
	djs := fakeDJs{known: map[string]bool{"dj-swift": true}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return program.NewService(repo, djs, logger), repo
}

/*
TestCreateSlot_DayRange rejects out-of-week day indexes.
*/
func TestCreateSlot_DayRange(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateSlot(context.Background(), &program.Slot{Day: 7, Start: "22:00"})

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

/*
TestCreateLogEntry verifies format and DJ checks plus the service-side
timestamp.
*/
func TestCreateLogEntry(t *testing.T) {
	t.Run("stamps_timestamp", func(t *testing.T) {
		service, repo := newTestService()

		entry := &program.LogEntry{
			FormatType:  "rotation",
			SlotID:      3,
			ProgramName: "Late Shift",
			DJID:        "dj-swift",
			Timestamp:   time.Now().Add(-48 * time.Hour),
		}
		require.NoError(t, service.CreateLogEntry(context.Background(), entry))

		require.Len(t, repo.logged, 1)
		assert.WithinDuration(t, time.Now(), repo.logged[0].Timestamp, time.Minute)
	})

	t.Run("unknown_format", func(t *testing.T) {
		service, _ := newTestService()

		entry := &program.LogEntry{FormatType: "talk", ProgramName: "X", DJID: "dj-swift"}
		err := service.CreateLogEntry(context.Background(), entry)

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
	})

	t.Run("duplicate_slot_timestamp", func(t *testing.T) {
		repo := newFakeRepo()
		repo.formats["rotation"] = &program.Format{Type: "rotation"}
		djs := fakeDJs{known: map[string]bool{"dj-swift": true}}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service := program.NewService(dupRepo{repo}, djs, logger)

		entry := &program.LogEntry{FormatType: "rotation", SlotID: 3, ProgramName: "X", DJID: "dj-swift"}
		err := service.CreateLogEntry(context.Background(), entry)

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, "DUPLICATE_KEY"))
	})

	t.Run("unknown_dj", func(t *testing.T) {
		service, _ := newTestService()

		entry := &program.LogEntry{FormatType: "rotation", ProgramName: "X", DJID: "dj-ghost"}
		err := service.CreateLogEntry(context.Background(), entry)

		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
	})
}

/*
TestCreateQuarter_Bounds rejects inverted date ranges.
*/
func TestCreateQuarter_Bounds(t *testing.T) {
	service, _ := newTestService()

	begin := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err := service.CreateQuarter(context.Background(), &program.Quarter{
		Begin: begin,
		End:   begin.Add(-time.Hour),
	})

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
