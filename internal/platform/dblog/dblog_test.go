package dblog_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/platform/dblog"
	"github.com/wavecrate/wavecrate/internal/softwarelog"
)

type captureRepo struct {
	entries []*softwarelog.Entry
}

func (c *captureRepo) CreateEntry(_ context.Context, e *softwarelog.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

func (c *captureRepo) ListEntries(_ context.Context, _ string, _ time.Time, _ int) ([]*softwarelog.Entry, error) {
	return c.entries, nil
}

/*
TestBacklogReplay verifies that records logged before Attach are buffered
and replayed oldest-first.
*/
func TestBacklogReplay(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelInfo, 16)
	logger := slog.New(handler)

	logger.Info("first")
	logger.Warn("second")

	repo := &captureRepo{}
	handler.Attach(repo)

	require.Len(t, repo.entries, 2)
	assert.Equal(t, "first", repo.entries[0].Message)
	assert.Equal(t, "second", repo.entries[1].Message)
	assert.Equal(t, "WARN", repo.entries[1].Level)
	assert.Equal(t, "wavecrate-api", repo.entries[0].Tag)
}

/*
TestWriteThrough verifies records flow straight to the store once
attached.
*/
func TestWriteThrough(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelInfo, 16)
	repo := &captureRepo{}
	handler.Attach(repo)

	slog.New(handler).Info("live", slog.String("dj_id", "dj-swift"))

	require.Len(t, repo.entries, 1)
	assert.Contains(t, repo.entries[0].Message, "live")
	assert.Contains(t, repo.entries[0].Message, "dj_id=dj-swift")
	assert.NotEmpty(t, repo.entries[0].Filename)
	assert.NotZero(t, repo.entries[0].LineNum)
}

/*
TestOverflowDropsNewest verifies the bounded backlog keeps the oldest
records and counts what it sheds.
*/
func TestOverflowDropsNewest(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelInfo, 2)
	logger := slog.New(handler)

	logger.Info("kept-1")
	logger.Info("kept-2")
	logger.Info("shed")

	assert.Equal(t, 1, handler.Dropped())

	repo := &captureRepo{}
	handler.Attach(repo)

	// Two buffered records plus the overflow notice.
	require.Len(t, repo.entries, 3)
	assert.Equal(t, "kept-1", repo.entries[0].Message)
	assert.Equal(t, "kept-2", repo.entries[1].Message)
	assert.Contains(t, repo.entries[2].Message, "1 records dropped")
	assert.Equal(t, 0, handler.Dropped())
}

// replayLoggingRepo logs one extra record through the handler while the
// first replayed record is being written, mimicking a component that logs
// during bring-up.
type replayLoggingRepo struct {
	capture *captureRepo
	logger  *slog.Logger
	fired   bool
}

func (r *replayLoggingRepo) CreateEntry(ctx context.Context, e *softwarelog.Entry) error {
	if !r.fired {
		r.fired = true
		r.logger.Info("during-replay")
	}
	return r.capture.CreateEntry(ctx, e)
}

func (r *replayLoggingRepo) ListEntries(ctx context.Context, tag string, since time.Time, limit int) ([]*softwarelog.Entry, error) {
	return r.capture.ListEntries(ctx, tag, since, limit)
}

/*
TestAttachKeepsOrderDuringReplay verifies a record logged while the
backlog replays lands after every older buffered record.
*/
func TestAttachKeepsOrderDuringReplay(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelInfo, 16)
	logger := slog.New(handler)

	logger.Info("first")
	logger.Info("second")

	capture := &captureRepo{}
	handler.Attach(&replayLoggingRepo{capture: capture, logger: logger})

	require.Len(t, capture.entries, 3)
	assert.Equal(t, "first", capture.entries[0].Message)
	assert.Equal(t, "second", capture.entries[1].Message)
	assert.Equal(t, "during-replay", capture.entries[2].Message)
}

/*
TestLevelFilter verifies records below the handler level are ignored.
*/
func TestLevelFilter(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelWarn, 16)
	logger := slog.New(handler)

	logger.Info("too quiet")
	logger.Error("loud")

	repo := &captureRepo{}
	handler.Attach(repo)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "loud", repo.entries[0].Message)
}

/*
TestDerivedHandlersShareBacklog verifies WithAttrs children write into
the same buffer and carry their attrs into the message.
*/
func TestDerivedHandlersShareBacklog(t *testing.T) {
	handler := dblog.NewHandler("wavecrate-api", slog.LevelInfo, 16)
	child := slog.New(handler).With(slog.String("request_id", "req-1"))

	child.Info("scoped")

	repo := &captureRepo{}
	handler.Attach(repo)

	require.Len(t, repo.entries, 1)
	assert.Contains(t, repo.entries[0].Message, "request_id=req-1")
}
