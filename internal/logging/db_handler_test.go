package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// The test database is closed in t.Cleanup, after deferred checks run.
var ignoreDB = goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener")

func TestDBHandlerPersistsErrorsOnStop(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreDB)

	db := dbtest.Open(t)
	h := newDBHandler(db, time.Hour)
	logger := slog.New(h)

	logger.Info("not persisted")
	logger.With("request_id", "req-1").Error("failed to create record",
		"user_id", uint(7),
		"action", "bmi.create",
		"error", errors.New("disk full"),
		"path", "/api/bmi",
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "failed to create record", entry.Message)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "bmi.create", entry.Action)
	assert.Equal(t, "disk full", entry.Error)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "/api/bmi", extra["path"])
}

func TestDBHandlerFlushesFullBatch(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreDB)

	db := dbtest.Open(t)
	h := newDBHandler(db, time.Hour)
	defer h.Stop()
	logger := slog.New(h)

	for i := 0; i < batchSize; i++ {
		logger.Error("boom", "n", i)
	}

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == batchSize
	}, 5*time.Second, 20*time.Millisecond)
}

func TestDBHandlerDropsAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreDB)

	db := dbtest.Open(t)
	h := newDBHandler(db, time.Hour)
	h.Stop()
	h.Stop()

	slog.New(h).Error("late")

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDBHandlerGroupsGoToExtra(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreDB)

	db := dbtest.Open(t)
	h := newDBHandler(db, time.Hour)
	slog.New(h).WithGroup("req").Error("grouped", "action", "ignored")
	h.Stop()

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Empty(t, entry.Action)

	var extra map[string]any
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "ignored", extra["req.action"])
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreDB)

	db := dbtest.Open(t)
	dbh := newDBHandler(db, time.Hour)
	var buf bytes.Buffer
	logger := slog.New(NewMultiHandler(NewJSONHandler(&buf, slog.LevelInfo), dbh))

	logger.Debug("dropped everywhere")
	logger.Info("stdout only")
	logger.Error("both")
	dbh.Stop()

	assert.NotContains(t, buf.String(), "dropped everywhere")
	assert.Contains(t, buf.String(), "stdout only")
	assert.Contains(t, buf.String(), `"msg":"both"`)

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "both", logs[0].Message)
}
