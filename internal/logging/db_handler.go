package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	flushInterval = 5 * time.Second
	batchSize     = 50
)

// DBHandler is an slog.Handler that batches ERROR+ logs into system_logs.
type DBHandler struct {
	*sink
	attrs []slog.Attr
	group string
}

type sink struct {
	db       *gorm.DB
	fallback *slog.Logger
	interval time.Duration

	mu      sync.Mutex
	buffer  []models.SystemLog
	stopped bool

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	return newDBHandler(db, flushInterval)
}

func newDBHandler(db *gorm.DB, interval time.Duration) *DBHandler {
	s := &sink{
		db:       db,
		fallback: slog.New(slog.NewJSONHandler(os.Stderr, nil)),
		interval: interval,
		buffer:   make([]models.SystemLog, 0, batchSize),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.wg.Add(1)
	go s.flushLoop()
	return &DBHandler{sink: s}
}

func (s *sink) flushLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-s.kick:
			s.flush()
		case <-s.done:
			s.flush()
			return
		}
	}
}

func (s *sink) flush() {
	s.mu.Lock()
	if len(s.buffer) == 0 {
		s.mu.Unlock()
		return
	}
	batch := s.buffer
	s.buffer = make([]models.SystemLog, 0, batchSize)
	s.mu.Unlock()

	// Failures go to stderr; logging them through slog would feed them back here.
	if err := s.db.CreateInBatches(batch, batchSize).Error; err != nil {
		s.fallback.Error("failed to flush system logs to DB", "error", err, "count", len(batch))
	}
}

// Stop flushes what is buffered and waits for the flush loop to exit.
// Records handled after Stop are dropped.
func (s *sink) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.done)
	})
	s.wg.Wait()
}

// Enabled only handles ERROR and above.
func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time.UTC(),
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]any)
	for _, a := range h.attrs {
		apply(&entry, extra, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		apply(&entry, extra, h.qualify(a))
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return nil
	}
	h.buffer = append(h.buffer, entry)
	full := len(h.buffer) >= batchSize
	h.mu.Unlock()

	if full {
		select {
		case h.kick <- struct{}{}:
		default:
		}
	}
	return nil
}

// qualify prefixes the key with the open group, so grouped attrs land in Extra.
func (h *DBHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func apply(entry *models.SystemLog, extra map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	switch a.Key {
	case "user_id":
		if id, ok := userID(a.Value); ok {
			entry.UserID = &id
		}
	case "request_id":
		entry.RequestID = a.Value.String()
	case "action":
		entry.Action = a.Value.String()
	case "error":
		entry.Error = a.Value.String()
	default:
		extra[a.Key] = a.Value.Any()
	}
}

func userID(v slog.Value) (uint, bool) {
	switch v.Kind() {
	case slog.KindUint64:
		return uint(v.Uint64()), v.Uint64() > 0
	case slog.KindInt64:
		return uint(v.Int64()), v.Int64() > 0
	}
	return 0, false
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, h.qualify(a))
	}
	return &next
}

func (h *DBHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}
