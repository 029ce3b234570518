package learning

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lendora/loanflow/pkg/logging"
)

// Store is the learning persistence consumed by the recorder.
type Store interface {
	PushRecord(ctx context.Context, record Record) error
	IncrementCounter(ctx context.Context, key string) error
}

// Recorder hands learning records to background workers over a buffered
// channel. Enqueueing never blocks the response path: when the buffer is
// full the record is dropped and counted. Store failures are logged and
// never surface to callers.
type Recorder struct {
	store  Store
	ch     chan Record
	logger *logging.Logger
	wg     sync.WaitGroup

	mu      sync.Mutex
	dropped int64

	// onDrop, when set, is invoked for every dropped record (metrics hook).
	onDrop func()
}

// NewRecorder creates a recorder and starts its workers.
func NewRecorder(store Store, buffer, workers int, logger *logging.Logger) *Recorder {
	if buffer <= 0 {
		buffer = 256
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	r := &Recorder{
		store:  store,
		ch:     make(chan Record, buffer),
		logger: logger,
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

// SetDropHook registers a callback invoked on every dropped record. Call
// before the recorder sees traffic.
func (r *Recorder) SetDropHook(fn func()) {
	r.onDrop = fn
}

// Record enqueues a learning record without blocking. The timestamp and
// topic list are filled in here so callers only supply turn data.
func (r *Recorder) Record(rec Record) {
	if r == nil || r.store == nil {
		return
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if rec.Topics == nil {
		rec.Topics = TopicsFor(rec.Input)
	}

	select {
	case r.ch <- rec:
	default:
		r.mu.Lock()
		r.dropped++
		r.mu.Unlock()
		if r.onDrop != nil {
			r.onDrop()
		}
		r.logger.Warn("learning record dropped, buffer full", "session_id", rec.SessionID)
	}
}

// Dropped returns how many records were discarded because the buffer was
// full.
func (r *Recorder) Dropped() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close stops accepting records and waits for the workers to drain.
func (r *Recorder) Close() {
	close(r.ch)
	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for rec := range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		r.persist(ctx, rec)
		cancel()
	}
}

func (r *Recorder) persist(ctx context.Context, rec Record) {
	if err := r.store.PushRecord(ctx, rec); err != nil {
		r.logger.Warn("learning record push failed", "error", err, "session_id", rec.SessionID)
	}

	for _, topic := range rec.Topics {
		if err := r.store.IncrementCounter(ctx, "topics:"+topic); err != nil {
			r.logger.Warn("topic counter failed", "error", err, "topic", topic)
		}
	}

	if rec.AnyExtracted() {
		day := rec.Timestamp.Format("2006-01-02")
		if err := r.store.IncrementCounter(ctx, fmt.Sprintf("extractions:%s", day)); err != nil {
			r.logger.Warn("extraction counter failed", "error", err)
		}
	}
}
