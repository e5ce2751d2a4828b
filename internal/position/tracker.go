package position

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// State is the tracker's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Tracker owns position state for one consumer. It moves
// idle → loading → {resolved, failed}, re-entering loading on each new
// request. Every dispatch carries a request token; a result whose token is
// stale by the time it resolves is discarded, so the newest request always
// wins in display terms.
//
// At most one watch is active per tracker; its handle is released on Stop,
// Reset, Close, and when a new watch replaces it.
type Tracker struct {
	source Source

	mu        sync.Mutex
	state     State
	position  *models.Position
	lastErr   *Error
	token     uint64
	watchStop func()
}

// NewTracker creates a tracker over the given source. A nil source is
// allowed; every request then fails synchronously as unavailable.
func NewTracker(source Source) *Tracker {
	return &Tracker{source: source, state: StateIdle}
}

// GetCurrentPosition requests a single fix.
func (t *Tracker) GetCurrentPosition(ctx context.Context) (*models.Position, error) {
	token, err := t.beginRequest()
	if err != nil {
		return nil, err
	}

	pos, srcErr := t.source.CurrentPosition(ctx)
	if srcErr != nil {
		posErr := classify(srcErr)
		t.commitFailure(token, posErr)
		return nil, posErr
	}

	t.commitPosition(token, pos)
	return &pos, nil
}

// StartWatching begins continuous updates. Any previous watch is released
// first.
func (t *Tracker) StartWatching(ctx context.Context) error {
	token, err := t.beginRequest()
	if err != nil {
		return err
	}

	updates, release, srcErr := t.source.Watch(ctx)
	if srcErr != nil {
		posErr := classify(srcErr)
		t.commitFailure(token, posErr)
		return posErr
	}

	t.mu.Lock()
	if t.watchStop != nil {
		t.watchStop()
	}
	t.watchStop = release
	t.mu.Unlock()

	go func() {
		for pos := range updates {
			t.commitPosition(token, pos)
		}
	}()

	return nil
}

// StopWatching releases the active watch handle, if any.
func (t *Tracker) StopWatching() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releaseWatchLocked()
}

// ClearError clears a transient failure, returning to idle if failed.
func (t *Tracker) ClearError() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastErr = nil
	if t.state == StateFailed {
		t.state = StateIdle
	}
}

// Reset releases any watch and returns the tracker to its initial state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.releaseWatchLocked()
	t.token++ // invalidate in-flight results
	t.state = StateIdle
	t.position = nil
	t.lastErr = nil
}

// Close releases held resources. The tracker must not be used afterwards.
func (t *Tracker) Close() {
	t.Reset()
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Position returns the last resolved position, or nil.
func (t *Tracker) Position() *models.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

// Err returns the last failure, or nil.
func (t *Tracker) Err() *Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Watching reports whether a watch handle is held.
func (t *Tracker) Watching() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.watchStop != nil
}

// beginRequest transitions to loading and hands out a fresh token. With no
// source the tracker fails synchronously rather than hang in loading.
func (t *Tracker) beginRequest() (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.source == nil {
		t.state = StateFailed
		t.lastErr = NewError(ErrorUnavailable, nil)
		return 0, t.lastErr
	}

	t.token++
	t.state = StateLoading
	t.lastErr = nil
	return t.token, nil
}

func (t *Tracker) commitPosition(token uint64, pos models.Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token != t.token {
		log.Debug().Uint64("token", token).Msg("Discarding stale position result")
		return
	}

	p := pos
	t.position = &p
	t.state = StateResolved
	t.lastErr = nil
}

func (t *Tracker) commitFailure(token uint64, posErr *Error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token != t.token {
		log.Debug().Uint64("token", token).Msg("Discarding stale position failure")
		return
	}

	t.state = StateFailed
	t.lastErr = posErr
}

// releaseWatchLocked releases the watch handle. Caller holds t.mu.
func (t *Tracker) releaseWatchLocked() {
	if t.watchStop != nil {
		t.watchStop()
		t.watchStop = nil
	}
}

func classify(err error) *Error {
	var posErr *Error
	if errors.As(err, &posErr) {
		return posErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrorTimeout, err)
	}
	return NewError(ErrorGeneric, err)
}
