package game

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// Key identifies who a session belongs to: the initiating user's id, or the
// guild id when the quiz runs guild-wide. At most one session per key.
type Key uint64

// ErrSessionExists is returned by Start when the key already has a live
// session. Callers inform the user and take no further action.
var ErrSessionExists = errors.New("a session is already running for this key")

// DefaultRoundTimeout is how long a round waits for a selection before the
// session aborts from inactivity.
const DefaultRoundTimeout = 120 * time.Second

// controlBuffer bounds each session's control channel. Dispatch and Stop
// never block on a slow session; messages past the buffer are dropped.
const controlBuffer = 10

// Recorder receives resolved rounds. Implementations must tolerate
// concurrent calls from independent sessions.
type Recorder interface {
	RecordRound(key Key, entry *dictionary.Entry, mode Mode, wrongGuesses int) error
}

// Manager tracks all live quiz sessions and routes inbound selection events
// to them. Safe for concurrent use.
type Manager struct {
	lex  *dictionary.Lexicon
	msgr Messenger

	// RoundTimeout overrides DefaultRoundTimeout when non-zero.
	RoundTimeout time.Duration
	// Recorder, when set, is notified of every resolved round. Optional.
	Recorder Recorder
	// Logger receives operational messages. nil means no logging.
	Logger *log.Logger

	// sessions maps Key to the session's control channel (chan controlMsg).
	sessions sync.Map
}

// NewManager creates a manager over the shared lexicon and messenger.
func NewManager(lex *dictionary.Lexicon, msgr Messenger) *Manager {
	return &Manager{lex: lex, msgr: msgr}
}

// Start samples a word pool for the given levels and tags and spawns a
// session goroutine walking through it round by round. Returns immediately.
// Fails with ErrSessionExists if key already has a live session.
func (m *Manager) Start(ctx context.Context, key Key, ch ChannelID, mode Mode, levels []dictionary.Level, pos []dictionary.Pos) error {
	return m.start(ctx, &session{
		key:     key,
		channel: ch,
		mode:    mode,
		levels:  levels,
		pos:     pos,
	})
}

// StartPool is Start with a caller-supplied entry pool (e.g. one harvested
// from an article) instead of a lexicon sample. The pool is shuffled.
func (m *Manager) StartPool(ctx context.Context, key Key, ch ChannelID, mode Mode, pool []*dictionary.Entry, pos []dictionary.Pos) error {
	return m.start(ctx, &session{
		key:     key,
		channel: ch,
		mode:    mode,
		pool:    pool,
		pos:     pos,
	})
}

func (m *Manager) start(ctx context.Context, s *session) error {
	s.mgr = m
	s.msgs = make(chan controlMsg, controlBuffer)
	// The session shuffles its tag list in place; keep the caller's copy.
	s.pos = append([]dictionary.Pos(nil), s.pos...)
	s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(s.key)))

	// LoadOrStore keeps the existence check and the registration atomic;
	// two concurrent Starts for one key cannot both win.
	if _, loaded := m.sessions.LoadOrStore(s.key, s.msgs); loaded {
		return ErrSessionExists
	}

	go s.run(ctx)
	return nil
}

// Stop sends a close signal to key's session if one is live. Advisory: the
// session observes it at its next control-channel poll. Returns whether a
// session was signaled. Never blocks.
func (m *Manager) Stop(key Key) bool {
	v, ok := m.sessions.Load(key)
	if !ok {
		return false
	}
	select {
	case v.(chan controlMsg) <- controlMsg{close: true}:
	default:
	}
	return true
}

// Active reports whether key currently has a live session.
func (m *Manager) Active(key Key) bool {
	_, ok := m.sessions.Load(key)
	return ok
}

// Dispatch routes an inbound selection event to the session whose key is
// encoded in the event id. Best-effort: events for unknown keys, and events
// that would block a full control channel, are dropped silently. Runs on the
// platform's event loop and must never wait on a session.
func (m *Manager) Dispatch(ev Event) {
	key, ok := parseKey(ev.ID)
	if !ok {
		return
	}
	v, ok := m.sessions.Load(key)
	if !ok {
		return
	}
	select {
	case v.(chan controlMsg) <- controlMsg{event: ev}:
	default:
	}
}

func (m *Manager) roundTimeout() time.Duration {
	if m.RoundTimeout > 0 {
		return m.RoundTimeout
	}
	return DefaultRoundTimeout
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}

var keyRe = regexp.MustCompile(`^\d+`)

// parseKey extracts the session key from a component id's leading digit run.
func parseKey(id string) (Key, bool) {
	digits := keyRe.FindString(id)
	if digits == "" {
		return 0, false
	}
	key, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return Key(key), true
}
