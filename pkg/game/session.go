package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/japaniel/kotoba/pkg/dictionary"
)

// session is one quiz run: a pool of entries played round by round on its
// own goroutine. The goroutine exclusively owns all mutable session state;
// the outside world reaches it only through the control channel.
type session struct {
	key     Key
	channel ChannelID
	mode    Mode
	levels  []dictionary.Level
	pos     []dictionary.Pos
	// pool, when non-nil, replaces lexicon sampling (harvested pools).
	pool []*dictionary.Entry

	msgs chan controlMsg
	rng  *rand.Rand
	mgr  *Manager
}

// run walks the pool. For each entry it tries the allowed part-of-speech
// tags in shuffled order until one yields a question, renders the round, and
// blocks until the round resolves. Any exit path deregisters the session and,
// except after an explicit close, posts a final status message.
func (s *session) run(ctx context.Context) {
	defer s.mgr.sessions.Delete(s.key)

	pool := s.pool
	if pool == nil {
		pool = s.mgr.lex.Sample(s.rng, s.levels, s.pos)
	} else {
		pool = append([]*dictionary.Entry(nil), pool...)
		s.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	var exitErr error

	for round, entry := range pool {
		s.rng.Shuffle(len(s.pos), func(i, j int) {
			s.pos[i], s.pos[j] = s.pos[j], s.pos[i]
		})

		var q *Question
		for _, p := range s.pos {
			if q = NewQuestion(s.rng, entry, s.mode, p, s.mgr.lex); q != nil {
				break
			}
		}
		if q == nil {
			// No tag yields a question for this entry; skip it.
			continue
		}

		// Unique across the process lifetime: key plus a random 128-bit id.
		menuID := fmt.Sprintf("%d,%s", s.key, uuid.NewString())
		mn := newMenu(menuID, q, entry, s.channel, s.mgr.msgr, s.rng)

		content := fmt.Sprintf("Round %d\nId: %d\nPrompt: %s", round, entry.ID, q.Prompt)
		ref, err := s.mgr.msgr.Send(ctx, s.channel, content, mn.components())
		if err != nil {
			exitErr = errDeliveryFailed
			break
		}
		mn.ref = ref

		wrong, err := mn.run(ctx, s.msgs, s.mgr.roundTimeout())
		if err != nil {
			exitErr = err
			break
		}

		if s.mgr.Recorder != nil {
			if err := s.mgr.Recorder.RecordRound(s.key, entry, s.mode, wrong); err != nil {
				s.mgr.logf("session %d: record round: %v", s.key, err)
			}
		}
	}

	if msg := exitMessage(exitErr); msg != "" {
		// Best-effort; the session is ending either way.
		if _, err := s.mgr.msgr.Send(ctx, s.channel, msg, nil); err != nil {
			s.mgr.logf("session %d: send exit message: %v", s.key, err)
		}
	}
}

// exitMessage maps an exit condition to its user-facing status text. A close
// request ends the session silently.
func exitMessage(exitErr error) string {
	switch {
	case exitErr == nil:
		return "There are no more words left in the pool"
	case errors.Is(exitErr, errRoundTimeout):
		return "Stopping game due to inactivity..."
	case errors.Is(exitErr, errDeliveryFailed):
		return "Stopping game due to a network error..."
	default:
		return ""
	}
}
