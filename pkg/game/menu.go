package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// Round exit conditions. Resolved at the session boundary; nothing outside
// the session task ever observes them.
var (
	errRoundTimeout   = errors.New("round timed out waiting for a selection")
	errDeliveryFailed = errors.New("message delivery failed")
	errCloseRequested = errors.New("session close requested")
)

// controlMsg is what a session receives on its control channel: either a
// forwarded selection event or a close request.
type controlMsg struct {
	event Event
	close bool
}

// menuOption is one rendered choice and its disabled state.
type menuOption struct {
	id       string
	label    string
	disabled bool
}

// menu owns one round: the rendered options, the answer, and the loop that
// consumes selection events until the correct option is chosen.
type menu struct {
	id      string
	prompt  string
	options []menuOption
	answer  int
	entry   *dictionary.Entry
	channel ChannelID
	ref     MessageRef
	msgr    Messenger
	rng     *rand.Rand
}

func newMenu(id string, q *Question, entry *dictionary.Entry, ch ChannelID, msgr Messenger, rng *rand.Rand) *menu {
	options := make([]menuOption, len(q.Options))
	for i, label := range q.Options {
		options[i] = menuOption{id: fmt.Sprintf("%s,%d", id, i), label: label}
	}
	return &menu{
		id:      id,
		prompt:  q.Prompt,
		options: options,
		answer:  q.Answer,
		entry:   entry,
		channel: ch,
		msgr:    msgr,
		rng:     rng,
	}
}

func (m *menu) answerID() string {
	return m.options[m.answer].id
}

// components renders the current option states for Send/Edit.
func (m *menu) components() []Option {
	opts := make([]Option, len(m.options))
	for i, o := range m.options {
		opts[i] = Option{ID: o.id, Label: o.label, Disabled: o.disabled}
	}
	return opts
}

// run consumes control messages until the correct option is chosen. A wrong
// selection disables only the chosen option; the correct one disables all of
// them and ends the round. Events carrying a different round id are stale
// and dropped. Returns the number of wrong guesses made.
func (m *menu) run(ctx context.Context, msgs <-chan controlMsg, timeout time.Duration) (int, error) {
	wrong := 0
	for {
		ev, err := nextEvent(msgs, timeout)
		if err != nil {
			return wrong, err
		}

		menuID, choice, ok := parseOptionID(ev.ID)
		if !ok || menuID != m.id || choice >= len(m.options) {
			continue
		}

		correct := m.options[choice].id == m.answerID()
		if correct {
			for i := range m.options {
				m.options[i].disabled = true
			}
		} else {
			m.options[choice].disabled = true
			wrong++
		}

		if err := m.msgr.Edit(ctx, m.channel, m.ref, m.components()); err != nil {
			return wrong, errDeliveryFailed
		}

		var reply string
		if correct {
			reply = m.revealMessage(ev.User)
		} else {
			reply = tauntMessage(m.rng, ev.User, m.options[choice].label)
		}
		if err := m.msgr.Respond(ctx, ev, reply); err != nil {
			return wrong, errDeliveryFailed
		}

		if correct {
			return wrong, nil
		}
	}
}

// revealMessage decorates the answer with its JLPT levels and a dictionary
// link, crediting the user who got it.
func (m *menu) revealMessage(user string) string {
	answer := m.options[m.answer].label
	return fmt.Sprintf("正解! %s %v\nhttps://jisho.org/search/%s — %s", answer, m.entry.Levels(), answer, user)
}

// nextEvent waits for the next control message, bounding the wait by the
// round timeout. The timeout is the only automatic cancellation a session has.
func nextEvent(msgs <-chan controlMsg, timeout time.Duration) (Event, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case msg, ok := <-msgs:
		if !ok || msg.close {
			return Event{}, errCloseRequested
		}
		return msg.event, nil
	case <-t.C:
		return Event{}, errRoundTimeout
	}
}

var optionIDRe = regexp.MustCompile(`^(.*),([0-4])$`)

// parseOptionID splits a component id into its round id and choice index.
func parseOptionID(id string) (menuID string, choice int, ok bool) {
	match := optionIDRe.FindStringSubmatch(id)
	if match == nil {
		return "", 0, false
	}
	choice, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, false
	}
	return match[1], choice, true
}
