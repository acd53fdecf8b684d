package game

import "context"

// ChannelID identifies the conversation a session posts into. Opaque to the
// engine; the platform adapter decides what it means.
type ChannelID string

// MessageRef is a handle to a previously sent message, used for edits.
type MessageRef string

// Option is one selectable choice rendered with a question.
type Option struct {
	// ID is unique for the lifetime of the process: "<key>,<uuid>,<index>".
	ID       string
	Label    string
	Disabled bool
}

// Event is an inbound selection. ID is the opaque identifier of the chosen
// option component; the session key and choice index are encoded in it.
type Event struct {
	ID   string
	User string
}

// Messenger is the platform surface the engine needs: post a message with
// choices, update its choices, reply to a selection. Implementations must be
// safe for concurrent use by independent sessions.
type Messenger interface {
	Send(ctx context.Context, ch ChannelID, content string, opts []Option) (MessageRef, error)
	Edit(ctx context.Context, ch ChannelID, ref MessageRef, opts []Option) error
	Respond(ctx context.Context, ev Event, content string) error
}
