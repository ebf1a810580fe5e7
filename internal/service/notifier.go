package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type EventKind string

const (
	EventRoundStarted EventKind = "round:started"
	EventMoveApplied  EventKind = "move:applied"
	EventRoundOver    EventKind = "round:over"
)

// Event is a snapshot of a session taken right after a state change.
type Event struct {
	Kind       EventKind         `json:"kind"`
	SessionID  string            `json:"session_id"`
	Round      int               `json:"round"`
	State      entity.State      `json:"state"`
	Difficulty entity.Difficulty `json:"difficulty"`
	Actor      entity.Mark       `json:"actor,omitempty"`
	Move       *entity.Coord     `json:"move,omitempty"`
	Board      entity.Board      `json:"board"`
	Outcome    entity.Outcome    `json:"outcome"`
}

func newEvent(kind EventKind, session *entity.Session) Event {
	return Event{
		Kind:       kind,
		SessionID:  session.ID,
		Round:      session.Round,
		State:      session.State(),
		Difficulty: session.Difficulty,
		Board:      session.Board,
		Outcome:    session.Outcome,
	}
}

// Notifier receives session state changes, e.g. for a presentation layer.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Notifiers fans an event out to every notifier and joins their errors.
type Notifiers []Notifier

func (that Notifiers) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, notifier := range that {
		if err := notifier.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "events")}
}

func (that *LogNotifier) Notify(ctx context.Context, event Event) error {
	attrs := []any{
		"kind", event.Kind,
		"sessionID", event.SessionID,
		"round", event.Round,
		"state", event.State,
	}

	if event.Move != nil {
		attrs = append(attrs, "actor", event.Actor, "move", event.Move.String())
	}

	if event.Outcome.IsTerminal() {
		attrs = append(attrs, "outcome", event.Outcome.Status, "winner", event.Outcome.Winner)
	}

	that.logger.DebugContext(ctx, "session event", attrs...)

	return nil
}
