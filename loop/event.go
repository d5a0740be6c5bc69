package loop

import (
	"fmt"

	"github.com/jetsetilly/pong13h/game"
)

type EventKind int

const (
	// a frame has been presented
	EventFrame EventKind = iota

	// a round has ended and the game continues
	EventRoundOver

	// a round has ended and one side has reached the maximum score
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventFrame:
		return "frame"
	case EventRoundOver:
		return "round over"
	case EventGameOver:
		return "game over"
	}
	return "unknown"
}

// Event is passed to the hook function set with SetHook()
type Event struct {
	Kind  EventKind
	Frame uint64
	State State

	Ball        game.Point
	BallSpeed   game.Point
	PaddleLeft  game.Point
	PaddleRight game.Point
	ScoreLeft   uint8
	ScoreRight  uint8
}

func newEvent(kind EventKind, l *Loop) Event {
	return Event{
		Kind:        kind,
		Frame:       l.frame,
		State:       l.state,
		Ball:        l.game.Ball,
		BallSpeed:   l.game.BallSpeed,
		PaddleLeft:  l.game.PaddleLeft,
		PaddleRight: l.game.PaddleRight,
		ScoreLeft:   l.game.ScoreLeft,
		ScoreRight:  l.game.ScoreRight,
	}
}

func (e Event) String() string {
	switch e.Kind {
	case EventRoundOver, EventGameOver:
		return fmt.Sprintf("%s at frame %d: %d-%d", e.Kind, e.Frame, e.ScoreLeft, e.ScoreRight)
	}
	return fmt.Sprintf("frame %d: ball %s speed %s paddles %s %s", e.Frame, e.Ball, e.BallSpeed, e.PaddleLeft, e.PaddleRight)
}

// Winner returns "left" or "right" for EventGameOver events and the empty
// string otherwise
func (e Event) Winner() string {
	if e.Kind != EventGameOver {
		return ""
	}
	if e.ScoreLeft > e.ScoreRight {
		return "left"
	}
	return "right"
}
