// Package loop runs the game. A game is a series of rounds and a round is a
// series of frames. A new game starts as soon as the previous one ends.
//
// Each frame the loop moves the ball, drains the keyboard, moves the computer
// paddle, draws, presents the frame during the vertical retrace and then
// waits. The loop is the only goroutine that touches the game state and the
// off-screen buffer.
package loop

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/pong13h/display"
	"github.com/jetsetilly/pong13h/game"
	"github.com/jetsetilly/pong13h/hardware/firmware"
	"github.com/jetsetilly/pong13h/hardware/memory"
	"github.com/jetsetilly/pong13h/input"
	"github.com/jetsetilly/pong13h/random"
	"github.com/jetsetilly/pong13h/timing"
)

// ErrStop can be returned by a hook function to end Run() in the same way as
// the stop channel
var ErrStop = errors.New("stop")

// FrameDelay is the wait at the end of every frame in milliseconds
const FrameDelay = 25

// State of the loop
type State int

const (
	GameInit State = iota
	RoundPlay
	RoundEnd
	GameEnd
)

func (s State) String() string {
	switch s {
	case GameInit:
		return "game init"
	case RoundPlay:
		return "round play"
	case RoundEnd:
		return "round end"
	case GameEnd:
		return "game end"
	}
	return "unknown"
}

// Machine is the part of the machine needed by the loop
type Machine interface {
	firmware.Firmware
	firmware.Ports
}

type Loop struct {
	fw      firmware.Firmware
	display *display.Display
	input   *input.Service
	game    *game.State

	state State
	frame uint64

	hook func(Event) error
}

// NewLoop creates a loop that will draw into mem and take its random numbers
// from rng. The loop starts in the GameInit state and does nothing until
// Step() or Run() is called
func NewLoop(m Machine, mem *memory.Memory, rng *random.LCG) *Loop {
	return &Loop{
		fw:      m,
		display: display.NewDisplay(m, m, mem),
		input:   input.NewService(m),
		game:    game.NewState(rng),
		state:   GameInit,
	}
}

// SetHook sets a function to be called on every event. An error returned by
// the hook stops the loop. Returning ErrStop is not considered a failure
func (l *Loop) SetHook(hook func(Event) error) {
	l.hook = hook
}

func (l *Loop) State() State {
	return l.state
}

// Frame returns the number of frames presented
func (l *Loop) Frame() uint64 {
	return l.frame
}

func (l *Loop) Game() *game.State {
	return l.game
}

func (l *Loop) Display() *display.Display {
	return l.display
}

func (l *Loop) event(kind EventKind) error {
	if l.hook == nil {
		return nil
	}
	return l.hook(newEvent(kind, l))
}

// Step advances the loop by exactly one presented frame. Rounds and games
// that end along the way are started again before the frame
func (l *Loop) Step() error {
	for {
		switch l.state {
		case GameInit:
			if !l.display.Graphics() {
				l.display.EnterGraphics()
			}
			l.game.NewGame()
			l.state = RoundPlay

		case RoundPlay:
			if !l.game.MoveBall() {
				l.state = RoundEnd
				continue
			}
			l.input.ProcessKeyInput(l.game)
			l.game.MoveAI()
			l.game.Draw(l.display)
			l.display.Present()
			timing.WaitMillis(l.fw, FrameDelay)
			l.frame++
			return l.event(EventFrame)

		case RoundEnd:
			// the ball is reset even if the game is over. this keeps the
			// sequence of random numbers the same as a game played without
			// interruption
			l.game.NewRound()
			if l.game.GameOver() {
				l.state = GameEnd
				if err := l.event(EventGameOver); err != nil {
					return err
				}
			} else {
				l.state = RoundPlay
				if err := l.event(EventRoundOver); err != nil {
					return err
				}
			}

		case GameEnd:
			l.state = GameInit

		default:
			panic(fmt.Sprintf("loop: unknown state: %d", l.state))
		}
	}
}

// Run the game until stop is signalled. The stop channel is checked once per
// frame. On return the display is back in text mode and the program has been
// terminated
func (l *Loop) Run(stop <-chan bool) error {
	for {
		select {
		case <-stop:
			l.display.EnterText()
			l.fw.Terminate(0)
			return nil
		default:
		}

		if err := l.Step(); err != nil {
			l.display.EnterText()
			if errors.Is(err, ErrStop) {
				l.fw.Terminate(0)
				return nil
			}
			l.fw.Terminate(1)
			return fmt.Errorf("loop: %w", err)
		}
	}
}
