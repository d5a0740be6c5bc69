// Package game is the pong simulation: one ball, a paddle on the left moved
// by the player and a paddle on the right moved by the computer.
//
// All positions are the top-left corner of the object. Positions and
// velocities are 16 bit signed values.
package game

import (
	"fmt"

	"github.com/jetsetilly/pong13h/hardware/spec"
	"github.com/jetsetilly/pong13h/random"
)

// dimensions of the objects in pixels
const (
	BallSize     = 3
	PaddleWidth  = 5
	PaddleHeight = 20
)

// paddles move by PaddleSpeed pixels per keypress or per frame for the
// computer. they may not get closer than PaddleBorder to the top or bottom of
// the screen
const (
	PaddleSpeed  = 2
	PaddleBorder = 5
)

// MaxScore is the score that ends a game
const MaxScore = 3

// colours in the default palette
const (
	ColourBackground = 0
	ColourPaddle     = 14
	ColourBall       = 15
	ColourScore      = 15
)

// score tick geometry
const (
	scoreWidth   = 1
	scoreHeight  = 10
	scoreSpacing = 2
	scoreTop     = 5
)

// Point is a position or a velocity
type Point struct {
	X int16
	Y int16
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// State of the game. The zero value is not ready to use. Use NewState()
type State struct {
	Ball        Point
	BallSpeed   Point
	PaddleLeft  Point
	PaddleRight Point
	ScoreLeft   uint8
	ScoreRight  uint8

	rng *random.LCG
}

// NewState creates a game State that draws its random numbers from rng. The
// state is undefined until NewGame() is called
func NewState(rng *random.LCG) *State {
	return &State{rng: rng}
}

func (s *State) String() string {
	return fmt.Sprintf("ball %s speed %s paddles %s %s score %d-%d",
		s.Ball, s.BallSpeed, s.PaddleLeft, s.PaddleRight, s.ScoreLeft, s.ScoreRight)
}

// NewRound puts the ball in the centre of the screen with a random diagonal
// velocity. Paddles and scores are unchanged
func (s *State) NewRound() {
	s.Ball = Point{X: spec.ScreenWidth / 2, Y: spec.ScreenHeight / 2}
	s.BallSpeed = Point{X: s.rng.Sign(), Y: s.rng.Sign()}
}

// NewGame starts a new round and resets the paddles and scores
func (s *State) NewGame() {
	s.NewRound()
	s.PaddleLeft = Point{X: 50, Y: spec.ScreenHeight / 2}
	s.PaddleRight = Point{X: spec.ScreenWidth - 50, Y: spec.ScreenHeight / 2}
	s.ScoreLeft = 0
	s.ScoreRight = 0
}

// GameOver returns true if either score has reached MaxScore
func (s *State) GameOver() bool {
	return s.ScoreLeft >= MaxScore || s.ScoreRight >= MaxScore
}

// sign returns -1 for negative values and +1 otherwise, including for zero
func sign(v int16) int16 {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// RandomiseBallSpeed changes the ball to a steep or a shallow angle, keeping
// the direction of travel on both axes
func (s *State) RandomiseBallSpeed() {
	if s.rng.CoinFlip() {
		s.BallSpeed.X = sign(s.BallSpeed.X) * 1
		s.BallSpeed.Y = sign(s.BallSpeed.Y) * 2
	} else {
		s.BallSpeed.X = sign(s.BallSpeed.X) * 2
		s.BallSpeed.Y = sign(s.BallSpeed.Y) * 1
	}
}

// overlaps returns true if the ball intersects the paddle at p
func (s *State) overlaps(p Point) bool {
	return s.Ball.X < p.X+PaddleWidth && s.Ball.X+BallSize > p.X &&
		s.Ball.Y < p.Y+PaddleHeight && s.Ball.Y+BallSize > p.Y
}

// MoveBall advances the ball by one frame. Returns false if the ball has left
// the screen, in which case the appropriate score has been incremented and
// the round is over
func (s *State) MoveBall() bool {
	s.Ball = s.Ball.Add(s.BallSpeed)

	if s.Ball.X <= 0 {
		s.ScoreRight++
		return false
	}
	if s.Ball.X >= spec.ScreenWidth-BallSize {
		s.ScoreLeft++
		return false
	}

	// top and bottom of the screen
	if s.Ball.Y <= 0 {
		s.Ball.Y = 0
		s.RandomiseBallSpeed()
		s.BallSpeed.Y = -s.BallSpeed.Y
	}
	if s.Ball.Y >= spec.ScreenHeight-BallSize {
		s.Ball.Y = spec.ScreenHeight - BallSize
		s.RandomiseBallSpeed()
		s.BallSpeed.Y = -s.BallSpeed.Y
	}

	// paddles. the ball isn't moved out of the paddle so it may hit the same
	// paddle on consecutive frames
	if s.overlaps(s.PaddleLeft) {
		s.RandomiseBallSpeed()
		s.BallSpeed.X = abs(s.BallSpeed.X)
	}
	if s.overlaps(s.PaddleRight) {
		s.RandomiseBallSpeed()
		s.BallSpeed.X = -abs(s.BallSpeed.X)
	}

	return true
}

// Key implements the input.Receiver interface. 'w' moves the left paddle up
// and 's' moves it down. Other keys are ignored
func (s *State) Key(ascii uint8) {
	switch ascii {
	case 'w':
		if s.PaddleLeft.Y > PaddleBorder {
			s.PaddleLeft.Y -= PaddleSpeed
		}
	case 's':
		if s.PaddleLeft.Y < spec.ScreenHeight-PaddleHeight-PaddleBorder {
			s.PaddleLeft.Y += PaddleSpeed
		}
	}
}

// MoveAI moves the right paddle towards the point where the ball will cross
// the paddle's column, assuming no bounces on the way
func (s *State) MoveAI() {
	if s.BallSpeed.X == 0 {
		panic(fmt.Sprintf("game: ball has no horizontal speed: %s", s))
	}

	dx := int(s.PaddleRight.X) - int(s.Ball.X)
	y := int16(int(s.Ball.Y) + int(s.BallSpeed.Y)*dx/int(s.BallSpeed.X))
	centre := s.PaddleRight.Y + PaddleHeight/2

	if y < centre && s.PaddleRight.Y > PaddleBorder {
		s.PaddleRight.Y -= PaddleSpeed
	}
	// the paddle may have moved so the second check uses the new centre
	centre = s.PaddleRight.Y + PaddleHeight/2
	if y > centre && s.PaddleRight.Y < spec.ScreenHeight-PaddleHeight-PaddleBorder {
		s.PaddleRight.Y += PaddleSpeed
	}
}

// Drawer is the subset of display.Display needed to draw the game
type Drawer interface {
	ClearScreen(colour uint8)
	FillArea(x int16, y int16, width uint16, height uint16, colour uint8)
}

// Draw the current state. The whole screen is redrawn
func (s *State) Draw(d Drawer) {
	d.ClearScreen(ColourBackground)
	d.FillArea(s.PaddleLeft.X, s.PaddleLeft.Y, PaddleWidth, PaddleHeight, ColourPaddle)
	d.FillArea(s.PaddleRight.X, s.PaddleRight.Y, PaddleWidth, PaddleHeight, ColourPaddle)
	d.FillArea(s.Ball.X, s.Ball.Y, BallSize, BallSize, ColourBall)

	for i := range int16(s.ScoreLeft) {
		d.FillArea(scoreSpacing+i*(scoreSpacing+scoreWidth), scoreTop, scoreWidth, scoreHeight, ColourScore)
	}
	for i := range int16(s.ScoreRight) {
		d.FillArea(spec.ScreenWidth-(i+1)*(scoreSpacing+scoreWidth), scoreTop, scoreWidth, scoreHeight, ColourScore)
	}
}
