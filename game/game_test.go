package game_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jetsetilly/pong13h/game"
	"github.com/jetsetilly/pong13h/random"
	"github.com/jetsetilly/pong13h/test"
)

func newGame(seed uint32) *game.State {
	s := game.NewState(random.NewLCG(seed))
	s.NewGame()
	return s
}

func TestNewGame(t *testing.T) {
	s := newGame(0)
	test.ExpectEquality(t, s.Ball, game.Point{X: 160, Y: 100})
	test.ExpectEquality(t, s.BallSpeed, game.Point{X: -1, Y: 1})
	test.ExpectEquality(t, s.PaddleLeft, game.Point{X: 50, Y: 100})
	test.ExpectEquality(t, s.PaddleRight, game.Point{X: 270, Y: 100})
	test.ExpectEquality(t, s.ScoreLeft, uint8(0))
	test.ExpectEquality(t, s.ScoreRight, uint8(0))
	test.ExpectFailure(t, s.GameOver())
}

func TestNewRoundKeepsScores(t *testing.T) {
	s := newGame(0)
	s.ScoreLeft = 2
	s.PaddleLeft.Y = 20
	s.Ball = game.Point{X: 3, Y: 3}
	s.NewRound()
	test.ExpectEquality(t, s.Ball, game.Point{X: 160, Y: 100})
	test.ExpectEquality(t, s.ScoreLeft, uint8(2))
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(20))
}

type snapshot struct {
	Ball        game.Point
	BallSpeed   game.Point
	PaddleLeft  game.Point
	PaddleRight game.Point
	ScoreLeft   uint8
	ScoreRight  uint8
}

func snap(s *game.State) snapshot {
	return snapshot{
		Ball:        s.Ball,
		BallSpeed:   s.BallSpeed,
		PaddleLeft:  s.PaddleLeft,
		PaddleRight: s.PaddleRight,
		ScoreLeft:   s.ScoreLeft,
		ScoreRight:  s.ScoreRight,
	}
}

func TestGoldenTrace(t *testing.T) {
	s := newGame(0)

	var got []snapshot
	for range 10 {
		test.DemandSuccess(t, s.MoveBall())
		s.MoveAI()
		got = append(got, snap(s))
	}

	var want []snapshot
	for i := range int16(10) {
		want = append(want, snapshot{
			Ball:        game.Point{X: 159 - i, Y: 101 + i},
			BallSpeed:   game.Point{X: -1, Y: 1},
			PaddleLeft:  game.Point{X: 50, Y: 100},
			PaddleRight: game.Point{X: 270, Y: 98 - i*2},
		})
	}

	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("golden trace differs: %v\n%s", diff, spew.Sdump(got))
	}
}

func TestScoring(t *testing.T) {
	s := newGame(0)

	// right edge
	s.Ball = game.Point{X: 316, Y: 50}
	s.BallSpeed = game.Point{X: 1, Y: 1}
	test.ExpectFailure(t, s.MoveBall())
	test.ExpectEquality(t, s.ScoreLeft, uint8(1))
	test.ExpectEquality(t, s.ScoreRight, uint8(0))

	// one short of the right edge
	s.Ball = game.Point{X: 315, Y: 50}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectEquality(t, s.ScoreLeft, uint8(1))

	// left edge
	s.Ball = game.Point{X: 1, Y: 50}
	s.BallSpeed = game.Point{X: -1, Y: 1}
	test.ExpectFailure(t, s.MoveBall())
	test.ExpectEquality(t, s.ScoreLeft, uint8(1))
	test.ExpectEquality(t, s.ScoreRight, uint8(1))

	// the faster speed overshoots the edge but still scores
	s.Ball = game.Point{X: 1, Y: 50}
	s.BallSpeed = game.Point{X: -2, Y: 1}
	test.ExpectFailure(t, s.MoveBall())
	test.ExpectEquality(t, s.ScoreRight, uint8(2))

	test.ExpectFailure(t, s.GameOver())
	s.ScoreRight = game.MaxScore
	test.ExpectSuccess(t, s.GameOver())
}

func TestTopBottomBounce(t *testing.T) {
	s := newGame(0)

	s.Ball = game.Point{X: 100, Y: 1}
	s.BallSpeed = game.Point{X: 1, Y: -2}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectEquality(t, s.Ball.Y, int16(0))
	test.ExpectSuccess(t, s.BallSpeed.Y > 0, s.BallSpeed)
	test.ExpectSuccess(t, s.BallSpeed.X > 0, s.BallSpeed)

	s.Ball = game.Point{X: 100, Y: 196}
	s.BallSpeed = game.Point{X: -1, Y: 2}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectEquality(t, s.Ball.Y, int16(197))
	test.ExpectSuccess(t, s.BallSpeed.Y < 0, s.BallSpeed)
	test.ExpectSuccess(t, s.BallSpeed.X < 0, s.BallSpeed)
}

func TestPaddleBounce(t *testing.T) {
	s := newGame(0)

	// moving left into the left paddle
	s.Ball = game.Point{X: 55, Y: 105}
	s.BallSpeed = game.Point{X: -1, Y: 1}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectSuccess(t, s.BallSpeed.X > 0, s.BallSpeed)
	test.ExpectSuccess(t, s.BallSpeed.Y > 0, s.BallSpeed)

	// moving right into the right paddle
	s.Ball = game.Point{X: 267, Y: 105}
	s.BallSpeed = game.Point{X: 1, Y: -1}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectSuccess(t, s.BallSpeed.X < 0, s.BallSpeed)
	test.ExpectSuccess(t, s.BallSpeed.Y < 0, s.BallSpeed)

	// just missing the bottom of the left paddle
	s.Ball = game.Point{X: 55, Y: 119}
	s.BallSpeed = game.Point{X: -1, Y: 1}
	test.ExpectSuccess(t, s.MoveBall())
	test.ExpectEquality(t, s.BallSpeed, game.Point{X: -1, Y: 1})
}

func TestRandomiseBallSpeed(t *testing.T) {
	s := newGame(99)

	for _, v := range []game.Point{
		{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
		{X: 2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: -1, Y: -2},
	} {
		for range 50 {
			s.BallSpeed = v
			s.RandomiseBallSpeed()

			ax, ay := s.BallSpeed.X, s.BallSpeed.Y
			test.ExpectEquality(t, ax > 0, v.X > 0, v)
			test.ExpectEquality(t, ay > 0, v.Y > 0, v)
			if ax < 0 {
				ax = -ax
			}
			if ay < 0 {
				ay = -ay
			}
			test.ExpectSuccess(t, (ax == 1 && ay == 2) || (ax == 2 && ay == 1), s.BallSpeed)
		}
	}

	// zero is treated as positive
	s.BallSpeed = game.Point{}
	s.RandomiseBallSpeed()
	test.ExpectSuccess(t, s.BallSpeed.X > 0 && s.BallSpeed.Y > 0, s.BallSpeed)
}

func TestContainment(t *testing.T) {
	for _, seed := range []uint32{0, 1, 99, 12345} {
		s := newGame(seed)
		rounds := 0
		for frame := 0; frame < 20000; frame++ {
			if !s.MoveBall() {
				rounds++
				s.NewRound()
				continue
			}
			if !test.ExpectSuccess(t, s.Ball.Y >= 0 && s.Ball.Y <= 197, fmt.Sprintf("seed %d frame %d: %s", seed, frame, s)) {
				return
			}
			if !test.ExpectSuccess(t, s.Ball.X > 0 && s.Ball.X < 317, fmt.Sprintf("seed %d frame %d: %s", seed, frame, s)) {
				return
			}
			s.MoveAI()
		}
		test.ExpectInequality(t, rounds, 0, seed)
	}
}

func TestPlayerPaddle(t *testing.T) {
	s := newGame(0)

	s.Key('w')
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(98))
	s.Key('s')
	s.Key('s')
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(102))

	// other keys are ignored
	s.Key('W')
	s.Key('x')
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(102))

	// clamped at the top
	for range 100 {
		s.Key('w')
	}
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(4))

	// clamped at the bottom
	for range 100 {
		s.Key('s')
	}
	test.ExpectEquality(t, s.PaddleLeft.Y, int16(176))

	// paddle resting exactly on the border does not move past it
	s.PaddleLeft.Y = 5
	for range 3 {
		s.Key('w')
		test.ExpectEquality(t, s.PaddleLeft.Y, int16(5))
	}
	s.PaddleLeft.Y = 175
	for range 3 {
		s.Key('s')
		test.ExpectEquality(t, s.PaddleLeft.Y, int16(175))
	}

	// the right paddle is never moved by the keyboard
	test.ExpectEquality(t, s.PaddleRight, game.Point{X: 270, Y: 100})
}

func TestAI(t *testing.T) {
	s := newGame(0)

	// ball heading for the top of the screen. paddle moves up
	s.Ball = game.Point{X: 160, Y: 50}
	s.BallSpeed = game.Point{X: 1, Y: -1}
	s.MoveAI()
	test.ExpectEquality(t, s.PaddleRight.Y, int16(98))

	// ball heading for the bottom. paddle moves down
	s.Ball = game.Point{X: 160, Y: 100}
	s.BallSpeed = game.Point{X: 2, Y: 1}
	s.MoveAI()
	test.ExpectEquality(t, s.PaddleRight.Y, int16(100))

	// ball will arrive at the paddle centre. no movement
	s.Ball = game.Point{X: 170, Y: 10}
	s.BallSpeed = game.Point{X: 1, Y: 1}
	s.MoveAI()
	test.ExpectEquality(t, s.PaddleRight.Y, int16(100))

	// clamped at the top
	s.Ball = game.Point{X: 160, Y: 0}
	s.BallSpeed = game.Point{X: 1, Y: -2}
	for range 100 {
		s.MoveAI()
	}
	test.ExpectEquality(t, s.PaddleRight.Y, int16(4))

	// clamped at the bottom
	s.BallSpeed = game.Point{X: 1, Y: 2}
	for range 100 {
		s.MoveAI()
	}
	test.ExpectEquality(t, s.PaddleRight.Y, int16(176))

	// ball will arrive one pixel above the centre. the paddle moves up and
	// then back down again in the same call
	s.Ball = game.Point{X: 264, Y: 18}
	s.BallSpeed = game.Point{X: -2, Y: 1}
	s.PaddleRight.Y = 6
	s.MoveAI()
	test.ExpectEquality(t, s.PaddleRight.Y, int16(6))

	// ball will arrive above the centre of a paddle resting on the border. no
	// movement
	s.PaddleRight.Y = 5
	s.Ball = game.Point{X: 264, Y: 17}
	s.MoveAI()
	test.ExpectEquality(t, s.PaddleRight.Y, int16(5))
}

func TestAIZeroSpeed(t *testing.T) {
	s := newGame(0)
	s.BallSpeed = game.Point{X: 0, Y: 1}
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	s.MoveAI()
}

// fields are exported so that deep.Equal() compares them
type fill struct {
	X, Y, W, H int
	Colour     uint8
}

type recorder struct {
	Clear []uint8
	Fills []fill
}

func (r *recorder) ClearScreen(colour uint8) {
	r.Clear = append(r.Clear, colour)
}

func (r *recorder) FillArea(x int16, y int16, w uint16, h uint16, colour uint8) {
	r.Fills = append(r.Fills, fill{X: int(x), Y: int(y), W: int(w), H: int(h), Colour: colour})
}

func TestDraw(t *testing.T) {
	s := newGame(0)
	s.ScoreLeft = 2
	s.ScoreRight = 1

	var r recorder
	s.Draw(&r)

	want := recorder{
		Clear: []uint8{0},
		Fills: []fill{
			{X: 50, Y: 100, W: 5, H: 20, Colour: 14},
			{X: 270, Y: 100, W: 5, H: 20, Colour: 14},
			{X: 160, Y: 100, W: 3, H: 3, Colour: 15},
			{X: 2, Y: 5, W: 1, H: 10, Colour: 15},
			{X: 5, Y: 5, W: 1, H: 10, Colour: 15},
			{X: 317, Y: 5, W: 1, H: 10, Colour: 15},
		},
	}
	if diff := deep.Equal(r, want); diff != nil {
		t.Errorf("draw calls differ: %v\n%s", diff, spew.Sdump(r))
	}
}
