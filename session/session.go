// Package session connects the parts of the program. It parses the command
// line, creates the machine and runs the game, or the keyboard test program,
// on that machine. The host front-end chosen on the command line is launched
// separately with LaunchHost().
package session

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/jetsetilly/pong13h/gui"
	"github.com/jetsetilly/pong13h/gui/ebiten"
	"github.com/jetsetilly/pong13h/gui/headless"
	"github.com/jetsetilly/pong13h/gui/terminal"
	"github.com/jetsetilly/pong13h/hardware"
	"github.com/jetsetilly/pong13h/hardware/clocks"
	"github.com/jetsetilly/pong13h/logger"
	"github.com/jetsetilly/pong13h/loop"
	"github.com/jetsetilly/pong13h/random"
	"github.com/jetsetilly/pong13h/statsview"
	"github.com/jetsetilly/pong13h/version"
)

const programName = "pong13h"

// the number of log entries printed on exit when tracing
const logTail = 20

// hosts that can be chosen with the -host flag
const (
	HostEbiten   = "ebiten"
	HostTerminal = "terminal"
	HostHeadless = "headless"
)

// ErrHost is returned by NewSession() if the -host flag is not recognised
var ErrHost = errors.New("unknown host")

// ErrArgs is returned by NewSession() for a combination of flags that can't
// be honoured
var ErrArgs = errors.New("arguments")

type options struct {
	host      string
	seed      uint
	frames    uint64
	script    string
	trace     bool
	biosTrace bool
	keyTest   bool
	profile   bool
	statsview bool
	scale     int
	version   bool
}

func parseArgs(args []string) (options, error) {
	var opts options

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&opts.host, "host", HostEbiten, "host front-end: ebiten, terminal or headless")
	flgs.UintVar(&opts.seed, "seed", 0, "initial seed of the random number generator")
	flgs.Uint64Var(&opts.frames, "frames", 0, "headless host only: stop after number of frames (0 is forever)")
	flgs.StringVar(&opts.script, "script", "", "headless host only: lua input script")
	flgs.BoolVar(&opts.trace, "trace", false, "print round and game results")
	flgs.BoolVar(&opts.biosTrace, "biostrace", false, "log every firmware call")
	flgs.BoolVar(&opts.keyTest, "keytest", false, "run the keyboard test program instead of the game")
	flgs.BoolVar(&opts.profile, "profile", false, "create CPU profile")
	flgs.BoolVar(&opts.statsview, "statsview", false, "launch the runtime statistics server")
	flgs.IntVar(&opts.scale, "scale", 3, "ebiten host only: window scale")
	flgs.BoolVar(&opts.version, "version", false, "print version information and exit")
	err := flgs.Parse(args)
	if err != nil {
		return options{}, err
	}

	if len(flgs.Args()) > 0 {
		return options{}, fmt.Errorf("%w: too many arguments: %s", ErrArgs, strings.Join(flgs.Args(), " "))
	}

	opts.host = strings.ToLower(opts.host)
	switch opts.host {
	case HostEbiten, HostTerminal, HostHeadless:
	default:
		return options{}, fmt.Errorf("%w: %s", ErrHost, opts.host)
	}

	if opts.host != HostHeadless {
		if opts.frames > 0 {
			return options{}, fmt.Errorf("%w: -frames requires the headless host", ErrArgs)
		}
		if opts.script != "" {
			return options{}, fmt.Errorf("%w: -script requires the headless host", ErrArgs)
		}
	}
	if opts.keyTest && (opts.frames > 0 || opts.script != "") {
		return options{}, fmt.Errorf("%w: -frames and -script can't be used with -keytest", ErrArgs)
	}
	if opts.scale < 1 {
		return options{}, fmt.Errorf("%w: -scale must be at least 1", ErrArgs)
	}

	return opts, nil
}

// Session is the running program
type Session struct {
	opts    options
	styles  styles
	output  io.Writer
	sig     chan os.Signal
	machine *hardware.Machine
	gui     *gui.GUI
	script  *headless.Script
}

// NewSession creates the machine described by the command line arguments
func NewSession(args []string) (*Session, error) {
	return newSession(args, clocks.NewMonotonic())
}

func newSession(args []string, clock clocks.Clock) (*Session, error) {
	opts, err := parseArgs(args)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:    opts,
		styles:  newStyles(),
		output:  os.Stdout,
		sig:     make(chan os.Signal, 1),
		machine: hardware.Create(clock),
	}

	if opts.host == HostHeadless {
		s.output = headless.Output(os.Stdout)
	}

	if opts.version {
		fmt.Fprintln(s.output, version.Banner())
	}

	s.gui = gui.NewGUI(s.machine.VGA, s.machine.Keyboard, s.machine.BIOS.Terminated())
	s.gui.Scale = opts.scale

	if opts.script != "" {
		s.script, err = headless.LoadScript(opts.script)
		if err != nil {
			return nil, err
		}
	}

	if opts.biosTrace {
		s.machine.BIOS.Trace(true)
		logger.SetEcho(s.output)
	}

	return s, nil
}

// Version returns true if the session was created only to print the version
// information. Neither Launch() nor LaunchHost() do anything in this case
func (s *Session) Version() bool {
	return s.opts.version
}

// LaunchHost runs the host front-end chosen on the command line. It returns
// when the host ends
func (s *Session) LaunchHost(endGui chan bool) error {
	if s.opts.version {
		return nil
	}

	switch s.opts.host {
	case HostEbiten:
		return ebiten.Launch(endGui, s.gui)
	case HostTerminal:
		return terminal.Launch(endGui, s.gui)
	case HostHeadless:
		return headless.Launch(endGui, s.gui)
	}
	return fmt.Errorf("%w: %s", ErrHost, s.opts.host)
}

// Launch runs the program on the machine until endProgram is signalled, until
// SIGINT is received or until the program stops itself. The program has
// always been terminated when the function returns
func (s *Session) Launch(endProgram chan bool) error {
	if s.opts.version {
		s.machine.BIOS.Terminate(0)
		return nil
	}

	if s.script != nil {
		defer s.script.Close()
	}

	signal.Notify(s.sig, syscall.SIGINT)
	defer signal.Stop(s.sig)

	if s.opts.profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			s.machine.BIOS.Terminate(1)
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			s.machine.BIOS.Terminate(1)
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if s.opts.statsview {
		stop := statsview.Launch(s.output)
		defer stop()
	}

	// the stop channel is buffered so that the goroutine can always send and
	// end. a keystroke with no ASCII value is pushed to wake a program that is
	// blocked waiting for a key
	stop := make(chan bool, 1)
	done := make(chan bool)
	defer close(done)
	go func() {
		select {
		case <-endProgram:
		case <-s.sig:
		case <-done:
			return
		}
		stop <- true
		s.machine.Keyboard.PushASCII(0)
	}()

	if s.opts.keyTest {
		loop.NewKeyTest(s.machine.BIOS).Run(stop)
		return nil
	}

	l := loop.NewLoop(s.machine.BIOS, s.machine.Mem, random.NewLCG(uint32(s.opts.seed)))
	l.SetHook(s.hook)
	err := l.Run(stop)

	if s.opts.trace {
		st := l.Display().Stats()
		fmt.Fprintln(s.output, s.styles.info.Render(fmt.Sprintf("%d frames presented, %d unsynced", st.Frames, st.UnsyncedFlips)))
		var b strings.Builder
		logger.Tail(&b, logTail)
		if b.Len() > 0 {
			fmt.Fprint(s.output, s.styles.log.Render(b.String()))
			fmt.Fprintln(s.output)
		}
	}

	return err
}

func (s *Session) hook(ev loop.Event) error {
	switch ev.Kind {
	case loop.EventFrame:
		if s.script != nil {
			err := s.script.Feed(ev.Frame, s.machine.Keyboard)
			if err != nil {
				if errors.Is(err, headless.ErrStopped) {
					return loop.ErrStop
				}
				return err
			}
		}
		if s.opts.frames > 0 && ev.Frame >= s.opts.frames {
			return loop.ErrStop
		}
	case loop.EventRoundOver:
		if s.opts.trace {
			fmt.Fprintln(s.output, s.styles.round.Render(ev.String()))
		}
	case loop.EventGameOver:
		if s.opts.trace {
			fmt.Fprintln(s.output, s.styles.game.Render(fmt.Sprintf("%s: %s wins", ev, ev.Winner())))
		}
	}
	return nil
}

// ExitStatus returns the status the program terminated with. If the program
// has not terminated the status is 1
func (s *Session) ExitStatus() int {
	select {
	case <-s.machine.BIOS.Terminated():
		return int(s.machine.BIOS.ExitStatus())
	default:
	}
	return 1
}
