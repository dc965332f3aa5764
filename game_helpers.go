package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-lut/model"
	"github.com/sheikhrachel/go-gol-lut/utils"
)

type command int

const (
	cmdNone command = iota
	cmdAdvance
	cmdReset
	cmdExit
)

var (
	keyCommands = map[tcell.Key]command{
		tcell.KeyEnter:      cmdAdvance,
		tcell.KeyBackspace:  cmdReset,
		tcell.KeyBackspace2: cmdReset,
		tcell.KeyEscape:     cmdExit,
		tcell.KeyCtrlC:      cmdExit,
	}
	runeCommands = map[rune]command{
		'1': cmdAdvance,
		'n': cmdAdvance,
		'2': cmdReset,
		'r': cmdReset,
		'3': cmdExit,
		'q': cmdExit,
	}

	menuLines = []string{
		"",
		"ENTER      next generation",
		"BACKSPACE  reset grid",
		"ESC        exit",
	}
)

// commandForKey maps a key press to a game command, cmdNone if it has no meaning
func commandForKey(ev *tcell.EventKey) command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[ev.Rune()]
	}
	return keyCommands[ev.Key()]
}

// Game drives the board from key presses on a terminal screen
type Game struct {
	buffers  *model.Buffers
	src      rand.Source
	history  model.History
	stats    *utils.Stats
	renderer *model.ScreenRenderer
	menu     bool
}

// newGame allocates both generations once and populates the first one
func newGame(screen tcell.Screen, src rand.Source, menu bool) *Game {
	g := &Game{
		buffers:  model.NewBuffers(utils.GridWidth, utils.GridHeight),
		src:      src,
		stats:    utils.NewStats(),
		renderer: model.NewScreenRenderer(screen),
		menu:     menu,
	}
	g.buffers.Reset(src)
	g.stats.Population = g.buffers.Current.CountLivingCells()
	return g
}

// Run shows the board and handles key presses until exit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		<-ctx.Done()
		// wake the blocking key read
		_ = g.renderer.Screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		return g.loop(ctx)
	})

	return eg.Wait()
}

func (g *Game) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			log.Printf("stopping: %v", context.Cause(ctx))
			return nil
		}
		g.draw()

		switch ev := g.renderer.Screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			g.renderer.Screen.Sync()
		case *tcell.EventKey:
			switch commandForKey(ev) {
			case cmdAdvance:
				g.advance()
			case cmdReset:
				g.reset()
			case cmdExit:
				log.Printf("exit after %d generations, %d resets", g.stats.Generation, g.stats.Resets)
				return nil
			}
		}
	}
}

func (g *Game) advance() {
	g.history.Record(g.buffers.Current)
	g.buffers.Advance()
	g.stats.Advance(g.buffers.Current.CountLivingCells(), g.history.Period(g.buffers.Current))
}

func (g *Game) reset() {
	g.buffers.Reset(g.src)
	g.history.Clear()
	g.stats.Reset(g.buffers.Current.CountLivingCells())
	log.Printf("reset %d: %d living cells", g.stats.Resets, g.stats.Population)
}

func (g *Game) draw() {
	lines := []string{"", g.stats.Status()}
	if g.menu {
		lines = append(lines, menuLines...)
	}
	g.renderer.Clear()
	g.renderer.Display(g.buffers.Current, lines...)
}

// printGenerations writes generations 0 through n to w without a terminal screen
func printGenerations(w io.Writer, buffers *model.Buffers, n int) error {
	for gen := 0; ; gen++ {
		if _, err := fmt.Fprintf(w, "Generation %d\n", gen); err != nil {
			return errors.Wrapf(err, "[printGenerations] failed to write header for generation %d", gen)
		}
		if err := model.Render(w, buffers.Current); err != nil {
			return errors.Wrapf(err, "[printGenerations] generation %d", gen)
		}
		if gen == n {
			return nil
		}
		buffers.Advance()
	}
}
