package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/hinto/internal/config"
	"github.com/kobzarvs/hinto/internal/element"
	"github.com/kobzarvs/hinto/internal/hint"
	"github.com/kobzarvs/hinto/internal/logger"
	"github.com/kobzarvs/hinto/internal/overlay"
	"github.com/kobzarvs/hinto/internal/term"
)

// App is the top-level runtime for hinto.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

// Run opens the overlay over the elements described by the fixture
// file, runs the key loop, and on a unique match prints the resolved
// mouse action as JSON for an external dispatcher. Cancellation exits
// silently.
func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	debug := os.Getenv("HINTO_DEBUG") != ""
	if err := logger.Init(debug); err != nil {
		return err
	}
	defer logger.Close()

	if len(a.args) != 1 {
		return errors.New("usage: hinto <elements.json>")
	}
	cands, err := element.Load(a.args[0])
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}

	action, err := a.loop(s, cfg, cands)
	s.Fini()
	if err != nil {
		if errors.Is(err, hint.ErrNoTargets) {
			logger.Info("nothing to select, closing")
			return nil
		}
		return err
	}
	if action != nil {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(action); err != nil {
			return fmt.Errorf("emit action: %w", err)
		}
	}
	return nil
}

// loop owns the screen until a terminal transition. It returns the
// resolved action, or nil on cancel.
func (a *App) loop(s tcell.Screen, cfg config.Config, cands []element.Candidate) (*hint.MouseAction, error) {
	w, h := s.Size()
	bounds := element.Size{Width: float64(w), Height: float64(h)}
	ov, err := overlay.New(cfg, cands, bounds)
	if err != nil {
		return nil, err
	}
	rend := term.NewRenderer(s, cfg.Theme)

	draw := func() {
		s.Clear()
		rend.DrawElements(cands)
		ov.Render(rend)
		s.HideCursor()
		s.Show()
	}
	draw()

	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
			draw()
		case *tcell.EventKey:
			kev, ok := term.TranslateKey(ev)
			if !ok {
				continue
			}
			tr := ov.HandleKey(kev)
			switch tr.Phase {
			case hint.PhaseCancelled:
				logger.Info("cancelled")
				return nil, nil
			case hint.PhaseResolved:
				return tr.Action, nil
			}
			if tr.Redraw {
				draw()
			}
		}
	}
}
