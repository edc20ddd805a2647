package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/systheme/internal/application/port"
	"github.com/bnema/systheme/internal/cli"
	"github.com/bnema/systheme/internal/cli/model"
	"github.com/bnema/systheme/internal/cli/styles"
	"github.com/bnema/systheme/internal/colorscheme"
	"github.com/bnema/systheme/internal/config"
	"github.com/bnema/systheme/internal/logging"
	"github.com/bnema/systheme/pkg/systheme"
	"github.com/bnema/systheme/pkg/theme"
)

// pumpInterval bounds each slice of platform event loop servicing between
// wake-up checks.
const pumpInterval = 100 * time.Millisecond

var watchInteractive bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow appearance changes as they happen",
	Long: `Print the derived theme every time the system appearance changes.

Bursts of changes are coalesced: one line is printed per wake-up, showing
the settings as they are at that moment. Edits to the config file are
picked up as well and re-resolve the color scheme preference.

With --interactive, a full-screen view repaints itself in the new palette.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&watchInteractive, "interactive", "i", false, "show a live full-screen view")
}

// watchEvent is one JSON line of watch output.
type watchEvent struct {
	Event      string                      `json:"event"`
	Time       time.Time                   `json:"time"`
	Theme      *theme.Theme                `json:"theme,omitempty"`
	Preference *port.ColorSchemePreference `json:"preference,omitempty"`
}

// runWatch owns the goroutine cobra runs on, which main pins to the main
// thread. Every setting is re-read there: background goroutines only
// forward wake-ups.
func runWatch(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	st, err := app.System()
	if err != nil {
		return fmt.Errorf("open system theme: %w", err)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := newWakeups()
	resolver := app.Resolver()
	watchConfig(ctx, app, w)

	if watchInteractive {
		return watchInteractively(ctx, app, st, resolver, w)
	}
	return watchPlain(ctx, cmd.OutOrStdout(), app, st, resolver, w)
}

// watchConfig forwards config file edits to the main goroutine.
func watchConfig(ctx context.Context, app *cli.App, w *wakeups) {
	log := logging.FromContext(ctx)

	if app.Manager == nil {
		log.Debug().Err(cli.ErrNoConfig).Msg("config changes will not be followed")
		return
	}
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to watch config file")
		return
	}
	app.Manager.OnConfigChange(func(*config.Config) {
		poke(w.config)
	})
}

// eventPump is the part of SystemTheme that services the platform event
// loop.
type eventPump interface {
	NeedsEventPump() bool
	PumpEvents(d time.Duration) error
}

// wakeHandlers run on the goroutine that calls wakeups.serve.
type wakeHandlers struct {
	appearance func()
	config     func()
	ended      func()
}

// wakeups carries change signals from background goroutines to the one
// that re-reads the settings. A pending signal absorbs later ones.
type wakeups struct {
	appearance chan struct{}
	config     chan struct{}
}

func newWakeups() *wakeups {
	return &wakeups{
		appearance: make(chan struct{}, 1),
		config:     make(chan struct{}, 1),
	}
}

func poke(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// forward turns every value of changes into an appearance wake-up. When
// changes ends, no more can arrive and the appearance channel is closed.
func (w *wakeups) forward(changes iter.Seq[struct{}]) {
	defer close(w.appearance)
	for range changes {
		poke(w.appearance)
	}
}

// serve dispatches wake-ups to h on the calling goroutine until ctx is
// done. When pump needs it, the platform event loop is serviced between
// checks so that its observers can fire.
func (w *wakeups) serve(ctx context.Context, pump eventPump, h wakeHandlers) error {
	ready := make(chan struct{})
	close(ready)

	var idle <-chan struct{}
	pumping := pump.NeedsEventPump()
	if pumping {
		idle = ready
	}

	appearance := w.appearance
	for {
		if pumping {
			if err := pump.PumpEvents(pumpInterval); err != nil {
				return fmt.Errorf("service event loop: %w", err)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-appearance:
			if !ok {
				appearance = nil
				h.ended()
				continue
			}
			h.appearance()
		case <-w.config:
			h.config()
		case <-idle:
		}
	}
}

// lineWriter prints watch output as text lines or JSON lines.
type lineWriter struct {
	out io.Writer
	enc *json.Encoder
}

func newLineWriter(out io.Writer) *lineWriter {
	return &lineWriter{out: out, enc: json.NewEncoder(out)}
}

func (w *lineWriter) println(s string) {
	fmt.Fprintln(w.out, s)
}

func (w *lineWriter) encode(ev watchEvent) {
	_ = w.enc.Encode(ev)
}

func watchPlain(ctx context.Context, out io.Writer, app *cli.App, st *systheme.SystemTheme, resolver *colorscheme.Resolver, w *wakeups) error {
	lw := newLineWriter(out)
	renderer := styles.NewThemeRenderer(app.Theme, app.Config.Output.Swatches)

	emitTheme := func(t theme.Theme, at time.Time) {
		if app.JSONOutput() {
			lw.encode(watchEvent{Event: "theme", Time: at, Theme: &t})
			return
		}
		lw.println(renderer.RenderChange(t, at))
	}

	emitPreference := func(pref port.ColorSchemePreference) {
		if app.JSONOutput() {
			lw.encode(watchEvent{Event: "preference", Time: time.Now(), Preference: &pref})
			return
		}
		lw.println(renderer.RenderPreference(pref))
	}

	if app.JSONOutput() {
		emitTheme(st.Theme(), time.Now())
	} else {
		lw.println(renderer.RenderTheme(st.Theme()))
	}
	emitPreference(resolver.Refresh(ctx))

	unregister := resolver.OnChange(emitPreference)
	defer unregister()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w.forward(st.Subscribe(gctx))
		return nil
	})

	err := w.serve(gctx, st, wakeHandlers{
		appearance: func() {
			emitTheme(st.Theme(), time.Now())
			resolver.Refresh(gctx)
		},
		config: func() { resolver.Refresh(gctx) },
		// Nothing left to report
		ended: cancel,
	})
	cancel()
	return errors.Join(err, g.Wait())
}

func watchInteractively(ctx context.Context, app *cli.App, st *systheme.SystemTheme, resolver *colorscheme.Resolver, w *wakeups) error {
	pref := resolver.Refresh(ctx)
	m := model.NewWatchModel(st.Theme(), pref, app.Config.Output.Swatches)
	p := tea.NewProgram(m, tea.WithAltScreen())

	unregister := resolver.OnChange(func(pref port.ColorSchemePreference) {
		p.Send(model.PreferenceChangedMsg{Preference: pref})
	})
	defer unregister()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the program ends the watch
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		w.forward(st.Subscribe(gctx))
		return nil
	})

	err := w.serve(gctx, st, wakeHandlers{
		appearance: func() {
			p.Send(model.ThemeChangedMsg{Theme: st.Theme(), At: time.Now()})
			resolver.Refresh(gctx)
		},
		config: func() { resolver.Refresh(gctx) },
		ended:  func() { p.Send(model.WatchEndedMsg{}) },
	})

	// A signal cancels ctx while the terminal is in raw mode
	p.Quit()
	cancel()
	return errors.Join(err, g.Wait())
}
