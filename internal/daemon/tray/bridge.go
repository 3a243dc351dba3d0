package tray

import (
	"context"
	"log"

	"github.com/diskspace-io/diskspace/internal/daemon/alert"
	"github.com/diskspace-io/diskspace/internal/daemon/state"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

// Indicator is the surface the bridge draws on.
type Indicator interface {
	// Show makes the indicator visible with the given icon, tooltip and one
	// menu line per volume.
	Show(icon IconVariant, tooltip string, volumes []string)
	// Hide removes the indicator from view.
	Hide()
	// SettingsChanged tells the user a restart is needed to apply new settings.
	SettingsChanged()
}

// Events are the inputs of the UI loop. Nil channels are never selected.
type Events struct {
	Analyzer        <-chan struct{}
	Cleanup         <-chan struct{}
	Quit            <-chan struct{}
	SettingsChanged <-chan struct{}
}

// Bridge is the UI side of the monitor: it redraws on wake and dispatches menu
// actions. All of its methods run on the single UI loop goroutine.
type Bridge struct {
	store     *state.Store
	signal    *state.Signal
	indicator Indicator
	theme     ThemeFunc
	escalator *alert.Escalator

	analyzer func() error
	cleanup  func() error
	quit     func()
}

// BridgeOptions configures a Bridge.
type BridgeOptions struct {
	Store     *state.Store
	Signal    *state.Signal
	Indicator Indicator
	Theme     ThemeFunc
	Escalator *alert.Escalator
	Analyzer  func() error
	Cleanup   func() error
	Quit      func()
}

// NewBridge creates a Bridge.
func NewBridge(opts BridgeOptions) *Bridge {
	theme := opts.Theme
	if theme == nil {
		theme = SystemTheme
	}
	quit := opts.Quit
	if quit == nil {
		quit = func() {}
	}
	return &Bridge{
		store:     opts.Store,
		signal:    opts.Signal,
		indicator: opts.Indicator,
		theme:     theme,
		escalator: opts.Escalator,
		analyzer:  opts.Analyzer,
		cleanup:   opts.Cleanup,
		quit:      quit,
	}
}

// Render reads the latest snapshot and updates the indicator.
func (b *Bridge) Render() {
	snap := b.store.Read()
	if snap.Empty() {
		b.indicator.Hide()
		return
	}
	t := b.theme()
	b.indicator.Show(SelectIcon(t.Light, t.Scale), Tooltip(snap), volumeLines(snap))
}

// Loop runs until the quit event, a fatal launch error, or ctx is done.
func (b *Bridge) Loop(ctx context.Context, ev Events) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-b.signal.C():
			b.Render()

		case <-ev.Analyzer:
			if !b.launch("open disk analyzer", b.analyzer) {
				return
			}

		case <-ev.Cleanup:
			if !b.launch("run cleanup", b.cleanup) {
				return
			}

		case <-ev.SettingsChanged:
			b.indicator.SettingsChanged()

		case <-ev.Quit:
			log.Println("[tray] Exit requested")
			b.quit()
			return
		}
	}
}

// launch runs a menu action. A launch failure is fatal: it is escalated and
// the loop ends.
func (b *Bridge) launch(op string, fn func() error) bool {
	if fn == nil {
		return true
	}
	if err := fn(); err != nil {
		if b.escalator != nil {
			b.escalator.Fatal(op, err)
		}
		b.quit()
		return false
	}
	return true
}

// Tooltip summarises the volume with the least available space.
func Tooltip(snap models.Snapshot) string {
	least, ok := snap.Least()
	if !ok {
		return ""
	}
	return disk.FormatSummary(least)
}

func volumeLines(snap models.Snapshot) []string {
	lines := make([]string, 0, len(snap))
	for _, r := range snap {
		lines = append(lines, disk.FormatDetail(r))
	}
	return lines
}
