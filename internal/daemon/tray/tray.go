// Package tray implements the system tray icon and menu for the daemon.
package tray

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/getlantern/systray"

	"github.com/diskspace-io/diskspace/internal/daemon/alert"
	"github.com/diskspace-io/diskspace/internal/daemon/state"
)

const maxVolumeSlots = 10

// Options configures the tray.
type Options struct {
	Store     *state.Store
	Signal    *state.Signal
	Escalator *alert.Escalator
	Analyzer  func() error
	// Cleanup is nil when no cleanup sessions are configured.
	Cleanup         func() error
	SettingsChanged <-chan struct{}

	// OnStart is called once the tray is ready (start the poller here).
	OnStart func()
	// OnExit is called when the tray exits (cleanup here).
	OnExit func()
}

var (
	opts Options

	// Pre-allocated volume menu slots
	volumeSlots  [maxVolumeSlots]*systray.MenuItem
	overflowItem *systray.MenuItem
	settingsItem *systray.MenuItem
	analyzerItem *systray.MenuItem
	cleanupItem  *systray.MenuItem
	quitItem     *systray.MenuItem

	loopCancel context.CancelFunc
	quitOnce   sync.Once
)

// Run starts the system tray. This blocks the calling goroutine (must be main).
func Run(o Options) {
	opts = o
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit. Safe to call from any goroutine, more than once.
func Quit() {
	quitOnce.Do(systray.Quit)
}

func onReady() {
	// Hidden until the first snapshot says otherwise.
	systray.SetIcon(blankIcon())
	systray.SetTooltip("checking disk space…")

	for i := 0; i < maxVolumeSlots; i++ {
		volumeSlots[i] = systray.AddMenuItem("", "")
		volumeSlots[i].Disable()
		volumeSlots[i].Hide()
	}
	overflowItem = systray.AddMenuItem("", "")
	overflowItem.Disable()
	overflowItem.Hide()

	settingsItem = systray.AddMenuItem("Settings changed, restart to apply", "")
	settingsItem.Disable()
	settingsItem.Hide()

	systray.AddSeparator()

	analyzerItem = systray.AddMenuItem("Open disk analyzer", "Inspect what uses the space")
	cleanupItem = systray.AddMenuItem("Run cleanup", "Open the configured cleanup sessions")
	if opts.Cleanup == nil {
		cleanupItem.Hide()
	}

	systray.AddSeparator()
	quitItem = systray.AddMenuItem("Exit", "Stop monitoring disk space")

	bridge := NewBridge(BridgeOptions{
		Store:     opts.Store,
		Signal:    opts.Signal,
		Indicator: systrayIndicator{},
		Escalator: opts.Escalator,
		Analyzer:  opts.Analyzer,
		Cleanup:   opts.Cleanup,
		Quit:      Quit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	loopCancel = cancel

	if opts.OnStart != nil {
		opts.OnStart()
	}

	// Handle wake-ups and click events
	go bridge.Loop(ctx, Events{
		Analyzer:        analyzerItem.ClickedCh,
		Cleanup:         cleanupItem.ClickedCh,
		Quit:            quitItem.ClickedCh,
		SettingsChanged: opts.SettingsChanged,
	})
}

func onQuit() {
	if loopCancel != nil {
		loopCancel()
	}
	if opts.OnExit != nil {
		opts.OnExit()
	}
}

// systrayIndicator draws on the process-wide systray icon.
type systrayIndicator struct{}

func (systrayIndicator) Show(icon IconVariant, tooltip string, volumes []string) {
	systray.SetIcon(icon.Bytes())
	systray.SetTooltip(tooltip)

	for i := 0; i < maxVolumeSlots; i++ {
		if i < len(volumes) {
			volumeSlots[i].SetTitle(volumes[i])
			volumeSlots[i].Show()
		} else {
			volumeSlots[i].Hide()
		}
	}
	if extra := len(volumes) - maxVolumeSlots; extra > 0 {
		overflowItem.SetTitle(plural(extra, "more volume", "more volumes"))
		overflowItem.Show()
	} else {
		overflowItem.Hide()
	}
}

// Hide blanks the icon; the systray API has no visibility toggle.
func (systrayIndicator) Hide() {
	systray.SetIcon(blankIcon())
	systray.SetTooltip("")
	for i := 0; i < maxVolumeSlots; i++ {
		volumeSlots[i].Hide()
	}
	overflowItem.Hide()
}

func (systrayIndicator) SettingsChanged() {
	log.Println("[tray] Settings file changed; restart to apply")
	settingsItem.Show()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
