package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/diskspace-io/diskspace/internal/daemon/state"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

const (
	defaultWidth = 80
	maxBarWidth  = 40
	nameWidth    = 12
)

// Options wires the model to a running poller.
type Options struct {
	Store      *state.Store
	Signal     *state.Signal
	Volumes    []models.VolumeID
	Thresholds disk.Thresholds
	Interval   time.Duration
}

// Model is the root Bubbletea model of the watch view.
type Model struct {
	ctx        context.Context
	store      *state.Store
	signal     *state.Signal
	volumes    []models.VolumeID
	thresholds disk.Thresholds
	interval   time.Duration

	snap    models.Snapshot
	polled  bool
	updated time.Time
	err     error

	width int
	bar   progress.Model
	help  help.Model
}

// NewModel creates the initial model. Waiting for wakes stops when ctx is
// cancelled.
func NewModel(ctx context.Context, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return Model{
		ctx:        ctx,
		store:      opts.Store,
		signal:     opts.Signal,
		volumes:    opts.Volumes,
		thresholds: opts.Thresholds,
		interval:   opts.Interval,
		width:      defaultWidth,
		bar:        bar,
		help:       help.New(),
	}
}

// Init starts waiting for the first wake.
func (m Model) Init() tea.Cmd {
	return waitForWake(m.ctx, m.signal, m.store)
}

// waitForWake blocks until the poller signals, then reads the latest
// snapshot. It yields nil once ctx is done.
func waitForWake(ctx context.Context, sig *state.Signal, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-sig.C():
			return snapshotMsg{Snapshot: store.Read(), At: time.Now()}
		}
	}
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.bar.Width = min(maxBarWidth, max(10, msg.Width-nameWidth-30))
		return m, nil

	case snapshotMsg:
		m.snap = msg.Snapshot
		m.updated = msg.At
		m.polled = true
		return m, waitForWake(m.ctx, m.signal, m.store)

	case pollErrMsg:
		// The poller has stopped; no further wakes will arrive.
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

// View renders the model.
func (m Model) View() string {
	var lines []string

	lines = append(lines, headerStyle.Render("diskspace")+" "+
		hintStyle.Render(fmt.Sprintf("watching %s every %s", plural(len(m.volumes), "volume", "volumes"), m.interval)))
	lines = append(lines, "")

	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render("Monitoring stopped: "+m.err.Error()))
		if !m.snap.Empty() {
			lines = append(lines, "")
			lines = append(lines, m.volumeRows()...)
		}
	case !m.polled:
		lines = append(lines, pendingStyle.Render("Probing volumes…"))
	case m.snap.Empty():
		lines = append(lines, okStyle.Render("All volumes above thresholds"))
	default:
		lines = append(lines, m.volumeRows()...)
	}

	if !m.updated.IsZero() {
		lines = append(lines, "")
		lines = append(lines, hintStyle.Render("Updated "+m.updated.Format("15:04:05")))
	}

	lines = append(lines, "", m.help.View(keys))

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "…")
	}
	return strings.Join(lines, "\n")
}

// volumeRows renders one row per volume, low volumes highlighted.
func (m Model) volumeRows() []string {
	rows := make([]string, 0, len(m.snap))
	for _, r := range m.snap {
		style := volumeStyle
		if m.thresholds.IsLow(r.Stats) {
			style = volumeLowStyle
		}
		free := float64(disk.Percent(r.Stats.AvailableBytes, r.Stats.TotalBytes)) / 100
		name := fmt.Sprintf("%-*s", nameWidth, ansi.Truncate(string(r.Volume), nameWidth, "…"))
		rows = append(rows, style.Render(name)+" "+m.bar.ViewAs(free)+" "+style.Render(disk.FormatDetail(r)))
	}
	return rows
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
