// Package tui implements the live terminal view of diskspace.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diskspace-io/diskspace/internal/daemon/monitor"
	"github.com/diskspace-io/diskspace/internal/daemon/poller"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run polls the configured volumes and renders them until the user quits.
func Run(settings *models.Settings) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := monitor.New(settings, settings.Volumes, nil)

	ref := &programRef{}
	model := NewModel(ctx, Options{
		Store:      m.Store,
		Signal:     m.Signal,
		Volumes:    settings.Volumes,
		Thresholds: disk.ThresholdsFromConfig(settings.Thresholds),
		Interval:   poller.DefaultInterval,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	// Store program reference for goroutine sends
	ref.Set(program)
	defer ref.Clear()

	go func() {
		if err := m.Poller.Run(ctx); err != nil {
			ref.Send(pollErrMsg{Err: err})
		}
	}()

	_, err := program.Run()
	return err
}
