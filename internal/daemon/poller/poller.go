// Package poller runs the background loop that probes volumes, publishes the
// evaluated snapshot and wakes the UI.
package poller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/diskspace-io/diskspace/internal/daemon/state"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

// DefaultInterval is the fixed delay between two probes.
const DefaultInterval = 2 * time.Minute

// Options configures a Poller.
type Options struct {
	Prober     disk.Prober
	Volumes    []models.VolumeID
	Thresholds disk.Thresholds
	Store      *state.Store
	Signal     *state.Signal

	// Interval defaults to DefaultInterval.
	Interval time.Duration

	// Retries is the number of backed-off probe retries before a failure
	// becomes fatal. Zero stops on the first failure.
	Retries uint64

	// Backoff overrides the retry policy; tests use it to avoid real delays.
	Backoff func() backoff.BackOff
}

// Poller periodically probes a fixed set of volumes.
type Poller struct {
	prober     disk.Prober
	volumes    []models.VolumeID
	thresholds disk.Thresholds
	store      *state.Store
	signal     *state.Signal
	interval   time.Duration
	retries    uint64
	newBackoff func() backoff.BackOff

	alerting bool
}

// New creates a Poller.
func New(opts Options) *Poller {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	newBackoff := opts.Backoff
	if newBackoff == nil {
		newBackoff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 5 * time.Second
			b.MaxInterval = time.Minute
			b.MaxElapsedTime = 0
			return b
		}
	}
	return &Poller{
		prober:     opts.Prober,
		volumes:    opts.Volumes,
		thresholds: opts.Thresholds,
		store:      opts.Store,
		signal:     opts.Signal,
		interval:   interval,
		retries:    opts.Retries,
		newBackoff: newBackoff,
	}
}

// Run loops until ctx is cancelled (returning nil) or a probe fails
// (returning the error). No tick runs after Run returns.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := p.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to poll volumes: %w", err)
		}

		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Tick performs one probe, evaluate, publish and wake cycle.
func (p *Poller) Tick(ctx context.Context) error {
	stats, err := p.probe(ctx)
	if err != nil {
		return err
	}

	snap := disk.Evaluate(stats, p.thresholds)
	p.store.Replace(snap)
	p.signal.Notify()

	if alerting := !snap.Empty(); alerting != p.alerting {
		p.alerting = alerting
		if alerting {
			least, _ := snap.Least()
			log.Printf("[poller] Low disk space: %s", disk.FormatSummary(least))
		} else {
			log.Printf("[poller] Disk space back above thresholds")
		}
	}
	return nil
}

func (p *Poller) probe(ctx context.Context) (map[models.VolumeID]models.VolumeStats, error) {
	if p.retries == 0 {
		return p.prober.Probe(ctx, p.volumes)
	}

	var stats map[models.VolumeID]models.VolumeStats
	op := func() error {
		var err error
		stats, err = p.prober.Probe(ctx, p.volumes)
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Printf("[poller] Probe failed, retrying in %s: %v", wait, err)
	}
	b := backoff.WithContext(backoff.WithMaxRetries(p.newBackoff(), p.retries), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}
	return stats, nil
}
