package tray

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskspace-io/diskspace/internal/daemon/alert"
	"github.com/diskspace-io/diskspace/internal/daemon/state"
	"github.com/diskspace-io/diskspace/internal/models"
)

type fakeIndicator struct {
	mu       sync.Mutex
	visible  bool
	icon     IconVariant
	tooltip  string
	volumes  []string
	renders  int
	settings int
}

func (f *fakeIndicator) Show(icon IconVariant, tooltip string, volumes []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible, f.icon, f.tooltip, f.volumes = true, icon, tooltip, volumes
	f.renders++
}

func (f *fakeIndicator) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible, f.tooltip, f.volumes = false, "", nil
	f.renders++
}

func (f *fakeIndicator) SettingsChanged() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings++
}

func (f *fakeIndicator) Renders() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renders
}

func darkTheme() Theme { return Theme{Light: false, Scale: 1} }

func lowSnapshot() models.Snapshot {
	return models.NewSnapshot(map[models.VolumeID]models.VolumeStats{
		`C:\`: {AvailableBytes: 1_073_741_824, TotalBytes: 10_737_418_240},
		`D:\`: {AvailableBytes: 500 * 1_073_741_824, TotalBytes: 1000 * 1_073_741_824},
	})
}

func TestSelectIcon(t *testing.T) {
	tests := []struct {
		light bool
		scale float64
		want  IconVariant
	}{
		{light: true, scale: 1.0, want: IconBlack16},
		{light: true, scale: 1.5, want: IconBlack32},
		{light: false, scale: 1.49, want: IconWhite16},
		{light: false, scale: 2.0, want: IconWhite32},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SelectIcon(tt.light, tt.scale))
			assert.NotEmpty(t, tt.want.Bytes())
		})
	}
}

func TestRenderHidesOnEmptySnapshot(t *testing.T) {
	ind := &fakeIndicator{visible: true}
	b := NewBridge(BridgeOptions{Store: state.NewStore(), Signal: state.NewSignal(), Indicator: ind, Theme: darkTheme})

	b.Render()
	assert.False(t, ind.visible)
	assert.Equal(t, 1, ind.renders)
}

func TestRenderShowsLeastAvailableVolume(t *testing.T) {
	store := state.NewStore()
	store.Replace(lowSnapshot())
	ind := &fakeIndicator{}
	b := NewBridge(BridgeOptions{
		Store:     store,
		Signal:    state.NewSignal(),
		Indicator: ind,
		Theme:     func() Theme { return Theme{Light: true, Scale: 2} },
	})

	b.Render()
	assert.True(t, ind.visible)
	assert.Equal(t, IconBlack32, ind.icon)
	assert.Equal(t, `C:\: 10% (1.0 GiB)`, ind.tooltip)
	assert.Len(t, ind.volumes, 2)
}

func TestLoopCoalescesWakes(t *testing.T) {
	store := state.NewStore()
	sig := state.NewSignal()
	ind := &fakeIndicator{}
	b := NewBridge(BridgeOptions{Store: store, Signal: sig, Indicator: ind, Theme: darkTheme})

	store.Replace(models.Snapshot{})
	sig.Notify()
	store.Replace(lowSnapshot())
	sig.Notify()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Loop(ctx, Events{})
		close(done)
	}()

	require.Eventually(t, func() bool { return ind.Renders() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 1, ind.renders, "two pending wakes must produce a single read")
	assert.True(t, ind.visible, "the read must see the latest snapshot")
	assert.Equal(t, `C:\: 10% (1.0 GiB)`, ind.tooltip)
}

func TestLoopQuit(t *testing.T) {
	quitCh := make(chan struct{}, 1)
	quitCalled := false
	b := NewBridge(BridgeOptions{
		Store:     state.NewStore(),
		Signal:    state.NewSignal(),
		Indicator: &fakeIndicator{},
		Theme:     darkTheme,
		Quit:      func() { quitCalled = true },
	})

	quitCh <- struct{}{}
	b.Loop(context.Background(), Events{Quit: quitCh})
	assert.True(t, quitCalled)
}

func TestLoopLaunchFailureIsFatal(t *testing.T) {
	var notifications []string
	esc := alert.New(alert.NotifierFunc(func(title, message string) error {
		notifications = append(notifications, message)
		return nil
	}))

	analyzerCh := make(chan struct{}, 1)
	quitCalls := 0
	b := NewBridge(BridgeOptions{
		Store:     state.NewStore(),
		Signal:    state.NewSignal(),
		Indicator: &fakeIndicator{},
		Theme:     darkTheme,
		Escalator: esc,
		Analyzer:  func() error { return errors.New("windirstat.exe not found") },
		Quit:      func() { quitCalls++ },
	})

	analyzerCh <- struct{}{}
	b.Loop(context.Background(), Events{Analyzer: analyzerCh})

	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0], "windirstat.exe not found")
	assert.Contains(t, notifications[0], "ctx = open disk analyzer")
	assert.Equal(t, 1, quitCalls)
}

func TestLoopLaunchFailureAfterPollFailureIsReported(t *testing.T) {
	var notifications []string
	esc := alert.New(alert.NotifierFunc(func(title, message string) error {
		notifications = append(notifications, message)
		return nil
	}))
	esc.Fatal("maintain", errors.New("volume unmounted"))

	analyzerCh := make(chan struct{}, 1)
	quitCalls := 0
	b := NewBridge(BridgeOptions{
		Store:     state.NewStore(),
		Signal:    state.NewSignal(),
		Indicator: &fakeIndicator{},
		Theme:     darkTheme,
		Escalator: esc,
		Analyzer:  func() error { return errors.New("windirstat.exe not found") },
		Quit:      func() { quitCalls++ },
	})

	analyzerCh <- struct{}{}
	b.Loop(context.Background(), Events{Analyzer: analyzerCh})

	require.Len(t, notifications, 2)
	assert.Contains(t, notifications[1], "windirstat.exe not found")
	assert.Equal(t, 1, quitCalls)
}

func TestLoopSuccessfulLaunchKeepsRunning(t *testing.T) {
	cleanupCh := make(chan struct{}, 1)
	quitCh := make(chan struct{})
	var launches int32
	b := NewBridge(BridgeOptions{
		Store:     state.NewStore(),
		Signal:    state.NewSignal(),
		Indicator: &fakeIndicator{},
		Theme:     darkTheme,
		Cleanup:   func() error { atomic.AddInt32(&launches, 1); return nil },
	})

	cleanupCh <- struct{}{}
	done := make(chan struct{})
	go func() {
		b.Loop(context.Background(), Events{Cleanup: cleanupCh, Quit: quitCh})
		close(done)
	}()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&launches) == 1 }, time.Second, time.Millisecond)
	quitCh <- struct{}{}
	<-done
	assert.Equal(t, int32(1), atomic.LoadInt32(&launches))
}

func TestLoopSettingsChanged(t *testing.T) {
	settingsCh := make(chan struct{}, 1)
	quitCh := make(chan struct{})
	ind := &fakeIndicator{}
	b := NewBridge(BridgeOptions{Store: state.NewStore(), Signal: state.NewSignal(), Indicator: ind, Theme: darkTheme})

	settingsCh <- struct{}{}
	done := make(chan struct{})
	go func() {
		b.Loop(context.Background(), Events{SettingsChanged: settingsCh, Quit: quitCh})
		close(done)
	}()

	require.Eventually(t, func() bool {
		ind.mu.Lock()
		defer ind.mu.Unlock()
		return ind.settings == 1
	}, time.Second, time.Millisecond)
	quitCh <- struct{}{}
	<-done
}

func TestTooltipEmptySnapshot(t *testing.T) {
	assert.Equal(t, "", Tooltip(nil))
}
