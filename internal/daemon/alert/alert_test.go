package alert

import (
	"bytes"
	"errors"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, title+"|"+message)
	return nil
}

func TestFatalEscalatesOncePerOperation(t *testing.T) {
	rec := &recordingNotifier{}
	esc := New(rec)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			esc.Fatal("maintain", errors.New("boom"))
		}()
	}
	wg.Wait()

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], Title)
	assert.Contains(t, rec.messages[0], "boom")
	assert.Contains(t, rec.messages[0], "ctx = maintain")
}

func TestFatalLaunchFailureAfterPollFailureIsReported(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	rec := &recordingNotifier{}
	esc := New(rec)

	esc.Fatal("maintain", errors.New("volume unmounted"))
	esc.Fatal("open disk analyzer", errors.New("windirstat.exe not found"))

	require.Len(t, rec.messages, 2)
	assert.Contains(t, rec.messages[0], "volume unmounted")
	assert.Contains(t, rec.messages[1], "windirstat.exe not found")
	assert.Contains(t, rec.messages[1], "ctx = open disk analyzer")
	assert.Contains(t, logs.String(), "windirstat.exe not found")
}

func TestFatalRepeatedFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	rec := &recordingNotifier{}
	esc := New(rec)

	esc.Fatal("maintain", errors.New("first"))
	esc.Fatal("maintain", errors.New("second"))

	require.Len(t, rec.messages, 1)
	assert.Contains(t, logs.String(), "Fatal error in maintain (already reported): second")
}

func TestFormatMessage(t *testing.T) {
	msg := FormatMessage("maintain", errors.New("disk gone"))
	assert.Contains(t, msg, "disk gone\nDebug info: ctx = maintain, ")
}

func TestFatalNotifierErrorIsNotRetried(t *testing.T) {
	calls := 0
	esc := New(NotifierFunc(func(title, message string) error {
		calls++
		return errors.New("no display")
	}))
	esc.Fatal("maintain", errors.New("boom"))
	esc.Fatal("maintain", errors.New("boom"))
	assert.Equal(t, 1, calls)
}
