// Package alert escalates unrecoverable background errors to the user.
package alert

import (
	"fmt"
	"log"
	"sync"
)

// Title is shown on every fatal notification.
const Title = "diskspace: fatal error"

// Notifier displays a message to the user. Implementations block until the
// user dismisses it where the platform allows.
type Notifier interface {
	Notify(title, message string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(title, message string) error {
	return f(title, message)
}

// Escalator shows at most one fatal notification per failed operation.
type Escalator struct {
	notifier Notifier

	mu       sync.Mutex
	reported map[string]bool
}

// New creates an Escalator. A nil notifier uses the platform default.
func New(n Notifier) *Escalator {
	if n == nil {
		n = NotifierFunc(platformNotify)
	}
	return &Escalator{notifier: n, reported: make(map[string]bool)}
}

// Fatal reports err, naming the failed operation, and returns after the
// notification is dismissed. Repeated failures of the same operation are only
// logged.
func (e *Escalator) Fatal(op string, err error) {
	e.mu.Lock()
	seen := e.reported[op]
	e.reported[op] = true
	e.mu.Unlock()

	if seen {
		log.Printf("Fatal error in %s (already reported): %v", op, err)
		return
	}

	log.Printf("Fatal error in %s: %v", op, err)
	if nerr := e.notifier.Notify(Title, FormatMessage(op, err)); nerr != nil {
		log.Printf("Failed to show fatal notification: %v", nerr)
	}
}

// FormatMessage renders the notification body with debug context.
func FormatMessage(op string, err error) string {
	return fmt.Sprintf("%v\nDebug info: ctx = %s, %#v", err, op, err)
}
