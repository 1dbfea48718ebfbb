package domain

import (
	"time"
)

// timeLayout keeps millisecond precision at a fixed width so that lexical
// order over stored timestamps equals chronological order.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock supplies the textual timestamps stored on every entity. Services
// take it as a dependency so tests can fix time.
type Clock interface {
	Now() string
}

// SystemClock is the production Clock, reading the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() string {
	return FormatTime(time.Now())
}

// FormatTime renders t in the store's timestamp format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
