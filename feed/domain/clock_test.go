package domain

import (
	"testing"
	"time"
)

func TestSystemClock_Format(t *testing.T) {
	now := SystemClock{}.Now()

	parsed, err := time.Parse(timeLayout, now)
	if err != nil {
		t.Fatalf("Now() produced unparseable timestamp %q: %v", now, err)
	}
	if parsed.Location() != time.UTC {
		t.Errorf("Expected UTC timestamp, got %v", parsed.Location())
	}
}

func TestFormatTime_LexicalOrderIsChronological(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	// Fixed-width millisecond precision keeps string order aligned with
	// time order, which the stores rely on for created_at sorting.
	times := []time.Time{
		base,
		base.Add(5 * time.Millisecond),
		base.Add(999 * time.Millisecond),
		base.Add(time.Second),
		base.Add(time.Hour),
		base.AddDate(0, 0, 1),
	}

	prev := ""
	for _, tt := range times {
		got := FormatTime(tt)
		if got <= prev {
			t.Errorf("FormatTime(%v) = %q not lexically after %q", tt, got, prev)
		}
		prev = got
	}
}

func TestFormatTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)

	got := FormatTime(local)
	want := "2024-06-01T10:00:00.000Z"
	if got != want {
		t.Errorf("FormatTime = %q, want %q", got, want)
	}
}
