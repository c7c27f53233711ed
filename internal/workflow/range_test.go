package workflow

import (
	"testing"
	"time"
)

func TestTodayIsOneDayWindow(t *testing.T) {
	r := Today()
	if r.From.Hour() != 0 || r.From.Minute() != 0 || r.From.Second() != 0 {
		t.Fatalf("window should start at midnight, got %v", r.From)
	}
	if got := r.To.Sub(r.From); got != 24*time.Hour {
		t.Fatalf("window should span one day, got %v", got)
	}
	now := time.Now()
	if now.Before(r.From) || !now.Before(r.To) {
		t.Fatalf("now %v should fall inside [%v, %v)", now, r.From, r.To)
	}
}

func TestRangeFromEndDateInclusive(t *testing.T) {
	r := RangeFrom("2025-03-01", "2025-03-02")
	if r.From != time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local) {
		t.Fatalf("unexpected start: %v", r.From)
	}
	// The whole of March 2nd is inside the window.
	if r.To != time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local) {
		t.Fatalf("end day should be inclusive, got To=%v", r.To)
	}
}

func TestRangeFromFallsBackToToday(t *testing.T) {
	today := Today()
	for _, pair := range [][2]string{
		{"", ""},
		{"2025-03-01", ""},
		{"", "2025-03-02"},
		{"not-a-date", "2025-03-02"},
	} {
		r := RangeFrom(pair[0], pair[1])
		if !r.From.Equal(today.From) || !r.To.Equal(today.To) {
			t.Fatalf("RangeFrom(%q, %q) should fall back to today, got %+v", pair[0], pair[1], r)
		}
	}
}
