package workflow

import "time"

// DateRange is a half-open window [From, To) applied to booking dates and
// request dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Today returns the current day in server-local time: [midnight, midnight+1d).
func Today() DateRange {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{From: from, To: from.AddDate(0, 0, 1)}
}

// RangeFrom builds a window from "2006-01-02" form values. The end date is
// inclusive: the window runs to midnight after it. Empty or unparsable
// values fall back to Today.
func RangeFrom(start, end string) DateRange {
	if start == "" || end == "" {
		return Today()
	}
	from, err1 := time.ParseInLocation("2006-01-02", start, time.Local)
	to, err2 := time.ParseInLocation("2006-01-02", end, time.Local)
	if err1 != nil || err2 != nil {
		return Today()
	}
	return DateRange{From: from, To: to.AddDate(0, 0, 1)}
}
