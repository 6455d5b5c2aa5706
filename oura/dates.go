package oura

import (
	"time"
)

const dateLayout = "2006-01-02"

// timeNow is swapped in tests to pin the default window.
var timeNow = time.Now

// resolveDateWindow turns optional ISO-8601 date strings into a concrete
// start/end pair. An empty end means today; an empty start means end
// minus one day. A window with start after end, or an unparseable date,
// is rejected before any request is sent.
func resolveDateWindow(start, end string) (string, string, error) {
	endDate := timeNow()
	if end != "" {
		parsed, err := time.Parse(dateLayout, end)
		if err != nil {
			return "", "", &DateRangeError{Start: start, End: end, Reason: "invalid end date"}
		}
		endDate = parsed
	}

	startDate := endDate.AddDate(0, 0, -1)
	if start != "" {
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return "", "", &DateRangeError{Start: start, End: end, Reason: "invalid start date"}
		}
		startDate = parsed
	}

	if startDate.After(endDate) {
		return "", "", &DateRangeError{Start: start, End: end, Reason: "start date must not be after end date"}
	}

	return startDate.Format(dateLayout), endDate.Format(dateLayout), nil
}
