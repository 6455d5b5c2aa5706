package oura

import (
	"errors"
	"testing"
	"time"
)

func TestResolveDateWindow(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time {
		return time.Date(2025, time.February, 12, 9, 30, 0, 0, time.UTC)
	}
	defer func() { timeNow = restore }()

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "both given",
			start:     "2025-02-01",
			end:       "2025-02-07",
			wantStart: "2025-02-01",
			wantEnd:   "2025-02-07",
		},
		{
			name:      "equal dates",
			start:     "2025-02-07",
			end:       "2025-02-07",
			wantStart: "2025-02-07",
			wantEnd:   "2025-02-07",
		},
		{
			name:      "both omitted defaults to yesterday and today",
			wantStart: "2025-02-11",
			wantEnd:   "2025-02-12",
		},
		{
			name:      "end omitted defaults to today",
			start:     "2025-02-05",
			wantStart: "2025-02-05",
			wantEnd:   "2025-02-12",
		},
		{
			name:      "start omitted defaults to end minus one day",
			end:       "2025-02-07",
			wantStart: "2025-02-06",
			wantEnd:   "2025-02-07",
		},
		{
			name:    "start after end",
			start:   "2025-02-12",
			end:     "2025-02-11",
			wantErr: true,
		},
		{
			name:    "unparseable start",
			start:   "02/11/2025",
			end:     "2025-02-12",
			wantErr: true,
		},
		{
			name:    "unparseable end",
			start:   "2025-02-11",
			end:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd, err := resolveDateWindow(tt.start, tt.end)
			if tt.wantErr {
				var rangeErr *DateRangeError
				if !errors.As(err, &rangeErr) {
					t.Fatalf("error = %v, want *DateRangeError", err)
				}
				if rangeErr.Start != tt.start || rangeErr.End != tt.end {
					t.Errorf("raw inputs = (%q, %q), want (%q, %q)",
						rangeErr.Start, rangeErr.End, tt.start, tt.end)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveDateWindow() error = %v", err)
			}
			if gotStart != tt.wantStart || gotEnd != tt.wantEnd {
				t.Errorf("resolveDateWindow() = (%q, %q), want (%q, %q)",
					gotStart, gotEnd, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
