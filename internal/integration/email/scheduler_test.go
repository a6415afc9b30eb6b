package email

import (
	"testing"
	"time"
)

func TestDigestDayReached(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		day  int
		want bool
	}{
		{
			name: "before digest day",
			now:  time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC),
			day:  3,
			want: false,
		},
		{
			name: "on digest day",
			now:  time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			day:  3,
			want: true,
		},
		{
			name: "after digest day",
			now:  time.Date(2024, 7, 28, 23, 59, 0, 0, time.UTC),
			day:  3,
			want: true,
		},
		{
			name: "first of month with default day",
			now:  time.Date(2024, 8, 1, 0, 30, 0, 0, time.UTC),
			day:  1,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := digestDayReached(tt.now, tt.day); got != tt.want {
				t.Errorf("digestDayReached(%v, %d) = %v, want %v", tt.now, tt.day, got, tt.want)
			}
		})
	}
}

func TestNewDigestScheduler_ClampsDigestDay(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want int
	}{
		{name: "zero falls back to first", day: 0, want: 1},
		{name: "negative falls back to first", day: -3, want: 1},
		{name: "in range kept", day: 15, want: 15},
		{name: "past 28 capped", day: 31, want: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDigestScheduler(nil, SchedulerConfig{
				CheckInterval: time.Hour,
				DigestDay:     tt.day,
			})
			if s.digestDay != tt.want {
				t.Errorf("digestDay = %d, want %d", s.digestDay, tt.want)
			}
		})
	}
}
