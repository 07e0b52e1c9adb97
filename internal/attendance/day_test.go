package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ali44ashhad/contractor/internal/attendance"
)

func TestDayKey(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	tests := []struct {
		name  string
		value time.Time
		want  time.Time
	}{
		{
			name:  "utc midnight stays put",
			value: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "late evening utc same day",
			value: time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC),
			want:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "local morning before utc midnight",
			value: time.Date(2026, 3, 10, 5, 30, 0, 0, jakarta),
			want:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "local afternoon after utc midnight",
			value: time.Date(2026, 3, 10, 14, 0, 0, 0, jakarta),
			want:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attendance.DayKey(tt.value)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDayKeyIdempotent(t *testing.T) {
	value := time.Date(2026, 7, 1, 18, 45, 0, 0, time.FixedZone("IST", 5*3600+1800))
	once := attendance.DayKey(value)
	twice := attendance.DayKey(once)
	assert.True(t, once.Equal(twice))
}

func TestDayRange(t *testing.T) {
	start, end := attendance.DayRange(time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC))

	assert.True(t, start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
