package attendance

import "time"

// DayKey menormalkan timestamp apapun ke kunci hari kanonik: UTC midnight.
// Semua derivasi attendance dan grid report memakai kunci yang sama.
func DayKey(value time.Time) time.Time {
	utc := value.UTC()
	year, month, day := utc.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayRange mengembalikan [start, end) satu hari penuh untuk kunci hari value.
func DayRange(value time.Time) (time.Time, time.Time) {
	start := DayKey(value)
	return start, start.AddDate(0, 0, 1)
}
