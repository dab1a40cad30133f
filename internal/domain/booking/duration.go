package booking

import "time"

// CivilDate drops the clock part of t, keeping its wall-clock date as midnight UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndDate adds count units to start. Month and year arithmetic clamps the day to the last
// day of the target month, so Jan 31 + 1 month is Feb 28 (29 in leap years).
func EndDate(start time.Time, count int, unit DurationUnit) (time.Time, error) {
	if count <= 0 {
		return time.Time{}, ErrInvalidDuration
	}
	start = CivilDate(start)

	switch unit {
	case UnitDaily:
		return start.AddDate(0, 0, count), nil
	case UnitMonthly:
		return addMonthsClamped(start, count), nil
	case UnitYearly:
		return addMonthsClamped(start, count*12), nil
	default:
		return time.Time{}, ErrInvalidDurationUnit
	}
}

func addMonthsClamped(start time.Time, months int) time.Time {
	y, m, d := start.Date()
	// day 1 never overflows, so time.Date normalizes only the month
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
