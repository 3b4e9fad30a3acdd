package domain

import "time"

// NextCycleDate returns the nearest occurrence of the pulse weekday at or
// after today. If today falls on the target weekday it is returned as is.
func NextCycleDate(today time.Time, target time.Weekday) time.Time {
	days := (int(target) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, days)
}

// CurrentCycleStart returns the most recent occurrence of the pulse weekday
// at or before today.
func CurrentCycleStart(today time.Time, target time.Weekday) time.Time {
	days := (int(today.Weekday()) - int(target) + 7) % 7
	return today.AddDate(0, 0, -days)
}
