// Package holidays provides country-specific public holiday calendars used by
// the schedule generator to exclude non-working days and to compute the
// monthly full-time hour baseline.
package holidays

import "time"

type Calendar interface {
	IsHoliday(t time.Time) bool
}
