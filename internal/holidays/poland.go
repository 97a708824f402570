package holidays

import (
	"sync"
	"time"
)

// PolishCalendar lists the statutory public holidays of Poland. Years are
// computed lazily and cached, since the movable feasts require the Easter
// date.
type PolishCalendar struct {
	mu    sync.Mutex
	years map[int]map[time.Time]struct{}
}

func Poland() *PolishCalendar {
	return &PolishCalendar{years: make(map[int]map[time.Time]struct{})}
}

func (c *PolishCalendar) IsHoliday(t time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	year := t.Year()
	days, ok := c.years[year]
	if !ok {
		days = polishHolidays(year)
		c.years[year] = days
	}

	_, ok = days[time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)]
	return ok
}

func polishHolidays(year int) map[time.Time]struct{} {
	easter := easterSunday(year)

	dates := []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),   // Nowy Rok
		time.Date(year, time.January, 6, 0, 0, 0, 0, time.UTC),   // Trzech Króli
		easter,                                                   // Wielkanoc
		easter.AddDate(0, 0, 1),                                  // Poniedziałek Wielkanocny
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),       // Święto Pracy
		time.Date(year, time.May, 3, 0, 0, 0, 0, time.UTC),       // Święto Konstytucji
		easter.AddDate(0, 0, 49),                                 // Zielone Świątki
		easter.AddDate(0, 0, 60),                                 // Boże Ciało
		time.Date(year, time.August, 15, 0, 0, 0, 0, time.UTC),   // Wniebowzięcie NMP
		time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC),  // Wszystkich Świętych
		time.Date(year, time.November, 11, 0, 0, 0, 0, time.UTC), // Święto Niepodległości
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), // Boże Narodzenie
		time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC), // Drugi dzień świąt
	}

	days := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		days[d] = struct{}{}
	}
	return days
}

// easterSunday computes the Gregorian Easter date using the anonymous
// Meeus/Jones/Butcher algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
