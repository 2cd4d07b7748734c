package payroll

import "time"

// Brazil dropped daylight saving in 2019, so the reference timezone is a
// fixed UTC-3 offset. All calendar-day decisions happen in this zone to
// avoid off-by-one errors around midnight.
var referenceTZ = time.FixedZone("America/Sao_Paulo", -3*60*60)

// periodBounds returns the first and last calendar day of the month, at
// midnight in the reference timezone.
func periodBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, referenceTZ)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// nextPeriod returns the month following the given one.
func nextPeriod(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}

// dateKey collapses a timestamp to its calendar day in the reference zone.
func dateKey(t time.Time) string {
	return t.In(referenceTZ).Format("2006-01-02")
}

// holidaySet indexes holiday dates by calendar day.
func holidaySet(dates []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[dateKey(d)] = struct{}{}
	}
	return set
}

// CountWorkingDays counts weekday (Mon-Fri) calendar dates of the month that
// are not holidays. from, when set, floors the range (hire month); now caps
// the end of the current month at today so future days are never counted.
func CountWorkingDays(month, year int, from *time.Time, now time.Time, holidays map[string]struct{}) int {
	start, end := periodBounds(month, year)

	if from != nil {
		f := from.In(referenceTZ)
		f = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, referenceTZ)
		if f.After(start) {
			start = f
		}
	}

	today := now.In(referenceTZ)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, referenceTZ)
	if today.Year() == year && int(today.Month()) == month && today.Before(end) {
		end = today
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, ok := holidays[dateKey(d)]; ok {
			continue
		}
		count++
	}
	return count
}
