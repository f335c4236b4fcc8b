package chronofmt

import "time"

// smartWindow is the recency window within which the relative format wins.
const smartWindow = 24.0

// selectFormat picks the output format for an instant based on its distance
// from now. Instants within the last 24 hours, and all future instants,
// render relatively; older instants in the current calendar year keep the
// year implicit; everything else spells the year out.
func selectFormat(now, instant time.Time) FormatName {
	elapsedHours := now.Sub(instant).Hours()

	switch {
	case elapsedHours <= smartWindow:
		return FormatRelative
	case instant.Year() == now.Year():
		return FormatMonthDayTime
	default:
		return FormatFull
	}
}
