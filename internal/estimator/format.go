package estimator

import "strconv"

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	year   = 365 * day
)

type unit struct {
	seconds float64
	label   string
}

// units is ordered largest first; Format picks the first one reached.
var units = []unit{
	{year * 1e12, "trillion years"},
	{year * 1e9, "billion years"},
	{year * 1e6, "million years"},
	{year * 1e3, "thousand years"},
	{year, "years"},
	{day, "days"},
	{hour, "hours"},
	{minute, "minutes"},
	{1, "seconds"},
}

// SaturatedDisplay is shown when the estimate exceeds saturationSeconds.
const SaturatedDisplay = "trillion+ years"

// saturationSeconds is the largest value rendered numerically. Beyond 1e15
// trillion years float64 cannot hold two decimals anyway.
const saturationSeconds = year * 1e12 * 1e15

// Format renders seconds in the largest unit whose threshold it reaches,
// with two decimals, e.g. "3.15 thousand years". Values below one second
// render as Instant.
func Format(seconds float64) string {
	if seconds >= saturationSeconds {
		return SaturatedDisplay
	}
	for _, u := range units {
		if seconds >= u.seconds {
			return strconv.FormatFloat(seconds/u.seconds, 'f', 2, 64) + " " + u.label
		}
	}
	return Instant
}
