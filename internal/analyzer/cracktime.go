package analyzer

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/genpass/internal/model"
)

// Scenario is a named attack rate.
type Scenario struct {
	Name             string
	GuessesPerSecond float64
}

// Attack scenarios, slowest first.
var Scenarios = []Scenario{
	{Name: "online_throttled", GuessesPerSecond: 1e3},
	{Name: "online_unthrottled", GuessesPerSecond: 1e6},
	{Name: "offline_slow", GuessesPerSecond: 1e9},
	{Name: "offline_fast", GuessesPerSecond: 1e12},
	{Name: "massive_cracking", GuessesPerSecond: 1e15},
}

const (
	minute = 60.0
	hour   = 60 * minute
	day    = 24 * hour
	year   = 365 * day

	centuryThreshold = 1000 * year
)

// CrackTimes estimates the time to exhaust a search space of bits for every scenario.
func CrackTimes(bits float64) []model.CrackTime {
	out := make([]model.CrackTime, 0, len(Scenarios))
	for _, s := range Scenarios {
		seconds := CrackSeconds(bits, s.GuessesPerSecond)
		out = append(out, model.CrackTime{
			Scenario:         s.Name,
			GuessesPerSecond: s.GuessesPerSecond,
			Seconds:          seconds,
			Log2Seconds:      bits - math.Log2(s.GuessesPerSecond),
			Display:          FormatDuration(seconds),
		})
	}
	return out
}

// CrackSeconds returns 2^bits / rate, saturating at math.MaxFloat64 once 2^bits
// overflows (about 1024 bits). CrackTime.Log2Seconds keeps ordering past that.
func CrackSeconds(bits, rate float64) float64 {
	seconds := math.Exp2(bits) / rate
	if math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return math.MaxFloat64
	}
	return seconds
}

// FormatDuration renders seconds as the largest fitting unit.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1:
		return "instant"
	case seconds < minute:
		return plural(math.Round(seconds), "second")
	case seconds < hour:
		return plural(math.Round(seconds/minute), "minute")
	case seconds < day:
		return plural(math.Round(seconds/hour), "hour")
	case seconds < year:
		return plural(math.Round(seconds/day), "day")
	case seconds < centuryThreshold:
		years := math.Round(seconds / year)
		if years == 1 {
			return "1 year"
		}
		return humanize.Comma(int64(years)) + " years"
	default:
		return "centuries"
	}
}

func plural(n float64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%.0f %ss", n, unit)
}
