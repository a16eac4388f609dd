package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "instant"},
		{0.99, "instant"},
		{1, "1 second"},
		{45, "45 seconds"},
		{90, "2 minutes"},
		{3600, "1 hour"},
		{5 * hour, "5 hours"},
		{3 * day, "3 days"},
		{2 * year, "2 years"},
		{999.6 * year, "1,000 years"},
		{1000 * year, "centuries"},
		{math.MaxFloat64, "centuries"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.seconds), "seconds=%v", tc.seconds)
	}
}

func TestCrackTimesScenarios(t *testing.T) {
	times := CrackTimes(10)
	require.Len(t, times, len(Scenarios))
	for i, s := range Scenarios {
		assert.Equal(t, s.Name, times[i].Scenario)
		assert.InDelta(t, 1024/s.GuessesPerSecond, times[i].Seconds, 1e-12)
	}
	assert.Equal(t, "1 second", times[0].Display)
	assert.Equal(t, "instant", times[4].Display)
}

func TestCrackTimesDeterministic(t *testing.T) {
	assert.Equal(t, CrackTimes(57.3), CrackTimes(57.3))
}

func TestCrackTimesStrictlyDecreaseWithEntropy(t *testing.T) {
	for _, s := range Scenarios {
		prev := math.Inf(1)
		for bits := 200.0; bits >= 0; bits -= 0.5 {
			cur := CrackSeconds(bits, s.GuessesPerSecond)
			assert.Less(t, cur, prev, "%s at %v bits", s.Name, bits)
			prev = cur
		}
	}
}

func TestCrackSecondsSaturates(t *testing.T) {
	assert.Equal(t, math.MaxFloat64, CrackSeconds(5000, 1e3))
}

func TestCrackTimesLog2SecondsPastSaturation(t *testing.T) {
	low, high := CrackTimes(1500), CrackTimes(2000)
	for i := range low {
		assert.Equal(t, math.MaxFloat64, low[i].Seconds)
		assert.Equal(t, "centuries", high[i].Display)
		assert.Greater(t, high[i].Log2Seconds, low[i].Log2Seconds)
	}
	assert.InDelta(t, 1500-math.Log2(1e3), low[0].Log2Seconds, 1e-9)

	small := CrackTimes(40)
	for _, ct := range small {
		assert.InDelta(t, math.Log2(ct.Seconds), ct.Log2Seconds, 1e-9)
	}
}
