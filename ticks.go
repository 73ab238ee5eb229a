package fccee

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places round labelled ticks with minor ticks in between, and
// labels them without the float noise of plot.DefaultTicks.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.NSuggestedTicks
	if n < 2 {
		n = 4
	}
	if max <= min {
		return []plot.Tick{{Value: min, Label: formatTick(min)}}
	}

	mult, major := majorStep(max-min, n)
	prec := int(math.Ceil(math.Log10(math.Max(math.Abs(min), math.Abs(max))+major)) - math.Floor(math.Log10(major)))

	var ticks []plot.Tick
	labelled := make(map[float64]bool)
	for _, v := range steps(min, max, major, prec) {
		labelled[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}

	minor := major / float64(minorDivisions(mult))
	for _, v := range steps(min, max, minor, prec+1) {
		if !labelled[v] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// steps lists the multiples of delta in [min, max], rounded to prec digits.
// Multiples are counted, not accumulated.
func steps(min, max, delta float64, prec int) []float64 {
	const eps = 1e-9
	var vals []float64
	for k := math.Ceil(min/delta - eps); k*delta <= max+delta*eps; k++ {
		vals = append(vals, round(k*delta, prec))
	}
	return vals
}

// majorStep picks the spacing between labelled ticks for a range, as a
// multiplier of a power of ten.
func majorStep(span float64, n int) (int, float64) {
	tens := math.Pow10(int(math.Floor(math.Log10(span))))
	for span/tens < float64(n-1) {
		tens /= 10
	}

	mult := int(span / tens / float64(n-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	if mult < 1 {
		mult = 1
	}
	return mult, float64(mult) * tens
}

func minorDivisions(mult int) int {
	switch mult {
	case 3, 6:
		return 3
	case 5:
		return 5
	}
	return 2
}

// round rounds x half away from zero to prec decimal digits and never
// returns negative zero.
func round(x float64, prec int) float64 {
	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	if r := math.Round(scaled) / pow; r != 0 {
		return r
	}
	return 0
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
