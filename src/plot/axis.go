package plot

import (
	"math"
	"strconv"
)

// ComputeChartDimensions applies the width/height clamp rules used for charts.
// Input: desired raw width. Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.36)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// NiceMax rounds max up to the next multiple of its order of magnitude (or half of it),
// so a linear axis starting at 0 ends on a readable value.
func NiceMax(max float64) float64 {
	if math.IsNaN(max) || max <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(max)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if v := m * mag; v >= max {
			return v
		}
	}
	return 10 * mag
}

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a 1,2,2.5,5 pattern.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// IntegerTicks is BuildNumericTicks over [0,max] for axes that only take whole values,
// such as in-degrees. A fractional step is rounded up to a whole one.
func IntegerTicks(max float64, n int) []float64 {
	ticks := BuildNumericTicks(0, max, n)
	if len(ticks) < 2 {
		return ticks
	}
	step := ticks[1] - ticks[0]
	if step == math.Trunc(step) {
		return ticks
	}
	step = math.Ceil(step)
	end := math.Ceil(max/step) * step
	if end < step {
		end = step
	}
	var out []float64
	for v := 0.0; v <= end; v += step {
		out = append(out, v)
	}
	return out
}

// DecadeBounds returns the exponents of the decades enclosing the positive values in ys,
// e.g. [3, 766] gives (0, 3). ok is false when ys holds no positive value.
func DecadeBounds(ys ...[]float64) (lo, hi int, ok bool) {
	minPos, maxPos := math.Inf(1), math.Inf(-1)
	for _, s := range ys {
		for _, v := range s {
			if v > 0 && !math.IsInf(v, 1) {
				minPos = math.Min(minPos, v)
				maxPos = math.Max(maxPos, v)
			}
		}
	}
	if math.IsInf(minPos, 1) {
		return 0, 1, false
	}
	// snap values that sit on a decade within float error
	lo = int(math.Floor(math.Log10(minPos) + 1e-9))
	hi = int(math.Ceil(math.Log10(maxPos) - 1e-9))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi, true
}

// FormatNumericTick provides a compact axis label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
	case av >= 1:
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

func trimZeros(s string) string {
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// round6 rounds to 6 decimal places to stabilize labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
