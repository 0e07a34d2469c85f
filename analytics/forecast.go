package analytics

import "math"

// Forecast projects the amount for one period beyond the last observed one
// by fitting an ordinary least-squares line over the time-ordered amounts.
// Fewer than two usable points, a degenerate fit or a negative projection
// all yield 0; the forecast never fails and is never negative.
func Forecast(nt NormalizedTable) float64 {
	y := trendSeries(nt)
	if len(y) < 2 {
		return 0
	}
	slope, intercept, ok := fitLine(y)
	if !ok {
		return 0
	}
	pred := slope*float64(len(y)) + intercept
	if math.IsNaN(pred) || math.IsInf(pred, 0) || pred < 0 {
		return 0
	}
	return pred
}

// fitLine computes the least-squares slope and intercept for y over
// x = 0..n-1.
func fitLine(y []float64) (slope, intercept float64, ok bool) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}
	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, true
}
