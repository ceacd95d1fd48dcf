package metrology

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

var ErrInvalidCoverageFactor = errors.New("invalid coverage factor")

// DefaultCoverageFactor is the usual k for a ~95% confidence level.
const DefaultCoverageFactor = 2.0

// Round4 rounds to 4 decimal places, the precision used on certificates.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// PointError is the per-point calibration error: measured minus reference.
func PointError(referenceValue, measuredValue float64) float64 {
	return Round4(measuredValue - referenceValue)
}

// Combined is the combined indicator √(error² + uncertainty²), the quantity
// judged against the acceptance criterion by the reviewer.
func Combined(err, uncertainty float64) float64 {
	return Round4(math.Sqrt(err*err + uncertainty*uncertainty))
}

// ExpandedUncertainty derives a combined expanded uncertainty (type-B model)
// from a certificate-stated standard uncertainty, the device resolution and a
// coverage factor k:
//
//	u_standard   = standardUncertainty / k
//	u_resolution = resolution / √12
//	U            = √(u_standard² + u_resolution²) * k
//
// k must be non-zero.
func ExpandedUncertainty(standardUncertainty, resolution, k float64) (float64, error) {
	if k == 0 {
		return 0, ErrInvalidCoverageFactor
	}
	uStd := standardUncertainty / k
	uRes := resolution / math.Sqrt(12)
	uCombined := math.Sqrt(uStd*uStd + uRes*uRes)
	return Round4(uCombined * k), nil
}

var resolutionToken = regexp.MustCompile(`[\d.]+`)

// ParseResolution extracts the leading numeric token of a free-text resolution
// string ("0.01 mm" → 0.01). Returns 0 when no number is present.
func ParseResolution(resolution string) float64 {
	tok := resolutionToken.FindString(resolution)
	if tok == "" {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0
	}
	return v
}
