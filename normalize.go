package msdftext

// Normalize maps value linearly from [inMin, inMax] onto [outMin, outMax].
// Values outside the input range are extrapolated. An empty input range
// maps everything to outMin.
func Normalize(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
