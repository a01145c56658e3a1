package numberutils

import "strconv"

// Placeholder is rendered in place of an absent value.
const Placeholder = "—"

// FormatFloat formats v with the fewest digits that represent it exactly,
// so 27.5 stays "27.5" and 70 becomes "70".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatOptional formats v, or returns Placeholder when v is nil.
func FormatOptional(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return FormatFloat(*v)
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}
