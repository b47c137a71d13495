package branding

// The document stores corner radius in rem while editors work in px.
// 16px = 1rem; /16 is exact in binary floating point, so integer px values
// survive the round trip without drift.
const remFactor = 16

// RadiusToRem converts an edited pixel value to the stored rem value.
func RadiusToRem(px float64) float64 {
	return px / remFactor
}

// RadiusToPx converts a stored rem value back to the edited pixel value.
func RadiusToPx(rem float64) float64 {
	return rem * remFactor
}
