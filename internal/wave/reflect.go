package wave

// ResetSpreads is how many spreads past the left edge a reflected pulse may
// travel before the animation restarts.
const ResetSpreads = 5.0

// MirrorCenter returns the virtual center of the pulse reflected at a
// free end located at boundary: 2R - C.
func MirrorCenter(incident, boundary float64) float64 {
	return 2*boundary - incident
}

// Reflect returns the free-end reflection of p about boundary. The
// reflected pulse keeps the sign of the incident one.
func Reflect(p Pulse, boundary float64) Pulse {
	p.Center = MirrorCenter(p.Center, boundary)
	return p
}

// Expired reports whether a reflected pulse has left the visible domain far
// enough that the animation should restart.
func Expired(reflected Pulse) bool {
	return reflected.Center < -ResetSpreads*reflected.Spread
}
