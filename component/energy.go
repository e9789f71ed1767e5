package component

// EnergyComponent is the player's ability-gating resource
// Regenerates toward Max at Regen per second while alive
type EnergyComponent struct {
	Current float64
	Max     float64
	Regen   float64
}
