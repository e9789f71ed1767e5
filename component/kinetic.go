package component

// KineticComponent is the entity's movable body: position and velocity in
// continuous arena space. The owning entity has exclusive write access
type KineticComponent struct {
	X, Y       float64
	VelX, VelY float64
}
