package component

import "github.com/hollowmere/cardbound/core"

// KindComponent tags an entity with its simulation kind for targeting
// filters and event payloads
type KindComponent struct {
	Kind core.EntityKind
}
