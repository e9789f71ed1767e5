package content

import (
	"log"
	"sort"
	"time"
)

// Service is the read-only registry of enemy profiles and ability
// definitions. A missing entry logs loudly and substitutes the fallback
// fixture so one malformed reference cannot halt the simulation tick
type Service struct {
	enemies   map[string]*EnemyProfile
	abilities map[string]*AbilityDef

	fallbackEnemy   *EnemyProfile
	fallbackAbility *AbilityDef
}

// NewService creates an empty registry with safe fallback fixtures
func NewService() *Service {
	return &Service{
		enemies:   make(map[string]*EnemyProfile),
		abilities: make(map[string]*AbilityDef),

		fallbackEnemy: &EnemyProfile{
			Kind:           "fallback",
			Behavior:       BehaviorPassive,
			MaxHealth:      10,
			MoveSpeed:      0,
			DetectionRange: 0,
			AggroDropRange: 0,
			AttackRange:    0,
			AttackDamage:   0,
			AttackInterval: time.Second,
		},
		fallbackAbility: &AbilityDef{
			ID:           "fallback",
			Name:         "Fallback",
			EnergyCost:   0,
			MaxCharges:   0,
			SummonHealth: 1,
			Lifetime:     time.Second,
			Secondary:    SecondaryNone,
		},
	}
}

// RegisterEnemy adds a profile; later registrations replace earlier ones
func (s *Service) RegisterEnemy(p *EnemyProfile) {
	s.enemies[p.Kind] = p
}

// RegisterAbility adds an ability definition
func (s *Service) RegisterAbility(a *AbilityDef) {
	s.abilities[a.ID] = a
}

// EnemyProfile resolves a profile by kind, falling back on miss
func (s *Service) EnemyProfile(kind string) *EnemyProfile {
	if p, ok := s.enemies[kind]; ok {
		return p
	}
	log.Printf("content: missing enemy profile %q, substituting fallback", kind)
	return s.fallbackEnemy
}

// Ability resolves an ability definition by id, falling back on miss
func (s *Service) Ability(id string) *AbilityDef {
	if a, ok := s.abilities[id]; ok {
		return a
	}
	log.Printf("content: missing ability %q, substituting fallback", id)
	return s.fallbackAbility
}

// AbilityIDs returns the registered ability ids in sorted order so
// deck-building from the registry is deterministic
func (s *Service) AbilityIDs() []string {
	ids := make([]string, 0, len(s.abilities))
	for id := range s.abilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
