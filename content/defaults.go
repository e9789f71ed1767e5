package content

import "time"

// DefaultService returns a registry populated with the stock enemy kinds
// and the four card abilities
func DefaultService() *Service {
	s := NewService()

	s.RegisterEnemy(&EnemyProfile{
		Kind:           "stalker",
		Behavior:       BehaviorAggressive,
		MaxHealth:      30,
		MoveSpeed:      9,
		DetectionRange: 8,
		AggroDropRange: 14,
		AttackRange:    1.5,
		AttackDamage:   6,
		AttackInterval: 900 * time.Millisecond,
		Experience:     12,
		EnergyYield:    5,
	})

	s.RegisterEnemy(&EnemyProfile{
		Kind:           "thrall",
		Behavior:       BehaviorDefensive,
		MaxHealth:      45,
		MoveSpeed:      7,
		DetectionRange: 6,
		AggroDropRange: 18,
		AttackRange:    1.5,
		AttackDamage:   9,
		AttackInterval: 1200 * time.Millisecond,
		Experience:     18,
		EnergyYield:    8,
	})

	s.RegisterEnemy(&EnemyProfile{
		Kind:           "husk",
		Behavior:       BehaviorPassive,
		MaxHealth:      20,
		MoveSpeed:      0,
		DetectionRange: 0,
		AggroDropRange: 0,
		AttackRange:    0,
		AttackDamage:   0,
		AttackInterval: time.Second,
		Experience:     4,
		EnergyYield:    2,
	})

	s.RegisterEnemy(&EnemyProfile{
		Kind:           "warden",
		Behavior:       BehaviorGuardian,
		MaxHealth:      60,
		MoveSpeed:      6,
		DetectionRange: 10,
		AggroDropRange: 16,
		AttackRange:    2,
		AttackDamage:   12,
		AttackInterval: 1500 * time.Millisecond,
		Experience:     30,
		EnergyYield:    12,
	})

	s.RegisterEnemy(&EnemyProfile{
		Kind:           "skitter",
		Behavior:       BehaviorSwarm,
		MaxHealth:      12,
		MoveSpeed:      11,
		DetectionRange: 9,
		AggroDropRange: 15,
		AttackRange:    1.2,
		AttackDamage:   3,
		AttackInterval: 700 * time.Millisecond,
		Experience:     6,
		EnergyYield:    3,
	})

	s.RegisterAbility(&AbilityDef{
		ID:                "ember-sprite",
		Name:              "Ember Sprite",
		EnergyCost:        20,
		MaxCharges:        3,
		SummonHealth:      25,
		Lifetime:          12 * time.Second,
		Secondary:         SecondaryAreaNova,
		SecondaryCooldown: 3 * time.Second,
		SecondaryRadius:   5,
		SecondaryPower:    10,
	})

	s.RegisterAbility(&AbilityDef{
		ID:                "verdant-wisp",
		Name:              "Verdant Wisp",
		EnergyCost:        25,
		MaxCharges:        2,
		SummonHealth:      18,
		Lifetime:          15 * time.Second,
		Secondary:         SecondaryAreaHeal,
		SecondaryCooldown: 4 * time.Second,
		SecondaryRadius:   6,
		SecondaryPower:    15,
	})

	s.RegisterAbility(&AbilityDef{
		ID:           "grave-bulwark",
		Name:         "Grave Bulwark",
		EnergyCost:   35,
		MaxCharges:   1,
		SummonHealth: 80,
		Lifetime:     0, // infinite, no countdown
		Secondary:    SecondaryNone,
	})

	s.RegisterAbility(&AbilityDef{
		ID:                "thornling",
		Name:              "Thornling",
		EnergyCost:        15,
		MaxCharges:        4,
		SummonHealth:      14,
		Lifetime:          8 * time.Second,
		Secondary:         SecondaryAreaNova,
		SecondaryCooldown: 2 * time.Second,
		SecondaryRadius:   3,
		SecondaryPower:    6,
	})

	return s
}
