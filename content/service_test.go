package content

import "testing"

func TestMissingEnemyFallsBack(t *testing.T) {
	s := NewService()
	p := s.EnemyProfile("does-not-exist")
	if p == nil {
		t.Fatal("missing profile must substitute the fallback, not nil")
	}
	if p.Behavior != BehaviorPassive {
		t.Errorf("fallback behavior = %v, want passive", p.Behavior)
	}
	if p.AttackDamage != 0 {
		t.Errorf("fallback must be harmless, got damage %v", p.AttackDamage)
	}
}

func TestMissingAbilityFallsBack(t *testing.T) {
	s := NewService()
	a := s.Ability("does-not-exist")
	if a == nil {
		t.Fatal("missing ability must substitute the fallback, not nil")
	}
	if a.MaxCharges != 0 {
		t.Errorf("fallback ability must have zero charges, got %d", a.MaxCharges)
	}
	if a.HasSecondary() {
		t.Error("fallback ability must not declare a secondary effect")
	}
}

func TestDefaultServiceRegistrations(t *testing.T) {
	s := DefaultService()

	kinds := map[string]BehaviorKind{
		"stalker": BehaviorAggressive,
		"thrall":  BehaviorDefensive,
		"husk":    BehaviorPassive,
		"warden":  BehaviorGuardian,
		"skitter": BehaviorSwarm,
	}
	for kind, behavior := range kinds {
		p := s.EnemyProfile(kind)
		if p.Kind != kind {
			t.Errorf("profile %q resolved to %q (fallback?)", kind, p.Kind)
		}
		if p.Behavior != behavior {
			t.Errorf("profile %q behavior = %v, want %v", kind, p.Behavior, behavior)
		}
		if p.AggroDropRange < p.DetectionRange {
			t.Errorf("profile %q aggro drop range %v below detection range %v",
				kind, p.AggroDropRange, p.DetectionRange)
		}
	}

	if len(s.AbilityIDs()) != 4 {
		t.Errorf("default service has %d abilities, want 4", len(s.AbilityIDs()))
	}

	// Infinite-lifetime card must not declare a countdown
	bulwark := s.Ability("grave-bulwark")
	if bulwark.Lifetime > 0 {
		t.Errorf("grave-bulwark lifetime = %v, want infinite (<= 0)", bulwark.Lifetime)
	}
}
