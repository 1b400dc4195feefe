package domain

import "testing"

func TestClassificationRankOrder(t *testing.T) {
	order := Classifications()
	for i, c := range order {
		if c.Rank() != i {
			t.Fatalf("expected %s at rank %d, got %d", c, i, c.Rank())
		}
	}
	if Classification("BOGUS").Rank() != len(order) {
		t.Fatalf("unknown classification should rank last")
	}
	order[0] = ClassProceed
	if Classifications()[0] != ClassCritical {
		t.Fatalf("Classifications must return a copy")
	}
}

func TestHighestPrefersCritical(t *testing.T) {
	flags := []ReactivityFlag{
		{RuleID: "R4", Classification: ClassTechnical},
		{RuleID: "R1", Classification: ClassCritical},
	}
	if got := Highest(flags); got != ClassCritical {
		t.Fatalf("expected CRITICAL, got %s", got)
	}
}

func TestHighestDefaultsToProceed(t *testing.T) {
	if got := Highest(nil); got != ClassProceed {
		t.Fatalf("expected PROCEED, got %s", got)
	}
}

type staticView struct {
	set   []PrimarySpecies
	total float64
	goal  string
}

func (v staticView) PrimarySet() []PrimarySpecies { return v.set }
func (v staticView) TotalPFAS() float64           { return v.total }
func (v staticView) TreatmentGoal() string        { return v.goal }

type staticRule struct {
	id    string
	class Classification
	fire  bool
}

func (r staticRule) ID() string                     { return r.id }
func (r staticRule) Name() string                   { return r.id + "_rule" }
func (r staticRule) Classification() Classification { return r.class }

func (r staticRule) Evaluate(RuleView) (ReactivityFlag, bool) {
	if !r.fire {
		return ReactivityFlag{}, false
	}
	return ReactivityFlag{RuleID: r.id, RuleName: r.Name(), Classification: r.class}, true
}

func TestRulesEngineEvaluatesEveryRule(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(staticRule{id: "A", class: ClassPathway, fire: true})
	engine.Register(staticRule{id: "B", class: ClassCommercial, fire: false})
	engine.Register(staticRule{id: "C", class: ClassCommercial, fire: true})
	engine.SetFallback(staticRule{id: "Z", class: ClassProceed, fire: true})

	res := engine.Evaluate(staticView{})
	if len(res.Flags) != 2 || res.Flags[0].RuleID != "A" || res.Flags[1].RuleID != "C" {
		t.Fatalf("unexpected flags %+v", res.Flags)
	}
	if res.HighestClassification != ClassCommercial {
		t.Fatalf("expected COMMERCIAL, got %s", res.HighestClassification)
	}
	if res.Has(ClassProceed) {
		t.Fatalf("fallback must not run when another rule fired")
	}
}

func TestRulesEngineFallback(t *testing.T) {
	engine := NewRulesEngine()
	engine.Register(staticRule{id: "A", class: ClassCritical})
	engine.SetFallback(staticRule{id: "Z", class: ClassProceed, fire: true})

	res := engine.Evaluate(staticView{})
	if len(res.Flags) != 1 || res.Flags[0].RuleID != "Z" {
		t.Fatalf("expected fallback flag, got %+v", res.Flags)
	}

	rules := engine.Rules()
	if len(rules) != 2 || !rules[1].Fallback || rules[0].Fallback {
		t.Fatalf("unexpected rule listing %+v", rules)
	}
}

func TestRulesEngineNoFlags(t *testing.T) {
	res := NewRulesEngine().Evaluate(staticView{})
	if len(res.Flags) != 0 {
		t.Fatalf("expected no flags")
	}
	if res.HighestClassification != ClassProceed {
		t.Fatalf("expected PROCEED default without flag, got %s", res.HighestClassification)
	}
}
