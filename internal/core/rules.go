package core

import "pfasscreen/pkg/domain"

// NewDefaultRulesEngine builds a rules engine with the built-in reactivity
// rule set, in evaluation order, and the proceed rule as fallback.
func NewDefaultRulesEngine(sig *Signatures) *domain.RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(NewTFMSCriticalRule(sig))
	engine.Register(NewPFESACriticalRule(sig))
	engine.Register(NewTFACommercialRule(sig))
	engine.Register(NewPFSAKineticsRule(sig))
	engine.Register(NewShortTelomerRule(sig))
	engine.Register(NewEtherCarboxylateRule(sig))
	engine.SetFallback(NewProceedRule(sig))
	return engine
}

// screeningView exposes an M1 outcome and the treatment goal to the rules.
type screeningView struct {
	primary []domain.PrimarySpecies
	total   float64
	goal    string
}

func (v screeningView) PrimarySet() []domain.PrimarySpecies { return v.primary }
func (v screeningView) TotalPFAS() float64                  { return v.total }
func (v screeningView) TreatmentGoal() string               { return v.goal }

func anyName(set []domain.PrimarySpecies, match func(string) bool) bool {
	for _, s := range set {
		if match(s.Name) {
			return true
		}
	}
	return false
}

func newFlag(rule domain.ReactivityRule, msg string) domain.ReactivityFlag {
	return domain.ReactivityFlag{
		RuleID:         rule.ID(),
		RuleName:       rule.Name(),
		Classification: rule.Classification(),
		Message:        msg,
	}
}
