package domain

// classificationPriority is the fixed total order of reactivity classifications.
var classificationPriority = [...]Classification{
	ClassCritical,
	ClassCommercial,
	ClassTechnical,
	ClassPathway,
	ClassSpecialHandling,
	ClassProceed,
}

// Rank returns the position of c in the priority order, 0 being the most
// severe. Unknown classifications rank after PROCEED.
func (c Classification) Rank() int {
	for i, p := range classificationPriority {
		if p == c {
			return i
		}
	}
	return len(classificationPriority)
}

// Classifications returns the priority order, most severe first.
func Classifications() []Classification {
	out := make([]Classification, len(classificationPriority))
	copy(out, classificationPriority[:])
	return out
}

// Highest returns the first classification in priority order that appears
// among flags. It is PROCEED when no flag fired.
func Highest(flags []ReactivityFlag) Classification {
	for _, p := range classificationPriority {
		for _, f := range flags {
			if f.Classification == p {
				return p
			}
		}
	}
	return ClassProceed
}

// Has reports whether any flag carries classification c.
func (r ReactivityResult) Has(c Classification) bool {
	for _, f := range r.Flags {
		if f.Classification == c {
			return true
		}
	}
	return false
}

// RuleView provides read-only access to the composition outcome during
// reactivity rule evaluation.
type RuleView interface {
	PrimarySet() []PrimarySpecies
	TotalPFAS() float64
	TreatmentGoal() string
}

// ReactivityRule is a single composition-based screening rule.
type ReactivityRule interface {
	ID() string
	Name() string
	Classification() Classification
	Evaluate(view RuleView) (ReactivityFlag, bool)
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Classification Classification `json:"classification" yaml:"classification"`
	Fallback       bool           `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// RulesEngine orchestrates reactivity rule evaluation. Rules are evaluated in
// registration order and every rule runs regardless of earlier outcomes. The
// fallback rule runs only when no other rule fired.
type RulesEngine struct {
	rules    []ReactivityRule
	fallback ReactivityRule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule ReactivityRule) {
	e.rules = append(e.rules, rule)
}

// SetFallback installs the rule evaluated when nothing else fired.
func (e *RulesEngine) SetFallback(rule ReactivityRule) {
	e.fallback = rule
}

// Evaluate executes all registered rules and aggregates their flags.
func (e *RulesEngine) Evaluate(view RuleView) ReactivityResult {
	flags := make([]ReactivityFlag, 0, len(e.rules))
	for _, rule := range e.rules {
		if flag, ok := rule.Evaluate(view); ok {
			flags = append(flags, flag)
		}
	}
	if len(flags) == 0 && e.fallback != nil {
		if flag, ok := e.fallback.Evaluate(view); ok {
			flags = append(flags, flag)
		}
	}
	return ReactivityResult{Flags: flags, HighestClassification: Highest(flags)}
}

// Rules lists registered rules in evaluation order, fallback last.
func (e *RulesEngine) Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(e.rules)+1)
	for _, r := range e.rules {
		out = append(out, RuleInfo{ID: r.ID(), Name: r.Name(), Classification: r.Classification()})
	}
	if e.fallback != nil {
		out = append(out, RuleInfo{ID: e.fallback.ID(), Name: e.fallback.Name(), Classification: e.fallback.Classification(), Fallback: true})
	}
	return out
}
