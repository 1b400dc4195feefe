package core

import (
	"pfasscreen/internal/report"
	"pfasscreen/pkg/domain"
)

// Engine runs the screening pipeline. It holds only read-only tables and is
// safe for concurrent use.
type Engine struct {
	signatures *Signatures
	rules      *domain.RulesEngine
}

// NewEngine constructs an engine from signature tables and a rules engine.
// Nil arguments select the defaults.
func NewEngine(sig *Signatures, rules *domain.RulesEngine) *Engine {
	if sig == nil {
		sig = DefaultSignatures()
	}
	if rules == nil {
		rules = NewDefaultRulesEngine(sig)
	}
	return &Engine{signatures: sig, rules: rules}
}

// NewDefaultEngine builds an engine with the built-in signatures and rules.
func NewDefaultEngine() *Engine {
	return NewEngine(nil, nil)
}

// Signatures returns the engine's signature tables.
func (e *Engine) Signatures() *Signatures { return e.signatures }

// Rules lists the reactivity rules in evaluation order.
func (e *Engine) Rules() []domain.RuleInfo { return e.rules.Rules() }

// Classify runs the reactivity rules against a composition outcome.
func (e *Engine) Classify(m1 domain.CompositionResult, treatmentGoal string) domain.ReactivityResult {
	return e.rules.Evaluate(screeningView{primary: m1.PrimarySet, total: m1.TotalPFAS, goal: treatmentGoal})
}

// Run screens one sample. It never fails: every input yields a complete output.
func (e *Engine) Run(in domain.EngineInput) domain.EngineOutput {
	m1 := AnalyzeComposition(in.Species)
	m2 := e.Classify(m1, in.TreatmentGoal)
	m3 := ScreenMatrix(in.Matrix)
	status := AggregateStatus(m2, m3)
	return domain.EngineOutput{
		SampleID:           in.SampleID,
		M1:                 m1,
		M2:                 m2,
		M3:                 m3,
		OverallStatus:      status,
		TechnicalSummary:   report.TechnicalSummary(m1, m2, m3, status),
		BusinessEmailDraft: report.BusinessEmail(m1, m2, m3, status),
	}
}
