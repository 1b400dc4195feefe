package core

import "pfasscreen/pkg/domain"

const (
	proceedMinorPercent = 1.0
	proceedMaxTotal     = 50.0
)

// NewProceedRule emits the PROCEED flag when every primary species is a PFCA
// or individually below 1% of total, and total PFAS is below 50 mg/L. It is
// registered as the engine fallback so it only runs when nothing else fired.
func NewProceedRule(sig *Signatures) domain.ReactivityRule {
	return proceedRule{sig: sig}
}

type proceedRule struct{ sig *Signatures }

func (proceedRule) ID() string                            { return "R99" }
func (proceedRule) Name() string                          { return "Proceed_Condition" }
func (proceedRule) Classification() domain.Classification { return domain.ClassProceed }

func (r proceedRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	if view.TotalPFAS() >= proceedMaxTotal {
		return domain.ReactivityFlag{}, false
	}
	for _, s := range view.PrimarySet() {
		if !r.sig.IsPFCA(s.Name) && s.Percent >= proceedMinorPercent {
			return domain.ReactivityFlag{}, false
		}
	}
	return newFlag(r, "No composition-based concern. Proceed."), true
}
