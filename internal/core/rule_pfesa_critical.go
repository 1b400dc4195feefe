package core

import "pfasscreen/pkg/domain"

// NewPFESACriticalRule flags 2+2 PFESA in the primary set or the treatment goal.
func NewPFESACriticalRule(sig *Signatures) domain.ReactivityRule {
	return pfesaCriticalRule{sig: sig}
}

type pfesaCriticalRule struct{ sig *Signatures }

func (pfesaCriticalRule) ID() string                            { return "R2" }
func (pfesaCriticalRule) Name() string                          { return "PFESA_2plus2_Critical" }
func (pfesaCriticalRule) Classification() domain.Classification { return domain.ClassCritical }

func (r pfesaCriticalRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	if !anyName(view.PrimarySet(), r.sig.IsPFESA2Plus2) && !r.sig.IsPFESA2Plus2(view.TreatmentGoal()) {
		return domain.ReactivityFlag{}, false
	}
	return newFlag(r, "2+2 PFESA detected. Technology cannot treat 2+2 PFESA. Confirm whether this is a primary goal."), true
}
