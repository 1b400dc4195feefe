package core

import "pfasscreen/pkg/domain"

// NewTFMSCriticalRule flags TFMS in the primary set or the treatment goal.
func NewTFMSCriticalRule(sig *Signatures) domain.ReactivityRule {
	return tfmsCriticalRule{sig: sig}
}

type tfmsCriticalRule struct{ sig *Signatures }

func (tfmsCriticalRule) ID() string                            { return "R1" }
func (tfmsCriticalRule) Name() string                          { return "TFMS_Critical" }
func (tfmsCriticalRule) Classification() domain.Classification { return domain.ClassCritical }

func (r tfmsCriticalRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	if !anyName(view.PrimarySet(), r.sig.IsTFMS) && !r.sig.IsTFMS(view.TreatmentGoal()) {
		return domain.ReactivityFlag{}, false
	}
	return newFlag(r, "TFMS detected. Technology cannot treat TFMS. Confirm whether TFMS is part of primary goal."), true
}
