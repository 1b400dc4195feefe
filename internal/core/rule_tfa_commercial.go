package core

import "pfasscreen/pkg/domain"

// NewTFACommercialRule flags TFA in the primary set. The treatment goal is not consulted.
func NewTFACommercialRule(sig *Signatures) domain.ReactivityRule {
	return tfaCommercialRule{sig: sig}
}

type tfaCommercialRule struct{ sig *Signatures }

func (tfaCommercialRule) ID() string                            { return "R3" }
func (tfaCommercialRule) Name() string                          { return "TFA_Commercial" }
func (tfaCommercialRule) Classification() domain.Classification { return domain.ClassCommercial }

func (r tfaCommercialRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	if !anyName(view.PrimarySet(), r.sig.IsTFA) {
		return domain.ReactivityFlag{}, false
	}
	return newFlag(r, "TFA detected. Highlight differentiated TFA capability."), true
}
