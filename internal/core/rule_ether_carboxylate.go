package core

import "pfasscreen/pkg/domain"

// NewEtherCarboxylateRule flags ether carboxylates when no 2+2 PFESA is in the primary set.
func NewEtherCarboxylateRule(sig *Signatures) domain.ReactivityRule {
	return etherCarboxylateRule{sig: sig}
}

type etherCarboxylateRule struct{ sig *Signatures }

func (etherCarboxylateRule) ID() string                            { return "R6" }
func (etherCarboxylateRule) Name() string                          { return "Ether_Carboxylate_Check" }
func (etherCarboxylateRule) Classification() domain.Classification { return domain.ClassSpecialHandling }

func (r etherCarboxylateRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	set := view.PrimarySet()
	if !anyName(set, r.sig.IsEtherCarboxylate) || anyName(set, r.sig.IsPFESA2Plus2) {
		return domain.ReactivityFlag{}, false
	}
	return newFlag(r, "Ether PFAS (carboxylate) detected. No immediate composition-based concern."), true
}
