package core

import (
	"fmt"
	"math"

	"pfasscreen/pkg/domain"
)

const pfsaFractionThreshold = 20.0

// NewPFSAKineticsRule flags a primary set whose PFSA share exceeds 20% of total PFAS.
func NewPFSAKineticsRule(sig *Signatures) domain.ReactivityRule {
	return pfsaKineticsRule{sig: sig}
}

type pfsaKineticsRule struct{ sig *Signatures }

func (pfsaKineticsRule) ID() string                            { return "R4" }
func (pfsaKineticsRule) Name() string                          { return "PFSA_Kinetics" }
func (pfsaKineticsRule) Classification() domain.Classification { return domain.ClassTechnical }

func (r pfsaKineticsRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	var fraction float64
	for _, s := range view.PrimarySet() {
		if r.sig.IsPFSA(s.Name) {
			fraction += s.Percent
		}
	}
	if fraction <= pfsaFractionThreshold {
		return domain.ReactivityFlag{}, false
	}
	// Rounded half up.
	msg := fmt.Sprintf("PFSA fraction >%d%% in Primary Set. Reaction rate may be impacted.", int(math.Floor(fraction+0.5)))
	return newFlag(r, msg), true
}
