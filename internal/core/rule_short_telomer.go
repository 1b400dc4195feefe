package core

import (
	"fmt"

	"pfasscreen/pkg/domain"
)

const shortTelomerMaxChain = 4

// NewShortTelomerRule flags the first primary species that is a short-chain
// fluorotelomer (first chain number below 4).
func NewShortTelomerRule(sig *Signatures) domain.ReactivityRule {
	return shortTelomerRule{sig: sig}
}

type shortTelomerRule struct{ sig *Signatures }

func (shortTelomerRule) ID() string                            { return "R5" }
func (shortTelomerRule) Name() string                          { return "Short_Telomer_Pathway" }
func (shortTelomerRule) Classification() domain.Classification { return domain.ClassPathway }

func (r shortTelomerRule) Evaluate(view domain.RuleView) (domain.ReactivityFlag, bool) {
	for _, s := range view.PrimarySet() {
		if chain, ok := r.sig.TelomerChain(s.Name); ok && chain < shortTelomerMaxChain {
			msg := fmt.Sprintf("Short fluorotelomer detected (%s). Oxidation often preferred over reduction.", s.Name)
			return newFlag(r, msg), true
		}
	}
	return domain.ReactivityFlag{}, false
}
