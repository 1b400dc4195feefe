package core

import (
	"regexp"
	"strconv"
	"strings"
)

// Signatures holds the chemical-family keyword tables used by the reactivity
// rules. Keywords are lowercase and matched as substrings of the lowercased
// species name. A Signatures value is never mutated after construction.
type Signatures struct {
	TFA               []string
	TFMS              []string
	PFESA2Plus2       []string
	PFESA2Plus2Except []string
	EtherCarboxylate  []string
	PFSA              []string
	PFCA              []string
	Telomer           *regexp.Regexp
}

// DefaultSignatures returns the built-in signature tables.
func DefaultSignatures() *Signatures {
	return &Signatures{
		TFA:  []string{"tfa", "trifluoroacetic acid", "trifluoroacetate", "cf3cooh", "cf3coo-", "76-05-1"},
		TFMS: []string{"tfms", "trifluoromethanesulfonate", "trifluoromethanesulfonic acid", "triflate", "cf3so3-", "cf3so3h", "1493-13-6", "358-23-6"},
		PFESA2Plus2: []string{
			"perfluoro(2-ethoxyethane)sulfonic acid",
			"perfluoro(2-ethoxyethane)sulfonate",
			"2+2 pfesa",
			"2:2 pfesa",
			"113507-82-7",
		},
		PFESA2Plus2Except: []string{"f-53b", "73606-19-6"},
		EtherCarboxylate:  []string{"hfpo-da", "genx", "adona", "f-53b", "13252-13-6", "919005-14-4"},
		PFSA:              []string{"pfos", "pfbs", "pfhxs", "pfds", "pfsa"},
		PFCA:              []string{"pfoa", "pfba", "pfpa", "pfhxa", "pfhpa", "pfna", "pfda", "pfunda", "pfdoa", "pftrdea", "pfca"},
		Telomer:           regexp.MustCompile(`(?i)\b(\d+):(\d+)\s*(ftsa|ftca)\b`),
	}
}

func containsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsTFA reports whether name belongs to the trifluoroacetic acid family.
func (s *Signatures) IsTFA(name string) bool { return containsAny(name, s.TFA) }

// IsTFMS reports whether name belongs to the trifluoromethanesulfonate family.
func (s *Signatures) IsTFMS(name string) bool { return containsAny(name, s.TFMS) }

// IsPFESA2Plus2 reports whether name is a 2+2 perfluoroether sulfonate. Names
// carrying an exclusion keyword never match.
func (s *Signatures) IsPFESA2Plus2(name string) bool {
	if containsAny(name, s.PFESA2Plus2Except) {
		return false
	}
	return containsAny(name, s.PFESA2Plus2)
}

func (s *Signatures) IsEtherCarboxylate(name string) bool { return containsAny(name, s.EtherCarboxylate) }
func (s *Signatures) IsPFSA(name string) bool             { return containsAny(name, s.PFSA) }
func (s *Signatures) IsPFCA(name string) bool             { return containsAny(name, s.PFCA) }

// TelomerChain returns the first chain-length number of the first
// fluorotelomer match in name (e.g. 6 for "6:2 FTSA").
func (s *Signatures) TelomerChain(name string) (int, bool) {
	m := s.Telomer.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
