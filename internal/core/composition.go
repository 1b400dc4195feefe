package core

import (
	"sort"

	"pfasscreen/pkg/domain"
)

const (
	top5Size                = 5
	secondaryPercentCutoff  = 5.0
	highLoadThreshold       = 50.0
	moderateLoadThreshold   = 10.0
	ultraTraceLoadThreshold = 0.001
)

// Operating scenarios reported by AnalyzeComposition.
const (
	ScenarioNone       = "No PFAS detected"
	ScenarioHigh       = "High concentration — extended treatment likely"
	ScenarioModerate   = "Moderate concentration"
	ScenarioUltraTrace = "Ultra-trace level"
	ScenarioStandard   = "Standard"
)

type rankedSpecies struct {
	name          string
	concentration float64
	percent       float64
}

// AnalyzeComposition ranks species by normalized concentration and derives
// the primary set. Species sharing a name collapse into the first,
// highest-ranked entry of the primary set.
func AnalyzeComposition(species []domain.Species) domain.CompositionResult {
	ranked := make([]rankedSpecies, len(species))
	for i, s := range species {
		ranked[i] = rankedSpecies{name: s.Name, concentration: NormalizeToMgL(s.Concentration, s.Unit)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].concentration > ranked[j].concentration
	})

	var total float64
	for _, s := range ranked {
		total += s.concentration
	}
	if total == 0 {
		return domain.CompositionResult{
			PrimarySet:           []domain.PrimarySpecies{},
			OtherFractionPercent: 100,
			OperatingScenario:    ScenarioNone,
		}
	}
	for i := range ranked {
		ranked[i].percent = ranked[i].concentration / total * 100
	}

	top5 := ranked[:min(top5Size, len(ranked))]
	top5Names := make(map[string]struct{}, len(top5))
	var top5Cumulative float64
	for _, s := range top5 {
		top5Cumulative += s.percent
		top5Names[s.name] = struct{}{}
	}

	secondaryNames := make(map[string]struct{})
	for _, s := range ranked[len(top5):] {
		if s.percent >= secondaryPercentCutoff {
			secondaryNames[s.name] = struct{}{}
		}
	}

	primary := make([]domain.PrimarySpecies, 0, len(top5)+len(secondaryNames))
	emitted := make(map[string]struct{}, cap(primary))
	var coverage float64
	for _, s := range ranked {
		_, inTop5 := top5Names[s.name]
		_, isSecondary := secondaryNames[s.name]
		if !inTop5 && !isSecondary {
			continue
		}
		if _, dup := emitted[s.name]; dup {
			continue
		}
		emitted[s.name] = struct{}{}
		coverage += s.percent
		primary = append(primary, domain.PrimarySpecies{
			Name:          s.name,
			Concentration: s.concentration,
			Percent:       s.percent,
			IsTop5:        inTop5,
			IsSecondary:   isSecondary,
		})
	}

	return domain.CompositionResult{
		TotalPFAS:                 total,
		PrimarySet:                primary,
		Top5CumulativePercent:     top5Cumulative,
		PrimarySetCoveragePercent: coverage,
		// Complement of the top-5 figure, not of primary-set coverage.
		OtherFractionPercent: 100 - top5Cumulative,
		OperatingScenario:    operatingScenario(total),
	}
}

func operatingScenario(total float64) string {
	switch {
	case total > highLoadThreshold:
		return ScenarioHigh
	case total > moderateLoadThreshold:
		return ScenarioModerate
	case total < ultraTraceLoadThreshold:
		return ScenarioUltraTrace
	default:
		return ScenarioStandard
	}
}
