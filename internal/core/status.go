package core

import "pfasscreen/pkg/domain"

// AggregateStatus combines reactivity and matrix outcomes. A CRITICAL flag
// wins over any matrix state.
func AggregateStatus(m2 domain.ReactivityResult, m3 domain.MatrixScreening) domain.OverallStatus {
	switch {
	case m2.Has(domain.ClassCritical):
		return domain.StatusCritical
	case m3.HasHighMatrix || m3.HasMissingRequired:
		return domain.StatusConditional
	default:
		return domain.StatusProceed
	}
}
