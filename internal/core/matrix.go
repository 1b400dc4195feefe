package core

import (
	"fmt"
	"strconv"
	"strings"

	"pfasscreen/pkg/domain"
)

// Matrix parameter labels.
const (
	ParamOrganics = "Organics (COD/TOC)"
	ParamNitrogen = "Nitrate/Nitrite"
	ParamChloride = "Chloride"
	ParamFluoride = "Fluoride"
	ParamHardness = "Hardness"
)

const (
	codHighThreshold      = 250.0
	tocHighThreshold      = 100.0
	nitrateNToIon         = 4.43
	nitriteNToIon         = 3.29
	nitrogenManageableMax = 1.0
	nitrogenModerateMax   = 20.0
	chlorideConcern       = 1000.0
	fluorideConcern       = 100.0
	hardnessConcern       = 100.0
)

// ScreenMatrix evaluates the water-matrix parameters. Organics and
// nitrate/nitrite are required groups; the remaining checks only appear when
// their parameter was supplied.
func ScreenMatrix(m domain.WaterMatrix) domain.MatrixScreening {
	out := domain.MatrixScreening{Results: make([]domain.MatrixResult, 0, 5)}
	screenOrganics(m, &out)
	screenNitrogen(m, &out)
	if m.Chloride != nil {
		out.Results = append(out.Results, concernCheck(ParamChloride, *m.Chloride, chlorideConcern,
			"Chloride > 1000 mg/L (%s). Engineering corrosion concern.",
			"Chloride within range (%s mg/L)."))
	}
	if m.Fluoride != nil {
		out.Results = append(out.Results, concernCheck(ParamFluoride, *m.Fluoride, fluorideConcern,
			"Fluoride > 100 mg/L (%s). TOF quantification uncertainty likely increased.",
			"Fluoride within range (%s mg/L)."))
	}
	if m.Hardness != nil {
		out.Results = append(out.Results, concernCheck(ParamHardness, *m.Hardness, hardnessConcern,
			"Hardness > 100 ppm (%s). Precipitation likely during caustic dosing.",
			"Hardness within range (%s ppm)."))
	}
	return out
}

func screenOrganics(m domain.WaterMatrix, out *domain.MatrixScreening) {
	if m.COD == nil && m.TOC == nil {
		out.HasMissingRequired = true
		out.Results = append(out.Results, domain.MatrixResult{
			Parameter: ParamOrganics,
			Status:    domain.MatrixMissing,
			Message:   "COD and TOC not provided. Cannot assess organic load.",
		})
		return
	}
	high := (m.COD != nil && *m.COD > codHighThreshold) || (m.TOC != nil && *m.TOC > tocHighThreshold)
	if !high {
		var b strings.Builder
		b.WriteString("Organics within acceptable range.")
		if m.COD != nil {
			fmt.Fprintf(&b, " COD: %s mg/L.", formatValue(*m.COD))
		}
		if m.TOC != nil {
			fmt.Fprintf(&b, " TOC: %s mg/L.", formatValue(*m.TOC))
		}
		out.Results = append(out.Results, domain.MatrixResult{Parameter: ParamOrganics, Status: domain.MatrixAcceptable, Message: b.String()})
		return
	}
	parts := make([]string, 0, 2)
	if m.COD != nil {
		parts = append(parts, "COD: "+formatValue(*m.COD))
	}
	if m.TOC != nil {
		parts = append(parts, "TOC: "+formatValue(*m.TOC))
	}
	out.HasHighMatrix = true
	out.Results = append(out.Results, domain.MatrixResult{
		Parameter: ParamOrganics,
		Status:    domain.MatrixHigh,
		Message:   fmt.Sprintf("Organic load high (%s mg/L). Pretreatment likely required. Extend project timeline to ~8 weeks.", strings.Join(parts, ", ")),
	})
}

// NitrogenIonEquivalents returns nitrate and nitrite as ion-equivalent mg/L.
// An as-N value, when present, replaces the corresponding ion value.
func NitrogenIonEquivalents(m domain.WaterMatrix) (no3, no2 *float64) {
	no3, no2 = m.NO3Ion, m.NO2Ion
	if m.NO3AsN != nil {
		no3 = domain.Float(*m.NO3AsN * nitrateNToIon)
	}
	if m.NO2AsN != nil {
		no2 = domain.Float(*m.NO2AsN * nitriteNToIon)
	}
	return no3, no2
}

func screenNitrogen(m domain.WaterMatrix, out *domain.MatrixScreening) {
	no3, no2 := NitrogenIonEquivalents(m)
	if no3 == nil && no2 == nil {
		out.HasMissingRequired = true
		out.Results = append(out.Results, domain.MatrixResult{
			Parameter: ParamNitrogen,
			Status:    domain.MatrixMissing,
			Message:   "Nitrate and Nitrite not provided. Cannot assess inhibition risk.",
		})
		return
	}
	var worst float64
	if no3 != nil {
		worst = *no3
	}
	if no2 != nil && *no2 > worst {
		worst = *no2
	}
	switch {
	case worst < nitrogenManageableMax:
		out.Results = append(out.Results, domain.MatrixResult{
			Parameter: ParamNitrogen,
			Status:    domain.MatrixManageable,
			Message:   fmt.Sprintf("Competition impact manageable (worst case: %.2f mg/L).", worst),
		})
	case worst <= nitrogenModerateMax:
		out.Results = append(out.Results, domain.MatrixResult{
			Parameter: ParamNitrogen,
			Status:    domain.MatrixModerate,
			Message:   fmt.Sprintf("Moderate inhibition (worst case: %.1f mg/L). Adjust reagent ratio to overcome inhibition.", worst),
		})
	default:
		out.HasHighMatrix = true
		out.Results = append(out.Results, domain.MatrixResult{
			Parameter: ParamNitrogen,
			Status:    domain.MatrixHigh,
			Message:   fmt.Sprintf("High nitrate/nitrite (%.1f mg/L). Pretreatment (e.g., electrochemical reduction) required.", worst),
		})
	}
}

// concernCheck never sets HasHighMatrix.
func concernCheck(param string, value, threshold float64, concernMsg, okMsg string) domain.MatrixResult {
	if value > threshold {
		return domain.MatrixResult{Parameter: param, Status: domain.MatrixConcern, Message: fmt.Sprintf(concernMsg, formatValue(value))}
	}
	return domain.MatrixResult{Parameter: param, Status: domain.MatrixAcceptable, Message: fmt.Sprintf(okMsg, formatValue(value))}
}

// formatValue renders a supplied measurement in its shortest decimal form.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
