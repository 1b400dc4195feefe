// Package domain defines the sample, water-matrix and screening result types,
// together with the reactivity rule primitives used by pfasscreen.
package domain

// Unit identifies the concentration unit attached to a species measurement.
type Unit string

// Supported concentration units. Any other label is treated as mg/L.
const (
	UnitMgL Unit = "mg/L"
	UnitUgL Unit = "µg/L"
	UnitNgL Unit = "ng/L"
	UnitPPM Unit = "ppm"
)

// Classification ranks a reactivity flag. See Rank for the fixed priority order.
type Classification string

// Reactivity classifications, highest priority first.
const (
	// ClassCritical marks species the treatment technology cannot destroy.
	ClassCritical Classification = "CRITICAL"
	// ClassCommercial marks a commercially relevant capability.
	ClassCommercial Classification = "COMMERCIAL"
	// ClassTechnical marks kinetics concerns.
	ClassTechnical       Classification = "TECHNICAL"
	ClassPathway         Classification = "PATHWAY"
	ClassSpecialHandling Classification = "SPECIAL_HANDLING"
	ClassProceed         Classification = "PROCEED"
)

// MatrixStatus is the outcome of a single water-matrix check.
type MatrixStatus string

// Matrix check outcomes.
const (
	MatrixAcceptable MatrixStatus = "acceptable"
	MatrixHigh       MatrixStatus = "high"
	MatrixManageable MatrixStatus = "manageable"
	MatrixModerate   MatrixStatus = "moderate"
	MatrixConcern    MatrixStatus = "concern"
	// MatrixMissing reports that a required parameter group was not supplied.
	MatrixMissing MatrixStatus = "missing"
)

// OverallStatus is the aggregated screening verdict.
type OverallStatus string

// Overall screening verdicts.
const (
	StatusCritical    OverallStatus = "CRITICAL"
	StatusConditional OverallStatus = "CONDITIONAL"
	StatusProceed     OverallStatus = "PROCEED"
)

// Species is a single PFAS measurement as supplied by the caller.
type Species struct {
	Name          string  `json:"name" yaml:"name"`
	Concentration float64 `json:"concentration" yaml:"concentration"`
	Unit          Unit    `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// WaterMatrix holds optional water-chemistry parameters. A nil field means the
// parameter was not measured, which is distinct from a measured zero.
type WaterMatrix struct {
	COD                    *float64 `json:"cod,omitempty" yaml:"cod,omitempty"`
	TOC                    *float64 `json:"toc,omitempty" yaml:"toc,omitempty"`
	NO3AsN                 *float64 `json:"no3_as_n,omitempty" yaml:"no3_as_n,omitempty"`
	NO2AsN                 *float64 `json:"no2_as_n,omitempty" yaml:"no2_as_n,omitempty"`
	NO3Ion                 *float64 `json:"no3_ion,omitempty" yaml:"no3_ion,omitempty"`
	NO2Ion                 *float64 `json:"no2_ion,omitempty" yaml:"no2_ion,omitempty"`
	UV254                  *float64 `json:"uv254,omitempty" yaml:"uv254,omitempty"`
	UVT254                 *float64 `json:"uvt254,omitempty" yaml:"uvt254,omitempty"`
	Chloride               *float64 `json:"chloride,omitempty" yaml:"chloride,omitempty"`
	Fluoride               *float64 `json:"fluoride,omitempty" yaml:"fluoride,omitempty"` // mg/L
	Hardness               *float64 `json:"hardness,omitempty" yaml:"hardness,omitempty"` // mg/L as CaCO3
	SampleColor            *string  `json:"sample_color,omitempty" yaml:"sample_color,omitempty"`
	PrecipitationIndicator *bool    `json:"precipitation_indicator,omitempty" yaml:"precipitation_indicator,omitempty"`
}

// EngineInput is the complete input of one screening run.
type EngineInput struct {
	Species       []Species   `json:"species" yaml:"species"`
	Matrix        WaterMatrix `json:"matrix" yaml:"matrix"`
	TreatmentGoal string      `json:"treatment_goal,omitempty" yaml:"treatment_goal,omitempty"`
	SampleID      string      `json:"sample_id,omitempty" yaml:"sample_id,omitempty"`
}

// PrimarySpecies is a member of the primary set with its normalized concentration.
type PrimarySpecies struct {
	Name          string  `json:"name" yaml:"name"`
	Concentration float64 `json:"concentration_mg_l" yaml:"concentration_mg_l"`
	Percent       float64 `json:"percent" yaml:"percent"`
	IsTop5        bool    `json:"is_top5" yaml:"is_top5"`
	IsSecondary   bool    `json:"is_secondary" yaml:"is_secondary"`
}

// ReactivityFlag reports a fired reactivity rule.
type ReactivityFlag struct {
	RuleID         string         `json:"rule_id" yaml:"rule_id"`
	RuleName       string         `json:"rule_name" yaml:"rule_name"`
	Classification Classification `json:"classification" yaml:"classification"`
	Message        string         `json:"message" yaml:"message"`
}

// MatrixResult reports the outcome of one matrix parameter check.
type MatrixResult struct {
	Parameter string       `json:"parameter" yaml:"parameter"`
	Status    MatrixStatus `json:"status" yaml:"status"`
	Message   string       `json:"message" yaml:"message"`
}

// CompositionResult is the M1 composition summary.
type CompositionResult struct {
	TotalPFAS                 float64          `json:"total_pfas_mg_l" yaml:"total_pfas_mg_l"`
	PrimarySet                []PrimarySpecies `json:"primary_set" yaml:"primary_set"`
	Top5CumulativePercent     float64          `json:"top5_cumulative_percent" yaml:"top5_cumulative_percent"`
	PrimarySetCoveragePercent float64          `json:"primary_set_coverage_percent" yaml:"primary_set_coverage_percent"`
	OtherFractionPercent      float64          `json:"other_fraction_percent" yaml:"other_fraction_percent"`
	OperatingScenario         string           `json:"operating_scenario" yaml:"operating_scenario"`
}

// ReactivityResult is the M2 reactivity screening outcome.
type ReactivityResult struct {
	Flags                 []ReactivityFlag `json:"flags" yaml:"flags"`
	HighestClassification Classification   `json:"highest_classification" yaml:"highest_classification"`
}

// MatrixScreening is the M3 water-matrix screening outcome.
type MatrixScreening struct {
	Results            []MatrixResult `json:"results" yaml:"results"`
	HasMissingRequired bool           `json:"has_missing_required" yaml:"has_missing_required"`
	HasHighMatrix      bool           `json:"has_high_matrix" yaml:"has_high_matrix"`
}

// EngineOutput is the complete result of one screening run.
type EngineOutput struct {
	SampleID           string            `json:"sample_id,omitempty" yaml:"sample_id,omitempty"`
	M1                 CompositionResult `json:"m1" yaml:"m1"`
	M2                 ReactivityResult  `json:"m2" yaml:"m2"`
	M3                 MatrixScreening   `json:"m3" yaml:"m3"`
	OverallStatus      OverallStatus     `json:"overall_status" yaml:"overall_status"`
	TechnicalSummary   string            `json:"technical_summary" yaml:"technical_summary"`
	BusinessEmailDraft string            `json:"business_email_draft" yaml:"business_email_draft"`
}

// Float returns a pointer to v, for building WaterMatrix literals.
func Float(v float64) *float64 { return &v }
