package report

import (
	"strings"
	"testing"

	"pfasscreen/pkg/domain"
)

func sampleComposition() domain.CompositionResult {
	return domain.CompositionResult{
		TotalPFAS: 2,
		PrimarySet: []domain.PrimarySpecies{
			{Name: "PFOA", Concentration: 1.5, Percent: 75, IsTop5: true},
			{Name: "GenX", Concentration: 0.2, Percent: 10, IsSecondary: true},
		},
		Top5CumulativePercent:     80,
		PrimarySetCoveragePercent: 85,
		OtherFractionPercent:      20,
		OperatingScenario:         "Standard",
	}
}

func TestTechnicalSummaryNoFlags(t *testing.T) {
	got := TechnicalSummary(sampleComposition(), domain.ReactivityResult{HighestClassification: domain.ClassProceed}, domain.MatrixScreening{
		Results: []domain.MatrixResult{{Parameter: "Chloride", Status: domain.MatrixConcern, Message: "high"}},
	}, domain.StatusProceed)

	for _, want := range []string{
		"OVERALL STATUS: PROCEED\n",
		"Total PFAS: 2.0000 mg/L\n",
		"  PFOA: 1.5000 mg/L (75.0%) [Top5]\n",
		"  GenX: 0.2000 mg/L (10.0%)\n",
		"Other Fraction: 20.0%\n",
		"--- REACTIVITY FLAGS (M2) ---\nNo flags triggered.\n\n",
		"[CONCERN] Chloride: high\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestBusinessEmailSections(t *testing.T) {
	m2 := domain.ReactivityResult{
		Flags: []domain.ReactivityFlag{
			{RuleID: "R1", Classification: domain.ClassCritical, Message: "critical one"},
			{RuleID: "R6", Classification: domain.ClassSpecialHandling, Message: "ether note"},
			{RuleID: "R99", Classification: domain.ClassProceed, Message: "proceed note"},
		},
		HighestClassification: domain.ClassCritical,
	}
	m3 := domain.MatrixScreening{Results: []domain.MatrixResult{
		{Status: domain.MatrixAcceptable, Message: "fine"},
		{Status: domain.MatrixManageable, Message: "manageable"},
		{Status: domain.MatrixMissing, Message: "missing data"},
	}}
	got := BusinessEmail(sampleComposition(), m2, m3, domain.StatusCritical)

	for _, want := range []string{
		"Subject: PFAS Pre-Feasibility Screening — CRITICAL\n\n",
		"• Primary species (2): PFOA, GenX\n",
		"• Primary set covers 85% of total\n",
		"⚠️ Critical Issues:\n• critical one\n\n",
		"Notes:\n• ether note\n\n",
		"Water Matrix Considerations:\n• missing data\n\n",
		"• Confirm species identification and treatment goals before proceeding\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("email missing %q:\n%s", want, got)
		}
	}
	for _, absent := range []string{"proceed note", "• fine", "• manageable"} {
		if strings.Contains(got, absent) {
			t.Fatalf("email should not contain %q:\n%s", absent, got)
		}
	}
	if !strings.HasSuffix(got, "\n\nBest regards") {
		t.Fatalf("email must end with the sign-off:\n%s", got)
	}
}

func TestBusinessEmailOmitsEmptySections(t *testing.T) {
	got := BusinessEmail(sampleComposition(), domain.ReactivityResult{}, domain.MatrixScreening{}, domain.StatusConditional)
	for _, absent := range []string{"Critical Issues", "Notes:", "Water Matrix Considerations"} {
		if strings.Contains(got, absent) {
			t.Fatalf("unexpected section %q:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "• Address matrix concerns before finalizing treatment design\n") {
		t.Fatalf("missing conditional next steps:\n%s", got)
	}
}
