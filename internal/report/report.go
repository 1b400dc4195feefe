// Package report renders screening outcomes as plain-text documents. It holds
// no decision logic: every figure it prints has already been computed.
package report

import (
	"fmt"
	"strings"

	"pfasscreen/pkg/domain"
)

// TechnicalSummary renders the structured engineering summary.
func TechnicalSummary(m1 domain.CompositionResult, m2 domain.ReactivityResult, m3 domain.MatrixScreening, status domain.OverallStatus) string {
	var b strings.Builder
	b.WriteString("=== PFAS TREATABILITY PRE-FEASIBILITY SCREENING ===\n\n")
	fmt.Fprintf(&b, "OVERALL STATUS: %s\n\n", status)

	b.WriteString("--- PFAS COMPOSITION (M1) ---\n")
	fmt.Fprintf(&b, "Total PFAS: %.4f mg/L\n", m1.TotalPFAS)
	fmt.Fprintf(&b, "Operating Scenario: %s\n", m1.OperatingScenario)
	fmt.Fprintf(&b, "Top-5 Cumulative: %.1f%%\n", m1.Top5CumulativePercent)
	fmt.Fprintf(&b, "Primary Set Coverage: %.1f%%\n\n", m1.PrimarySetCoveragePercent)
	b.WriteString("Primary Set:\n")
	for _, s := range m1.PrimarySet {
		fmt.Fprintf(&b, "  %s: %.4f mg/L (%.1f%%)", s.Name, s.Concentration, s.Percent)
		if s.IsTop5 {
			b.WriteString(" [Top5]")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nOther Fraction: %.1f%%\n\n", m1.OtherFractionPercent)

	b.WriteString("--- REACTIVITY FLAGS (M2) ---\n")
	if len(m2.Flags) == 0 {
		b.WriteString("No flags triggered.\n\n")
	} else {
		for _, f := range m2.Flags {
			fmt.Fprintf(&b, "[%s] %s: %s\n", f.Classification, f.RuleName, f.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("--- WATER MATRIX (M3) ---\n")
	for _, r := range m3.Results {
		fmt.Fprintf(&b, "[%s] %s: %s\n", strings.ToUpper(string(r.Status)), r.Parameter, r.Message)
	}
	return b.String()
}

// BusinessEmail renders a draft email for a non-technical audience.
func BusinessEmail(m1 domain.CompositionResult, m2 domain.ReactivityResult, m3 domain.MatrixScreening, status domain.OverallStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: PFAS Pre-Feasibility Screening — %s\n\n", status)
	b.WriteString("Hi team,\n\n")
	b.WriteString("Here's a summary of the PFAS pre-feasibility screening:\n\n")

	names := make([]string, len(m1.PrimarySet))
	for i, s := range m1.PrimarySet {
		names[i] = s.Name
	}
	b.WriteString("PFAS Profile:\n")
	fmt.Fprintf(&b, "• Total PFAS: %.4f mg/L\n", m1.TotalPFAS)
	fmt.Fprintf(&b, "• Primary species (%d): %s\n", len(names), strings.Join(names, ", "))
	fmt.Fprintf(&b, "• Primary set covers %.0f%% of total\n\n", m1.PrimarySetCoveragePercent)

	var critical, notes []string
	for _, f := range m2.Flags {
		switch f.Classification {
		case domain.ClassCritical:
			critical = append(critical, f.Message)
		case domain.ClassProceed:
		default:
			notes = append(notes, f.Message)
		}
	}
	writeBullets(&b, "⚠️ Critical Issues:", critical)
	writeBullets(&b, "Notes:", notes)

	var caveats []string
	for _, r := range m3.Results {
		if r.Status != domain.MatrixAcceptable && r.Status != domain.MatrixManageable {
			caveats = append(caveats, r.Message)
		}
	}
	writeBullets(&b, "Water Matrix Considerations:", caveats)

	fmt.Fprintf(&b, "Overall Assessment: %s\n\n", status)
	b.WriteString("Next Steps:\n")
	for _, step := range nextSteps(status) {
		fmt.Fprintf(&b, "• %s\n", step)
	}
	b.WriteString("\nBest regards")
	return b.String()
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
	b.WriteString("\n")
}

func nextSteps(status domain.OverallStatus) []string {
	switch status {
	case domain.StatusCritical:
		return []string{
			"Confirm species identification and treatment goals before proceeding",
			"Additional consultation required for critical species",
		}
	case domain.StatusConditional:
		return []string{
			"Provide missing water quality data (COD/TOC, NO3/NO2) for complete assessment",
			"Address matrix concerns before finalizing treatment design",
		}
	default:
		return []string{
			"Proceed to detailed treatability study design",
			"Request bench-scale testing parameters",
		}
	}
}
