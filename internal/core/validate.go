package core

import (
	"fmt"
	"math"
	"strings"

	"pfasscreen/pkg/domain"
)

// ValidationError reports input the service refuses to screen.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PrepareInput applies the caller-side filtering expected in front of the
// engine: names and free text are trimmed, rows with an empty name or a zero
// concentration are dropped. Negative, NaN or infinite concentrations and
// matrix values are rejected. The input is not modified.
func PrepareInput(in domain.EngineInput) (domain.EngineInput, error) {
	out := domain.EngineInput{
		Matrix:        in.Matrix,
		TreatmentGoal: strings.TrimSpace(in.TreatmentGoal),
		SampleID:      strings.TrimSpace(in.SampleID),
		Species:       make([]domain.Species, 0, len(in.Species)),
	}
	for i, s := range in.Species {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		if err := checkMeasurement(fmt.Sprintf("species[%d] %q concentration", i, name), s.Concentration); err != nil {
			return domain.EngineInput{}, err
		}
		if s.Concentration == 0 {
			continue
		}
		out.Species = append(out.Species, domain.Species{Name: name, Concentration: s.Concentration, Unit: s.Unit})
	}
	if err := validateMatrix(in.Matrix); err != nil {
		return domain.EngineInput{}, err
	}
	return out, nil
}

func validateMatrix(m domain.WaterMatrix) error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"matrix.cod", m.COD},
		{"matrix.toc", m.TOC},
		{"matrix.no3_as_n", m.NO3AsN},
		{"matrix.no2_as_n", m.NO2AsN},
		{"matrix.no3_ion", m.NO3Ion},
		{"matrix.no2_ion", m.NO2Ion},
		{"matrix.uv254", m.UV254},
		{"matrix.uvt254", m.UVT254},
		{"matrix.chloride", m.Chloride},
		{"matrix.fluoride", m.Fluoride},
		{"matrix.hardness", m.Hardness},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := checkMeasurement(f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

func checkMeasurement(field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return ValidationError{Field: field, Reason: "not a number"}
	case math.IsInf(v, 0):
		return ValidationError{Field: field, Reason: "infinite"}
	case v < 0:
		return ValidationError{Field: field, Reason: fmt.Sprintf("negative value %g", v)}
	}
	return nil
}
