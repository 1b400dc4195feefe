package core

import "pfasscreen/pkg/domain"

// DemoInput returns the fixed demonstration sample used to bootstrap a
// caller's UI. Each call returns a fresh value.
func DemoInput() domain.EngineInput {
	return domain.EngineInput{
		Species: []domain.Species{
			{Name: "PFOA", Concentration: 0.0045, Unit: domain.UnitMgL},
			{Name: "PFOS", Concentration: 0.0032, Unit: domain.UnitMgL},
			{Name: "PFHxS", Concentration: 0.0018, Unit: domain.UnitMgL},
			{Name: "PFBA", Concentration: 0.0012, Unit: domain.UnitMgL},
			{Name: "PFHxA", Concentration: 0.0008, Unit: domain.UnitMgL},
			{Name: "PFNA", Concentration: 0.0004, Unit: domain.UnitMgL},
			{Name: "PFDA", Concentration: 0.0002, Unit: domain.UnitMgL},
		},
		Matrix: domain.WaterMatrix{
			COD:      domain.Float(85),
			TOC:      domain.Float(32),
			NO3AsN:   domain.Float(3.2),
			NO2AsN:   domain.Float(0.05),
			Chloride: domain.Float(180),
			Fluoride: domain.Float(12),
			Hardness: domain.Float(220),
		},
	}
}
