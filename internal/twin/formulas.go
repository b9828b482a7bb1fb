package twin

import (
	"sort"
	"strings"
)

// FormulaEntry describes how a data-driven metric is derived from the
// geometrical and physical models.
type FormulaEntry struct {
	Metric      MetricID `yaml:"metric" json:"metric"`
	Formula     string   `yaml:"formula" json:"formula"`
	Calculation string   `yaml:"calculation" json:"calculation"`
	Geometrical []string `yaml:"geometrical,omitempty" json:"geometrical"`
	Physical    []string `yaml:"physical,omitempty" json:"physical"`
}

var formulas = map[MetricID]FormulaEntry{
	CardiacOutput: {
		Formula:     "Heart Rate × Stroke Volume",
		Calculation: "CO = HR × SV, where SV is derived from LV volume changes",
		Geometrical: []string{"Left Ventricle Volume"},
		Physical:    []string{"Heart Rate"},
	},
	StrokeVolume: {
		Formula:     "LV End-Diastolic Volume - LV End-Systolic Volume",
		Calculation: "SV = EDV - ESV (from geometrical measurements)",
		Geometrical: []string{"Left Ventricle Volume"},
	},
	EjectionFraction: {
		Formula:     "(Stroke Volume / LV End-Diastolic Volume) × 100",
		Calculation: "EF = (SV / EDV) × 100%",
		Geometrical: []string{"Left Ventricle Volume"},
	},
	CardiacIndex: {
		Formula:     "Cardiac Output / Body Surface Area",
		Calculation: "CI = CO / BSA, BSA derived from BMI",
		Geometrical: []string{"Left Ventricle Volume"},
		Physical:    []string{"Heart Rate", "Body Mass Index"},
	},
	SVR: {
		Formula:     "(MAP - CVP) / Cardiac Output × 80",
		Calculation: "SVR = (MAP - CVP) / CO × 80, MAP = DBP + 1/3(SBP-DBP)",
		Geometrical: []string{"Left Ventricle Volume"},
		Physical:    []string{"Systolic BP", "Diastolic BP", "Central Venous Pressure", "Heart Rate"},
	},
	PVR: {
		Formula:     "(MPAP - PCWP) / Cardiac Output × 80",
		Calculation: "PVR = (MPAP - PCWP) / CO × 80",
		Geometrical: []string{"Left Ventricle Volume", "Right Ventricle Volume"},
		Physical:    []string{"Pulmonary Artery Pressure", "Pulmonary Capillary Wedge Pressure", "Heart Rate"},
	},
	MAP: {
		Formula:     "Diastolic BP + 1/3(Systolic BP - Diastolic BP)",
		Calculation: "MAP = DBP + 1/3(SBP - DBP)",
		Physical:    []string{"Systolic Blood Pressure", "Diastolic Blood Pressure"},
	},
	PulsePressure: {
		Formula:     "Systolic BP - Diastolic BP",
		Calculation: "PP = SBP - DBP",
		Physical:    []string{"Systolic Blood Pressure", "Diastolic Blood Pressure"},
	},
	WallShearStress: {
		Formula:     "4μQ / πr³",
		Calculation: "WSS = 4μQ / πr³, where Q from CO and r from vessel diameter",
		Geometrical: []string{"Aortic Root Diameter", "Vessel Curvature"},
		Physical:    []string{"Blood Viscosity", "Heart Rate"},
	},
	ReynoldsNumber: {
		Formula:     "ρvD / μ",
		Calculation: "Re = ρvD / μ, velocity from CO and diameter",
		Geometrical: []string{"Aortic Root Diameter"},
		Physical:    []string{"Blood Viscosity", "Heart Rate", "Hematocrit"},
	},
	ArterialCompliance: {
		Formula:     "ΔVolume / ΔPressure",
		Calculation: "C = ΔV / ΔP, derived from vessel diameter changes",
		Geometrical: []string{"Aortic Root Diameter", "Aortic Wall Thickness"},
		Physical:    []string{"Systolic Blood Pressure", "Diastolic Blood Pressure"},
	},
	ArterialStiffness: {
		Formula:     "ln(SBP/DBP) / (Δdiameter/diastolic diameter)",
		Calculation: "β = ln(SBP/DBP) / strain, measured via PWV",
		Geometrical: []string{"Aortic Root Diameter"},
		Physical:    []string{"Systolic Blood Pressure", "Diastolic Blood Pressure", "Pulse Wave Velocity"},
	},
	MyocardialStrain: {
		Formula:     "(L - L₀) / L₀ × 100%",
		Calculation: "Strain = (L - L₀) / L₀, from wall thickness changes during cycle",
		Geometrical: []string{"Left Ventricular Wall Thickness", "Left Ventricle Volume"},
		Physical:    []string{"Systolic Blood Pressure"},
	},
	LVdPdtMax: {
		Formula:     "Maximum rate of LV pressure rise",
		Calculation: "dP/dt max derived from pressure-volume loop analysis",
		Geometrical: []string{"Left Ventricle Volume", "Left Ventricular Wall Thickness"},
		Physical:    []string{"Heart Rate", "Systolic Blood Pressure"},
	},
	CoronaryFlowReserve: {
		Formula:     "Maximum Flow / Resting Flow",
		Calculation: "CFR = Qmax / Qrest, flow from vessel geometry and pressure gradient",
		Geometrical: []string{"Coronary Artery Ostium Area", "Left Main Coronary Artery Length"},
		Physical:    []string{"Heart Rate", "Systolic Blood Pressure", "Diastolic Blood Pressure"},
	},
	FFR: {
		Formula:     "Distal Pressure / Proximal Pressure",
		Calculation: "FFR = Pd / Pa during maximum hyperemia",
		Geometrical: []string{"Stenosis Location", "Coronary Artery Ostium Area"},
		Physical:    []string{"Systolic Blood Pressure", "Diastolic Blood Pressure"},
	},
}

// LookupFormula returns the formula entry for a metric. The boolean is false
// for ids without an entry.
func LookupFormula(id MetricID) (FormulaEntry, bool) {
	f, ok := formulas[id]
	if !ok {
		return FormulaEntry{}, false
	}
	f.Metric = id
	f.Geometrical = append([]string(nil), f.Geometrical...)
	f.Physical = append([]string(nil), f.Physical...)
	return f, true
}

// FindFormula looks a formula up by display name, ignoring case and surrounding space.
func FindFormula(name string) (FormulaEntry, bool) {
	want := strings.TrimSpace(name)
	for id := range formulas {
		if strings.EqualFold(string(id), want) {
			return LookupFormula(id)
		}
	}
	return FormulaEntry{}, false
}

// FormulaNames returns the names of every registered formula, sorted.
func FormulaNames() []string {
	names := make([]string, 0, len(formulas))
	for id := range formulas {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}
