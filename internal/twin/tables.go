package twin

// Data-driven metric identifiers.
const (
	CardiacOutput       MetricID = "Cardiac Output"
	StrokeVolume        MetricID = "Stroke Volume"
	EjectionFraction    MetricID = "Ejection Fraction"
	CardiacIndex        MetricID = "Cardiac Index"
	SVR                 MetricID = "SVR"
	PVR                 MetricID = "PVR"
	MAP                 MetricID = "MAP"
	PulsePressure       MetricID = "Pulse Pressure"
	WallShearStress     MetricID = "Wall Shear Stress"
	MyocardialStrain    MetricID = "Myocardial Strain"
	LVdPdtMax           MetricID = "LV dP/dt max"
	ArterialStiffness   MetricID = "Arterial Stiffness"
	CoronaryFlowReserve MetricID = "Coronary Flow Reserve"
	FFR                 MetricID = "FFR"
	ReynoldsNumber      MetricID = "Reynolds Number"
	ArterialCompliance  MetricID = "Arterial Compliance"
)

// ActiveParameters is the parameter count advertised in the header and overview.
const ActiveParameters = 150

var (
	geoOnly  = []Source{SourceGeometrical}
	physOnly = []Source{SourcePhysical}
	geoPhys  = []Source{SourceGeometrical, SourcePhysical}
)

var geometricalSections = []Section{
	{
		Title: "Cardiac Chambers",
		Metrics: []Metric{
			{Name: "LV Volume", Value: 145, Unit: "mL", NormalRange: "67-155", Status: StatusNormal},
			{Name: "RV Volume", Value: 150, Unit: "mL", NormalRange: "87-164", Status: StatusNormal},
			{Name: "LA Volume", Value: 65, Unit: "mL", NormalRange: "22-58", Status: StatusNormal},
			{Name: "RA Volume", Value: 55, Unit: "mL", NormalRange: "25-58", Status: StatusNormal},
		},
	},
	{
		Title: "Vessels & Walls",
		Metrics: []Metric{
			{Name: "Aortic Root", Value: 32, Unit: "mm", NormalRange: "20-37", Status: StatusNormal},
			{Name: "Ascending Aorta", Value: 35, Unit: "mm", NormalRange: "22-36", Status: StatusNormal},
			{Name: "Main PA", Value: 26, Unit: "mm", NormalRange: "20-29", Status: StatusNormal},
			{Name: "IVS Thickness", Value: 10, Unit: "mm", NormalRange: "6-11", Status: StatusNormal},
		},
	},
	{
		Title: "Valvular Geometry",
		Metrics: []Metric{
			{Name: "Mitral Annulus", Value: 32, Unit: "mm", NormalRange: "28-40", Status: StatusNormal},
			{Name: "Aortic Annulus", Value: 24, Unit: "mm", NormalRange: "20-31", Status: StatusNormal},
			{Name: "Tricuspid Annulus", Value: 35, Unit: "mm", NormalRange: "28-46", Status: StatusNormal},
			{Name: "Pulmonary Annulus", Value: 23, Unit: "mm", NormalRange: "18-28", Status: StatusNormal},
		},
	},
}

var bloodMetrics = []Metric{
	{Name: "Hemoglobin", Value: 14.2, Unit: "g/dL", Status: StatusNormal},
	{Name: "Hematocrit", Value: 42, Unit: "%", Status: StatusNormal},
	{Name: "Blood Viscosity", Value: 4.2, Unit: "cP", Status: StatusNormal},
	{Name: "Total Cholesterol", Value: 185, Unit: "mg/dL", Status: StatusNormal},
	{Name: "LDL", Value: 110, Unit: "mg/dL", Status: StatusNormal},
	{Name: "HDL", Value: 55, Unit: "mg/dL", Status: StatusNormal},
}

var biomarkerMetrics = []Metric{
	{Name: "Troponin", Value: 0.02, Unit: "ng/mL", Status: StatusNormal},
	{Name: "BNP", Value: 85, Unit: "pg/mL", Status: StatusNormal},
	{Name: "CRP", Value: 1.8, Unit: "mg/L", Status: StatusNormal},
	{Name: "Glucose", Value: 95, Unit: "mg/dL", Status: StatusNormal},
}

var dataDrivenSections = []Section{
	{
		Title: "Cardiac Performance",
		Metrics: []Metric{
			{ID: CardiacOutput, Name: string(CardiacOutput), Value: 5.2, Unit: "L/min", Status: StatusNormal, Sources: geoPhys},
			{ID: StrokeVolume, Name: string(StrokeVolume), Value: 72, Unit: "mL", Status: StatusNormal, Sources: geoOnly},
			{ID: EjectionFraction, Name: string(EjectionFraction), Value: 58, Unit: "%", Status: StatusNormal, Sources: geoOnly},
			{ID: CardiacIndex, Name: string(CardiacIndex), Value: 2.8, Unit: "L/min/m²", Status: StatusNormal, Sources: geoPhys},
		},
	},
	{
		Title: "Vascular Resistance",
		Metrics: []Metric{
			{ID: SVR, Name: string(SVR), Value: 1200, Unit: "dyn·s/cm⁵", Status: StatusNormal, Sources: geoPhys},
			{ID: PVR, Name: string(PVR), Value: 120, Unit: "dyn·s/cm⁵", Status: StatusNormal, Sources: geoPhys},
			{ID: MAP, Name: string(MAP), Value: 93, Unit: "mmHg", Status: StatusNormal, Sources: physOnly},
			{ID: PulsePressure, Name: string(PulsePressure), Value: 40, Unit: "mmHg", Status: StatusNormal, Sources: physOnly},
		},
	},
	{
		Title: "Biomechanical Analysis",
		Metrics: []Metric{
			{ID: WallShearStress, Name: string(WallShearStress), Value: 15.2, Unit: "Pa", Status: StatusNormal, Sources: geoPhys},
			{ID: MyocardialStrain, Name: string(MyocardialStrain), Value: -18.5, Unit: "%", Status: StatusNormal, Sources: geoPhys},
			{ID: LVdPdtMax, Name: string(LVdPdtMax), Value: 1850, Unit: "mmHg/s", Status: StatusNormal, Sources: geoPhys},
			{ID: ArterialStiffness, Name: string(ArterialStiffness), Value: 8.5, Unit: "m/s", Status: StatusNormal, Sources: geoPhys},
		},
	},
	{
		Title: "Flow Dynamics",
		Metrics: []Metric{
			{ID: CoronaryFlowReserve, Name: string(CoronaryFlowReserve), Value: 3.2, Unit: "ratio", Status: StatusNormal, Sources: geoPhys},
			{ID: FFR, Name: string(FFR), Value: 0.92, Unit: "ratio", Status: StatusNormal, Sources: geoPhys},
			{ID: ReynoldsNumber, Name: string(ReynoldsNumber), Value: 2850, Unit: "-", Status: StatusNormal, Sources: geoPhys},
			{ID: ArterialCompliance, Name: string(ArterialCompliance), Value: 1.8, Unit: "mL/mmHg", Status: StatusNormal, Sources: geoPhys},
		},
	},
}

// GeometricalSections returns the chamber, vessel, and valve tables.
func GeometricalSections() []Section {
	return cloneSections(geometricalSections)
}

// PhysicalSections returns the hemodynamic, blood, and biomarker tables.
// The first hemodynamic rows carry the live vitals.
func PhysicalSections(v Vitals) []Section {
	hemodynamic := []Metric{
		{Name: "Systolic BP", Value: float64(v.Systolic), Unit: "mmHg", Status: StatusNormal},
		{Name: "Diastolic BP", Value: float64(v.Diastolic), Unit: "mmHg", Status: StatusNormal},
		{Name: "Heart Rate", Value: float64(v.HeartRate), Unit: "bpm", Status: StatusNormal},
		{Name: "SpO2", Value: float64(v.SpO2), Unit: "%", Status: StatusNormal},
		{Name: "Temperature", Value: v.Temperature, Unit: "°C", Status: StatusNormal},
		{Name: "CVP", Value: 8, Unit: "mmHg", Status: StatusNormal},
	}
	return []Section{
		{Title: "Hemodynamic Parameters", Metrics: hemodynamic},
		{Title: "Blood Properties", Metrics: cloneMetrics(bloodMetrics)},
		{Title: "Biomarkers", Metrics: cloneMetrics(biomarkerMetrics)},
	}
}

// DataDrivenSections returns the derived-metric tables. Every metric is clickable.
func DataDrivenSections() []Section {
	return cloneSections(dataDrivenSections)
}

// PerformanceSection returns the cardiac performance table shown on the overview.
func PerformanceSection() Section {
	return cloneSections(dataDrivenSections[:1])[0]
}

// Sections returns the tables for a data model.
func Sections(m Model, v Vitals) []Section {
	switch m {
	case ModelGeometrical:
		return GeometricalSections()
	case ModelPhysical:
		return PhysicalSections(v)
	case ModelDataDriven:
		return DataDrivenSections()
	default:
		return nil
	}
}

// DataDrivenIDs lists every data-driven metric id in table order.
func DataDrivenIDs() []MetricID {
	var ids []MetricID
	for _, s := range dataDrivenSections {
		for _, m := range s.Metrics {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func cloneSections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = Section{Title: s.Title, Metrics: cloneMetrics(s.Metrics)}
	}
	return out
}

func cloneMetrics(in []Metric) []Metric {
	out := make([]Metric, len(in))
	for i, m := range in {
		out[i] = m
		if m.Sources != nil {
			out[i].Sources = append([]Source(nil), m.Sources...)
		}
	}
	return out
}
