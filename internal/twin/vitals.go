package twin

// Vitals is the live vital-signs record. HeartRate, Systolic, Diastolic, and
// SpO2 are refreshed by the simulated feed; Temperature stays fixed.
type Vitals struct {
	HeartRate   int
	Systolic    int
	Diastolic   int
	SpO2        int
	Temperature float64
}

// InitialVitals returns the vitals shown before the first feed tick.
func InitialVitals() Vitals {
	return Vitals{
		HeartRate:   72,
		Systolic:    120,
		Diastolic:   80,
		SpO2:        98,
		Temperature: 36.8,
	}
}
