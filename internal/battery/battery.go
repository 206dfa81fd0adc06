package battery

// Status is the charging state of the power source.
type Status string

const (
	StatusCharging    Status = "charging"
	StatusDischarging Status = "discharging"
	StatusFull        Status = "full"
	StatusEmpty       Status = "empty"
	StatusUnknown     Status = "unknown"
)

// Reading is one instantaneous telemetry reading from the power source.
// Percent and Status are the fields the collector persists; the rest is
// display-only detail for the interactive viewer.
type Reading struct {
	Percent      float64
	Status       Status
	Vendor       string
	Model        string
	EnergyWh     float64
	EnergyFullWh float64
	VoltageV     float64
	TemperatureC float64
}

// Provider reads instantaneous power-source telemetry. Read returns a nil
// Reading (and nil error) when no power source is present; absence is not an
// error.
type Provider interface {
	Read() (*Reading, error)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}

	return p
}
