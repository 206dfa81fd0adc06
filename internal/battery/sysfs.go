package battery

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/varkas/amptop/internal/errors"
)

// sysfsRoot is a variable so tests can point it at a fixture tree.
var sysfsRoot = "/sys"

// SysfsProvider reads battery telemetry from /sys/class/power_supply/BAT*.
type SysfsProvider struct{}

// NewSysfsProvider creates the default Linux power-supply provider.
func NewSysfsProvider() *SysfsProvider {
	return &SysfsProvider{}
}

// Read implements Provider. The first BAT* entry is used; a host without a
// battery yields (nil, nil).
func (p *SysfsProvider) Read() (*Reading, error) {
	errFactory := errors.New()

	matches, err := filepath.Glob(filepath.Join(sysfsRoot, "class/power_supply/BAT*"))
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrProviderRead, err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(matches[0], "uevent"))
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrProviderRead, err)
	}

	props := parseUevent(string(data))

	percent, _ := strconv.ParseFloat(props["POWER_SUPPLY_CAPACITY"], 64)
	r := &Reading{
		Percent: clampPercent(percent),
		Status:  mapSysfsStatus(props["POWER_SUPPLY_STATUS"]),
		Vendor:  props["POWER_SUPPLY_MANUFACTURER"],
		Model:   props["POWER_SUPPLY_MODEL_NAME"],
	}

	if uv, err := strconv.ParseInt(props["POWER_SUPPLY_VOLTAGE_NOW"], 10, 64); err == nil {
		r.VoltageV = float64(uv) / 1e6
	}
	if uwh, err := strconv.ParseInt(props["POWER_SUPPLY_ENERGY_NOW"], 10, 64); err == nil {
		r.EnergyWh = float64(uwh) / 1e6
	}
	if uwh, err := strconv.ParseInt(props["POWER_SUPPLY_ENERGY_FULL"], 10, 64); err == nil {
		r.EnergyFullWh = float64(uwh) / 1e6
	}
	if deci, err := strconv.ParseInt(props["POWER_SUPPLY_TEMP"], 10, 64); err == nil {
		r.TemperatureC = float64(deci) / 10
	}

	// Some firmware reports "Discharging" at full capacity while on AC power.
	if r.Status == StatusDischarging && r.Percent >= 100 && isACOnline() {
		r.Status = StatusFull
	}

	return r, nil
}

// isACOnline checks if any AC adapter is online.
func isACOnline() bool {
	matches, err := filepath.Glob(filepath.Join(sysfsRoot, "class/power_supply/AC*/online"))
	if err != nil {
		return false
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err == nil && strings.TrimSpace(string(data)) == "1" {
			return true
		}
	}

	return false
}

func parseUevent(data string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		if k, v, ok := strings.Cut(line, "="); ok {
			props[k] = v
		}
	}

	return props
}

func mapSysfsStatus(s string) Status {
	switch s {
	case "Charging":
		return StatusCharging
	case "Discharging":
		return StatusDischarging
	case "Full":
		return StatusFull
	case "Empty":
		return StatusEmpty
	default:
		return StatusUnknown
	}
}
