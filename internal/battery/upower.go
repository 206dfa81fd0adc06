package battery

import (
	godbus "github.com/godbus/dbus/v5"

	"codeberg.org/varkas/amptop/internal/errors"
)

const (
	upowerName        = "org.freedesktop.UPower"
	upowerDisplayPath = "/org/freedesktop/UPower/devices/DisplayDevice"
	upowerDeviceIface = "org.freedesktop.UPower.Device"
)

// UPower device states, per the org.freedesktop.UPower.Device specification.
const (
	upowerStateCharging     uint32 = 1
	upowerStateDischarging  uint32 = 2
	upowerStateEmpty        uint32 = 3
	upowerStateFullyCharged uint32 = 4
)

// UPowerProvider reads battery telemetry from the UPower display device over
// the system D-Bus. Used on desktops where sysfs capacity reporting is
// unreliable.
type UPowerProvider struct {
	conn *godbus.Conn
	obj  godbus.BusObject
}

// NewUPowerProvider connects to the system bus and binds the display device.
func NewUPowerProvider() (*UPowerProvider, error) {
	errFactory := errors.New()

	conn, err := godbus.SystemBus()
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrProviderRead, err)
	}

	return &UPowerProvider{
		conn: conn,
		obj:  conn.Object(upowerName, upowerDisplayPath),
	}, nil
}

// Read implements Provider.
func (p *UPowerProvider) Read() (*Reading, error) {
	present, err := p.boolProp("IsPresent")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	percent, err := p.floatProp("Percentage")
	if err != nil {
		return nil, err
	}
	state, err := p.uint32Prop("State")
	if err != nil {
		return nil, err
	}

	r := &Reading{
		Percent: clampPercent(percent),
		Status:  mapUPowerState(state),
	}

	// Descriptive properties are best-effort; a missing vendor string is not
	// a failed reading.
	r.Vendor, _ = p.stringProp("Vendor")
	r.Model, _ = p.stringProp("Model")
	r.EnergyWh, _ = p.floatProp("Energy")
	r.EnergyFullWh, _ = p.floatProp("EnergyFull")
	r.VoltageV, _ = p.floatProp("Voltage")
	r.TemperatureC, _ = p.floatProp("Temperature")

	return r, nil
}

// Close releases the bus connection.
func (p *UPowerProvider) Close() error {
	return p.conn.Close()
}

func (p *UPowerProvider) prop(name string) (godbus.Variant, error) {
	errFactory := errors.New()

	v, err := p.obj.GetProperty(upowerDeviceIface + "." + name)
	if err != nil {
		return godbus.Variant{}, errFactory.Wrap(errors.ErrProviderRead, err)
	}

	return v, nil
}

func (p *UPowerProvider) boolProp(name string) (bool, error) {
	v, err := p.prop(name)
	if err != nil {
		return false, err
	}
	b, _ := v.Value().(bool)

	return b, nil
}

func (p *UPowerProvider) floatProp(name string) (float64, error) {
	v, err := p.prop(name)
	if err != nil {
		return 0, err
	}
	f, _ := v.Value().(float64)

	return f, nil
}

func (p *UPowerProvider) uint32Prop(name string) (uint32, error) {
	v, err := p.prop(name)
	if err != nil {
		return 0, err
	}
	u, _ := v.Value().(uint32)

	return u, nil
}

func (p *UPowerProvider) stringProp(name string) (string, error) {
	v, err := p.prop(name)
	if err != nil {
		return "", err
	}
	s, _ := v.Value().(string)

	return s, nil
}

func mapUPowerState(state uint32) Status {
	switch state {
	case upowerStateCharging:
		return StatusCharging
	case upowerStateDischarging:
		return StatusDischarging
	case upowerStateEmpty:
		return StatusEmpty
	case upowerStateFullyCharged:
		return StatusFull
	default:
		return StatusUnknown
	}
}
