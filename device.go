package sciosenseens160

import (
	"context"

	"github.com/pkg/errors"
)

// ErrConflictingExecutionModels is returned by NewDevice when more than one execution model
// is selected.
var ErrConflictingExecutionModels = errors.New("blocking and suspending execution are mutually exclusive")

// ErrReleased is returned by every bus operation of a Device after Release.
var ErrReleased = errors.New("device has been released")

const maxAddress uint16 = 0x7F

// Device is an ENS160 at a fixed address on a Bus. It keeps no state besides the bus and
// must not be used from more than one goroutine at a time.
type Device struct {
	bus       Bus
	transport Bus
	address   uint16
	model     ExecutionModel
}

type deviceConfig struct {
	models []ExecutionModel
}

// DeviceOption is a configured option that may be applied to a Device
type DeviceOption struct {
	apply func(*deviceConfig)
}

// WithBlocking runs every bus transaction on the calling goroutine. This is the default.
func WithBlocking() *DeviceOption {
	return WithExecutionModel(Blocking)
}

// WithSuspending turns every bus transaction into a suspension point that returns early when
// the context is done.
func WithSuspending() *DeviceOption {
	return WithExecutionModel(Suspending)
}

// WithExecutionModel selects the execution model explicitly
func WithExecutionModel(model ExecutionModel) *DeviceOption {
	return &DeviceOption{
		apply: func(c *deviceConfig) {
			c.models = append(c.models, model)
		},
	}
}

// NewDevice creates a Device for the sensor at address on bus.
func NewDevice(bus Bus, address uint16, options ...*DeviceOption) (*Device, error) {
	if bus == nil {
		return nil, errors.New("bus is required")
	}
	if address > maxAddress {
		return nil, errors.Errorf("address 0x%X is not a 7-bit address", address)
	}

	config := &deviceConfig{}
	for _, o := range options {
		o.apply(config)
	}

	model := Blocking
	for idx, m := range config.models {
		if idx > 0 && m != model {
			return nil, ErrConflictingExecutionModels
		}
		model = m
	}

	return &Device{
		bus:       model.wrap(bus),
		transport: bus,
		address:   address,
		model:     model,
	}, nil
}

// Release returns the bus given to NewDevice. Bus operations on the Device return ErrReleased
// afterwards.
func (d *Device) Release() Bus {
	transport := d.transport
	d.bus = nil
	d.transport = nil
	return transport
}

// Address is the 7-bit bus address of the device.
func (d *Device) Address() uint16 {
	return d.address
}

// ExecutionModel is the model selected at construction.
func (d *Device) ExecutionModel() ExecutionModel {
	return d.model
}

// PartID returns the part number, 0x0160 for an ENS160.
func (d *Device) PartID(ctx context.Context) (uint16, error) {
	return d.readWord(ctx, regPartID)
}

// Status reads and decodes the DATA_STATUS register.
func (d *Device) Status(ctx context.Context) (Status, error) {
	buf, err := d.read(ctx, regDataStatus, 1)
	if err != nil {
		return Status{}, err
	}
	return DecodeStatus(buf[0]), nil
}

// AirQualityIndex returns the air quality index calculated by the device.
func (d *Device) AirQualityIndex(ctx context.Context) (AirQualityIndex, error) {
	buf, err := d.read(ctx, regDataAQI, 1)
	if err != nil {
		return 0, err
	}
	return airQualityIndexFromRegister(buf[0]), nil
}

// TVOC returns the total volatile organic compounds concentration in ppb (0-65000).
func (d *Device) TVOC(ctx context.Context) (uint16, error) {
	return d.readWord(ctx, regDataTVOC)
}

// ECO2 returns the equivalent CO2 concentration in ppm (400-65000).
func (d *Device) ECO2(ctx context.Context) (ECO2, error) {
	value, err := d.readWord(ctx, regDataECO2)
	if err != nil {
		return 0, err
	}
	return ECO2(value), nil
}

// TempAndHum returns the temperature and relative humidity the device uses in its
// calculations, both scaled by 100: 2550 is 25.50 °C and 5025 is 50.25 %RH.
func (d *Device) TempAndHum(ctx context.Context) (int16, uint16, error) {
	buf, err := d.read(ctx, regDataT, 4)
	if err != nil {
		return 0, 0, err
	}

	temperature := TemperatureFromRaw(uint16(buf[0]) | uint16(buf[1])<<8)
	humidity := HumidityFromRaw(uint16(buf[2]) | uint16(buf[3])<<8)
	return temperature, humidity, nil
}

// SetTemp sets the ambient temperature used for compensation, scaled by 100.
func (d *Device) SetTemp(ctx context.Context, temperature int16) error {
	return d.writeWord(ctx, regTempIn, TemperatureToRaw(temperature))
}

// SetHum sets the relative humidity used for compensation, scaled by 100.
func (d *Device) SetHum(ctx context.Context, humidity uint16) error {
	return d.writeWord(ctx, regRHIn, HumidityToRaw(humidity))
}

// SetTempAndHum writes both compensation values, temperature first.
func (d *Device) SetTempAndHum(ctx context.Context, temperature int16, humidity uint16) error {
	err := d.SetTemp(ctx, temperature)
	if err != nil {
		return err
	}
	return d.SetHum(ctx, humidity)
}

// SetInterruptConfig writes the INTn pin configuration.
func (d *Device) SetInterruptConfig(ctx context.Context, config InterruptConfig) error {
	return d.write(ctx, regConfig, config.Encode())
}

// Checksum reads DATA_MISR, the checksum over the data of the previous DATA_ read.
func (d *Device) Checksum(ctx context.Context) (byte, error) {
	buf, err := d.read(ctx, regDataMISR, 1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadGPR reads the eight general purpose read registers.
func (d *Device) ReadGPR(ctx context.Context) ([gprLength]byte, error) {
	var gpr [gprLength]byte
	buf, err := d.read(ctx, regGPRRead, gprLength)
	if err != nil {
		return gpr, err
	}
	copy(gpr[:], buf)
	return gpr, nil
}

// WriteGPR writes the eight general purpose write registers.
func (d *Device) WriteGPR(ctx context.Context, data [gprLength]byte) error {
	return d.write(ctx, regGPRWrite, data[:]...)
}
