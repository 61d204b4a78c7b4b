package sciosenseens160

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/go-sensors/core/gas"
	coreio "github.com/go-sensors/core/io"
	"github.com/go-sensors/core/units"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	EquivalentCarbonDioxide       string = "eCO2"
	TotalVolatileOrganicCompounds string = "TVOC"
)

// Sensor represents a configured ScioSense ENS160 gas sensor
type Sensor struct {
	gases               chan *gas.Concentration
	airQualityIndices   chan AirQualityIndex
	portFactory         coreio.PortFactory
	address             uint16
	measurementInterval time.Duration
	deviceOptions       []*DeviceOption
	mutex               *sync.Mutex
	temperature         *int16
	humidity            *uint16
}

// Option is a configured option that may be applied to a Sensor
type Option struct {
	apply func(*Sensor)
}

// NewSensor creates a Sensor with optional configuration
func NewSensor(portFactory coreio.PortFactory, options ...*Option) *Sensor {
	gases := make(chan *gas.Concentration)
	airQualityIndices := make(chan AirQualityIndex)
	mutex := &sync.Mutex{}
	s := &Sensor{
		gases:               gases,
		airQualityIndices:   airQualityIndices,
		portFactory:         portFactory,
		address:             DefaultAddress,
		measurementInterval: DefaultMeasurementInterval,
		mutex:               mutex,
	}
	for _, o := range options {
		o.apply(s)
	}
	return s
}

// WithAddress specifies the bus address of the sensor
func WithAddress(address uint16) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.address = address
		},
	}
}

// WithMeasurementInterval specifies the duration to wait between polling the sensor for new data
func WithMeasurementInterval(interval time.Duration) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.measurementInterval = interval
		},
	}
}

// WithDeviceOptions specifies options for the Device created for every run
func WithDeviceOptions(options ...*DeviceOption) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.deviceOptions = append(s.deviceOptions, options...)
		},
	}
}

// Address is the bus address of the sensor
func (s *Sensor) Address() uint16 {
	return s.address
}

// MeasurementInterval is the duration to wait between polling the sensor for new data
func (s *Sensor) MeasurementInterval() time.Duration {
	return s.measurementInterval
}

type readings struct {
	ECO2            ECO2
	TVOC            uint16
	AirQualityIndex AirQualityIndex
}

func readMeasurement(ctx context.Context, device *Device) (*readings, error) {
	eco2, err := device.ECO2(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read eCO2")
	}

	tvoc, err := device.TVOC(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read TVOC")
	}

	aqi, err := device.AirQualityIndex(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read air quality index")
	}

	return &readings{ECO2: eco2, TVOC: tvoc, AirQualityIndex: aqi}, nil
}

func (s *Sensor) compensate(ctx context.Context, device *Device) error {
	s.mutex.Lock()
	temperature := s.temperature
	humidity := s.humidity
	s.temperature = nil
	s.humidity = nil
	s.mutex.Unlock()

	if temperature != nil {
		err := device.SetTemp(ctx, *temperature)
		if err != nil {
			return errors.Wrap(err, "failed to set temperature compensation")
		}
	}

	if humidity != nil {
		err := device.SetHum(ctx, *humidity)
		if err != nil {
			return errors.Wrap(err, "failed to set relative humidity compensation")
		}
	}

	return nil
}

// Run begins reading from the sensor and blocks until either an error occurs or the context is completed
func (s *Sensor) Run(ctx context.Context) error {
	defer close(s.gases)
	defer close(s.airQualityIndices)

	port, err := s.portFactory.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open port")
	}

	device, err := NewDevice(NewPortBus(port), s.address, s.deviceOptions...)
	if err != nil {
		port.Close()
		return errors.Wrap(err, "failed to configure device")
	}

	group, innerCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		<-innerCtx.Done()
		return port.Close()
	})
	group.Go(func() error {
		err := device.Operational(innerCtx)
		if err != nil {
			return errors.Wrap(err, "failed to start gas sensing")
		}

		for {
			err = s.compensate(innerCtx, device)
			if err != nil {
				return err
			}

			status, err := device.Status(innerCtx)
			if err != nil {
				return errors.Wrap(err, "failed to read status")
			}

			if status.DataReady && status.Validity != InvalidOutput {
				readings, err := readMeasurement(innerCtx, device)
				if err != nil {
					return errors.Wrap(err, "failed to read measurement")
				}

				eco2 := &gas.Concentration{
					Gas:    EquivalentCarbonDioxide,
					Amount: units.Concentration(readings.ECO2) * units.PartPerMillion,
				}

				select {
				case <-innerCtx.Done():
					return nil
				case s.gases <- eco2:
				}

				tvoc := &gas.Concentration{
					Gas:    TotalVolatileOrganicCompounds,
					Amount: partsPerBillion(readings.TVOC),
				}

				select {
				case <-innerCtx.Done():
					return nil
				case s.gases <- tvoc:
				}

				select {
				case <-innerCtx.Done():
					return nil
				case s.airQualityIndices <- readings.AirQualityIndex:
				}
			}

			select {
			case <-innerCtx.Done():
				return nil
			case <-time.After(s.measurementInterval):
			}
		}
	})

	err = group.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func partsPerBillion(ppb uint16) units.Concentration {
	return units.Concentration(float64(ppb) * float64(units.PartPerMillion) / 1000)
}

// Concentrations returns a channel of concentration readings as they become available from the sensor
func (s *Sensor) Concentrations() <-chan *gas.Concentration {
	return s.gases
}

// ConcentrationSpecs returns a collection of specified measurement ranges supported by the sensor
func (*Sensor) ConcentrationSpecs() []*gas.ConcentrationSpec {
	return []*gas.ConcentrationSpec{
		{
			Gas:              EquivalentCarbonDioxide,
			Resolution:       1 * units.PartPerMillion,
			MinConcentration: 400 * units.PartPerMillion,
			MaxConcentration: 65000 * units.PartPerMillion,
		},
		{
			Gas:              TotalVolatileOrganicCompounds,
			Resolution:       partsPerBillion(1),
			MinConcentration: 0 * units.PartPerMillion,
			MaxConcentration: 65 * units.PartPerMillion,
		},
	}
}

// AirQualityIndices returns a channel of air quality ratings as they become available from the sensor
func (s *Sensor) AirQualityIndices() <-chan AirQualityIndex {
	return s.airQualityIndices
}

// HandleTemperature queues an ambient temperature to compensate the next measurement with
func (s *Sensor) HandleTemperature(ctx context.Context, temperature *units.Temperature) error {
	hundredths := math.Round(float64(temperature.DegreesCelsius()) * 100)
	if hundredths < -hundredthKelvinOffset || hundredths > math.MaxInt16 {
		return errors.Errorf("temperature of %v °C cannot be used for compensation", hundredths/100)
	}

	value := int16(hundredths)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.temperature = &value

	return nil
}

// HandleRelativeHumidity queues a relative humidity to compensate the next measurement with
func (s *Sensor) HandleRelativeHumidity(ctx context.Context, relativeHumidity *units.RelativeHumidity) error {
	if relativeHumidity.Percentage < 0 || relativeHumidity.Percentage > 1 {
		return errors.Errorf("relative humidity of %v cannot be used for compensation", relativeHumidity.Percentage)
	}

	value := uint16(math.Round(relativeHumidity.Percentage * 10000))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.humidity = &value

	return nil
}
