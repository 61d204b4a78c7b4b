package sciosenseens160

import "fmt"

const (
	hundredthKelvinOffset = 27315
	temperatureRawScale   = 64
	humidityRawScale      = 512
	centi                 = 100
)

// TemperatureFromRaw converts a raw temperature count (1/64 K) into hundredths of a degree
// Celsius. Division truncates.
func TemperatureFromRaw(raw uint16) int16 {
	return int16(int32(raw)*centi/temperatureRawScale - hundredthKelvinOffset)
}

// TemperatureToRaw converts hundredths of a degree Celsius into a raw temperature count.
// For r <= 38452, TemperatureToRaw(TemperatureFromRaw(r)) is r or r-1. Larger counts
// overflow int16 and wrap.
func TemperatureToRaw(temperature int16) uint16 {
	return uint16((int32(temperature) + hundredthKelvinOffset) * temperatureRawScale / centi)
}

// HumidityFromRaw converts a raw humidity count (1/512 %RH) into hundredths of a percent.
func HumidityFromRaw(raw uint16) uint16 {
	return uint16(uint32(raw) * centi / humidityRawScale)
}

// HumidityToRaw converts hundredths of a percent into a raw humidity count.
// HumidityToRaw(HumidityFromRaw(r)) is within 6 counts below r.
func HumidityToRaw(humidity uint16) uint16 {
	return uint16(uint32(humidity) * humidityRawScale / centi)
}

// AirQualityIndex is the UBA air quality rating.
type AirQualityIndex byte

const (
	Excellent AirQualityIndex = iota + 1
	Good
	Moderate
	Poor
	Unhealthy
)

func (i AirQualityIndex) String() string {
	switch i {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Moderate:
		return "moderate"
	case Poor:
		return "poor"
	default:
		return "unhealthy"
	}
}

const aqiMask byte = 0x07

// Anything outside 1..5 saturates to Unhealthy.
func airQualityIndexFromRegister(b byte) AirQualityIndex {
	i := AirQualityIndex(b & aqiMask)
	if i < Excellent || i > Unhealthy {
		return Unhealthy
	}
	return i
}

// ECO2 is an equivalent CO2 concentration in ppm.
type ECO2 uint16

const minimumECO2 ECO2 = 400

// AirQualityIndex classifies the concentration. Concentrations below 400 ppm have no
// rating and return a *ConversionError.
func (e ECO2) AirQualityIndex() (AirQualityIndex, error) {
	switch {
	case e < minimumECO2:
		return 0, &ConversionError{Value: uint16(e)}
	case e < 600:
		return Excellent, nil
	case e < 800:
		return Good, nil
	case e < 1000:
		return Moderate, nil
	case e < 1500:
		return Poor, nil
	default:
		return Unhealthy, nil
	}
}

// ConversionError reports an eCO2 value outside the range that maps to an air quality index.
type ConversionError struct {
	Value uint16
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("eCO2 of %d ppm is below the %d ppm rated by the air quality index", e.Value, minimumECO2)
}

const misrPolynomial byte = 0x1D

// UpdateMISR folds data into the running checksum the device reports in DATA_MISR. Seed it
// with the checksum read before the data transaction.
func UpdateMISR(seed byte, data ...byte) byte {
	misr := seed
	for _, b := range data {
		next := misr<<1 ^ b
		if misr&0x80 != 0 {
			next ^= misrPolynomial
		}
		misr = next
	}
	return misr
}
