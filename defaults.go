package sciosenseens160

import (
	"time"

	"github.com/go-sensors/core/i2c"
)

const (
	DefaultAddress   uint16 = 0x53 // ADDR pin pulled high
	AlternateAddress uint16 = 0x52 // ADDR pin pulled low

	DefaultMeasurementInterval = 1 * time.Second
)

// GetDefaultI2CPortConfig gets the manufacturer-specified defaults for connecting to the sensor
func GetDefaultI2CPortConfig() *i2c.I2CPortConfig {
	return &i2c.I2CPortConfig{
		Address: byte(DefaultAddress),
	}
}
