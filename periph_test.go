package sciosenseens160_test

import (
	"context"
	"testing"

	"github.com/go-sensors/sciosenseens160"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func Test_PeriphBus_FirmwareVersion_issues_a_write_then_a_single_write_read(t *testing.T) {
	// Arrange
	playback := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: address, W: []byte{0x12, 0x0E}},
			{Addr: address, W: []byte{0x48}, R: []byte{5, 4, 3}},
		},
	}
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPeriphBus(playback), address)
	assert.Nil(t, err)

	// Act
	version, err := device.FirmwareVersion(context.Background())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, sciosenseens160.FirmwareVersion{Major: 5, Minor: 4, Patch: 3}, version)
	assert.Nil(t, playback.Close())
}

func Test_PeriphBus_TempAndHum_reads_four_bytes_in_one_transaction(t *testing.T) {
	// Arrange
	playback := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: address, W: []byte{0x30}, R: []byte{0xC0, 0x4A, 0x80, 0x64}},
		},
	}
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPeriphBus(playback), address,
		sciosenseens160.WithSuspending())
	assert.Nil(t, err)

	// Act
	temperature, humidity, err := device.TempAndHum(context.Background())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, int16(2585), temperature)
	assert.Equal(t, uint16(5025), humidity)
	assert.Nil(t, playback.Close())
}

func Test_PeriphBus_returns_the_bus_error(t *testing.T) {
	// Arrange
	playback := &i2ctest.Playback{DontPanic: true}
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPeriphBus(playback), address)
	assert.Nil(t, err)

	// Act
	err = device.Operational(context.Background())

	// Assert
	assert.NotNil(t, err)
}
