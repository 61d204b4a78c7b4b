// This package provides a driver for the ScioSense ENS160 digital metal-oxide multi-gas sensor.
package sciosenseens160

import (
	"context"
	"encoding/binary"
	"fmt"
)

func (d *Device) write(ctx context.Context, register byte, payload ...byte) error {
	if d.bus == nil {
		return ErrReleased
	}
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, register)
	buf = append(buf, payload...)
	return d.bus.Write(ctx, d.address, buf)
}

func (d *Device) read(ctx context.Context, register byte, length int) ([]byte, error) {
	if d.bus == nil {
		return nil, ErrReleased
	}
	buf := make([]byte, length)
	err := d.bus.WriteRead(ctx, d.address, []byte{register}, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (d *Device) readWord(ctx context.Context, register byte) (uint16, error) {
	buf, err := d.read(ctx, register, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (d *Device) writeWord(ctx context.Context, register byte, value uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	return d.write(ctx, register, buf[:]...)
}

func (d *Device) setMode(ctx context.Context, mode OperatingMode) error {
	return d.write(ctx, regOpMode, byte(mode))
}

func (d *Device) sendCommand(ctx context.Context, cmd command) error {
	return d.write(ctx, regCommand, byte(cmd))
}

// Reset resets the device. Nothing should be assumed about the device until it has settled.
func (d *Device) Reset(ctx context.Context) error {
	return d.setMode(ctx, ModeReset)
}

// Idle switches the device to idle mode. Commands are only executed in idle mode.
func (d *Device) Idle(ctx context.Context) error {
	return d.setMode(ctx, ModeIdle)
}

// DeepSleep switches the device to its low power standby mode.
func (d *Device) DeepSleep(ctx context.Context) error {
	return d.setMode(ctx, ModeSleep)
}

// Operational switches the device to standard gas sensing mode.
func (d *Device) Operational(ctx context.Context) error {
	return d.setMode(ctx, ModeStandard)
}

// ClearCommand clears the command register and the GPR read registers. If the second write
// fails the device is left with the no-op command and that error is returned.
func (d *Device) ClearCommand(ctx context.Context) error {
	err := d.sendCommand(ctx, cmdNop)
	if err != nil {
		return err
	}
	return d.sendCommand(ctx, cmdClearGPR)
}

// FirmwareVersion is the application firmware version reported by the device.
type FirmwareVersion struct {
	Major uint8
	Minor uint8
	Patch uint8
}

func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FirmwareVersion requests the firmware version and reads it back from the GPR read
// registers. The device must be idle.
func (d *Device) FirmwareVersion(ctx context.Context) (FirmwareVersion, error) {
	err := d.sendCommand(ctx, cmdGetAppVersion)
	if err != nil {
		return FirmwareVersion{}, err
	}

	buf, err := d.read(ctx, regGPRRead, firmwareLength)
	if err != nil {
		return FirmwareVersion{}, err
	}
	return FirmwareVersion{Major: buf[0], Minor: buf[1], Patch: buf[2]}, nil
}
