package sciosenseens160_test

import (
	"testing"

	"github.com/go-sensors/sciosenseens160"
	"github.com/stretchr/testify/assert"
)

func Test_InterruptConfig_zero_value_disables_the_interrupt(t *testing.T) {
	assert.Equal(t, byte(0), sciosenseens160.InterruptConfig{}.Encode())
}

func Test_InterruptConfig_on_data_ready_with_push_pull(t *testing.T) {
	// Act
	actual := sciosenseens160.InterruptConfig{}.
		EnableOnDataReady().
		WithPinDriveMode(sciosenseens160.PushPull).
		Encode()

	// Assert
	assert.Equal(t, byte(0b00100011), actual)
}

func Test_InterruptConfig_on_new_gpr_data_active_high(t *testing.T) {
	// Act
	actual := sciosenseens160.InterruptConfig{}.
		EnableOnNewGPRData().
		WithPinPolarity(sciosenseens160.ActiveHigh).
		Encode()

	// Assert
	assert.Equal(t, byte(0b01001001), actual)
}

func Test_InterruptConfig_with_every_field_set(t *testing.T) {
	// Act
	actual := sciosenseens160.InterruptConfig{}.
		EnableOnDataReady().
		EnableOnNewGPRData().
		WithPinPolarity(sciosenseens160.ActiveHigh).
		WithPinDriveMode(sciosenseens160.PushPull).
		Encode()

	// Assert
	assert.Equal(t, byte(0b01101011), actual)
}

func Test_InterruptConfig_setters_do_not_modify_the_receiver(t *testing.T) {
	// Arrange
	base := sciosenseens160.InterruptConfig{}.EnableOnDataReady()

	// Act
	_ = base.WithPinPolarity(sciosenseens160.ActiveHigh)

	// Assert
	assert.Equal(t, byte(0b00000011), base.Encode())
}

func Test_InterruptConfig_pin_settings_without_a_source_leave_it_disabled(t *testing.T) {
	// Act
	actual := sciosenseens160.InterruptConfig{}.
		WithPinDriveMode(sciosenseens160.PushPull).
		WithPinDriveMode(sciosenseens160.OpenDrain).
		WithPinPolarity(sciosenseens160.ActiveLow).
		Encode()

	// Assert
	assert.Equal(t, byte(0), actual)
}
