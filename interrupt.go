package sciosenseens160

// PinPolarity is the active level of the INTn pin.
type PinPolarity byte

const (
	ActiveLow PinPolarity = iota
	ActiveHigh
)

// PinDriveMode is the output stage of the INTn pin.
type PinDriveMode byte

const (
	OpenDrain PinDriveMode = iota
	PushPull
)

const (
	configPolarityShift      = 6
	configDriveShift         = 5
	configGPRBit        byte = 1 << 3
	configDataBit       byte = 1 << 1
	configEnableBit     byte = 1 << 0
)

// InterruptConfig describes the INTn pin behaviour. The zero value disables the interrupt;
// the setters return modified copies so a configuration can be built in one expression:
//
//	cfg := InterruptConfig{}.EnableOnDataReady().WithPinDriveMode(PushPull)
type InterruptConfig struct {
	enabled   bool
	onData    bool
	onGPR     bool
	polarity  PinPolarity
	driveMode PinDriveMode
}

// EnableOnDataReady asserts INTn when new data is available in the DATA registers.
func (c InterruptConfig) EnableOnDataReady() InterruptConfig {
	c.enabled = true
	c.onData = true
	return c
}

// EnableOnNewGPRData asserts INTn when new data is available in the GPR read registers.
func (c InterruptConfig) EnableOnNewGPRData() InterruptConfig {
	c.enabled = true
	c.onGPR = true
	return c
}

func (c InterruptConfig) WithPinPolarity(p PinPolarity) InterruptConfig {
	c.polarity = p
	return c
}

func (c InterruptConfig) WithPinDriveMode(m PinDriveMode) InterruptConfig {
	c.driveMode = m
	return c
}

// Encode packs the configuration into a CONFIG register value.
func (c InterruptConfig) Encode() byte {
	return encodePolarity(c.polarity) |
		encodeDriveMode(c.driveMode) |
		encodeFlag(c.onGPR, configGPRBit) |
		encodeFlag(c.onData, configDataBit) |
		encodeFlag(c.enabled, configEnableBit)
}

func encodePolarity(p PinPolarity) byte {
	return byte(p&0x1) << configPolarityShift
}

func encodeDriveMode(m PinDriveMode) byte {
	return byte(m&0x1) << configDriveShift
}

func encodeFlag(set bool, bit byte) byte {
	if set {
		return bit
	}
	return 0
}
