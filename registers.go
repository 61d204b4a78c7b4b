package sciosenseens160

// Register addresses. Multi-byte registers are little endian.
const (
	regPartID     byte = 0x00 // 2 bytes
	regOpMode     byte = 0x10 // 1 byte
	regConfig     byte = 0x11 // 1 byte, INTn pin configuration
	regCommand    byte = 0x12 // 1 byte, only honoured in idle mode
	regTempIn     byte = 0x13 // 2 bytes, ambient temperature compensation
	regRHIn       byte = 0x15 // 2 bytes, relative humidity compensation
	regDataStatus byte = 0x20 // 1 byte
	regDataAQI    byte = 0x21 // 1 byte, low 3 bits significant
	regDataTVOC   byte = 0x22 // 2 bytes, ppb
	regDataECO2   byte = 0x24 // 2 bytes, ppm
	regDataT      byte = 0x30 // 2 bytes, temperature used in calculations
	regDataRH     byte = 0x32 // 2 bytes, relative humidity used in calculations
	regDataMISR   byte = 0x38 // 1 byte, checksum of the previous DATA_ read
	regGPRWrite   byte = 0x40 // 8 bytes
	regGPRRead    byte = 0x48 // 8 bytes
)

const (
	gprLength      = 8
	firmwareLength = 3
)

// OperatingMode is a value of the OPMODE register.
type OperatingMode byte

const (
	ModeSleep    OperatingMode = 0x00 // deep sleep, low power standby
	ModeIdle     OperatingMode = 0x01 // low power, commands are only accepted here
	ModeStandard OperatingMode = 0x02 // gas sensing
	ModeReset    OperatingMode = 0xF0 // state is undefined until the device has settled
)

type command byte

const (
	cmdNop           command = 0x00
	cmdGetAppVersion command = 0x0E
	cmdClearGPR      command = 0xCC
)
