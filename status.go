package sciosenseens160

import "fmt"

// Validity is the device's own assessment of its current output.
type Validity byte

const (
	NormalOperation Validity = iota
	WarmupPhase
	InitialStartupPhase
	InvalidOutput
)

func (v Validity) String() string {
	switch v {
	case NormalOperation:
		return "normal operation"
	case WarmupPhase:
		return "warm-up phase"
	case InitialStartupPhase:
		return "initial start-up phase"
	default:
		return "invalid output"
	}
}

const (
	statusRunningMask   byte = 0b1000_0000
	statusErrorMask     byte = 0b0100_0000
	statusValidityMask  byte = 0b0000_1100
	statusValidityShift      = 2
	statusDataMask      byte = 0b0000_0010
	statusGPRMask       byte = 0b0000_0001
)

// Status is a decoded DATA_STATUS register.
type Status struct {
	Raw             byte
	RunningNormally bool
	Error           bool
	Validity        Validity
	DataReady       bool
	NewDataInGPR    bool
}

// DecodeStatus decodes a raw DATA_STATUS byte.
func DecodeStatus(b byte) Status {
	return Status{
		Raw:             b,
		RunningNormally: statusRunning(b),
		Error:           statusError(b),
		Validity:        statusValidity(b),
		DataReady:       statusDataReady(b),
		NewDataInGPR:    statusNewGPRData(b),
	}
}

func (s Status) String() string {
	return fmt.Sprintf("status(0x%02X running=%t error=%t validity=%q data=%t gpr=%t)",
		s.Raw, s.RunningNormally, s.Error, s.Validity, s.DataReady, s.NewDataInGPR)
}

func statusRunning(b byte) bool {
	return b&statusRunningMask != 0
}

func statusError(b byte) bool {
	return b&statusErrorMask != 0
}

// Every two bit pattern is a valid Validity.
func statusValidity(b byte) Validity {
	return Validity((b & statusValidityMask) >> statusValidityShift)
}

func statusDataReady(b byte) bool {
	return b&statusDataMask != 0
}

func statusNewGPRData(b byte) bool {
	return b&statusGPRMask != 0
}
