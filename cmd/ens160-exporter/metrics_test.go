package main

import (
	"testing"

	"github.com/go-sensors/core/units"
	"github.com/go-sensors/sciosenseens160"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_observeConcentration_sets_the_gauge_for_each_gas(t *testing.T) {
	// Arrange
	address := uint16(0x53)

	// Act
	observeConcentration(address, sciosenseens160.EquivalentCarbonDioxide, 600*units.PartPerMillion)
	observeConcentration(address, sciosenseens160.TotalVolatileOrganicCompounds, 2*units.PartPerMillion)

	// Assert
	assert.Equal(t, 600.0, testutil.ToFloat64(gaugeECO2.WithLabelValues("0x53")))
	assert.Equal(t, 2000.0, testutil.ToFloat64(gaugeTVOC.WithLabelValues("0x53")))
}

func Test_observeAirQualityIndex_sets_the_gauge(t *testing.T) {
	// Arrange
	address := uint16(0x52)

	// Act
	observeAirQualityIndex(address, sciosenseens160.Moderate)

	// Assert
	assert.Equal(t, 3.0, testutil.ToFloat64(gaugeAQI.WithLabelValues("0x52")))
}

func Test_addressLabel_formats_as_hex(t *testing.T) {
	assert.Equal(t, "0x53", addressLabel(0x53))
	assert.Equal(t, "0x08", addressLabel(0x08))
}
