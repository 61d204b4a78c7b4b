package main

import (
	"fmt"

	"github.com/go-sensors/core/units"
	"github.com/go-sensors/sciosenseens160"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gaugeECO2 = newGauge("air_eco2_level", "Equivalent Carbon Dioxide level (units: ppm)")
	gaugeTVOC = newGauge("air_tvoc_level", "Total Volatile Organic Compounds level (units: ppb)")
	gaugeAQI  = newGauge("air_quality_index", "UBA Air Quality Index (1 excellent to 5 unhealthy)")
)

func newGauge(name string, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		[]string{"address"},
	)
}

func init() {
	prometheus.MustRegister(gaugeECO2)
	prometheus.MustRegister(gaugeTVOC)
	prometheus.MustRegister(gaugeAQI)
	prometheus.MustRegister(prometheus.NewBuildInfoCollector())
}

func addressLabel(address uint16) string {
	return fmt.Sprintf("0x%02X", address)
}

func observeConcentration(address uint16, gas string, amount units.Concentration) {
	ppm := amount.PartsPerMillion()
	switch gas {
	case sciosenseens160.EquivalentCarbonDioxide:
		gaugeECO2.WithLabelValues(addressLabel(address)).Set(ppm)
	case sciosenseens160.TotalVolatileOrganicCompounds:
		gaugeTVOC.WithLabelValues(addressLabel(address)).Set(ppm * 1000)
	}
}

func observeAirQualityIndex(address uint16, index sciosenseens160.AirQualityIndex) {
	gaugeAQI.WithLabelValues(addressLabel(address)).Set(float64(index))
}
