package test

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// GetCounterVecValue returns the current value of the counter with the given
// label values.
func GetCounterVecValue(metric *prometheus.CounterVec, labels ...string) (float64, error) {
	var m = &dto.Metric{}
	if err := metric.WithLabelValues(labels...).Write(m); err != nil {
		return 0, err
	}
	return m.Counter.GetValue(), nil
}
