package main

import (
	"exchanger/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (a *App) initMetrics() {
	metrics := structs.Metrics{}

	for _, name := range []structs.MetricConst{
		structs.MetricOrderCreated,
		structs.MetricOrderStatusChanged,
		structs.MetricOrderCanceled,
		structs.MetricOrderConflict,
		structs.MetricRateRefreshed,
		structs.MetricRateRefreshFailed,
		structs.MetricNotificationFailed,
	} {
		metrics[name] = promauto.NewCounter(prometheus.CounterOpts{
			Name: name.ToString(),
			Help: name.ToString(),
		})
	}

	a.Metrics = metrics
}
