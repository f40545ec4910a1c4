package structs

import "github.com/prometheus/client_golang/prometheus"

type MetricConst string

const (
	MetricOrderCreated       MetricConst = "exchanger_orders_created_total"
	MetricOrderStatusChanged MetricConst = "exchanger_order_status_changes_total"
	MetricOrderCanceled      MetricConst = "exchanger_orders_canceled_total"
	MetricOrderConflict      MetricConst = "exchanger_order_conflicts_total"
	MetricRateRefreshed      MetricConst = "exchanger_rates_refreshed_total"
	MetricRateRefreshFailed  MetricConst = "exchanger_rate_refresh_failures_total"
	MetricNotificationFailed MetricConst = "exchanger_notification_failures_total"
)

func (m MetricConst) ToString() string {
	return string(m)
}

// Metrics is safe to use when nil or partially filled.
type Metrics map[MetricConst]prometheus.Counter

func (m Metrics) Inc(c MetricConst) {
	if counter, ok := m[c]; ok && counter != nil {
		counter.Inc()
	}
}
