// Package observability содержит Prometheus-метрики сервиса записи на занятия.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation обозначает изменяющую операцию над списком участников.
type Operation string

const (
	OperationSignup     Operation = "signup"
	OperationUnregister Operation = "unregister"
)

// Metrics группирует коллекторы сервиса.
// Регистрируется в переданном Registerer, а не в глобальном, чтобы тесты были изолированы.
type Metrics struct {
	operations   *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	overCapacity *prometheus.CounterVec
}

// NewMetrics создаёт и регистрирует коллекторы.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_service",
			Name:      "participant_operations_total",
			Help:      "Successful signup and unregister operations per activity.",
		}, []string{"activity", "operation"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_service",
			Name:      "participant_rejections_total",
			Help:      "Rejected signup and unregister operations grouped by error code.",
		}, []string{"operation", "code"}),
		overCapacity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activity_service",
			Name:      "signups_over_capacity_total",
			Help:      "Signups accepted while the roster already exceeds max_participants.",
		}, []string{"activity"}),
	}

	reg.MustRegister(m.operations, m.rejections, m.overCapacity)
	return m
}

// RecordSuccess учитывает успешную операцию.
func (m *Metrics) RecordSuccess(op Operation, activity string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(activity, string(op)).Inc()
}

// RecordRejection учитывает отклонённую операцию.
// Имя занятия в метку не попадает: для неизвестных занятий это пользовательский ввод.
func (m *Metrics) RecordRejection(op Operation, code string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(string(op), code).Inc()
}

// RecordOverCapacity учитывает запись сверх max_participants.
func (m *Metrics) RecordOverCapacity(activity string) {
	if m == nil {
		return
	}
	m.overCapacity.WithLabelValues(activity).Inc()
}
