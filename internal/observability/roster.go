package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"activity-signup-service/internal/model"
)

// RosterSource отдаёт текущий каталог занятий.
type RosterSource interface {
	List(ctx context.Context) (model.Catalog, error)
}

// RosterCollector отдаёт размер списков участников, читая каталог в момент scrape,
// поэтому значение всегда соответствует последнему состоянию каталога.
type RosterCollector struct {
	source RosterSource
	desc   *prometheus.Desc
}

// NewRosterCollector создаёт коллектор activity_service_roster_size.
func NewRosterCollector(source RosterSource) *RosterCollector {
	return &RosterCollector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName("activity_service", "", "roster_size"),
			"Current number of participants per activity.",
			[]string{"activity"}, nil,
		),
	}
}

// Describe реализует prometheus.Collector.
func (c *RosterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect реализует prometheus.Collector.
func (c *RosterCollector) Collect(ch chan<- prometheus.Metric) {
	catalog, err := c.source.List(context.Background())
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	for name, a := range catalog {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(len(a.Participants)), name)
	}
}
