package resthttp

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/yourname/file_storage_lite/internal/usecase/filesvc"
)

const collectTimeout = 5 * time.Second

// metricsCollector экспортирует те же значения, что и GET /metrics, в формате Prometheus.
type metricsCollector struct {
	files filesvc.Service
	log   logrus.FieldLogger

	storedTotal *prometheus.Desc
	current     *prometheus.Desc
	bytes       *prometheus.Desc
}

func newMetricsCollector(files filesvc.Service, log logrus.FieldLogger) *metricsCollector {
	return &metricsCollector{
		files: files,
		log:   log,
		storedTotal: prometheus.NewDesc(
			"storage_files_stored_total",
			"Number of successful uploads since process start.",
			nil, nil,
		),
		current: prometheus.NewDesc(
			"storage_files_current",
			"Number of files currently in the storage directory.",
			nil, nil,
		),
		bytes: prometheus.NewDesc(
			"storage_bytes",
			"Total size of files in the storage directory.",
			nil, nil,
		),
	}
}

func (c *metricsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.storedTotal
	ch <- c.current
	ch <- c.bytes
}

func (c *metricsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	m, err := c.files.Metrics(ctx)
	if err != nil {
		c.log.WithError(err).Warn("collect storage metrics")
		ch <- prometheus.NewInvalidMetric(c.current, err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.storedTotal, prometheus.CounterValue, float64(m.FilesStoredTotal))
	ch <- prometheus.MustNewConstMetric(c.current, prometheus.GaugeValue, float64(m.FilesCurrent))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(m.TotalStorageBytes))
}
