// filepath: internal/metrics/metrics.go
// Package metrics exposes Prometheus metrics for the HTTP surface and filesystem scans.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "moviecatalog"

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	driveScansTotal prometheus.Counter
	drivesFound     prometheus.Gauge
	directoryScans  prometheus.Counter
	videoFilesFound prometheus.Counter
	scanDuration    *prometheus.HistogramVec
	scanErrors      *prometheus.CounterVec
}

// New creates the metric set and registers it, together with the Go runtime collectors.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken for HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.driveScansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drive_scans_total",
		Help:      "Number of drive enumerations performed",
	})
	m.drivesFound = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "drives_found",
		Help:      "Drives found by the most recent drive enumeration",
	})
	m.directoryScans = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_scans_total",
		Help:      "Number of directory scans for video files",
	})
	m.videoFilesFound = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "video_files_found_total",
		Help:      "Video files returned by directory scans",
	})
	m.scanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time taken by filesystem scans",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
	m.scanErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_errors_total",
			Help:      "Failures logged while scanning, by scan kind",
		},
		[]string{"kind"},
	)

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal, m.httpRequestDuration,
		m.driveScansTotal, m.drivesFound, m.directoryScans, m.videoFilesFound, m.scanDuration, m.scanErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDriveScan records one drive enumeration.
func (m *Metrics) ObserveDriveScan(found int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.driveScansTotal.Inc()
	m.drivesFound.Set(float64(found))
	m.scanDuration.WithLabelValues("drives").Observe(elapsed.Seconds())
}

// ObserveDirectoryScan records one recursive video scan.
func (m *Metrics) ObserveDirectoryScan(found int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.directoryScans.Inc()
	m.videoFilesFound.Add(float64(found))
	m.scanDuration.WithLabelValues("directory").Observe(elapsed.Seconds())
}

// ObserveScanError records one failure logged by a scan of the given kind.
func (m *Metrics) ObserveScanError(kind string) {
	if m == nil {
		return
	}
	m.scanErrors.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
