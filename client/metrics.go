package client

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Request Metrics
// --------------------------------------------------------------------------

// requestMetrics bundles the metric handles for one method/endpoint/outcome
// combination
type requestMetrics struct {
	total    *metrics.Counter
	duration *metrics.Histogram
}

// requestMetricsCache caches the metric handles so the hot path does not
// have to re-format metric names on every request
var requestMetricsCache = xsync.NewMapOf[string, *requestMetrics]()

// observeRequest records one completed request attempt. The outcome is
// either "success" or the name of the error kind.
func observeRequest(req HTTPRequest, _ int, outcome string, start time.Time) {
	endpoint := endpointOf(req.URI)
	key := req.Method + "|" + endpoint + "|" + outcome

	m, _ := requestMetricsCache.LoadOrCompute(key, func() *requestMetrics {
		return &requestMetrics{
			total: metrics.GetOrCreateCounter(fmt.Sprintf(
				`etcdc_requests_total{method=%q,endpoint=%q,outcome=%q}`,
				req.Method, endpoint, outcome)),
			duration: metrics.GetOrCreateHistogram(fmt.Sprintf(
				`etcdc_request_duration_seconds{method=%q,endpoint=%q,outcome=%q}`,
				req.Method, endpoint, outcome)),
		}
	})

	m.total.Inc()
	m.duration.UpdateDuration(start)
}

// endpointOf extracts the host part of a request URI for use as a metric label
func endpointOf(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Host == "" {
		return "invalid"
	}
	return parsed.Host
}

// --------------------------------------------------------------------------
// Exposition
// --------------------------------------------------------------------------

// WriteMetrics writes all request metrics in Prometheus text format.
// Applications embedding the client can hook this into their own metrics
// endpoint.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
