package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"agnoctl/pkg/types"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agnoctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agnoctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	checksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agnoctl",
			Subsystem: "stack",
			Name:      "checks_total",
			Help:      "Service check outcomes reported via /status",
		},
		[]string{"service", "outcome"},
	)

	checkDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agnoctl",
			Subsystem: "stack",
			Name:      "check_duration_seconds",
			Help:      "Duration of individual service checks in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	pullsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agnoctl",
			Subsystem: "stack",
			Name:      "pulls_total",
			Help:      "Model pull attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, checksTotal, checkDuration, pullsTotal)
	// materialize both outcome series so the family shows up on /metrics
	// before the first pull
	pullsTotal.WithLabelValues("success")
	pullsTotal.WithLabelValues("failure")
}

// RecordPull counts one model pull attempt by outcome. The sync loop
// calls this for every pull it issues.
func RecordPull(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	pullsTotal.WithLabelValues(outcome).Inc()
}

// recordChecks counts per-service pass/fail outcomes of one report and
// observes each check's duration.
func recordChecks(report types.StatusReport) {
	for _, c := range report.Checks {
		outcome := "pass"
		if !c.OK {
			outcome = "fail"
		}
		checksTotal.WithLabelValues(c.Service, outcome).Inc()
		checkDuration.WithLabelValues(c.Service).Observe(float64(c.ElapsedMS) / 1000)
	}
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware instruments requests for Prometheus
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := routePatternOrPath(r)
		method := r.Method

		sr := &statusRecorder{ResponseWriter: w, status: 200}
		start := time.Now()
		next.ServeHTTP(sr, r)
		statusLabel := itoa(sr.status)
		dur := time.Since(start).Seconds()
		httpRequestsTotal.WithLabelValues(path, method, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(path, method, statusLabel).Observe(dur)
	})
}

// routePatternOrPath returns the chi route pattern if available, otherwise
// falls back to URL path. This avoids high-cardinality label values.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// fast integer to ascii for small set of status codes
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
