package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental_desk"

var (
	// ContractSubmissions counts submit attempts by outcome: created, incomplete, rejected, failed.
	ContractSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contract_submissions_total",
			Help:      "Contract submit attempts by outcome",
		},
		[]string{"result"},
	)
	// PaymentRecordings counts background payment recordings: recorded, failed.
	PaymentRecordings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_recordings_total",
			Help:      "Payments recorded after contract creation by outcome",
		},
		[]string{"result"},
	)
	// BackendRequests records rental backend call latency
	BackendRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rental_api_request_duration_seconds",
			Help:      "Latency of rental backend calls",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"method", "resource", "status"},
	)
)

func init() {
	prometheus.MustRegister(ContractSubmissions, PaymentRecordings, BackendRequests)
}

// RegisterOpenSessions exposes the number of drafts held in memory
func RegisterOpenSessions(count func() int) error {
	return prometheus.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_sessions",
			Help:      "Contract drafts currently held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

// Resource reduces a backend path to its first segment ("contracts/9/payments" -> "contracts")
func Resource(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
