// Package metrics expone contadores Prometheus del motor de inventario.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
)

// Recorder implementa inventory.Metrics y registra métricas HTTP.
type Recorder struct {
	registry *prometheus.Registry

	transfers        prometheus.Counter
	transferUnits    prometheus.Counter
	transferItems    prometheus.Histogram
	transferRejected *prometheus.CounterVec
	importRows       prometheus.Counter
	importUnits      prometheus.Counter
	imports          prometheus.Counter
	importRejected   *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

var _ inventory.Metrics = (*Recorder)(nil)

// New crea un registro propio con los colectores de proceso y de Go.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{
		registry: reg,
		transfers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "transfers_total",
			Help: "Movimientos de stock completados.",
		}),
		transferUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "transfer_units_total",
			Help: "Unidades movidas entre depósitos.",
		}),
		transferItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "transfer_items",
			Help:    "Líneas por movimiento.",
			Buckets: []float64{1, 2, 5, 10, 25, 50},
		}),
		transferRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "transfers_rejected_total",
			Help: "Movimientos rechazados por motivo.",
		}, []string{"reason"}),
		imports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "imports_total",
			Help: "Importaciones confirmadas.",
		}),
		importRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "import_rows_total",
			Help: "Filas procesadas en importaciones confirmadas.",
		}),
		importUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "import_units_total",
			Help: "Unidades agregadas por importaciones.",
		}),
		importRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "imports_rejected_total",
			Help: "Importaciones rechazadas por motivo.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Requests HTTP por ruta, método y status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "Duración de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	reg.MustRegister(
		r.transfers, r.transferUnits, r.transferItems, r.transferRejected,
		r.imports, r.importRows, r.importUnits, r.importRejected,
		r.httpRequests, r.httpDuration,
	)
	return r
}

func (r *Recorder) TransferApplied(items, units int) {
	r.transfers.Inc()
	addCount(r.transferUnits, units)
	r.transferItems.Observe(float64(items))
}

func (r *Recorder) TransferRejected(reason string) {
	r.transferRejected.WithLabelValues(reason).Inc()
}

func (r *Recorder) ImportCompleted(rows, units int) {
	r.imports.Inc()
	addCount(r.importRows, rows)
	addCount(r.importUnits, units)
}

// addCount ignora valores negativos: Counter.Add entra en pánico con ellos y se
// llama después de confirmar la transacción.
func addCount(c prometheus.Counter, n int) {
	if n > 0 {
		c.Add(float64(n))
	}
}

func (r *Recorder) ImportRejected(reason string) {
	r.importRejected.WithLabelValues(reason).Inc()
}

// ObserveHTTP registra un request atendido.
func (r *Recorder) ObserveHTTP(route, method, status string, seconds float64) {
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(seconds)
}

// Handler handler de /metrics sobre el registro propio.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry acceso al registro (tests).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
