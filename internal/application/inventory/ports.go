package inventory

// Metrics puerto de observabilidad del motor de inventario. Lo implementa
// el adaptador de Prometheus; NopMetrics sirve para tests y CLI.
type Metrics interface {
	TransferApplied(items, units int)
	TransferRejected(reason string)
	ImportCompleted(rows, units int)
	ImportRejected(reason string)
}

// NopMetrics implementación vacía de Metrics.
type NopMetrics struct{}

func (NopMetrics) TransferApplied(int, int)  {}
func (NopMetrics) TransferRejected(string)   {}
func (NopMetrics) ImportCompleted(int, int)  {}
func (NopMetrics) ImportRejected(string)     {}
