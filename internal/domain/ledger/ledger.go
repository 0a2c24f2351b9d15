// Package ledger mantiene el stock por par (producto, depósito), la única fuente
// de verdad de cantidades. No es seguro para uso concurrente: el store lo protege
// y trabaja sobre copias (Clone) que reemplaza de una sola vez.
package ledger

import (
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// Key clave compuesta del ledger. Es comparable, se usa directamente como clave de mapa.
type Key struct {
	ProductID   string
	WarehouseID string
}

// Ledger mapa (producto, depósito) → cantidad con orden de inserción estable.
type Ledger struct {
	qty   map[Key]int
	order []Key
}

// New crea un ledger vacío.
func New() *Ledger {
	return &Ledger{qty: make(map[Key]int)}
}

// FromEntries construye un ledger a partir de entradas; rechaza cantidades negativas.
// Entradas repetidas para el mismo par se suman.
func FromEntries(entries []entity.Stock) (*Ledger, error) {
	l := New()
	for _, e := range entries {
		if _, err := l.Adjust(e.ProductID, e.WarehouseID, e.Quantity); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Quantity devuelve la cantidad del par, 0 si no hay entrada.
func (l *Ledger) Quantity(productID, warehouseID string) int {
	return l.qty[Key{productID, warehouseID}]
}

// Set reemplaza la cantidad del par, creando la entrada si no existe.
func (l *Ledger) Set(productID, warehouseID string, quantity int) error {
	if productID == "" || warehouseID == "" || quantity < 0 {
		return domain.ErrInvalidInput
	}
	k := Key{productID, warehouseID}
	if _, ok := l.qty[k]; !ok {
		l.order = append(l.order, k)
	}
	l.qty[k] = quantity
	return nil
}

// Adjust suma delta a la cantidad del par y devuelve la nueva cantidad.
// Si el resultado fuese negativo no modifica nada y devuelve *domain.StockError;
// si no entra en un int devuelve domain.ErrQuantityOverflow.
func (l *Ledger) Adjust(productID, warehouseID string, delta int) (int, error) {
	if productID == "" || warehouseID == "" {
		return 0, domain.ErrInvalidInput
	}
	current := l.Quantity(productID, warehouseID)
	next, ok := entity.AddQuantity(current, delta)
	if !ok {
		return current, domain.ErrQuantityOverflow
	}
	if next < 0 {
		return current, &domain.StockError{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Requested:   -delta,
			Available:   current,
		}
	}
	if err := l.Set(productID, warehouseID, next); err != nil {
		return current, err
	}
	return next, nil
}

// RemoveProduct elimina todas las entradas del producto (borrado en cascada).
func (l *Ledger) RemoveProduct(productID string) int {
	return l.removeWhere(func(k Key) bool { return k.ProductID == productID })
}

// RemoveWarehouse elimina todas las entradas del depósito (borrado en cascada).
func (l *Ledger) RemoveWarehouse(warehouseID string) int {
	return l.removeWhere(func(k Key) bool { return k.WarehouseID == warehouseID })
}

func (l *Ledger) removeWhere(match func(Key) bool) int {
	kept := l.order[:0]
	removed := 0
	for _, k := range l.order {
		if match(k) {
			delete(l.qty, k)
			removed++
			continue
		}
		kept = append(kept, k)
	}
	l.order = kept
	return removed
}

// Entries devuelve las entradas en orden de inserción.
func (l *Ledger) Entries() []entity.Stock {
	out := make([]entity.Stock, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, entity.Stock{ProductID: k.ProductID, WarehouseID: k.WarehouseID, Quantity: l.qty[k]})
	}
	return out
}

// EntriesByWarehouse devuelve las entradas de un depósito en orden de inserción.
func (l *Ledger) EntriesByWarehouse(warehouseID string) []entity.Stock {
	var out []entity.Stock
	for _, k := range l.order {
		if k.WarehouseID == warehouseID {
			out = append(out, entity.Stock{ProductID: k.ProductID, WarehouseID: k.WarehouseID, Quantity: l.qty[k]})
		}
	}
	return out
}

// Total suma la cantidad de un producto en todos los depósitos (saturada en math.MaxInt).
func (l *Ledger) Total(productID string) int {
	total := 0
	for k, q := range l.qty {
		if k.ProductID == productID {
			total, _ = entity.AddQuantity(total, q)
		}
	}
	return total
}

// TotalByProduct agrega el stock de cada producto en todos los depósitos.
func (l *Ledger) TotalByProduct() map[string]int {
	out := make(map[string]int)
	for k, q := range l.qty {
		out[k.ProductID], _ = entity.AddQuantity(out[k.ProductID], q)
	}
	return out
}

// Clone copia profunda; la copia puede modificarse sin afectar al original.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		qty:   make(map[Key]int, len(l.qty)),
		order: make([]Key, len(l.order)),
	}
	copy(c.order, l.order)
	for k, q := range l.qty {
		c.qty[k] = q
	}
	return c
}

// Reset elimina todas las entradas.
func (l *Ledger) Reset() {
	l.qty = make(map[Key]int)
	l.order = nil
}
