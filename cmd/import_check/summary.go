package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// warehouseSummary filas y unidades de un depósito del archivo.
type warehouseSummary struct {
	Name  string
	Rows  int
	Units int
}

// fileSummary resumen de un archivo válido. Los depósitos se agrupan sin distinguir
// mayúsculas, igual que al importar, y conservan el nombre de su primera fila.
type fileSummary struct {
	Rows       int
	SKUs       int
	Warehouses []warehouseSummary
}

func summarize(rows []inventory.ImportRow) fileSummary {
	byKey := map[string]*warehouseSummary{}
	skus := map[string]struct{}{}
	for _, r := range rows {
		key := strings.ToLower(r.WarehouseName)
		s, ok := byKey[key]
		if !ok {
			s = &warehouseSummary{Name: r.WarehouseName}
			byKey[key] = s
		}
		s.Rows++
		s.Units, _ = entity.AddQuantity(s.Units, r.Quantity)
		skus[strings.ToLower(r.SKU)] = struct{}{}
	}

	out := fileSummary{Rows: len(rows), SKUs: len(skus)}
	for _, s := range byKey {
		out.Warehouses = append(out.Warehouses, *s)
	}
	sort.Slice(out.Warehouses, func(i, j int) bool { return out.Warehouses[i].Name < out.Warehouses[j].Name })
	return out
}

func (s fileSummary) write(w io.Writer) {
	fmt.Fprintf(w, "Archivo válido: %d filas, %d SKUs distintos\n", s.Rows, s.SKUs)
	for _, wh := range s.Warehouses {
		fmt.Fprintf(w, "  %-30s %5d filas %8d unidades\n", wh.Name, wh.Rows, wh.Units)
	}
}
