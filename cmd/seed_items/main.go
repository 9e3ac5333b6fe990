// seed_items genera un script SQL con artículos y existencias de demostración
// a partir de una exportación CSV del ERP (separador ';', codificación ISO-8859-1).
//
// Columnas: item_code;item_name;description;warehouse;actual_qty (la primera fila es encabezado).
//
// Uso: go run ./cmd/seed_items [ruta/items.csv] [salida.sql]
// Por defecto lee items.csv del directorio actual y escribe
// internal/infrastructure/postgres/seeds/items_seed.sql.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type itemRow struct {
	code        string
	name        string
	description string
}

type binRow struct {
	itemCode  string
	warehouse string
	qty       decimal.Decimal
}

func main() {
	csvPath := "items.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	items, bins, err := parseExport(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "seeds", "items_seed.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, items, bins); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d artículos, %d existencias\n", outPath, len(items), len(bins))
}

// parseExport lee el CSV ya decodificado a UTF-8. Un artículo repetido conserva
// el primer nombre y descripción; la misma bodega repetida acumula cantidades.
func parseExport(r io.Reader) ([]itemRow, []binRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		return nil, nil, fmt.Errorf("encabezado: %w", err)
	}

	itemIdx := make(map[string]int)
	binIdx := make(map[[2]string]int)
	var items []itemRow
	var bins []binRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: %w", line, err)
		}
		code := strings.TrimSpace(rec[0])
		if code == "" {
			continue
		}
		if _, ok := itemIdx[code]; !ok {
			itemIdx[code] = len(items)
			items = append(items, itemRow{
				code:        code,
				name:        strings.TrimSpace(rec[1]),
				description: strings.TrimSpace(rec[2]),
			})
		}

		wh := strings.TrimSpace(rec[3])
		if wh == "" {
			continue
		}
		qty, err := parseQty(rec[4])
		if err != nil {
			return nil, nil, fmt.Errorf("línea %d: cantidad %q: %w", line, rec[4], err)
		}
		key := [2]string{code, wh}
		if i, ok := binIdx[key]; ok {
			bins[i].qty = bins[i].qty.Add(qty)
			continue
		}
		binIdx[key] = len(bins)
		bins = append(bins, binRow{itemCode: code, warehouse: wh, qty: qty})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].code < items[j].code })
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].itemCode != bins[j].itemCode {
			return bins[i].itemCode < bins[j].itemCode
		}
		return bins[i].warehouse < bins[j].warehouse
	})
	return items, bins, nil
}

// parseQty acepta coma decimal (exportaciones en español) y vacío como cero.
func parseQty(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func writeSQL(w io.Writer, items []itemRow, bins []binRow) error {
	var b strings.Builder
	b.WriteString("-- Artículos y existencias de demostración\n")
	b.WriteString("-- Generado por cmd/seed_items desde la exportación CSV del ERP\n\n")

	if len(items) > 0 {
		b.WriteString("-- 1. Artículos\n")
		b.WriteString("INSERT INTO items (item_code, item_name, description) VALUES\n")
		for i, it := range items {
			fmt.Fprintf(&b, "  ('%s', '%s', %s)", escapeSQL(it.code), escapeSQL(it.name), nullable(it.description))
			if i < len(items)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("ON CONFLICT (item_code) DO UPDATE SET item_name = EXCLUDED.item_name, description = EXCLUDED.description;\n\n")
	}

	if len(bins) > 0 {
		b.WriteString("-- 2. Existencias por bodega\n")
		b.WriteString("INSERT INTO bins (item_code, warehouse, actual_qty) VALUES\n")
		for i, bn := range bins {
			fmt.Fprintf(&b, "  ('%s', '%s', %s)", escapeSQL(bn.itemCode), escapeSQL(bn.warehouse), bn.qty.String())
			if i < len(bins)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("ON CONFLICT (item_code, warehouse) DO UPDATE SET actual_qty = EXCLUDED.actual_qty;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
