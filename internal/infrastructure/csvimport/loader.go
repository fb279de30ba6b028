// Package csvimport lee el origen de importación masiva de stock: filas CSV
// con nombre, unidad y cantidad.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/restaurante-pos/internal/application/inventory"
)

// Parse lee filas `nombre,unidad,cantidad` desde r. Las filas con un número de
// campos incorrecto se devuelven como errores de fila, no abortan la lectura:
// la carga masiva es best-effort. Una primera fila de cabecera
// ("nombre,unidad,cantidad" o equivalentes en inglés) se reconoce y se salta.
func Parse(r io.Reader) ([]inventory.ImportRow, []inventory.RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // el número de campos se valida fila a fila
	reader.TrimLeadingSpace = true

	var rows []inventory.ImportRow
	var rowErrs []inventory.RowError
	lineNum := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				rowErrs = append(rowErrs, inventory.RowError{Line: parseErr.Line, Reason: "fila CSV malformada"})
				continue
			}
			return rows, rowErrs, fmt.Errorf("csvimport: leer: %w", err)
		}
		if lineNum == 1 && isHeader(record) {
			continue
		}
		if len(record) != 3 {
			rowErrs = append(rowErrs, inventory.RowError{
				Line:   lineNum,
				Reason: fmt.Sprintf("se esperaban 3 campos, hay %d", len(record)),
			})
			continue
		}
		rows = append(rows, inventory.ImportRow{
			Line:     lineNum,
			Name:     strings.TrimSpace(record[0]),
			Unit:     strings.TrimSpace(record[1]),
			Quantity: strings.TrimSpace(record[2]),
		})
	}
	return rows, rowErrs, nil
}

// isHeader reconoce una fila de cabecera por su primer campo.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(record[0])) {
	case "nombre", "ingrediente", "name", "ingredient":
		return true
	}
	return false
}
