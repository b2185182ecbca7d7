package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
)

// Separador de columnas: las hojas de cálculo en español usan ';' porque ',' es el decimal.
const csvSeparator = ';'

// Encoding codificación de salida del CSV.
type Encoding string

// Codificaciones soportadas.
const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "windows-1252"
)

// ParseEncoding interpreta el parámetro de codificación; vacío = UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf8", "utf-8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252", "latin1":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("codificación no soportada: %q", s)
	}
}

// ContentType devuelve el Content-Type HTTP del CSV.
func (e Encoding) ContentType() string {
	if e == EncodingWindows1252 {
		return "text/csv; charset=windows-1252"
	}
	return "text/csv; charset=utf-8"
}

func (e Encoding) writer(w io.Writer) io.Writer {
	if e == EncodingWindows1252 {
		enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
		return transform.NewWriter(w, enc)
	}
	return w
}

var productReportHeader = []string{
	"ID", "Producto", "Costo total", "Ventas totales", "Ganancia", "Margen %", "ROI %", "Stock", "Estado",
}

// WriteProductReportCSV escribe el reporte de rentabilidad por producto.
func WriteProductReportCSV(w io.Writer, items []dto.ProductReportItem, enc Encoding) error {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, productReportHeader)
	for _, it := range items {
		rows = append(rows, []string{
			it.ProductID,
			it.Name,
			amount(it.TotalCost),
			amount(it.TotalSales),
			amount(it.Profit),
			amount(it.MarginPct),
			amount(it.ROIPct),
			strconv.Itoa(it.Stock),
			it.Status,
		})
	}
	return writeAll(w, rows, enc)
}

var movementsHeader = []string{"Fecha", "Tipo", "Descripción", "Monto"}

// WriteMovementsCSV escribe los movimientos en el orden recibido.
func WriteMovementsCSV(w io.Writer, movements []dto.MovementResponse, enc Encoding) error {
	rows := make([][]string, 0, len(movements)+1)
	rows = append(rows, movementsHeader)
	for _, m := range movements {
		rows = append(rows, []string{m.Date, m.Type, m.Description, amount(m.Amount)})
	}
	return writeAll(w, rows, enc)
}

func writeAll(w io.Writer, rows [][]string, enc Encoding) error {
	out := enc.writer(w)
	cw := csv.NewWriter(out)
	cw.Comma = csvSeparator
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("escribir csv: %w", err)
	}
	if c, ok := out.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("codificar csv: %w", err)
		}
	}
	return nil
}

// amount usa coma decimal para que la hoja de cálculo lo reconozca como número.
func amount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
