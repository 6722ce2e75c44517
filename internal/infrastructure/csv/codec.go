// Package csv implementa el códec CSV de ítems usando gocsv.
package csv

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
)

var _ ledger.ItemCSVCodec = (*Codec)(nil)

// Codec códec CSV basado en las etiquetas csv de dto.ItemCSVRecord.
type Codec struct{}

// NewCodec crea un nuevo códec CSV de ítems.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode lee un CSV con cabecera y devuelve las filas.
func (c *Codec) Decode(r io.Reader) ([]dto.ItemCSVRecord, error) {
	var records []dto.ItemCSVRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("decode CSV: %w", err)
	}
	return records, nil
}

// Encode escribe las filas como CSV con cabecera.
func (c *Codec) Encode(w io.Writer, records []dto.ItemCSVRecord) error {
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("encode CSV: %w", err)
	}
	return nil
}
