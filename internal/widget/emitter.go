package widget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"stocker/internal/customerrors"
	"stocker/internal/model"
)

// Emit writes out as indented JSON. Nothing reaches w unless encoding
// succeeds.
func Emit(w io.Writer, out model.WidgetOutput) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("%w: %v", customerrors.ErrSerialization, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write output: %v", customerrors.ErrSerialization, err)
	}
	return nil
}
