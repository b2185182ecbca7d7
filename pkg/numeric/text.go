package numeric

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text número tal como lo envió el cliente (número JSON o texto).
// Se conserva sin interpretar para que la validación decida con Parse.
type Text string

// UnmarshalJSON acepta 12.5, "12,5" o null.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}
	*t = Text(b)
	return nil
}

// String devuelve el texto original.
func (t Text) String() string { return string(t) }
