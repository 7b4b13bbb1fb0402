package util

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pretty renders obj as indented JSON without escaping markup characters.
func Pretty(obj interface{}) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&obj); err != nil {
		return fmt.Sprint(obj)
	}
	return buf.String()
}
