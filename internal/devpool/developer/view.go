package developer

import (
	"github.com/tidwall/sjson"
)

// View returns the JSON view of a developer: {"kind":...,"name":...}.
func View(d Developer) ([]byte, error) {
	b, err := sjson.SetBytes(nil, "kind", d.Kind().String())
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(b, "name", d.Name())
}

// Fields returns the developer as a plain map for encoders that do not take
// raw JSON.
func Fields(d Developer) map[string]string {
	return map[string]string{
		"kind": d.Kind().String(),
		"name": d.Name(),
	}
}
