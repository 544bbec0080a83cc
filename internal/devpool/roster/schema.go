package roster

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const rosterSchemaURL = "inline://roster"

const rosterSchema = `{
  "type": "object",
  "required": ["version", "developers"],
  "properties": {
    "version": {"type": "string"},
    "developers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind"],
        "properties": {
          "kind": {"type": "string", "minLength": 1},
          "name": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  }
}`

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileOnce       sync.Once
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.LoadURL = func(url string) (io.ReadCloser, error) {
			return nil, fmt.Errorf("unsupported schema ref: %s", url)
		}
		if err := compiler.AddResource(rosterSchemaURL, bytes.NewReader([]byte(rosterSchema))); err != nil {
			compiledSchemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(rosterSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}
