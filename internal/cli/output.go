package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/tansive/devpool/internal/devpool/developer"
	"github.com/tansive/devpool/pkg/types"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// rawJSON marks already encoded JSON so printValue passes it through.
type rawJSON = jsoniter.RawMessage

func printValue(w io.Writer, format string, v any) error {
	switch format {
	case types.OutputJSON:
		b, err := jsonAPI.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

func printDevelopers(w io.Writer, format string, devs []developer.Developer) error {
	switch format {
	case types.OutputJSON:
		views := make([]rawJSON, 0, len(devs))
		for _, d := range devs {
			b, err := developer.View(d)
			if err != nil {
				return err
			}
			views = append(views, b)
		}
		return printValue(w, format, views)
	case types.OutputYAML:
		fields := make([]map[string]string, 0, len(devs))
		for _, d := range devs {
			fields = append(fields, developer.Fields(d))
		}
		return printValue(w, format, fields)
	default:
		for _, d := range devs {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}
		return nil
	}
}

type lookupResult struct {
	name string
	dev  developer.Developer
}

func (r lookupResult) found() bool {
	return r.dev != nil
}

func (r lookupResult) view() ([]byte, error) {
	b, err := sjson.SetBytes(nil, "name", r.name)
	if err != nil {
		return nil, err
	}
	if b, err = sjson.SetBytes(b, "found", r.found()); err != nil || !r.found() {
		return b, err
	}
	view, err := developer.View(r.dev)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(b, "developer", view)
}

func printLookups(w io.Writer, format string, results []lookupResult) error {
	switch format {
	case types.OutputJSON:
		views := make([]rawJSON, 0, len(results))
		for _, r := range results {
			b, err := r.view()
			if err != nil {
				return err
			}
			views = append(views, b)
		}
		return printValue(w, format, views)
	case types.OutputYAML:
		out := make([]map[string]any, 0, len(results))
		for _, r := range results {
			m := map[string]any{"name": r.name, "found": r.found()}
			if r.found() {
				m["developer"] = developer.Fields(r.dev)
			}
			out = append(out, m)
		}
		return printValue(w, format, out)
	default:
		for _, r := range results {
			line := r.name + ": not found"
			if r.found() {
				line = fmt.Sprintf("%s: %s", r.name, r.dev)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}
