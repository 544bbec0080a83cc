// Package roster loads developer rosters written in YAML or JSON.
package roster

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/tansive/devpool/internal/common/apperrors"
	"github.com/tansive/devpool/internal/devpool/developer"
	"github.com/tansive/devpool/internal/devpool/pool"
	"github.com/tansive/devpool/pkg/types"
)

// Parse decodes a roster document into developers, in document order.
func Parse(doc []byte) ([]developer.Developer, apperrors.Error) {
	jsonDoc, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, ErrInvalidRoster.MsgErr("roster is not valid YAML or JSON", err)
	}
	if !gjson.ValidBytes(jsonDoc) {
		return nil, ErrInvalidRoster.Msg("roster is not valid JSON")
	}

	s, err := schema()
	if err != nil {
		return nil, ErrRosterError.MsgErr("unable to compile roster schema", err)
	}
	var v any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(jsonDoc, &v); err != nil {
		return nil, ErrInvalidRoster.Err(err)
	}
	if err := s.Validate(v); err != nil {
		return nil, ErrInvalidRoster.Err(err)
	}

	if version := gjson.GetBytes(jsonDoc, "version").String(); version != types.RosterVersionV1 {
		return nil, ErrInvalidRoster.Msg("unsupported roster version: " + version)
	}

	var (
		devs    []developer.Developer
		itemErr apperrors.Error
	)
	gjson.GetBytes(jsonDoc, "developers").ForEach(func(key, value gjson.Result) bool {
		kind, err := developer.ParseKind(value.Get("kind").String())
		if err != nil {
			itemErr = err.Prefix(fmt.Sprintf("developers[%d]", key.Int()))
			return false
		}
		d, err := developer.New(kind, value.Get("name").String())
		if err != nil {
			itemErr = err.Prefix(fmt.Sprintf("developers[%d]", key.Int()))
			return false
		}
		devs = append(devs, d)
		return true
	})
	if itemErr != nil {
		return nil, ErrInvalidRoster.Err(itemErr)
	}
	return devs, nil
}

// Load parses doc and adds every developer to p. It stops at the first
// failure and returns the number of developers handed to the pool.
func Load(ctx context.Context, p *pool.Pool, doc []byte) (int, apperrors.Error) {
	devs, err := Parse(doc)
	if err != nil {
		return 0, err
	}
	for i, d := range devs {
		if err := p.Add(ctx, d); err != nil {
			return i, err
		}
	}
	log.Ctx(ctx).Debug().
		Str("pool_id", p.ID().String()).
		Int("count", len(devs)).
		Msg("roster loaded")
	return len(devs), nil
}

// LoadFile reads the roster at path and loads it into p.
func LoadFile(ctx context.Context, p *pool.Pool, path string) (int, apperrors.Error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return 0, ErrRosterRead.MsgErr("unable to read roster file "+path, err)
	}
	return Load(ctx, p, doc)
}
