// Package pool holds developers by name.
package pool

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tansive/devpool/internal/common/apperrors"
	"github.com/tansive/devpool/internal/common/uuid"
	"github.com/tansive/devpool/internal/devpool/developer"
)

// Pool maps developer names to developers. A name holds at most one
// developer and the last Add wins. Entries are never removed.
type Pool struct {
	id         uuid.UUID
	mu         sync.RWMutex
	developers map[string]developer.Developer
}

func New() *Pool {
	return &Pool{
		id:         uuid.New(),
		developers: make(map[string]developer.Developer),
	}
}

func (p *Pool) ID() uuid.UUID {
	return p.id
}

// Add stores d under its name. The switch must name every kind in
// developer.Kinds(); default is reached only by types outside the closed set.
// Names are checked with developer.Validate before they are stored.
func (p *Pool) Add(ctx context.Context, d developer.Developer) apperrors.Error {
	if d == nil {
		return ErrInvalidDeveloper
	}
	switch d := d.(type) {
	case developer.Backend:
		return p.put(ctx, d)
	case developer.Frontend:
		return p.put(ctx, d)
	case developer.Android:
		return p.put(ctx, d)
	case developer.Other:
		log.Ctx(ctx).Warn().
			Str("pool_id", p.id.String()).
			Str("kind", d.Kind().String()).
			Msg("developer kind is not accepted into the pool")
	default:
		log.Ctx(ctx).Error().
			Str("pool_id", p.id.String()).
			Str("type", fmt.Sprintf("%T", d)).
			Msg("unsupported developer kind")
		return ErrUnsupportedKind.Msg(fmt.Sprintf("unsupported developer kind: %T", d))
	}
	return nil
}

func (p *Pool) put(ctx context.Context, d developer.Developer) apperrors.Error {
	if err := developer.Validate(d); err != nil {
		log.Ctx(ctx).Error().
			Str("pool_id", p.id.String()).
			Str("kind", d.Kind().String()).
			Err(err).
			Msg("developer rejected")
		return err
	}

	p.mu.Lock()
	prev, replaced := p.developers[d.Name()]
	p.developers[d.Name()] = d
	p.mu.Unlock()

	ev := log.Ctx(ctx).Debug().
		Str("pool_id", p.id.String()).
		Str("kind", d.Kind().String()).
		Str("name", d.Name())
	if replaced {
		ev = ev.Str("replaced_kind", prev.Kind().String())
	}
	ev.Msg("developer added")
	return nil
}

// Get returns the developer registered under name. A miss is reported with
// ok set to false.
func (p *Pool) Get(name string) (d developer.Developer, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok = p.developers[name]
	return d, ok
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.developers)
}

// List returns a snapshot of the pool ordered by name.
func (p *Pool) List() []developer.Developer {
	p.mu.RLock()
	devs := make([]developer.Developer, 0, len(p.developers))
	for _, d := range p.developers {
		devs = append(devs, d)
	}
	p.mu.RUnlock()

	sort.Slice(devs, func(i, j int) bool {
		return devs[i].Name() < devs[j].Name()
	})
	return devs
}
