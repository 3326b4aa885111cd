// Package reuse implements a reusable-cell pool for the list and grid hosts.
//
// A host starts every render pass with BeginPass, which returns all bound
// cells to the free lists. Sources then dequeue cells by reuse identifier
// while answering cell requests; a dequeued cell is recycled when one of the
// same identifier is free, otherwise the registered factory builds one.
package reuse

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/gridsource/geom"
)

// ErrUnregistered is wrapped by the panic raised when a source dequeues an
// identifier nobody registered.
var ErrUnregistered = errors.New("reuse: unregistered identifier")

// Factory builds a new cell. id is the identity the pool assigned to it.
type Factory func(id uuid.UUID) any

// Identified is implemented by cells that can report the identity they were
// built with, which PositionForCell needs.
type Identified interface {
	ReuseIdentity() uuid.UUID
}

// Preparer is implemented by cells that reset state before being handed out
// again.
type Preparer interface {
	PrepareForReuse()
}

type entry struct {
	id      uuid.UUID
	reuseID string
	cell    any
	pos     geom.Position
}

// Pool recycles cells by reuse identifier.
type Pool struct {
	factories map[string]Factory
	free      map[string][]*entry
	bound     map[uuid.UUID]*entry
	created   int
	reloads   int

	// OnReload runs when a source asks for its data to be reloaded.
	OnReload func()
}

func New() *Pool {
	return &Pool{
		factories: make(map[string]Factory),
		free:      make(map[string][]*entry),
		bound:     make(map[uuid.UUID]*entry),
	}
}

// Register binds reuseID to f, replacing any previous factory.
func (p *Pool) Register(reuseID string, f Factory) {
	p.factories[reuseID] = f
}

// BeginPass releases every bound cell for reuse.
func (p *Pool) BeginPass() {
	for id, e := range p.bound {
		p.free[e.reuseID] = append(p.free[e.reuseID], e)
		delete(p.bound, id)
	}
}

// DequeueReusableCell returns a free cell for reuseID bound to pos, creating
// one when none is free.
func (p *Pool) DequeueReusableCell(reuseID string, pos geom.Position) any {
	if free := p.free[reuseID]; len(free) > 0 {
		e := free[len(free)-1]
		p.free[reuseID] = free[:len(free)-1]
		if r, ok := e.cell.(Preparer); ok {
			r.PrepareForReuse()
		}
		e.pos = pos
		p.bound[e.id] = e
		return e.cell
	}
	f, ok := p.factories[reuseID]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnregistered, reuseID))
	}
	id := uuid.New()
	e := &entry{id: id, reuseID: reuseID, cell: f(id), pos: pos}
	p.bound[id] = e
	p.created++
	return e.cell
}

// PositionForCell reports where c is bound in the current pass.
func (p *Pool) PositionForCell(c any) (geom.Position, bool) {
	ident, ok := c.(Identified)
	if !ok {
		return geom.Position{}, false
	}
	e, ok := p.bound[ident.ReuseIdentity()]
	if !ok {
		return geom.Position{}, false
	}
	return e.pos, true
}

// ReloadData drops every pooled cell and notifies OnReload.
func (p *Pool) ReloadData() {
	clear(p.free)
	clear(p.bound)
	p.reloads++
	if p.OnReload != nil {
		p.OnReload()
	}
}

// Stats reports how many cells were ever built, how many are bound right now
// and how many reloads happened.
func (p *Pool) Stats() (created, bound, reloads int) {
	return p.created, len(p.bound), p.reloads
}
