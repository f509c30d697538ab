package environment

import "github.com/bshepherdson/mal/go/types"

// Env is one scope frame. outer is only followed for lookups; a frame never
// owns the frame it was created from.
type Env struct {
	data  map[string]types.Data
	outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{map[string]types.Data{}, outer}
}

// Set binds key in this frame only.
func (e *Env) Set(key *types.DSymbol, value types.Data) {
	e.data[key.Name] = value
}

func (e *Env) Find(key *types.DSymbol) (types.Data, bool) {
	if value, ok := e.data[key.Name]; ok {
		return value, true
	}
	if e.outer != nil {
		return e.outer.Find(key)
	}

	return nil, false
}

func (e *Env) Get(key *types.DSymbol) (types.Data, error) {
	value, ok := e.Find(key)
	if !ok {
		return nil, types.NotFoundf(key.Name)
	}
	return value, nil
}

func (e *Env) Outer() *Env {
	return e.outer
}
