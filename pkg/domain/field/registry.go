package field

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrUnknownFieldType    = errors.New("unknown field type")
	ErrFieldTypeRegistered = errors.New("field type already registered")
)

// Definition describes a field type to the admin UI.
type Definition struct {
	UUID        string `json:"id"`
	Type        string `json:"type"`
	Singular    string `json:"singular_name"`
	Plural      string `json:"plural_name"`
	Description string `json:"description"`
}

type Constructor func() Editable

type registration struct {
	def  Definition
	ctor Constructor
}

// Registry maps field type names to their definition and constructor.
type Registry struct {
	mu    sync.RWMutex
	types map[string]registration
	order []string
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]registration)}
}

func GenerateTypeUUID(fieldType string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(fieldType)).String()
}

func (r *Registry) Register(def Definition, ctor Constructor) error {
	if def.Type == "" {
		return fmt.Errorf("field type name is required")
	}
	if ctor == nil {
		return fmt.Errorf("field type %s: constructor is required", def.Type)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[def.Type]; ok {
		return fmt.Errorf("%w: %s", ErrFieldTypeRegistered, def.Type)
	}
	if def.UUID == "" {
		def.UUID = GenerateTypeUUID(def.Type)
	}
	r.types[def.Type] = registration{def: def, ctor: ctor}
	r.order = append(r.order, def.Type)
	return nil
}

func (r *Registry) New(fieldType string) (Editable, error) {
	r.mu.RLock()
	reg, ok := r.types[fieldType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFieldType, fieldType)
	}
	return reg.ctor(), nil
}

func (r *Registry) Definition(fieldType string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.types[fieldType]
	return reg.def, ok
}

// Definitions returns every registered definition in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name].def)
	}
	return out
}

func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
