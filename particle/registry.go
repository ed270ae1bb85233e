package particle

import (
	"fmt"

	"github.com/sbinet/hadrx/pdg"
)

// Registry is the read-only particle data service the kernel consumes.
// The concrete in-memory implementation below (Table) is a
// reference/test implementation, not part of the kernel proper.
type Registry interface {
	ListAll() []*Type
	ListNucleons() []*Type
	ListAntiNucleons() []*Type
	ListDeltas() []*Type
	ListAntiDeltas() []*Type
	ListBaryonResonances() []*Type
	ListLightNuclei() []*Type
	Find(code pdg.Code) *Type
	TryFind(code pdg.Code) (*Type, bool)
}

// Table is the concrete, in-memory Registry implementation built once
// at construction time; nothing is populated lazily per lookup.
type Table struct {
	byCode map[pdg.Code]*Type
	all    []*Type
}

var _ Registry = (*Table)(nil)

func (t *Table) ListAll() []*Type { return t.all }

func (t *Table) ListNucleons() []*Type {
	return t.filter(func(ty *Type) bool { return ty.IsNucleon() && ty.AntiparticleSign() >= 0 })
}

func (t *Table) ListAntiNucleons() []*Type {
	return t.filter(func(ty *Type) bool { return ty.IsNucleon() && ty.AntiparticleSign() < 0 })
}

func (t *Table) ListDeltas() []*Type {
	return t.filter(func(ty *Type) bool { return ty.IsDelta() && ty.AntiparticleSign() >= 0 })
}

func (t *Table) ListAntiDeltas() []*Type {
	return t.filter(func(ty *Type) bool { return ty.IsDelta() && ty.AntiparticleSign() < 0 })
}

func (t *Table) ListBaryonResonances() []*Type {
	return t.filter(func(ty *Type) bool {
		return ty.IsBaryon() && !ty.IsStable() && !ty.IsNucleon()
	})
}

func (t *Table) ListLightNuclei() []*Type {
	return t.filter(func(ty *Type) bool { return ty.IsNucleus() })
}

func (t *Table) filter(pred func(*Type) bool) []*Type {
	out := make([]*Type, 0, len(t.all))
	for _, ty := range t.all {
		if pred(ty) {
			out = append(out, ty)
		}
	}
	return out
}

// Find returns the type for code, panicking if it is not registered: a
// missing species is a hard configuration error, not a recoverable one.
func (t *Table) Find(code pdg.Code) *Type {
	ty, ok := t.byCode[code]
	if !ok {
		panic(fmt.Sprintf("particle: no such species registered: %v", code))
	}
	return ty
}

// TryFind is the non-panicking counterpart used by pair-class routing
// that legitimately expects a species to be absent from a restricted
// table (e.g. no deuteron in a table built without light nuclei).
func (t *Table) TryFind(code pdg.Code) (*Type, bool) {
	ty, ok := t.byCode[code]
	return ty, ok
}
