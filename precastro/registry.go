package precastro

import (
	"context"
	"fmt"
	"sort"
)

// BuiltinFunc is an adapter between the host calling convention and one
// external routine. Arguments arrive already bound against the builtin's
// declared signature.
type BuiltinFunc func(ctx context.Context, args []Value) (Value, error)

// BuiltinSpec is one statically-declared registration table entry: exposed
// name, signature format, usage string, and the adapter function.
type BuiltinSpec struct {
	Name string
	Sig  string
	Doc  string
	Fn   BuiltinFunc
}

// BuiltinInfo describes a registered builtin for listings and help output.
type BuiltinInfo struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

type builtin struct {
	spec BuiltinSpec
	sig  Signature
}

// Module is a named set of registered builtins plus the error kinds attached
// to its namespace. The registration table is populated once at construction
// and read-only afterwards, so a Module may be shared without locking.
type Module struct {
	name     string
	builtins map[string]builtin
	errKinds map[string]error
}

func newModule(name string, specs []BuiltinSpec) (*Module, error) {
	m := &Module{
		name:     name,
		builtins: make(map[string]builtin, len(specs)),
		errKinds: make(map[string]error),
	}
	for _, spec := range specs {
		if spec.Name == "" || spec.Fn == nil {
			return nil, fmt.Errorf("module %s: builtin spec needs a name and a function", name)
		}
		if _, dup := m.builtins[spec.Name]; dup {
			return nil, fmt.Errorf("module %s: duplicate builtin %s", name, spec.Name)
		}
		sig, err := ParseSignature(spec.Sig)
		if err != nil {
			return nil, fmt.Errorf("module %s: builtin %s: %w", name, spec.Name, err)
		}
		m.builtins[spec.Name] = builtin{spec: spec, sig: sig}
	}
	return m, nil
}

func (m *Module) attachErrorKind(attr string, kind error) {
	m.errKinds[attr] = kind
}

func (m *Module) Name() string { return m.name }

// Call dispatches one builtin invocation. The arguments are bound against
// the builtin's signature first; the adapter runs only on a clean bind.
func (m *Module) Call(ctx context.Context, name string, args []Value) (Value, error) {
	b, ok := m.builtins[name]
	if !ok {
		return NewNil(), fmt.Errorf("%w: %s.%s", ErrUnknownFunction, m.name, name)
	}
	bound, err := b.sig.bind(name, args)
	if err != nil {
		return NewNil(), err
	}
	return b.spec.Fn(ctx, bound)
}

// Builtins lists the registration table sorted by name. The usage string is
// the exposed name joined with the registered signature description.
func (m *Module) Builtins() []BuiltinInfo {
	infos := make([]BuiltinInfo, 0, len(m.builtins))
	for _, b := range m.builtins {
		infos = append(infos, BuiltinInfo{
			Name:  b.spec.Name,
			Usage: b.spec.Name + " " + b.spec.Doc,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// ErrorKind returns the error kind attached under attr, if any. Callers use
// it with errors.Is to catch the module's failures specifically.
func (m *Module) ErrorKind(attr string) (error, bool) {
	kind, ok := m.errKinds[attr]
	return kind, ok
}
