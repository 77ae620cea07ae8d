package irgen

import (
	"sort"

	"github.com/you-not-fish/kestrel/internal/ir"
)

// Binding is a named variable: a stack slot and the type stored in it.
type Binding struct {
	Name string
	Slot *ir.Value // OpAlloca in the owning function's entry block
	Elem ir.Type

	// Sig is the signature of the function whose address the slot holds,
	// or nil if the slot does not hold a function.
	Sig *ir.Signature
}

// Callable is an entry in the function table.
type Callable struct {
	Name string
	Func *ir.Func

	// Hidden entries are callable by the compiler but not visible to programs.
	Hidden bool
}

// NumParams returns the number of fixed parameters.
func (c *Callable) NumParams() int { return c.Func.Sig.NumParams() }

// Scope holds the variables of one function body.
// Scopes form a stack; only the innermost scope is visible.
type Scope struct {
	parent  *Scope
	elems   map[string]*Binding
	comment string // debugging comment (e.g., "function f")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	return &Scope{
		parent:  parent,
		elems:   make(map[string]*Binding),
		comment: comment,
	}
}

// Parent returns the enclosing scope, or nil.
func (s *Scope) Parent() *Scope { return s.parent }

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string { return s.comment }

// Lookup returns the binding with the given name in this scope, or nil.
func (s *Scope) Lookup(name string) *Binding { return s.elems[name] }

// Insert adds b to the scope, replacing any binding of the same name.
func (s *Scope) Insert(b *Binding) { s.elems[b.Name] = b }

// Names returns the names of all bindings in the scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Env is the symbol environment of one compilation: a stack of variable
// scopes and a single function table.
type Env struct {
	scope *Scope
	funcs map[string]*Callable
}

// NewEnv returns an empty environment with no open scope.
func NewEnv() *Env {
	return &Env{funcs: make(map[string]*Callable)}
}

// PushScope opens a new innermost variable scope.
func (e *Env) PushScope(comment string) *Scope {
	e.scope = NewScope(e.scope, comment)
	return e.scope
}

// PopScope closes the innermost scope, making its parent visible again.
func (e *Env) PopScope() {
	if e.scope == nil {
		panic("irgen: PopScope without matching PushScope")
	}
	e.scope = e.scope.parent
}

// Scope returns the innermost scope, or nil.
func (e *Env) Scope() *Scope { return e.scope }

// LookupVar returns the variable named name in the innermost scope, or nil.
func (e *Env) LookupVar(name string) *Binding {
	if e.scope == nil {
		return nil
	}
	return e.scope.Lookup(name)
}

// LookupVarAny returns the variable named name in any open scope,
// innermost first, or nil.
func (e *Env) LookupVarAny(name string) *Binding {
	for s := e.scope; s != nil; s = s.Parent() {
		if b := s.Lookup(name); b != nil {
			return b
		}
	}
	return nil
}

// DefineVar binds a variable in the innermost scope.
func (e *Env) DefineVar(b *Binding) {
	e.scope.Insert(b)
}

// LookupFunc returns the visible function named name, or nil.
func (e *Env) LookupFunc(name string) *Callable {
	if c := e.funcs[name]; c != nil && !c.Hidden {
		return c
	}
	return nil
}

// DefineFunc adds c to the function table, replacing any earlier entry.
func (e *Env) DefineFunc(c *Callable) {
	e.funcs[c.Name] = c
}

// FuncNames returns the names of all visible functions, sorted.
func (e *Env) FuncNames() []string {
	names := make([]string, 0, len(e.funcs))
	for name, c := range e.funcs {
		if !c.Hidden {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
