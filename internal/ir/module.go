package ir

import "fmt"

// Global is a module-level constant. Kestrel only has string data.
type Global struct {
	Name string
	Data string // contents, without the terminating NUL
}

// Size returns the size of the global's storage including the NUL terminator.
func (g *Global) Size() int { return len(g.Data) + 1 }

// String returns the global's name.
func (g *Global) String() string { return g.Name }

// Module is a single translation unit: string globals followed by functions.
type Module struct {
	Name   string
	Triple string

	Globals []*Global
	Funcs   []*Func

	names   map[string]int     // global symbol name -> next suffix
	strings map[string]*Global // contents -> global
}

// NewModule creates an empty module.
func NewModule(name, triple string) *Module {
	return &Module{
		Name:    name,
		Triple:  triple,
		names:   make(map[string]int),
		strings: make(map[string]*Global),
	}
}

// NewFunc creates a defined function with an entry block and appends it to
// the module. If name is taken, the function is named name.1, name.2 and so on.
func (m *Module) NewFunc(name string, sig *Signature) *Func {
	f := m.addFunc(name, sig)
	f.Entry = f.NewBlock(BlockPlain)
	return f
}

// NewExtern declares a function defined outside the module.
func (m *Module) NewExtern(name string, sig *Signature) *Func {
	f := m.addFunc(name, sig)
	f.Extern = true
	return f
}

func (m *Module) addFunc(name string, sig *Signature) *Func {
	f := &Func{
		Name:   m.uniqueName(name),
		Sig:    sig,
		Module: m,
	}
	m.Funcs = append(m.Funcs, f)
	return f
}

func (m *Module) uniqueName(name string) string {
	n, used := m.names[name]
	if !used {
		m.names[name] = 1
		return name
	}
	for {
		cand := fmt.Sprintf("%s.%d", name, n)
		n++
		if _, taken := m.names[cand]; !taken {
			m.names[name] = n
			m.names[cand] = 1
			return cand
		}
	}
}

// Func returns the function with the given IR name, or nil.
func (m *Module) Func(name string) *Func {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// StringConst returns the global holding s, creating it on first use.
// Identical contents share one global. Globals and functions share one
// namespace, so a .str.N name already taken by a function is skipped.
func (m *Module) StringConst(s string) *Global {
	if g, ok := m.strings[s]; ok {
		return g
	}
	var name string
	for i := len(m.Globals); ; i++ {
		name = fmt.Sprintf(".str.%d", i)
		if _, taken := m.names[name]; !taken {
			break
		}
	}
	m.names[name] = 1
	g := &Global{Name: name, Data: s}
	m.strings[s] = g
	m.Globals = append(m.Globals, g)
	return g
}

// NumFuncs returns the number of functions, including externs.
func (m *Module) NumFuncs() int { return len(m.Funcs) }
