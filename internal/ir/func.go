package ir

import "github.com/you-not-fish/kestrel/internal/syntax"

// Func represents an IR function.
// A defined function owns Blocks, each containing Values; an extern
// function has a signature and no blocks.
type Func struct {
	// Name is the unique name of the function within its Module.
	Name string

	// Sig is the function signature.
	Sig *Signature

	// ParamNames holds the source names of the parameters, if any.
	ParamNames []string

	// Blocks is the list of basic blocks. Blocks[0] is always the entry block.
	Blocks []*Block

	// Entry is the entry block (same as Blocks[0]).
	Entry *Block

	// Module is the module containing this function.
	Module *Module

	// Extern marks a declaration whose body lives outside the module.
	Extern bool

	nextValueID ID
	nextBlockID ID
}

// NewBlock creates a new basic block with the given kind and appends it to the function.
func (f *Func) NewBlock(kind BlockKind) *Block {
	b := &Block{
		ID:   f.nextBlockID,
		Kind: kind,
		Func: f,
	}
	f.nextBlockID++
	f.Blocks = append(f.Blocks, b)
	return b
}

// NewValue creates a new Value in the given block.
func (f *Func) NewValue(b *Block, op Op, typ Type, args ...*Value) *Value {
	v := &Value{
		ID:    f.nextValueID,
		Op:    op,
		Type:  typ,
		Block: b,
	}
	f.nextValueID++
	for _, arg := range args {
		v.AddArg(arg)
	}
	b.Values = append(b.Values, v)
	return v
}

// NewValuePos creates a new Value with source position in the given block.
func (f *Func) NewValuePos(b *Block, op Op, typ Type, pos syntax.Pos, args ...*Value) *Value {
	v := f.NewValue(b, op, typ, args...)
	v.Pos = pos
	return v
}

// ParamName returns the source name of parameter i, or "".
func (f *Func) ParamName(i int) string {
	if i < len(f.ParamNames) {
		return f.ParamNames[i]
	}
	return ""
}

// NumBlocks returns the number of blocks in the function.
func (f *Func) NumBlocks() int { return len(f.Blocks) }

// NumValues returns the total number of values across all blocks.
func (f *Func) NumValues() int {
	n := 0
	for _, b := range f.Blocks {
		n += len(b.Values)
	}
	return n
}
