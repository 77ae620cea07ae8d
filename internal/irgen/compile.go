package irgen

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/you-not-fish/kestrel/internal/codegen"
	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/rtabi"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// Lower lowers a program into an IR module.
// The program runs every expression of list in order from the entry
// function, which then returns 0. If conf is nil, DefaultConfig is used.
//
// On error the returned module holds everything lowered before the
// failure and is not verified.
func Lower(list []syntax.Expr, conf *Config) (*ir.Module, error) {
	b := newBuilder(conf)
	err := b.program(list)
	return b.mod, err
}

// Compile lowers a program and renders it as LLVM IR text.
// On failure it returns the partial text and a *CompileError.
func Compile(list []syntax.Expr, conf *Config) (string, error) {
	m, err := Lower(list, conf)

	var sb strings.Builder
	if genErr := codegen.Generate(&sb, m); genErr != nil && err == nil {
		err = errors.Wrap(genErr, "render LLVM IR")
	}
	if err != nil {
		return sb.String(), &CompileError{Err: err, IR: sb.String()}
	}
	return sb.String(), nil
}

func (b *builder) program(list []syntax.Expr) error {
	b.registerIntrinsics()

	main := b.mod.NewFunc(rtabi.EntryFunc, ir.NewSignature(ir.TypeI32, false))
	b.fn, b.b = main, main.Entry
	b.env.PushScope("program")
	defer b.popScope()

	for i, x := range list {
		b.log.Debug("lowering expression",
			zap.Int("index", i),
			zap.String("kind", syntax.KindOf(x)),
			zap.Stringer("pos", posOf(x)))
		if _, err := b.expr(x); err != nil {
			return err
		}
	}
	main.Entry.Return(b.const32(rtabi.EntryStatus, syntax.Pos{}))

	if b.conf.Verify {
		if err := ir.VerifyModule(b.mod); err != nil {
			return errors.Wrap(err, "malformed IR")
		}
	}

	b.log.Debug("lowered module",
		zap.String("module", b.mod.Name),
		zap.Int("functions", b.mod.NumFuncs()),
		zap.Int("globals", len(b.mod.Globals)),
		zap.Strings("visible", b.env.FuncNames()))
	return nil
}
