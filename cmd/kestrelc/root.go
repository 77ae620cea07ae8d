package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/you-not-fish/kestrel/internal/config"
	"github.com/you-not-fish/kestrel/internal/ir"
	"github.com/you-not-fish/kestrel/internal/irgen"
	"github.com/you-not-fish/kestrel/internal/syntax"
)

// stdinName is the file name reported for programs read from standard input.
const stdinName = "<stdin>"

type options struct {
	configPath string
	output     string

	emitTokens bool
	emitAST    bool
	emitIR     bool

	target   string
	module   string
	logLevel string
	verify   bool
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "kestrelc [flags] [file.ks]",
		Short: "Compile a Kestrel program to LLVM IR",
		Long: `kestrelc compiles a Kestrel program to LLVM IR text.

The program is read from the named file, or from standard input when no file
is given or the file is "-". The LLVM IR is written to standard output unless
--output is set. Build a native executable from it with clang:

	kestrelc prog.ks -o prog.ll && clang prog.ll -o prog
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.emitTokens, "emit-tokens", false, "print the token stream and exit")
	flags.BoolVar(&opts.emitAST, "emit-ast", false, "print the syntax tree and exit")
	flags.BoolVar(&opts.emitIR, "emit-ir", false, "print the compiler IR and exit")
	flags.StringVarP(&opts.output, "output", "o", "", "write LLVM IR to `file` instead of standard output")
	flags.StringVar(&opts.configPath, "config", "", "read settings from `file` (default ./"+config.DefaultFilename+" if present)")
	flags.StringVar(&opts.target, "target", "", "target `triple`; empty uses the backend's host default")
	flags.StringVar(&opts.module, "module", "", "output module `name`")
	flags.StringVar(&opts.logLevel, "log-level", "", "log `level` (debug, info, warn, error)")
	flags.BoolVar(&opts.verify, "verify", true, "verify the IR before rendering it")

	cmd.AddCommand(newVersionCommand(), newDoctorCommand())
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	conf, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), opts, &conf)
	if err := conf.Validate(); err != nil {
		return err
	}

	log, err := conf.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	filename, src, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	log.Debug("compiling", zap.String("file", filename), zap.Int("bytes", len(src)))

	out := cmd.OutOrStdout()
	if opts.emitTokens {
		return writeTokens(out, filename, src)
	}

	list, err := syntax.Parse(filename, bytes.NewReader(src))
	if err != nil {
		return err
	}

	if opts.emitAST {
		syntax.Fprint(out, list)
		return nil
	}

	compConf := conf.Compiler(log)
	if opts.emitIR {
		m, err := irgen.Lower(list, compConf)
		ir.FprintModule(out, m)
		return err
	}

	text, err := irgen.Compile(list, compConf)
	if err != nil {
		var ce *irgen.CompileError
		if errors.As(err, &ce) {
			log.Debug("partial output", zap.String("ir", ce.IR))
			return ce.Err
		}
		return err
	}
	return writeOutput(out, opts.output, text)
}

// loadConfig reads the configuration file at path, or the default file if
// path is empty and the default file exists.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadOptional(config.DefaultFilename)
	}
	return config.Load(path)
}

// applyFlags overrides conf with the flags set on the command line.
func applyFlags(flags *pflag.FlagSet, opts *options, conf *config.Config) {
	if flags.Changed("target") {
		conf.Target = opts.target
	}
	if flags.Changed("module") {
		conf.Module = opts.module
	}
	if flags.Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}
	if flags.Changed("verify") {
		conf.Verify = opts.verify
	}
}

func readInput(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, errors.Wrap(err, "read standard input")
		}
		return stdinName, src, nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, errors.Wrap(err, "read input")
	}
	return args[0], src, nil
}

func writeOutput(stdout io.Writer, path, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, text)
		return errors.Wrap(err, "write output")
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
