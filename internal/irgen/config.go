package irgen

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// Config specifies the configuration for one compilation.
type Config struct {
	// ModuleName names the output module. If empty, rtabi.DefaultModule is used.
	ModuleName string

	// Triple is the target triple written to the module header.
	// If empty, no triple is written and the backend uses its host default.
	Triple string

	// Verify runs the IR verifier after lowering.
	Verify bool

	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration used when Lower or Compile is
// given a nil Config.
func DefaultConfig() *Config {
	return &Config{
		ModuleName: rtabi.DefaultModule,
		Triple:     rtabi.DefaultTriple,
		Verify:     true,
	}
}

func (c *Config) moduleName() string {
	if c.ModuleName == "" {
		return rtabi.DefaultModule
	}
	return c.ModuleName
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
