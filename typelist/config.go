package typelist

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// DefaultPattern is loaded when no pattern is given.
const DefaultPattern = "./..."

// loadMode type-checks the matched packages from source so unexported
// declarations are visible; dependencies come from export data.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Config controls how packages are loaded.
type Config struct {
	// Dir is the directory the patterns are resolved in. Empty means the
	// current directory.
	Dir string

	// Tests includes _test.go files of the matched packages.
	Tests bool

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) packagesConfig(ctx context.Context) *packages.Config {
	return &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     c.Dir,
		Tests:   c.Tests,
	}
}
