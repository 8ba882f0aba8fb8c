package typelist

import (
	"context"
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/jmgilman/go/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// WithoutMethod returns the types under patterns that do not declare a method
// named method.
func WithoutMethod(ctx context.Context, cfg Config, method string, patterns ...string) ([]string, error) {
	if method == "" {
		return nil, errors.New(errors.CodeInvalidInput, "method name is empty")
	}

	return scan(ctx, cfg, patterns, func(named *types.Named) bool {
		return !declaresMethod(named, method)
	})
}

// WithoutInterface returns the types under patterns where neither T nor *T
// implements iface.
func WithoutInterface(ctx context.Context, cfg Config, iface Interface, patterns ...string) ([]string, error) {
	target, err := resolveInterface(ctx, cfg, iface)
	if err != nil {
		return nil, err
	}

	return scan(ctx, cfg, patterns, func(named *types.Named) bool {
		return !implements(named, target)
	})
}

// scan loads patterns and returns the sorted, qualified names of concrete
// package-scope types for which keep returns true.
func scan(ctx context.Context, cfg Config, patterns []string, keep func(*types.Named) bool) ([]string, error) {
	pkgs, err := load(ctx, cfg, patterns)
	if err != nil {
		return nil, err
	}

	log := cfg.logger()
	seen := make(map[string]struct{})
	for _, pkg := range pkgs {
		if pkg.Types == nil || strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}

		matched := 0
		for _, named := range concreteTypes(pkg.Types.Scope()) {
			if !keep(named) {
				continue
			}
			seen[pkg.PkgPath+"."+named.Obj().Name()] = struct{}{}
			matched++
		}
		log.Debug("scanned package", zap.String("package", pkg.ID), zap.Int("matched", matched))
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func load(ctx context.Context, cfg Config, patterns []string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	cfg.logger().Debug("loading packages", zap.Strings("patterns", patterns), zap.String("dir", cfg.Dir), zap.Bool("tests", cfg.Tests))

	pkgs, err := packages.Load(cfg.packagesConfig(ctx), patterns...)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed to load packages", map[string]interface{}{
			"patterns": patterns,
			"dir":      cfg.Dir,
		})
	}

	var problems []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			problems = append(problems, e.Error())
		}
	}
	if len(problems) > 0 {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeExecutionFailed, "packages contain errors: %s", strings.Join(problems, "; ")),
			"patterns", patterns,
		)
	}

	return pkgs, nil
}

// concreteTypes returns the named, non-interface, non-alias types declared at
// package scope.
func concreteTypes(scope *types.Scope) []*types.Named {
	var out []*types.Named
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || types.IsInterface(named) {
			continue
		}
		out = append(out, named)
	}
	return out
}

func declaresMethod(named *types.Named, method string) bool {
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == method {
			return true
		}
	}
	return false
}

// implements compares method names and signatures rather than type identity,
// since iface usually comes from a separate load.
func implements(named *types.Named, iface *types.Interface) bool {
	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < iface.NumMethods(); i++ {
		if !hasMethod(ms, iface.Method(i)) {
			return false
		}
	}
	return true
}

func hasMethod(ms *types.MethodSet, want *types.Func) bool {
	for i := 0; i < ms.Len(); i++ {
		got := ms.At(i).Obj()
		if got.Name() != want.Name() {
			continue
		}
		if !got.Exported() && packagePath(got.Pkg()) != packagePath(want.Pkg()) {
			continue
		}
		return signature(got.Type()) == signature(want.Type())
	}
	return false
}

func signature(t types.Type) string {
	return types.TypeString(t, packagePath)
}

func packagePath(p *types.Package) string {
	if p == nil {
		return ""
	}
	return p.Path()
}

func resolveInterface(ctx context.Context, cfg Config, iface Interface) (*types.Interface, error) {
	if iface.Name == "" {
		return nil, errors.New(errors.CodeInvalidInput, "interface name is empty")
	}

	scope := types.Universe
	if iface.Path != "" {
		ifaceCfg := cfg
		ifaceCfg.Tests = false
		pkgs, err := load(ctx, ifaceCfg, []string{iface.Path})
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeNotFound, "failed to load interface package %s", iface.Path)
		}
		if len(pkgs) != 1 || pkgs[0].Types == nil {
			return nil, errors.Newf(errors.CodeNotFound, "interface package %s not found", iface.Path)
		}
		scope = pkgs[0].Types.Scope()
	}

	tn, ok := scope.Lookup(iface.Name).(*types.TypeName)
	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "interface %s not found", iface)
	}
	target, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, errors.New(errors.CodeInvalidInput, fmt.Sprintf("%s is not an interface", iface))
	}
	return target, nil
}
