package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmgilman/go/testkit/typelist"
)

// defaultMethod is checked when no method is named.
const defaultMethod = "String"

type rootOptions struct {
	verbose    bool
	configPath string
	dir        string
	tests      bool

	logger *zap.Logger
	file   fileConfig
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "typelist [patterns...]",
		Short: "List types missing a method or an interface",
		Long: `typelist loads Go packages and lists the concrete named types that do not
declare a method or do not implement an interface.

Without a subcommand it lists the types that do not declare a String method.
Patterns default to ./... and follow the usual go tool syntax.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return typelist.PrintWithoutMethod(cmd.Context(), cmd.OutOrStdout(), opts.config(cmd), defaultMethod, opts.patterns(args)...)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&opts.dir, "dir", "", "directory to resolve patterns in")
	flags.BoolVar(&opts.tests, "tests", false, "include _test.go files")

	cmd.AddCommand(newMethodCmd(opts), newInterfaceCmd(opts))
	return cmd
}

func newMethodCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "method <name> [patterns...]",
		Short: "List types that do not declare the named method",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return typelist.PrintWithoutMethod(cmd.Context(), cmd.OutOrStdout(), opts.config(cmd), args[0], opts.patterns(args[1:])...)
		},
	}
}

func newInterfaceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interface <path.Name> [patterns...]",
		Short: "List types that do not implement the interface",
		Example: `  typelist interface fmt.Stringer ./...
  typelist interface error ./internal/...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iface, err := typelist.ParseInterface(args[0])
			if err != nil {
				return err
			}
			return typelist.PrintWithoutInterface(cmd.Context(), cmd.OutOrStdout(), opts.config(cmd), iface, opts.patterns(args[1:])...)
		},
	}
}

// setup loads the configuration file and builds the logger.
func (o *rootOptions) setup() error {
	if o.configPath != "" {
		file, err := loadFileConfig(o.configPath)
		if err != nil {
			return err
		}
		o.file = file
	}

	config := zap.NewProductionConfig()
	if o.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger
	return nil
}

// config merges the file configuration with flags; flags set on the command
// line win.
func (o *rootOptions) config(cmd *cobra.Command) typelist.Config {
	cfg := typelist.Config{
		Dir:    o.file.Dir,
		Tests:  o.file.Tests,
		Logger: o.logger,
	}
	if cmd.Flags().Changed("dir") {
		cfg.Dir = o.dir
	}
	if cmd.Flags().Changed("tests") {
		cfg.Tests = o.tests
	}
	return cfg
}

func (o *rootOptions) patterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return o.file.Patterns
}
