// FILE: lixenwraith/mvconfig/cmd/mvconfig/main.go

// Mvconfig builds a multi-valued configuration map from a properties file or
// document and prints the result, one key=value line per value.
//
// Usage:
//
//	mvconfig dump app.properties --prefix app --delimiter ,
//	mvconfig dump --env-overrides --prefix app    # discover app.properties, apply APP_* env
//	mvconfig get app.properties hosts --prefix app
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/mvconfig"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitNotFound   = 1
	ExitUsageError = 2
	ExitLoadError  = 3
)

// buildFlags holds the flags shared by every command that builds a map
type buildFlags struct {
	prefix       string
	delimiter    string
	quoted       bool
	envDefaults  bool
	envOverrides bool
	sets         []string
	defaultsFile string
	verbosity    int
}

var (
	flags    buildFlags
	exitCode = ExitSuccess
)

var rootCmd = &cobra.Command{
	Use:           "mvconfig",
	Short:         "Inspect multi-valued configuration",
	Long:          "Mvconfig builds a multi-valued configuration map from files, defaults and environment and prints it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print every key and value of the built map",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(args, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitLoadError
			return nil
		}
		writeMap(cmd.OutOrStdout(), m)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the values of one key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMap(args[:1], cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			exitCode = ExitLoadError
			return nil
		}
		vals, ok := m.Values(args[1])
		if !ok {
			exitCode = ExitNotFound
			return nil
		}
		for _, v := range vals {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.prefix, "prefix", "", "key prefix to filter and strip")
	pf.StringVar(&flags.delimiter, "delimiter", "", "split values on this delimiter")
	pf.BoolVar(&flags.quoted, "quoted", false, "require quoted values in properties files")
	pf.BoolVar(&flags.envDefaults, "env-defaults", false, "apply environment under the prefix as defaults")
	pf.BoolVar(&flags.envOverrides, "env-overrides", false, "apply environment under the prefix as overrides")
	pf.StringArrayVar(&flags.sets, "set", nil, "property key=value applied with the environment (repeatable)")
	pf.StringVar(&flags.defaultsFile, "defaults", "", "properties file holding default values")
	pf.IntVarP(&flags.verbosity, "verbose", "v", 0, "log verbosity (0-2)")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(getCmd)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
// Commands report their own failures through exitCode; an error reaching
// this point comes from cobra's argument or flag parsing.
func execute(args []string, stdout, stderr io.Writer) int {
	exitCode = ExitSuccess
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return ExitUsageError
	}
	return exitCode
}

// newLogger writes log lines to w at the requested verbosity
func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

// buildMap builds from the optional file argument, discovering one when absent
func buildMap(args []string, logOut io.Writer) (*mvconfig.MultiValueMap, error) {
	log := newLogger(logOut, flags.verbosity)

	b := mvconfig.NewBuilder().
		WithLogger(log).
		WithPrefix(flags.prefix).
		WithDelimiter(flags.delimiter).
		WithProperties(propertySource())

	if flags.quoted {
		b.WithQuotedValues()
	}
	if flags.envDefaults {
		b.WithSystemDefaults()
	}
	if flags.envOverrides {
		b.WithSystemOverrides()
	}

	if flags.defaultsFile != "" {
		defaults, err := mvconfig.NewBuilder().
			WithLogger(log).
			WithDelimiter(flags.delimiter).
			WithProperties(mvconfig.StaticProperties(nil)).
			BuildFile(flags.defaultsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load defaults: %w", err)
		}
		b.WithDefaults(defaults)
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if found, ok := mvconfig.DiscoverFile(mvconfig.DefaultDiscoveryOptions(appName())); ok {
		path = found
		log.V(1).Info("discovered config file", "path", path)
	}

	if path == "" {
		return b.Build()
	}
	return b.BuildFile(path)
}

// propertySource combines the environment with --set pairs, which win
func propertySource() mvconfig.PropertySource {
	args := make([]string, 0, len(flags.sets))
	for _, s := range flags.sets {
		args = append(args, "--"+s)
	}
	return mvconfig.MultiSource(mvconfig.Environ(nil), mvconfig.ArgProperties(args))
}

// appName derives the discovery name from the prefix, defaulting to "mvconfig"
func appName() string {
	name := strings.TrimSuffix(strings.TrimSpace(flags.prefix), ".")
	if name == "" {
		return "mvconfig"
	}
	return name
}

func writeMap(w io.Writer, m *mvconfig.MultiValueMap) {
	for k, vals := range m.All() {
		for _, v := range vals {
			fmt.Fprintf(w, "%s=%s\n", k, v)
		}
	}
}
