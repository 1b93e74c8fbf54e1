package cli

import (
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/lablang"
	"github.com/npillmayer/lablang/evaluator"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// defaults are the lowest-precedence configuration values.
var defaults = map[string]interface{}{
	"max-depth":       evaluator.DefaultMaxDepth,
	"legacy-operands": false,
	"dump-vars":       false,
	"color":           false,
	"interactive":     false,
	"logfile":         "stderr",
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		tracing.Errorf(err.Error())
		lablang.Exit(1)
	}
	// We locate lablang configuration with an application-key of 'LABLANG' and
	// use NestedText-format (nt) for schuko's own config-files
	konf := koanfadapter.New(k, "LABLANG", []string{"nt"})
	konf.InitDefaults()
	paths := locateAppPaths()
	if err := mergeConfigFile(k, paths); err != nil {
		tracing.Errorf(err.Error())
		lablang.Exit(1)
	}
	if err := mergeFlags(k, rootCmd); err != nil {
		tracing.Errorf(err.Error())
		lablang.Exit(1)
	}
	if err := configureTracing(konf, paths); err != nil {
		tracing.Errorf(err.Error())
		lablang.Exit(1)
	}
	lablang.Configuration = k // push the configuration to app-global scope
}

// mergeConfigFile loads the configuration file, if present. Its values take
// precedence over the defaults.
func mergeConfigFile(k *koanf.Koanf, paths AppPaths) error {
	if paths == nil || paths.ConfigFile() == "" {
		return nil
	}
	name := paths.ConfigFile()
	if _, err := os.Stat(name); err != nil {
		tracer().Debugf("no configuration file %s", name)
		return nil
	}
	tracing.Infof("reading configuration from %s", name)
	return k.Load(file.Provider(name), yaml.Parser())
}

// mergeFlags loads the persistent flags of cmd. Flags not set on the command
// line leave values from defaults and configuration file untouched.
func mergeFlags(k *koanf.Koanf, cmd *cobra.Command) error {
	return k.Load(posflag.Provider(cmd.PersistentFlags(), ".", k), nil)
}

func configureTracing(konf *koanfadapter.KConf, paths AppPaths) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", logname)
	}
	if dest := konf.GetString("tracing.destination"); dest != "" && paths != nil {
		konf.Set("tracing.destination", paths.LogDestination(dest))
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func locateAppPaths() AppPaths {
	paths, err := DefaultAppPaths("LABLANG")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return nil
	}
	return paths
}
