/*
Copyright © 2025 The jarcraft authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jarcraft/jarcraft/pkg/config"
	"github.com/jarcraft/jarcraft/pkg/coordinate"
	"github.com/jarcraft/jarcraft/pkg/logger"
	"github.com/jarcraft/jarcraft/pkg/options"
	"github.com/jarcraft/jarcraft/pkg/params"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

// newFetchCommand creates the fetch command.
func newFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [dependencies...]",
		Short: "Specify and validate dependencies to resolve",
		Long: `Validate dependency selection: coordinates, exclusions, platform choice,
and sbt plugin defaults. Dependencies use org:name:version syntax; "::" marks
cross-versioned Scala modules and "/js" or "/native" select a platform variant.`,
		RunE: runFetch,
	}
	registerFetchFlags(cmd)
	cmd.Flags().Bool("native", false, "Resolve Scala Native artifacts")
	cmd.Flags().Bool("dry-run", false, "Print the validated parameters without resolving")
	return cmd
}

// registerFetchFlags registers the dependency-selection flags shared by the
// fetch and bootstrap commands. The --native flag is registered by each
// command separately because it also selects packaging for bootstrap.
func registerFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("exclude", nil, "Module to exclude everywhere (org:name)")
	cmd.Flags().String("exclude-file", "", "File of PARENT--ORG:NAME exclusion rules")
	cmd.Flags().StringArray("exclude-rule", nil, "Per-module exclusion rule (PARENT--ORG:NAME)")
	cmd.Flags().StringArray("intransitive", nil, "Dependency resolved without its own dependencies")
	cmd.Flags().StringArray("sbt-plugin", nil, "sbt plugin dependency (version defaults injected)")
	cmd.Flags().String("sbt-version", "", "sbt version used to derive plugin defaults")
	cmd.Flags().String("scala-version", "", "Force the Scala version used for plugin defaults")
	cmd.Flags().Bool("scala-js", false, "Resolve Scala.js artifacts")
}

// collectFetchOptions builds the raw fetch option bag. The fetch: section of
// the tool configuration seeds the bag; flags the user set explicitly win.
func collectFetchOptions(cmd *cobra.Command, cfg *config.Config) options.Fetch {
	opts := options.FetchFromMap(cfg.FetchSettings())
	flags := cmd.Flags()

	if flags.Changed("exclude") {
		opts.Exclude, _ = flags.GetStringArray("exclude")
	}
	if flags.Changed("exclude-file") {
		opts.ExcludeFile, _ = flags.GetString("exclude-file")
	}
	if flags.Changed("exclude-rule") {
		opts.ExcludeRules, _ = flags.GetStringArray("exclude-rule")
	}
	if flags.Changed("intransitive") {
		opts.Intransitive, _ = flags.GetStringArray("intransitive")
	}
	if flags.Changed("sbt-plugin") {
		opts.SbtPlugins, _ = flags.GetStringArray("sbt-plugin")
	}
	if flags.Changed("sbt-version") {
		opts.SbtVersion, _ = flags.GetString("sbt-version")
	}
	if flags.Changed("scala-version") {
		opts.ScalaVersion, _ = flags.GetString("scala-version")
	}
	if flags.Changed("scala-js") {
		opts.ScalaJS, _ = flags.GetBool("scala-js")
	}
	if flags.Changed("native") {
		opts.Native, _ = flags.GetBool("native")
	}
	return opts
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	deps, depErrs := parseDependencyArgs(args)

	res, err := params.BuildFetch(afero.NewOsFs(), collectFetchOptions(cmd, cfg))
	if err != nil {
		return fmt.Errorf("%w: %v", errFileAccess, err)
	}

	if errs := append(depErrs, res.Errors()...); len(errs) > 0 {
		return reportValidationErrors(cmd, errs)
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		out := struct {
			Dependencies []coordinate.Dependency `yaml:"dependencies,omitempty"`
			Params       params.FetchParams      `yaml:"params"`
		}{deps, res.Value()}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("rendering parameters: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	p := res.Value()
	logger.Info("dependency selection validated",
		logger.Int("dependencies", len(deps)),
		logger.Int("excluded", len(p.Exclude)),
		logger.Int("sbt_plugins", len(p.SbtPlugins)),
		logger.String("platform", platformName(p.Platform)))
	return nil
}

// parseDependencyArgs validates the positional dependency coordinates,
// keeping every failure in argument order.
func parseDependencyArgs(args []string) ([]coordinate.Dependency, []validate.Error) {
	results := make([]validate.Result[coordinate.Dependency], 0, len(args))
	for _, arg := range args {
		results = append(results, coordinate.ParseDependency(arg))
	}
	collected := validate.Collect(results)
	if !collected.IsOk() {
		return nil, collected.Errors()
	}
	return collected.Value(), nil
}

// reportValidationErrors prints every accumulated failure, one line each,
// and returns the sentinel that maps to the validation exit code.
func reportValidationErrors(cmd *cobra.Command, errs []validate.Error) error {
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", e.Message)
	}
	return fmt.Errorf("%w: %d error(s)", errInvalidOptions, len(errs))
}

func platformName(p coordinate.Platform) string {
	if p == coordinate.PlatformNone {
		return "none"
	}
	return p.String()
}
