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
)

// newBootstrapCommand creates the bootstrap command.
func newBootstrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap [dependencies...]",
		Short: "Generate a standalone launcher from a resolved classpath",
		Long: `Validate launcher-generation options and the dependency selection that
feeds them, then hand the parameters to the launcher generator. Use --dry-run
to print the validated parameters instead.`,
		RunE: runBootstrap,
	}
	cmd.Flags().StringP("output", "o", "", "Launcher output path (default \"bootstrap\")")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing output file")
	cmd.Flags().Bool("standalone", false, "Embed all jars in the launcher")
	cmd.Flags().Bool("hybrid", false, "Embed jar content alongside remote references")
	cmd.Flags().Bool("assembly", false, "Merge all jars into a single archive")
	cmd.Flags().Bool("native", false, "Build a native image launcher")
	cmd.Flags().Bool("bat", false, "Also generate a .bat launcher (default: on Windows)")
	cmd.Flags().Bool("embed-files", false, "Embed extra files in the launcher")
	cmd.Flags().StringArray("java-opt", nil, "Java option baked into the launcher")
	cmd.Flags().StringArray("rule", nil, "Assembly merge rule (name:value)")
	cmd.Flags().Bool("default-rules", true, "Prepend the built-in assembly rules")
	cmd.Flags().Bool("preamble", true, "Include the shell preamble in the launcher")
	cmd.Flags().Bool("deterministic", false, "Produce byte-reproducible output")
	cmd.Flags().Bool("proguarded", false, "Use the proguarded bootstrap launcher")
	cmd.Flags().Bool("disable-jar-checking", false, "Disable jar checking in the launcher")
	cmd.Flags().Bool("dry-run", false, "Print the validated parameters without generating")
	registerFetchFlags(cmd)
	return cmd
}

// collectBootstrapOptions builds the raw bootstrap option bag. The bootstrap:
// section of the tool configuration seeds the bag; flags the user set
// explicitly win. Optional booleans stay nil unless config or an explicit
// flag supplied them.
func collectBootstrapOptions(cmd *cobra.Command, cfg *config.Config) options.Bootstrap {
	opts := options.BootstrapFromMap(cfg.BootstrapSettings())
	flags := cmd.Flags()

	if flags.Changed("output") {
		opts.Output, _ = flags.GetString("output")
	}
	if flags.Changed("force") {
		opts.Force, _ = flags.GetBool("force")
	}
	if flags.Changed("standalone") {
		opts.Standalone, _ = flags.GetBool("standalone")
	}
	if flags.Changed("hybrid") {
		opts.Hybrid, _ = flags.GetBool("hybrid")
	}
	if flags.Changed("assembly") {
		opts.Assembly, _ = flags.GetBool("assembly")
	}
	if flags.Changed("native") {
		opts.Native, _ = flags.GetBool("native")
	}
	if flags.Changed("bat") {
		bat, _ := flags.GetBool("bat")
		opts.Bat = &bat
	}
	if flags.Changed("embed-files") {
		opts.EmbedFiles, _ = flags.GetBool("embed-files")
	}
	if flags.Changed("java-opt") {
		opts.JavaOpts, _ = flags.GetStringArray("java-opt")
	}
	if flags.Changed("rule") {
		opts.AssemblyRules, _ = flags.GetStringArray("rule")
	}
	if flags.Changed("default-rules") {
		opts.DefaultAssemblyRules, _ = flags.GetBool("default-rules")
	}
	if flags.Changed("preamble") {
		opts.Preamble, _ = flags.GetBool("preamble")
	}
	if flags.Changed("deterministic") {
		opts.Deterministic, _ = flags.GetBool("deterministic")
	}
	if flags.Changed("proguarded") {
		opts.Proguarded, _ = flags.GetBool("proguarded")
	}
	if flags.Changed("disable-jar-checking") {
		djc, _ := flags.GetBool("disable-jar-checking")
		opts.DisableJarChecking = &djc
	}
	return opts
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	deps, depErrs := parseDependencyArgs(args)

	res, err := params.BuildLaunch(afero.NewOsFs(),
		collectBootstrapOptions(cmd, cfg), collectFetchOptions(cmd, cfg))
	if err != nil {
		return fmt.Errorf("%w: %v", errFileAccess, err)
	}

	if errs := append(depErrs, res.Errors()...); len(errs) > 0 {
		return reportValidationErrors(cmd, errs)
	}

	launch := res.Value()

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		out := struct {
			Dependencies []coordinate.Dependency `yaml:"dependencies,omitempty"`
			Launch       params.Launch           `yaml:"params"`
		}{deps, launch}
		data, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("rendering parameters: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	logger.Info("bootstrap configuration validated",
		logger.String("output", launch.Bootstrap.Output),
		logger.Int("dependencies", len(deps)),
		logger.Bool("create_bat", launch.Bootstrap.CreateBat),
		logger.Int("merge_rules", len(launch.Bootstrap.MergeRules)))
	return nil
}
