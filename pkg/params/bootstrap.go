// Package params assembles validated, immutable parameter aggregates from
// raw option bags. Each builder parses its fields independently, accumulates
// every failure, applies cross-field checks, and only then constructs the
// result. A returned params value holds no references to the input bag.
package params

import (
	"runtime"
	"strings"

	"github.com/jarcraft/jarcraft/pkg/assembly"
	"github.com/jarcraft/jarcraft/pkg/options"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

// DefaultOutput is the launcher path used when none is supplied.
const DefaultOutput = "bootstrap"

// BootstrapParams is the validated configuration for launcher generation.
type BootstrapParams struct {
	Output             string          `yaml:"output"`
	Force              bool            `yaml:"force"`
	Standalone         bool            `yaml:"standalone"`
	Hybrid             bool            `yaml:"hybrid"`
	Assembly           bool            `yaml:"assembly"`
	NativeImage        bool            `yaml:"native_image"`
	EmbedFiles         bool            `yaml:"embed_files"`
	JavaOpts           []string        `yaml:"java_opts,omitempty"`
	BatOutput          string          `yaml:"bat_output"`
	CreateBat          bool            `yaml:"create_bat"`
	MergeRules         []assembly.Rule `yaml:"merge_rules,omitempty"`
	Preamble           bool            `yaml:"preamble"`
	Deterministic      bool            `yaml:"deterministic"`
	Proguarded         bool            `yaml:"proguarded"`
	DisableJarChecking *bool           `yaml:"disable_jar_checking,omitempty"`
}

// BuildBootstrap validates a raw bootstrap option bag. All field failures are
// accumulated; cross-field checks run after field parsing and their failures
// join the same list.
func BuildBootstrap(opts options.Bootstrap) validate.Result[BootstrapParams] {
	var acc validate.Accumulator

	var rules []assembly.Rule
	for _, raw := range opts.AssemblyRules {
		if r := validate.Field(&acc, assembly.ParseRule(raw)); r != nil {
			rules = append(rules, r)
		}
	}
	if opts.DefaultAssemblyRules {
		rules = assembly.WithDefaults(rules)
	}

	checkPackagingModes(&acc, opts)

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	createBat := runtime.GOOS == "windows"
	if opts.Bat != nil {
		createBat = *opts.Bat
	}

	return validate.Finish(&acc, BootstrapParams{
		Output:             output,
		Force:              opts.Force,
		Standalone:         opts.Standalone,
		Hybrid:             opts.Hybrid,
		Assembly:           opts.Assembly,
		NativeImage:        opts.Native,
		EmbedFiles:         opts.EmbedFiles,
		JavaOpts:           append([]string(nil), opts.JavaOpts...),
		BatOutput:          output + ".bat",
		CreateBat:          createBat,
		MergeRules:         rules,
		Preamble:           opts.Preamble,
		Deterministic:      opts.Deterministic,
		Proguarded:         opts.Proguarded,
		DisableJarChecking: copyBool(opts.DisableJarChecking),
	})
}

// checkPackagingModes enforces that at most one packaging mode is selected.
// A violation contributes exactly one error naming every conflicting flag.
func checkPackagingModes(acc *validate.Accumulator, opts options.Bootstrap) {
	var set []string
	for _, mode := range []struct {
		flag string
		on   bool
	}{
		{"--assembly", opts.Assembly},
		{"--standalone", opts.Standalone},
		{"--hybrid", opts.Hybrid},
		{"--native", opts.Native},
	} {
		if mode.on {
			set = append(set, mode.flag)
		}
	}
	if len(set) > 1 {
		acc.Errorf(validate.MutuallyExclusiveFlags,
			"options %s cannot be used together", strings.Join(set, ", "))
	}
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
