// Package options defines the raw, loosely-typed option bags handed to the
// params builders. The bags are produced either by the CLI flag layer or from
// configuration maps (viper settings), which is why FromMap coerces values
// through cast instead of assuming exact types.
package options

import "github.com/spf13/cast"

// Fetch carries the raw dependency-selection options shared by the fetch and
// bootstrap commands.
type Fetch struct {
	Exclude      []string
	ExcludeFile  string
	ExcludeRules []string
	Intransitive []string
	SbtPlugins   []string
	SbtVersion   string
	ScalaVersion string
	ScalaJS      bool
	Native       bool
}

// Bootstrap carries the raw launcher-generation options. Optional booleans
// are pointers: nil means the user did not set the flag and the
// platform-dependent default applies.
type Bootstrap struct {
	Output               string
	Force                bool
	Standalone           bool
	Hybrid               bool
	Assembly             bool
	Native               bool
	Bat                  *bool
	EmbedFiles           bool
	JavaOpts             []string
	AssemblyRules        []string
	DefaultAssemblyRules bool
	Preamble             bool
	Deterministic        bool
	Proguarded           bool
	DisableJarChecking   *bool
}

// FetchFromMap coerces a loosely-typed settings map into a Fetch bag.
// Missing keys keep their zero values.
func FetchFromMap(m map[string]any) Fetch {
	return Fetch{
		Exclude:      stringsAt(m, "exclude"),
		ExcludeFile:  cast.ToString(m["exclude-file"]),
		ExcludeRules: stringsAt(m, "exclude-rule"),
		Intransitive: stringsAt(m, "intransitive"),
		SbtPlugins:   stringsAt(m, "sbt-plugin"),
		SbtVersion:   cast.ToString(m["sbt-version"]),
		ScalaVersion: cast.ToString(m["scala-version"]),
		ScalaJS:      cast.ToBool(m["scala-js"]),
		Native:       cast.ToBool(m["native"]),
	}
}

// BootstrapFromMap coerces a loosely-typed settings map into a Bootstrap bag.
func BootstrapFromMap(m map[string]any) Bootstrap {
	return Bootstrap{
		Output:               cast.ToString(m["output"]),
		Force:                cast.ToBool(m["force"]),
		Standalone:           cast.ToBool(m["standalone"]),
		Hybrid:               cast.ToBool(m["hybrid"]),
		Assembly:             cast.ToBool(m["assembly"]),
		Native:               cast.ToBool(m["native"]),
		Bat:                  boolPtrAt(m, "bat"),
		EmbedFiles:           cast.ToBool(m["embed-files"]),
		JavaOpts:             stringsAt(m, "java-opt"),
		AssemblyRules:        stringsAt(m, "rule"),
		DefaultAssemblyRules: cast.ToBool(m["default-rules"]),
		Preamble:             cast.ToBool(m["preamble"]),
		Deterministic:        cast.ToBool(m["deterministic"]),
		Proguarded:           cast.ToBool(m["proguarded"]),
		DisableJarChecking:   boolPtrAt(m, "disable-jar-checking"),
	}
}

func stringsAt(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	return cast.ToStringSlice(v)
}

func boolPtrAt(m map[string]any, key string) *bool {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	b := cast.ToBool(v)
	return &b
}
