package params

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/jarcraft/jarcraft/pkg/coordinate"
	"github.com/jarcraft/jarcraft/pkg/excludes"
	"github.com/jarcraft/jarcraft/pkg/options"
	"github.com/jarcraft/jarcraft/pkg/sbtver"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

// FetchParams is the validated configuration for dependency resolution.
type FetchParams struct {
	// Exclude lists modules dropped everywhere in the graph, first-seen
	// order, deduplicated. No member carries coordinate attributes.
	Exclude []coordinate.Module `yaml:"exclude,omitempty"`
	// ExcludeRules maps a parent module to children excluded under it only.
	// Flag-supplied rules and file entries are merged, flags first.
	ExcludeRules *excludes.Mapping `yaml:"exclude_rules,omitempty"`
	// Intransitive dependencies resolve without their own dependencies.
	Intransitive []coordinate.Dependency `yaml:"intransitive,omitempty"`
	// SbtPlugins carry injected sbtVersion/scalaVersion default attributes.
	SbtPlugins []coordinate.Dependency `yaml:"sbt_plugins,omitempty"`
	SbtVersion string                  `yaml:"sbt_version,omitempty"`
	Platform   coordinate.Platform     `yaml:"platform"`
}

// Excluded reports whether the module is globally excluded.
func (p FetchParams) Excluded(m coordinate.Module) bool {
	key := m.Key()
	for _, e := range p.Exclude {
		if e.Key() == key {
			return true
		}
	}
	return false
}

// BuildFetch validates a raw fetch option bag. Failing to open the exclude
// file is a precondition failure returned as the plain error; it is never
// merged with the accumulated validation errors.
func BuildFetch(fsys afero.Fs, opts options.Fetch) (validate.Result[FetchParams], error) {
	var fileMapping *excludes.Mapping
	var fileErrs []validate.Error
	if opts.ExcludeFile != "" {
		var err error
		fileMapping, fileErrs, err = excludes.ParseFile(fsys, opts.ExcludeFile)
		if err != nil {
			return validate.Result[FetchParams]{}, err
		}
	}

	var acc validate.Accumulator

	exclude, withAttrs := parseExcludes(&acc, opts.Exclude)
	if len(withAttrs) > 0 {
		acc.Errorf(validate.UnsupportedAttributeOnExclude,
			"attributes are not supported on excluded modules: %s", strings.Join(withAttrs, ", "))
	}

	ruleMapping, ruleErrs := excludes.ParseLines(opts.ExcludeRules)
	acc.Add(ruleErrs...)
	acc.Add(fileErrs...)

	mapping := excludes.NewMapping()
	mapping.Merge(ruleMapping)
	mapping.Merge(fileMapping)

	intransitive := parseDependencies(&acc, opts.Intransitive)

	plugins := parseDependencies(&acc, opts.SbtPlugins)
	for i, dep := range plugins {
		plugins[i] = sbtver.InjectDefaults(dep, opts.SbtVersion, opts.ScalaVersion)
	}

	platform := checkPlatform(&acc, opts)

	return validate.Finish(&acc, FetchParams{
		Exclude:      exclude,
		ExcludeRules: mapping,
		Intransitive: intransitive,
		SbtPlugins:   plugins,
		SbtVersion:   opts.SbtVersion,
		Platform:     platform,
	}), nil
}

// parseExcludes parses global exclusions, accumulating malformed coordinates
// and collecting entries that illegally carry attributes. The returned slice
// keeps first-seen order with duplicates dropped.
func parseExcludes(acc *validate.Accumulator, raw []string) (modules []coordinate.Module, withAttrs []string) {
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		res := coordinate.ParseModule(s)
		if !res.IsOk() {
			acc.Add(res.Errors()...)
			continue
		}
		m := res.Value()
		if len(m.Attributes) > 0 {
			withAttrs = append(withAttrs, s)
			continue
		}
		if _, dup := seen[m.Key()]; dup {
			continue
		}
		seen[m.Key()] = struct{}{}
		modules = append(modules, m)
	}
	return modules, withAttrs
}

func parseDependencies(acc *validate.Accumulator, raw []string) []coordinate.Dependency {
	var deps []coordinate.Dependency
	for _, s := range raw {
		res := coordinate.ParseDependency(s)
		if !res.IsOk() {
			acc.Add(res.Errors()...)
			continue
		}
		deps = append(deps, res.Value())
	}
	return deps
}

// checkPlatform enforces that at most one alternate platform is selected.
func checkPlatform(acc *validate.Accumulator, opts options.Fetch) coordinate.Platform {
	switch {
	case opts.ScalaJS && opts.Native:
		acc.Errorf(validate.MutuallyExclusiveFlags,
			"options --scala-js, --native cannot be used together")
		return coordinate.PlatformNone
	case opts.ScalaJS:
		return coordinate.PlatformJS
	case opts.Native:
		return coordinate.PlatformNative
	default:
		return coordinate.PlatformNone
	}
}
