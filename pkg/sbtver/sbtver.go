// Package sbtver derives default coordinate attributes from an sbt version.
package sbtver

import (
	"strings"

	"github.com/jarcraft/jarcraft/pkg/coordinate"
)

// Attribute keys injected on sbt plugin dependencies.
const (
	SbtVersionAttr   = "sbtVersion"
	ScalaVersionAttr = "scalaVersion"
)

var scalaBySbt = map[string]string{
	"0.13": "2.10",
	"1.0":  "2.12",
}

const scalaFallback = "2.12"

// BinaryVersion shortens a full sbt version to its binary form. Every 1.x
// release shares the "1.0" binary version; older lines keep their first two
// components.
func BinaryVersion(version string) string {
	parts := strings.Split(version, ".")
	if parts[0] == "1" {
		return "1.0"
	}
	return firstTwo(version)
}

// ScalaBinaryFor returns the Scala binary version plugins are built against
// for the given sbt binary version.
func ScalaBinaryFor(sbtBinary string) string {
	if v, ok := scalaBySbt[sbtBinary]; ok {
		return v
	}
	return scalaFallback
}

// DefaultAttributes computes the attributes injected on sbt plugin
// dependencies. A non-empty forcedScala overrides the lookup with its own
// first-two-components form.
func DefaultAttributes(sbtVersion, forcedScala string) []coordinate.Attribute {
	sbtBinary := BinaryVersion(sbtVersion)
	scala := ScalaBinaryFor(sbtBinary)
	if forcedScala != "" {
		scala = firstTwo(forcedScala)
	}
	return []coordinate.Attribute{
		{Key: SbtVersionAttr, Value: sbtBinary},
		{Key: ScalaVersionAttr, Value: scala},
	}
}

// InjectDefaults adds the computed default attributes to a plugin dependency.
// Attributes already present on the dependency's coordinate win.
func InjectDefaults(dep coordinate.Dependency, sbtVersion, forcedScala string) coordinate.Dependency {
	out := dep
	out.Module = dep.Module.WithDefaultAttributes(DefaultAttributes(sbtVersion, forcedScala))
	return out
}

func firstTwo(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
