// Package coordinate parses module and dependency coordinates.
//
// The base module grammar is "org:name". A doubled separator ("org::name")
// marks the cross-versioned Scala variant, and the name may carry a "/js" or
// "/native" suffix selecting the Scala.js or Scala Native platform. Attribute
// pairs are ";key=value" segments after the name (after the version for
// dependencies). Dependencies append ":version" and optional per-dependency
// parameters after commas, e.g. "org::name:1.2.3,classifier=tests,intransitive".
package coordinate

import (
	"sort"
	"strings"

	"github.com/jarcraft/jarcraft/pkg/validate"
)

// Platform qualifies a coordinate with a compilation/runtime target.
type Platform int

const (
	// PlatformNone is the plain JVM form with no qualifier.
	PlatformNone Platform = iota
	// PlatformScala marks the cross-versioned Scala variant (org::name).
	PlatformScala
	// PlatformJS marks the Scala.js variant (org::name/js).
	PlatformJS
	// PlatformNative marks the Scala Native variant (org::name/native).
	PlatformNative
)

// String returns the marker used in coordinate syntax, empty for PlatformNone.
func (p Platform) String() string {
	switch p {
	case PlatformScala:
		return "scala"
	case PlatformJS:
		return "js"
	case PlatformNative:
		return "native"
	default:
		return ""
	}
}

// MarshalYAML renders the platform as a word, "none" when unqualified.
func (p Platform) MarshalYAML() (any, error) {
	if p == PlatformNone {
		return "none", nil
	}
	return p.String(), nil
}

// Attribute is a single coordinate attribute.
type Attribute struct {
	Key   string
	Value string
}

// Module identifies a module. Attributes are kept sorted by key with unique
// keys so that Key reflects structural equality.
type Module struct {
	Organization string
	Name         string
	Attributes   []Attribute
	Platform     Platform
}

// Dependency is a module pinned to a version, with auxiliary per-dependency
// parameters such as classifier or intransitivity.
type Dependency struct {
	Module  Module
	Version string
	Params  map[string]string
}

// Attribute returns the value of the named attribute, if present.
func (m Module) Attribute(key string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Key returns a canonical string form usable as a map or set key. Two modules
// with equal fields always produce the same key.
func (m Module) Key() string {
	var b strings.Builder
	b.WriteString(m.Organization)
	if m.Platform != PlatformNone {
		b.WriteString("::")
	} else {
		b.WriteString(":")
	}
	b.WriteString(m.Name)
	switch m.Platform {
	case PlatformJS:
		b.WriteString("/js")
	case PlatformNative:
		b.WriteString("/native")
	}
	for _, a := range m.Attributes {
		b.WriteString(";")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value)
	}
	return b.String()
}

// String returns the coordinate in its source syntax.
func (m Module) String() string { return m.Key() }

// String returns the dependency in its source syntax, without params.
func (d Dependency) String() string {
	return d.Module.Key() + ":" + d.Version
}

// MarshalYAML renders the module in its source syntax.
func (m Module) MarshalYAML() (any, error) { return m.Key(), nil }

// MarshalYAML renders the dependency in its source syntax, params included.
func (d Dependency) MarshalYAML() (any, error) {
	if len(d.Params) == 0 {
		return d.String(), nil
	}
	keys := make([]string, 0, len(d.Params))
	for k := range d.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(d.String())
	for _, k := range keys {
		b.WriteString(",")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(d.Params[k])
	}
	return b.String(), nil
}

// WithDefaultAttributes returns a copy of the module with the given defaults
// added. Attributes already present on the module win over defaults.
func (m Module) WithDefaultAttributes(defaults []Attribute) Module {
	merged := append([]Attribute(nil), m.Attributes...)
	for _, d := range defaults {
		if _, ok := m.Attribute(d.Key); !ok {
			merged = append(merged, d)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Key < merged[j].Key })
	out := m
	out.Attributes = merged
	return out
}

func malformed(input string) validate.Error {
	return validate.Errorf(validate.MalformedCoordinate, "malformed coordinate: %q", input)
}

// ParseModule parses a module coordinate.
func ParseModule(input string) validate.Result[Module] {
	head, attrs, ok := splitAttributes(input)
	if !ok {
		return validate.Fail[Module](malformed(input))
	}
	org, name, platform, ok := splitModule(head)
	if !ok {
		return validate.Fail[Module](malformed(input))
	}
	return validate.Ok(Module{
		Organization: org,
		Name:         name,
		Attributes:   attrs,
		Platform:     platform,
	})
}

// ParseDependency parses a dependency coordinate with optional parameters.
func ParseDependency(input string) validate.Result[Dependency] {
	fields := strings.Split(input, ",")
	coord := fields[0]

	head, attrs, ok := splitAttributes(coord)
	if !ok {
		return validate.Fail[Dependency](malformed(input))
	}
	idx := strings.LastIndex(head, ":")
	if idx < 0 || idx == len(head)-1 {
		return validate.Fail[Dependency](malformed(input))
	}
	version := head[idx+1:]
	org, name, platform, ok := splitModule(head[:idx])
	if !ok {
		return validate.Fail[Dependency](malformed(input))
	}

	params := make(map[string]string, len(fields)-1)
	for _, p := range fields[1:] {
		if p == "" {
			return validate.Fail[Dependency](malformed(input))
		}
		if k, v, found := strings.Cut(p, "="); found {
			if k == "" {
				return validate.Fail[Dependency](malformed(input))
			}
			params[k] = v
		} else {
			// Bare flags like "intransitive".
			params[p] = "true"
		}
	}

	return validate.Ok(Dependency{
		Module: Module{
			Organization: org,
			Name:         name,
			Attributes:   attrs,
			Platform:     platform,
		},
		Version: version,
		Params:  params,
	})
}

// splitAttributes separates ";key=value" segments from the coordinate head.
func splitAttributes(input string) (head string, attrs []Attribute, ok bool) {
	parts := strings.Split(input, ";")
	head = parts[0]
	for _, p := range parts[1:] {
		k, v, found := strings.Cut(p, "=")
		if !found || k == "" {
			return "", nil, false
		}
		attrs = append(attrs, Attribute{Key: k, Value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	for i := 1; i < len(attrs); i++ {
		if attrs[i].Key == attrs[i-1].Key {
			return "", nil, false
		}
	}
	return head, attrs, true
}

// splitModule parses "org:name" or "org::name" with an optional platform
// suffix on the name. The suffix requires the cross-version marker.
func splitModule(head string) (org, name string, platform Platform, ok bool) {
	segments := strings.Split(head, ":")
	switch len(segments) {
	case 2:
		org, name = segments[0], segments[1]
	case 3:
		if segments[1] != "" {
			return "", "", PlatformNone, false
		}
		org, name = segments[0], segments[2]
		platform = PlatformScala
	default:
		return "", "", PlatformNone, false
	}
	if org == "" || name == "" {
		return "", "", PlatformNone, false
	}

	if base, suffix, found := strings.Cut(name, "/"); found {
		if platform != PlatformScala || base == "" {
			return "", "", PlatformNone, false
		}
		switch suffix {
		case "js":
			platform = PlatformJS
		case "native":
			platform = PlatformNative
		default:
			return "", "", PlatformNone, false
		}
		name = base
	}
	return org, name, platform, true
}
