// Package excludes parses user-authored exclusion files mapping a parent
// module to the transitive children it must not pull in. Line grammar:
//
//	PARENT--CHILD_ORG:CHILD_NAME
//
// where PARENT follows coordinate syntax. Lines parse independently: one
// malformed line never blocks the others, and all per-line failures are
// accumulated together. Opening the file is a precondition and fails fast.
package excludes

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/jarcraft/jarcraft/pkg/coordinate"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

// Mapping groups excluded children under their parent module. Parents keep
// first-seen order so error messages and rendered output are deterministic.
type Mapping struct {
	parents  []coordinate.Module
	children map[string][]coordinate.Module
	seen     map[string]map[string]struct{}
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		children: make(map[string][]coordinate.Module),
		seen:     make(map[string]map[string]struct{}),
	}
}

// Add records child as excluded under parent. Repeated parents union their
// children; duplicate children are dropped, keeping first-seen order.
func (m *Mapping) Add(parent, child coordinate.Module) {
	pk := parent.Key()
	if _, ok := m.seen[pk]; !ok {
		m.parents = append(m.parents, parent)
		m.seen[pk] = make(map[string]struct{})
	}
	ck := child.Key()
	if _, dup := m.seen[pk][ck]; dup {
		return
	}
	m.seen[pk][ck] = struct{}{}
	m.children[pk] = append(m.children[pk], child)
}

// Merge adds every entry of other into m.
func (m *Mapping) Merge(other *Mapping) {
	if other == nil {
		return
	}
	for _, parent := range other.parents {
		for _, child := range other.children[parent.Key()] {
			m.Add(parent, child)
		}
	}
}

// Len returns the number of distinct parents.
func (m *Mapping) Len() int { return len(m.parents) }

// Parents returns the parents in first-seen order.
func (m *Mapping) Parents() []coordinate.Module {
	return append([]coordinate.Module(nil), m.parents...)
}

// ChildrenOf returns the excluded children of parent in first-seen order.
func (m *Mapping) ChildrenOf(parent coordinate.Module) []coordinate.Module {
	return append([]coordinate.Module(nil), m.children[parent.Key()]...)
}

// MarshalYAML renders the mapping as parent -> child list, first-seen order.
func (m *Mapping) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}
	out := make([]map[string][]string, 0, len(m.parents))
	for _, parent := range m.parents {
		names := make([]string, 0, len(m.children[parent.Key()]))
		for _, child := range m.children[parent.Key()] {
			names = append(names, child.Key())
		}
		out = append(out, map[string][]string{parent.Key(): names})
	}
	return out, nil
}

// ParseLines parses exclusion lines into a mapping. Blank lines are skipped.
// Every line is processed regardless of failures in its siblings; the
// returned errors keep line order.
func ParseLines(lines []string) (*Mapping, []validate.Error) {
	mapping := NewMapping()
	var errs []validate.Error
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		parent, child, lineErrs := parseLine(line)
		if len(lineErrs) > 0 {
			errs = append(errs, lineErrs...)
			continue
		}
		mapping.Add(parent, child)
	}
	return mapping, errs
}

func parseLine(line string) (parent, child coordinate.Module, errs []validate.Error) {
	parts := strings.Split(line, "--")
	if len(parts) != 2 {
		return parent, child, []validate.Error{validate.Errorf(validate.MalformedExcludeLine,
			"malformed exclusion %q: expected PARENT--ORG:NAME", line)}
	}

	childParts := strings.Split(parts[1], ":")
	if len(childParts) != 2 || childParts[0] == "" || childParts[1] == "" {
		return parent, child, []validate.Error{validate.Errorf(validate.MalformedExcludeLine,
			"malformed exclusion %q: child must be ORG:NAME", line)}
	}
	child = coordinate.Module{Organization: childParts[0], Name: childParts[1]}

	res := coordinate.ParseModule(parts[0])
	if !res.IsOk() {
		return parent, child, res.Errors()
	}
	return res.Value(), child, nil
}

// ParseFile opens and parses an exclusion file. The handle is closed on every
// exit path. A failure to open or read is returned as the plain error and is
// not mixed into the accumulated per-line errors.
func ParseFile(fsys afero.Fs, path string) (*Mapping, []validate.Error, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening exclude file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading exclude file %s: %w", path, err)
	}

	mapping, errs := ParseLines(strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"))
	return mapping, errs, nil
}
