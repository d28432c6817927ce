package excludes

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jarcraft/jarcraft/pkg/coordinate"
	"github.com/jarcraft/jarcraft/pkg/validate"
)

func TestParseLinesGroupsByParent(t *testing.T) {
	mapping, errs := ParseLines([]string{
		"org1:mod1--org2:mod2",
		"org1:mod1--org3:mod3",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if mapping.Len() != 1 {
		t.Fatalf("expected one parent, got %d", mapping.Len())
	}

	parent := coordinate.Module{Organization: "org1", Name: "mod1"}
	children := mapping.ChildrenOf(parent)
	if len(children) != 2 {
		t.Fatalf("expected two children, got %v", children)
	}
	if children[0].Key() != "org2:mod2" || children[1].Key() != "org3:mod3" {
		t.Fatalf("children out of first-seen order: %v", children)
	}
}

func TestParseLinesMalformedLineDoesNotBlockOthers(t *testing.T) {
	mapping, errs := ParseLines([]string{
		"org1:mod1-org2:mod2", // single dash, malformed
		"org1:mod1--org3:mod3",
	})

	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[0].Kind != validate.MalformedExcludeLine {
		t.Fatalf("kind = %v, want MalformedExcludeLine", errs[0].Kind)
	}
	if !strings.Contains(errs[0].Message, `"org1:mod1-org2:mod2"`) {
		t.Fatalf("error must cite the line verbatim: %q", errs[0].Message)
	}

	// The valid sibling line still parsed.
	parent := coordinate.Module{Organization: "org1", Name: "mod1"}
	if got := mapping.ChildrenOf(parent); len(got) != 1 || got[0].Key() != "org3:mod3" {
		t.Fatalf("valid line suppressed: %v", got)
	}
}

func TestParseLinesAccumulatesAllErrors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind validate.Kind
	}{
		{"missing_double_dash", "a:b-c:d", validate.MalformedExcludeLine},
		{"child_too_many_segments", "a:b--c:d:e", validate.MalformedExcludeLine},
		{"child_missing_name", "a:b--c:", validate.MalformedExcludeLine},
		{"malformed_parent", "justorg--c:d", validate.MalformedCoordinate},
	}

	var lines []string
	for _, tc := range tests {
		lines = append(lines, tc.line)
	}
	_, errs := ParseLines(lines)
	if len(errs) != len(tests) {
		t.Fatalf("expected %d errors, got %v", len(tests), errs)
	}
	for i, tc := range tests {
		if errs[i].Kind != tc.wantKind {
			t.Fatalf("%s: kind = %v, want %v", tc.name, errs[i].Kind, tc.wantKind)
		}
	}
}

func TestParseLinesSkipsBlankLines(t *testing.T) {
	mapping, errs := ParseLines([]string{"", "  ", "a:b--c:d", ""})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if mapping.Len() != 1 {
		t.Fatalf("expected one parent, got %d", mapping.Len())
	}
}

func TestMappingParentFirstSeenOrder(t *testing.T) {
	mapping, errs := ParseLines([]string{
		"z:last--c:d",
		"a:first--c:d",
		"z:last--c:e",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	parents := mapping.Parents()
	if len(parents) != 2 || parents[0].Key() != "z:last" || parents[1].Key() != "a:first" {
		t.Fatalf("parents must keep first-seen order: %v", parents)
	}
}

func TestMappingDeduplicatesChildren(t *testing.T) {
	mapping, _ := ParseLines([]string{
		"a:b--c:d",
		"a:b--c:d",
	})
	parent := coordinate.Module{Organization: "a", Name: "b"}
	if got := mapping.ChildrenOf(parent); len(got) != 1 {
		t.Fatalf("duplicate child not dropped: %v", got)
	}
}

func TestParseFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "org1:mod1--org2:mod2\norg1:mod1--org3:mod3\n"
	if err := afero.WriteFile(fsys, "excludes.txt", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	mapping, errs, err := ParseFile(fsys, "excludes.txt")
	if err != nil {
		t.Fatalf("unexpected I/O error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	parent := coordinate.Module{Organization: "org1", Name: "mod1"}
	if got := mapping.ChildrenOf(parent); len(got) != 2 {
		t.Fatalf("expected two children, got %v", got)
	}
}

func TestParseFileCRLF(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "ex.txt", []byte("a:b--c:d\r\ne:f--g:h\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mapping, errs, err := ParseFile(fsys, "ex.txt")
	if err != nil || len(errs) != 0 {
		t.Fatalf("err=%v parse=%v", err, errs)
	}
	if mapping.Len() != 2 {
		t.Fatalf("expected two parents, got %d", mapping.Len())
	}
}

func TestParseFileMissingIsFatal(t *testing.T) {
	mapping, errs, err := ParseFile(afero.NewMemMapFs(), "nope.txt")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if mapping != nil || errs != nil {
		t.Fatal("I/O failure must not produce partial results")
	}
	if !strings.Contains(err.Error(), "nope.txt") {
		t.Fatalf("error must name the file: %v", err)
	}
}
