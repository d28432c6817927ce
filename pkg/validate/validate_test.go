package validate

import (
	"strings"
	"testing"
)

func TestResultOk(t *testing.T) {
	r := Ok(42)
	if !r.IsOk() {
		t.Fatal("expected success")
	}
	if r.Value() != 42 {
		t.Fatalf("Value() = %v, want 42", r.Value())
	}
	if len(r.Errors()) != 0 {
		t.Fatalf("Errors() = %v, want empty", r.Errors())
	}
}

func TestResultFail(t *testing.T) {
	r := Fail[int](Errorf(MalformedRule, "bad rule"), Errorf(MalformedCoordinate, "bad coord"))
	if r.IsOk() {
		t.Fatal("expected failure")
	}
	msgs := r.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0] != "bad rule" || msgs[1] != "bad coord" {
		t.Fatalf("messages out of order: %v", msgs)
	}
}

func TestFailNeverEmpty(t *testing.T) {
	r := Fail[string]()
	if r.IsOk() {
		t.Fatal("Fail with no errors must still be a failure")
	}
	if len(r.Errors()) == 0 {
		t.Fatal("failure must carry a non-empty error list")
	}
}

func TestMap2AccumulatesBothSides(t *testing.T) {
	a := Fail[int](Errorf(MalformedRule, "first"))
	b := Fail[string](Errorf(MalformedCoordinate, "second"))
	r := Map2(a, b, func(int, string) bool { return true })
	if r.IsOk() {
		t.Fatal("expected failure")
	}
	msgs := r.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected both errors, got %v", msgs)
	}
	if msgs[0] != "first" || msgs[1] != "second" {
		t.Fatalf("errors must keep argument order, got %v", msgs)
	}
}

func TestMap2Success(t *testing.T) {
	r := Map2(Ok(2), Ok("x"), func(n int, s string) string {
		return strings.Repeat(s, n)
	})
	if !r.IsOk() || r.Value() != "xx" {
		t.Fatalf("Map2 = %v %v", r.Value(), r.Errors())
	}
}

func TestMap2IsAssociative(t *testing.T) {
	a := Fail[int](Errorf(MalformedRule, "e1"))
	b := Fail[int](Errorf(MalformedRule, "e2"))
	c := Fail[int](Errorf(MalformedRule, "e3"))

	left := Map2(Map2(a, b, add), c, add)
	right := Map2(a, Map2(b, c, add), add)

	lm, rm := left.Messages(), right.Messages()
	if len(lm) != 3 || len(rm) != 3 {
		t.Fatalf("expected 3 errors each, got %v and %v", lm, rm)
	}
	for i := range lm {
		if lm[i] != rm[i] {
			t.Fatalf("grouping changed error order: %v vs %v", lm, rm)
		}
	}
}

func add(a, b int) int { return a + b }

func TestCollect(t *testing.T) {
	t.Run("all_ok", func(t *testing.T) {
		r := Collect([]Result[int]{Ok(1), Ok(2), Ok(3)})
		if !r.IsOk() {
			t.Fatalf("unexpected errors: %v", r.Errors())
		}
		v := r.Value()
		if len(v) != 3 || v[0] != 1 || v[2] != 3 {
			t.Fatalf("Collect = %v", v)
		}
	})

	t.Run("keeps_every_failure_in_order", func(t *testing.T) {
		r := Collect([]Result[int]{
			Fail[int](Errorf(MalformedRule, "a")),
			Ok(2),
			Fail[int](Errorf(MalformedRule, "b")),
		})
		msgs := r.Messages()
		if len(msgs) != 2 || msgs[0] != "a" || msgs[1] != "b" {
			t.Fatalf("Collect errors = %v", msgs)
		}
	})
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator

	n := Field(&acc, Ok(7))
	if n != 7 {
		t.Fatalf("Field = %v, want 7", n)
	}
	if acc.Failed() {
		t.Fatal("no error recorded yet")
	}

	s := Field(&acc, Fail[string](Errorf(MalformedCoordinate, "bad coord")))
	if s != "" {
		t.Fatalf("failed field must yield zero value, got %q", s)
	}
	acc.Errorf(MutuallyExclusiveFlags, "conflict between %s", "--a, --b")
	acc.Add(Errorf(MalformedRule, "bad rule"))

	r := Finish(&acc, "unused")
	if r.IsOk() {
		t.Fatal("expected failure")
	}
	msgs := r.Messages()
	want := []string{"bad coord", "conflict between --a, --b", "bad rule"}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("error %d = %q, want %q", i, msgs[i], want[i])
		}
	}
}

func TestFinishSuccess(t *testing.T) {
	var acc Accumulator
	r := Finish(&acc, "value")
	if !r.IsOk() || r.Value() != "value" {
		t.Fatalf("Finish = %v %v", r.Value(), r.Errors())
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = Errorf(FileIO, "cannot open %q", "x.txt")
	if err.Error() != `cannot open "x.txt"` {
		t.Fatalf("Error() = %q", err.Error())
	}
}
