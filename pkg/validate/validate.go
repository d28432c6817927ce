// Package validate implements accumulating validation for option parsing.
//
// Unlike fail-fast validation, every independent check runs to completion and
// all failures are reported together, in the order the checks were declared.
// Results are plain data; nothing here panics or uses errors as control flow.
package validate

import "fmt"

// Kind identifies a category of validation failure.
type Kind string

const (
	// MalformedCoordinate indicates a module or dependency coordinate that
	// does not follow the org:name segment structure.
	MalformedCoordinate Kind = "malformed-coordinate"

	// MalformedRule indicates an assembly rule string with a missing
	// separator or an unrecognized rule name.
	MalformedRule Kind = "malformed-rule"

	// MalformedExcludeLine indicates an exclude-file line that does not
	// follow the PARENT--ORG:NAME grammar.
	MalformedExcludeLine Kind = "malformed-exclude-line"

	// MutuallyExclusiveFlags indicates two or more options that cannot be
	// combined in one invocation.
	MutuallyExclusiveFlags Kind = "mutually-exclusive-flags"

	// UnsupportedAttributeOnExclude indicates an excluded module carrying
	// coordinate attributes, which exclusions do not support.
	UnsupportedAttributeOnExclude Kind = "unsupported-attribute-on-exclude"

	// FileIO indicates a failure to open or read a user-supplied file. It is
	// a precondition failure and is never merged with accumulated results.
	FileIO Kind = "file-io"
)

// Error is a single validation failure with a display-ready message.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string { return e.Message }

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Result holds either a validated value or an ordered, non-empty list of
// failures. The zero value is a success holding T's zero value.
type Result[T any] struct {
	value T
	errs  []Error
}

// Ok returns a successful result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed result carrying the given errors in order.
func Fail[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		errs = []Error{Errorf("internal", "validation failed with no recorded error")}
	}
	return Result[T]{errs: errs}
}

// IsOk reports whether the result succeeded.
func (r Result[T]) IsOk() bool { return len(r.errs) == 0 }

// Value returns the validated value. Only meaningful when IsOk is true.
func (r Result[T]) Value() T { return r.value }

// Errors returns the failure list, empty on success. The list order matches
// the order the failing checks were declared in.
func (r Result[T]) Errors() []Error { return r.errs }

// Messages returns the failure messages, one display-ready line per error.
func (r Result[T]) Messages() []string {
	if len(r.errs) == 0 {
		return nil
	}
	out := make([]string, len(r.errs))
	for i, e := range r.errs {
		out[i] = e.Message
	}
	return out
}

// Map transforms the value of a successful result; failures pass through.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if !r.IsOk() {
		return Result[B]{errs: r.errs}
	}
	return Ok(f(r.value))
}

// Map2 combines two independent results. Both are evaluated regardless of the
// other's outcome; on failure the error lists concatenate in argument order.
func Map2[A, B, C any](a Result[A], b Result[B], f func(A, B) C) Result[C] {
	if a.IsOk() && b.IsOk() {
		return Ok(f(a.value, b.value))
	}
	errs := make([]Error, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)
	return Result[C]{errs: errs}
}

// Collect traverses a slice of results into a result of a slice. Every
// element is inspected; failures concatenate in element order.
func Collect[T any](rs []Result[T]) Result[[]T] {
	var errs []Error
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsOk() {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.errs...)
	}
	if len(errs) > 0 {
		return Result[[]T]{errs: errs}
	}
	return Ok(values)
}

// Accumulator gathers failures across independent fields. Fields are recorded
// in call order, which fixes the order of the final error list.
type Accumulator struct {
	errs []Error
}

// Add records errors directly.
func (a *Accumulator) Add(errs ...Error) {
	a.errs = append(a.errs, errs...)
}

// Errorf records a single formatted error.
func (a *Accumulator) Errorf(kind Kind, format string, args ...any) {
	a.errs = append(a.errs, Errorf(kind, format, args...))
}

// Failed reports whether any error has been recorded.
func (a *Accumulator) Failed() bool { return len(a.errs) > 0 }

// Errors returns the recorded errors in call order.
func (a *Accumulator) Errors() []Error { return a.errs }

// Field extracts a result's value into the accumulator: failures are
// recorded and the zero value returned, successes pass the value through.
func Field[T any](a *Accumulator, r Result[T]) T {
	if !r.IsOk() {
		a.Add(r.errs...)
		var zero T
		return zero
	}
	return r.value
}

// Finish closes out an accumulation: if any field failed the combined error
// list is returned, otherwise the assembled value.
func Finish[T any](a *Accumulator, v T) Result[T] {
	if a.Failed() {
		return Result[T]{errs: a.errs}
	}
	return Ok(v)
}
