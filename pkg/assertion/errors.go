package assertion

import (
	"errors"
	"fmt"
)

// Kind classifies the errors raised by the engine so test runners can
// tell a failed expectation from a misuse of the API.
type Kind string

const (
	// KindAssertion is the kind of every failed check.
	KindAssertion Kind = "AssertionError"
	// KindUnsupportedOperation is raised when operations are combined
	// in a way that has no meaning, such as narrowing a negated
	// wrapper.
	KindUnsupportedOperation Kind = "UnsupportedOperationError"
)

// Sentinel errors for errors.Is classification.
var (
	ErrAssertion            = errors.New("assertion failed")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// AssertionError is raised when a check fails. Expected is only
// meaningful when HasExpected is set, since nil is a legitimate
// expected value.
type AssertionError struct {
	Message     string
	Actual      any
	Expected    any
	HasExpected bool
}

func (e *AssertionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Kind returns KindAssertion.
func (e *AssertionError) Kind() Kind { return KindAssertion }

// Is matches ErrAssertion.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

// Detail renders the message followed by the actual and, when
// present, the expected value.
func (e *AssertionError) Detail() string {
	s := fmt.Sprintf("%s\n  actual:   %s", e.Message, Prettify(e.Actual))
	if e.HasExpected {
		s += fmt.Sprintf("\n  expected: %s", Prettify(e.Expected))
	}
	return s
}

// UnsupportedOperationError signals a programmer error rather than a
// failed expectation.
type UnsupportedOperationError struct {
	Message string
}

func (e *UnsupportedOperationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Kind returns KindUnsupportedOperation.
func (e *UnsupportedOperationError) Kind() Kind {
	return KindUnsupportedOperation
}

// Is matches ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// IsKind reports whether err, or any error it wraps, is an engine
// error of the given kind.
func IsKind(err error, kind Kind) bool {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind() == kind
	}
	return false
}

// Catch runs fn and returns the engine error it raised through the
// default panicking FailHandler, or nil. Panics carrying anything
// other than an *AssertionError or *UnsupportedOperationError are
// re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *AssertionError:
			err = e
		case *UnsupportedOperationError:
			err = e
		default:
			panic(r)
		}
	}()

	fn()
	return nil
}
