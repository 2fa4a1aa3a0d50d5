package assertion

// FailHandler receives every error a wrapper raises. The default,
// PanicHandler, aborts the chain by panicking with the error; a
// handler that returns lets the chain continue with a reset wrapper.
type FailHandler func(err error)

// PanicHandler panics with err.
func PanicHandler(err error) {
	panic(err)
}

// Failure describes the error a check raises when its verdict does
// not hold. The actual value is filled in by the wrapper.
type Failure struct {
	Message     string
	Expected    any
	HasExpected bool
}

// FailWith returns a Failure carrying only a message.
func FailWith(message string) Failure {
	return Failure{Message: message}
}

// FailWithExpected returns a Failure carrying a message and the
// expected value.
func FailWithExpected(message string, expected any) Failure {
	return Failure{
		Message:     message,
		Expected:    expected,
		HasExpected: true,
	}
}

func (f Failure) toError(actual any) *AssertionError {
	return &AssertionError{
		Message:     f.Message,
		Actual:      actual,
		Expected:    f.Expected,
		HasExpected: f.HasExpected,
	}
}
