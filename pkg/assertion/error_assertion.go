package assertion

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrorAssertion checks error values.
type ErrorAssertion struct {
	*Assertion[error, *ErrorAssertion]
}

// NewErrorAssertion wraps err.
func NewErrorAssertion(err error) *ErrorAssertion {
	return New("error", err, func(a *Assertion[error, *ErrorAssertion]) *ErrorAssertion {
		return &ErrorAssertion{a}
	})
}

func (e *ErrorAssertion) message() string {
	if e.Value() == nil {
		return ""
	}
	return e.Value().Error()
}

func (e *ErrorAssertion) check(ok bool, what string, expected any) *ErrorAssertion {
	v := Prettify(e.Value())
	return e.Execute(
		ok,
		FailWithExpected(fmt.Sprintf("Expected <%s> to %s", v, what), expected),
		FailWithExpected(fmt.Sprintf("Expected <%s> NOT to %s", v, what), expected),
	)
}

// ToHaveMessage checks the exact error message.
func (e *ErrorAssertion) ToHaveMessage(msg string) *ErrorAssertion {
	return e.check(e.message() == msg, fmt.Sprintf("have the message %q", msg), msg)
}

// ToHaveMessageContaining checks that the message contains sub.
func (e *ErrorAssertion) ToHaveMessageContaining(sub string) *ErrorAssertion {
	return e.check(
		strings.Contains(e.message(), sub),
		fmt.Sprintf("have a message containing %q", sub),
		sub,
	)
}

// ToHaveMessageMatching checks the message against re.
func (e *ErrorAssertion) ToHaveMessageMatching(re *regexp.Regexp) *ErrorAssertion {
	return e.check(
		re.MatchString(e.message()),
		fmt.Sprintf("have a message matching /%s/", re.String()),
		re.String(),
	)
}

// ToWrap checks that target is in the error's chain (errors.Is).
func (e *ErrorAssertion) ToWrap(target error) *ErrorAssertion {
	return e.check(
		errors.Is(e.Value(), target),
		fmt.Sprintf("wrap <%s>", Prettify(target)),
		target,
	)
}

// ToBeKindOf checks that the error's chain holds an error assignable
// to target, which must be a non-nil pointer as errors.As requires.
func (e *ErrorAssertion) ToBeKindOf(target any) *ErrorAssertion {
	return e.check(
		errors.As(e.Value(), target),
		fmt.Sprintf("be a kind of %T", target),
		fmt.Sprintf("%T", target),
	)
}
