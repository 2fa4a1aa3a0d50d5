package assertion

import (
	"fmt"
	"regexp"
	"strings"
)

// StringAssertion checks string values.
type StringAssertion struct {
	*Assertion[string, *StringAssertion]
}

// NewStringAssertion wraps s.
func NewStringAssertion(s string) *StringAssertion {
	return New("string", s, func(a *Assertion[string, *StringAssertion]) *StringAssertion {
		return &StringAssertion{a}
	})
}

func (s *StringAssertion) check(ok bool, what string, expected any) *StringAssertion {
	v := Prettify(s.Value())
	return s.Execute(
		ok,
		FailWithExpected(fmt.Sprintf("Expected %s to %s", v, what), expected),
		FailWithExpected(fmt.Sprintf("Expected %s NOT to %s", v, what), expected),
	)
}

// ToBeEmpty checks that the string has no characters.
func (s *StringAssertion) ToBeEmpty() *StringAssertion {
	return s.Execute(
		s.Value() == "",
		FailWith(fmt.Sprintf("Expected %s to be empty", Prettify(s.Value()))),
		FailWith("Expected the value NOT to be empty"),
	)
}

// ToBeBlank checks that the string is empty or only whitespace.
func (s *StringAssertion) ToBeBlank() *StringAssertion {
	return s.Execute(
		strings.TrimSpace(s.Value()) == "",
		FailWith(fmt.Sprintf("Expected %s to be blank", Prettify(s.Value()))),
		FailWith(fmt.Sprintf("Expected %s NOT to be blank", Prettify(s.Value()))),
	)
}

// ToHaveLength checks the length of the string in runes.
func (s *StringAssertion) ToHaveLength(n int) *StringAssertion {
	return s.check(
		len([]rune(s.Value())) == n,
		fmt.Sprintf("have length %d", n),
		n,
	)
}

// ToContain checks that the string contains sub.
func (s *StringAssertion) ToContain(sub string) *StringAssertion {
	return s.check(
		strings.Contains(s.Value(), sub),
		fmt.Sprintf("contain %q", sub),
		sub,
	)
}

// ToStartWith checks that the string starts with prefix.
func (s *StringAssertion) ToStartWith(prefix string) *StringAssertion {
	return s.check(
		strings.HasPrefix(s.Value(), prefix),
		fmt.Sprintf("start with %q", prefix),
		prefix,
	)
}

// ToEndWith checks that the string ends with suffix.
func (s *StringAssertion) ToEndWith(suffix string) *StringAssertion {
	return s.check(
		strings.HasSuffix(s.Value(), suffix),
		fmt.Sprintf("end with %q", suffix),
		suffix,
	)
}

// ToMatch checks that the string matches re.
func (s *StringAssertion) ToMatch(re *regexp.Regexp) *StringAssertion {
	return s.check(
		re.MatchString(s.Value()),
		fmt.Sprintf("match /%s/", re.String()),
		re.String(),
	)
}

// ToBeEqualIgnoringCase checks case-insensitive equality.
func (s *StringAssertion) ToBeEqualIgnoringCase(other string) *StringAssertion {
	return s.check(
		strings.EqualFold(s.Value(), other),
		fmt.Sprintf("be equal to %q ignoring case", other),
		other,
	)
}
