package assertion

import (
	"fmt"
	"time"
)

// DateAssertion checks time.Time values.
type DateAssertion struct {
	*Assertion[time.Time, *DateAssertion]
}

// NewDateAssertion wraps t.
func NewDateAssertion(t time.Time) *DateAssertion {
	return New("date", t, func(a *Assertion[time.Time, *DateAssertion]) *DateAssertion {
		return &DateAssertion{a}
	})
}

func (d *DateAssertion) check(ok bool, what string, expected any) *DateAssertion {
	v := Prettify(d.Value())
	return d.Execute(
		ok,
		FailWithExpected(fmt.Sprintf("Expected <%s> to %s", v, what), expected),
		FailWithExpected(fmt.Sprintf("Expected <%s> NOT to %s", v, what), expected),
	)
}

// ToBeBefore checks that the value is strictly before t.
func (d *DateAssertion) ToBeBefore(t time.Time) *DateAssertion {
	return d.check(d.Value().Before(t), "be before <"+Prettify(t)+">", t)
}

// ToBeAfter checks that the value is strictly after t.
func (d *DateAssertion) ToBeAfter(t time.Time) *DateAssertion {
	return d.check(d.Value().After(t), "be after <"+Prettify(t)+">", t)
}

// ToBeBeforeOrEqual checks that the value is not after t.
func (d *DateAssertion) ToBeBeforeOrEqual(t time.Time) *DateAssertion {
	return d.check(!d.Value().After(t), "be before or equal to <"+Prettify(t)+">", t)
}

// ToBeAfterOrEqual checks that the value is not before t.
func (d *DateAssertion) ToBeAfterOrEqual(t time.Time) *DateAssertion {
	return d.check(!d.Value().Before(t), "be after or equal to <"+Prettify(t)+">", t)
}

// ToBeSameDayAs checks that the value falls on the same calendar day
// as t, in the value's location.
func (d *DateAssertion) ToBeSameDayAs(t time.Time) *DateAssertion {
	v := d.Value()
	o := t.In(v.Location())
	same := v.Year() == o.Year() && v.YearDay() == o.YearDay()
	return d.check(same, "be the same day as <"+Prettify(t)+">", t)
}

// ToHaveYear checks the calendar year.
func (d *DateAssertion) ToHaveYear(year int) *DateAssertion {
	return d.check(d.Value().Year() == year, fmt.Sprintf("have year %d", year), year)
}

// ToHaveMonth checks the calendar month.
func (d *DateAssertion) ToHaveMonth(month time.Month) *DateAssertion {
	return d.check(d.Value().Month() == month, "have month "+month.String(), month)
}

// ToHaveWeekday checks the day of the week.
func (d *DateAssertion) ToHaveWeekday(day time.Weekday) *DateAssertion {
	return d.check(d.Value().Weekday() == day, "be a "+day.String(), day)
}
