package assertion

import (
	"fmt"
	"time"
)

// Prettify renders a value for failure messages.
func Prettify(v any) string {
	if isNil(v) {
		if v == nil {
			return "nil"
		}
		return fmt.Sprintf("%T(nil)", v)
	}

	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case error:
		return fmt.Sprintf("%T(%q)", t, t.Error())
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}
