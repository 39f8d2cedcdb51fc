package values

import (
	"fmt"
	"slices"
	"strings"
)

type M = map[string]any

const badKey = "!BADKEY"

// Fold turns alternating key/value arguments into a map, the way slog reads
// its attributes. A value without a string key is stored under !BADKEY.
func Fold(args ...any) M {
	m := make(M, len(args)/2)
	for i := 0; i < len(args); {
		k, ok := args[i].(string)
		switch {
		case !ok:
			m[badKey] = args[i]
			i++
		case i+1 == len(args):
			m[badKey] = k
			i++
		default:
			m[k] = args[i+1]
			i += 2
		}
	}
	return m
}

// Render formats m as (k1=v1; k2=v2) with keys sorted. Empty maps render as "".
func Render(m M) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + format(m[k])
	}
	return "(" + strings.Join(parts, "; ") + ")"
}

func format(v any) string {
	switch t := v.(type) {
	case string:
		if strings.ContainsAny(t, " ;()=") {
			return fmt.Sprintf("%q", t)
		}
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
