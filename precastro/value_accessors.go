package precastro

import (
	"strconv"
	"strings"
)

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return int64(v.data.(float64))
	default:
		return 0
	}
}

func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.data.(float64)
	case KindInt:
		return float64(v.data.(int64))
	default:
		return 0
	}
}

func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.data.(string)
}

func (v Value) Tuple() []float64 {
	if v.kind != KindTuple {
		return nil
	}
	return v.data.([]float64)
}

// String renders the value the way the CLI and REPL print results.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return v.data.(string)
	case KindTuple:
		elems := v.data.([]float64)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatFloat(e, 'g', -1, 64)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "unknown"
	}
}
