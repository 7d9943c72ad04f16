package translator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of value shapes the formatter can
// render. Anything a JSON body can carry decodes into one of these.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindMap
	KindList
)

// Value is a tagged representation of an argument value. Keeping the
// variant closed keeps rendering exhaustive instead of relying on
// run-time type switches spread across the formatter.
type Value struct {
	kind  Kind
	str   string
	b     bool
	num   string
	pairs []Pair
	items []Value
}

// Pair is a single named entry of a map value. Pairs are ordered so a
// map renders the same way on every call.
type Pair struct {
	Key   string
	Value Value
}

func Null() Value { return Value{kind: KindNull} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Number(text string) Value { return Value{kind: KindNumber, num: text} }

func Map(ps ...Pair) Value { return Value{kind: KindMap, pairs: ps} }

func List(vs ...Value) Value { return Value{kind: KindList, items: vs} }

// Kind returns the shape tag of the value.
func (v Value) Kind() Kind { return v.kind }

// ValueOf converts a decoded JSON value (or a plain Go value used in
// tests and direct API calls) into its tagged form. Map keys are sorted
// so generated text is deterministic.
func ValueOf(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case json.Number:
		return Number(t.String())
	case float64:
		return Number(strconv.FormatFloat(t, 'f', -1, 64))
	case float32:
		return Number(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case int:
		return Number(strconv.Itoa(t))
	case int32:
		return Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case map[string]interface{}:
		return Map(pairsOf(t)...)
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = ValueOf(item)
		}
		return List(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return List(items...)
	default:
		return Number(fmt.Sprintf("%v", t))
	}
}

func pairsOf(m map[string]interface{}) []Pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: k, Value: ValueOf(m[k])}
	}
	return pairs
}

// String renders the value as a GraphQL argument literal.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return `"` + strings.ReplaceAll(v.str, `"`, `\"`) + `"`
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.num
	case KindMap:
		if len(v.pairs) == 0 {
			return "{}"
		}
		parts := make([]string, len(v.pairs))
		for i, p := range v.pairs {
			parts[i] = p.Key + ": " + p.Value.String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}
