// context.go — immutable structured context for xgx-opaque.
//
// Representation:
//   • Internal: append-only []Field with deterministic insertion order.
//   • Public view: copy-on-read map[string]any (last write wins).
//
// Builders never alias: any "mutation" allocates a fresh backing array, so
// published slices are safe to share.
package xgxopaque

// Field is a single contextual key-value pair attached to an error.
// Keys SHOULD be snake_case; the core does not enforce it.
type Field struct {
	Key string
	Val any
}

// fields is the internal append-only context representation.
// Never modify elements in place once published.
type fields []Field

var emptyFields = make(fields, 0)

// ctxCloneAppend returns a NEW slice holding dst followed by add.
// Always allocates fresh backing to avoid aliasing via append.
func ctxCloneAppend(dst fields, add ...Field) fields {
	if len(add) == 0 {
		if len(dst) == 0 {
			return emptyFields
		}
		out := make(fields, len(dst))
		copy(out, dst)
		return out
	}
	out := make(fields, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}

// ctxFromKV parses variadic key-value arguments into fields.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • A non-string key drops the ENTIRE pair (key and its value) so that
//     later pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// ctxToMap builds a NEW map from fields (copy-on-read).
// Duplicate keys resolve last-write-wins. Empty context yields nil.
func ctxToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
