package eventbus

import "reflect"

var byteSliceType = reflect.TypeOf([]byte(nil))

// match builds the call arguments for the given parameter signature, applying
// the conversion table position by position. The second result is false when
// the arity differs or any position has no admissible conversion. A
// zero-parameter signature matches only a zero-argument bundle.
func (bn *bundle) match(params []reflect.Type) ([]reflect.Value, bool) {
	if len(bn.values) != len(params) {
		return nil, false
	}

	args := make([]reflect.Value, len(params))
	for i, target := range params {
		arg, ok := convertArg(target, bn.values[i])
		if !ok {
			return nil, false
		}
		args[i] = arg
	}
	return args, true
}

// convertArg maps one published value onto one declared parameter type. The
// table is finite and total: a combination it does not cover is a defined
// "no match", never a panic.
//
//   - assignable source (identical type, named-type identity, or interface
//     satisfaction): used as is
//   - string parameter: additionally accepts a []byte source, the raw-text
//     form of the value
//   - pointer parameter *T: additionally accepts a by-value T source; the
//     callback receives the address of a copy
//   - numeric parameter: accepts any numeric source, widening or narrowing
func convertArg(target reflect.Type, v reflect.Value) (reflect.Value, bool) {
	src := v.Type()

	switch {
	case src.AssignableTo(target):
		return v, true
	case target.Kind() == reflect.String && src == byteSliceType:
		return convertValue(target, v)
	case target.Kind() == reflect.Pointer && src == target.Elem():
		p := reflect.New(src)
		p.Elem().Set(v)
		return p, true
	case isNumeric(target.Kind()) && isNumeric(src.Kind()):
		return convertValue(target, v)
	default:
		return reflect.Value{}, false
	}
}

// convertValue applies a reflect conversion that is structurally eligible,
// downgrading any value-level failure to a no-match.
func convertValue(target reflect.Type, v reflect.Value) (out reflect.Value, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = reflect.Value{}, false
		}
	}()
	return v.Convert(target), true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
