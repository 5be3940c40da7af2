package eventbus

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// bundle is the per-publish package of decayed argument values. It is built
// once per Publish call, matched read-only against every subscription of the
// event, and discarded when the dispatch completes. The dispatch ID ties the
// trace lines of one publish together.
type bundle struct {
	dispatchID string
	values     []reflect.Value
	types      []reflect.Type
}

func newBundle(args []any) *bundle {
	bn := &bundle{
		dispatchID: uuid.NewString(),
		values:     make([]reflect.Value, len(args)),
		types:      make([]reflect.Type, len(args)),
	}

	for i, arg := range args {
		v := reflect.ValueOf(arg)
		if !v.IsValid() {
			// An untyped nil argument decays to a nil any.
			v = reflect.Zero(anyType)
		}
		bn.values[i] = v
		bn.types[i] = v.Type()
	}

	return bn
}

func (bn *bundle) typeNames() string {
	return typeNames(bn.types)
}

func typeNames(types []reflect.Type) string {
	if len(types) == 0 {
		return "()"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
