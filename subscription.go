package eventbus

import "reflect"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// subscription type-erases one registered callback behind a uniform handle.
// The parameter types are reified once at subscribe time so that matching at
// publish time is a plain structural comparison rather than repeated
// signature reflection.
type subscription struct {
	id         ID
	fn         reflect.Value
	params     []reflect.Type
	returnsErr bool
}

func newSubscription(id ID, fn reflect.Value) *subscription {
	t := fn.Type()

	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}

	return &subscription{
		id:         id,
		fn:         fn,
		params:     params,
		returnsErr: t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType,
	}
}

// tryInvoke attempts to call the callback with arguments derived from the
// bundle. The first result reports whether the invocation happened; a
// signature mismatch is a normal outcome, not a failure. The second result is
// the callback's trailing error, if it declares one and returned non-nil.
func (s *subscription) tryInvoke(bn *bundle) (bool, error) {
	args, ok := bn.match(s.params)
	if !ok {
		return false, nil
	}

	out := s.fn.Call(args)
	if s.returnsErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return true, err
		}
	}
	return true, nil
}
