package assertion

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"digital.vasic.expect/pkg/compare"
	"digital.vasic.expect/pkg/future"
)

// Awaitable is a promise-like value. Any value with a method
// Await(context.Context) (X, error), for any X, is treated as one;
// future.Future[any] implements this interface directly.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// reflectAwaitable adapts an Await method with a concrete result type.
type reflectAwaitable struct {
	method reflect.Value
}

func (r reflectAwaitable) Await(ctx context.Context) (any, error) {
	out := r.method.Call([]reflect.Value{reflect.ValueOf(ctx)})
	err, _ := out[1].Interface().(error)
	return out[0].Interface(), err
}

func toAwaitable(v any) (Awaitable, bool) {
	if isNil(v) {
		return nil, false
	}
	if a, ok := v.(Awaitable); ok {
		return a, true
	}

	m := reflect.ValueOf(v).MethodByName("Await")
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != contextType ||
		mt.NumOut() != 2 || mt.Out(1) != errorType {
		return nil, false
	}
	return reflectAwaitable{method: m}, true
}

// PromiseAssertion checks promise-like values. Its checks do not
// report through the FailHandler: each returns a future that settles
// with an *AssertionError when the check fails. Callers must await
// that future; an unawaited check reports nothing.
//
// The subject is awaited with a background context. Bound the wait
// with the context passed to the returned future's Await.
type PromiseAssertion struct {
	*Assertion[Awaitable, *PromiseAssertion]
}

// NewPromiseAssertion wraps p.
func NewPromiseAssertion(p Awaitable) *PromiseAssertion {
	return New("promise", p, func(a *Assertion[Awaitable, *PromiseAssertion]) *PromiseAssertion {
		return &PromiseAssertion{a}
	})
}

// settle awaits the subject in a new goroutine and judges the outcome
// with match. A passing check settles with the rejection error when
// the subject rejected and with the resolved value otherwise. A
// wrapper without a subject, as left behind by a failed narrowing,
// settles with an *AssertionError whatever the check.
func (p *PromiseAssertion) settle(
	match func(v any, err error) bool,
	onFail func(v any, err error) Failure,
	onFailInverted func(v any, err error) Failure,
) *future.Future[any] {
	subject := p.Value()
	if isNil(subject) {
		return future.Rejected[any](&AssertionError{
			Message: "Expected a promise to await, but there is none",
			Actual:  p.Actual(),
		})
	}
	return future.Go(func() (any, error) {
		v, err := subject.Await(context.Background())
		if fail := p.Verdict(
			match(v, err),
			onFail(v, err),
			onFailInverted(v, err),
		); fail != nil {
			return nil, fail
		}
		if err != nil {
			return err, nil
		}
		return v, nil
	})
}

// ToBeResolved checks that the subject resolves. The returned future
// settles with the resolved value, or with the rejection error when
// the check was negated.
func (p *PromiseAssertion) ToBeResolved() *future.Future[any] {
	return p.settle(
		func(_ any, err error) bool { return err == nil },
		func(_ any, err error) Failure {
			return FailWith(fmt.Sprintf(
				"Expected the promise to be resolved, but it was rejected with <%s> instead",
				Prettify(err),
			))
		},
		func(v any, _ error) Failure {
			return FailWith(fmt.Sprintf(
				"Expected the promise NOT to be resolved, but it resolved with <%s>",
				Prettify(v),
			))
		},
	)
}

// ToBeResolvedWith checks that the subject resolves with a value deep
// equal to expected.
func (p *PromiseAssertion) ToBeResolvedWith(expected any) *future.Future[any] {
	return p.settle(
		func(v any, err error) bool {
			return err == nil && compare.DeepEqual(v, expected)
		},
		func(v any, err error) Failure {
			if err != nil {
				return FailWithExpected(fmt.Sprintf(
					"Expected the promise to be resolved with <%s>, but it was rejected with <%s> instead",
					Prettify(expected), Prettify(err),
				), expected)
			}
			return FailWithExpected(fmt.Sprintf(
				"Expected the promise to be resolved with <%s>, but it resolved with <%s> instead",
				Prettify(expected), Prettify(v),
			), expected)
		},
		func(any, error) Failure {
			return FailWithExpected(fmt.Sprintf(
				"Expected the promise NOT to be resolved with <%s>",
				Prettify(expected),
			), expected)
		},
	)
}

// ToBeRejected checks that the subject rejects. The returned future
// settles with the rejection error, or with the resolved value when
// the check was negated.
func (p *PromiseAssertion) ToBeRejected() *future.Future[any] {
	return p.settle(
		func(_ any, err error) bool { return err != nil },
		func(v any, _ error) Failure {
			return FailWith(fmt.Sprintf(
				"Expected the promise to be rejected, but it resolved with <%s> instead",
				Prettify(v),
			))
		},
		func(_ any, err error) Failure {
			return FailWith(fmt.Sprintf(
				"Expected the promise NOT to be rejected, but it was rejected with <%s>",
				Prettify(err),
			))
		},
	)
}

// ToBeRejectedWith checks that the subject rejects with an error that
// is target, wraps target, or is deep equal to it.
func (p *PromiseAssertion) ToBeRejectedWith(target error) *future.Future[any] {
	return p.settle(
		func(_ any, err error) bool {
			return err != nil &&
				(errors.Is(err, target) || compare.DeepEqual(err, target))
		},
		func(v any, err error) Failure {
			if err == nil {
				return FailWithExpected(fmt.Sprintf(
					"Expected the promise to be rejected with <%s>, but it resolved with <%s> instead",
					Prettify(target), Prettify(v),
				), target)
			}
			return FailWithExpected(fmt.Sprintf(
				"Expected the promise to be rejected with <%s>, but it was rejected with <%s> instead",
				Prettify(target), Prettify(err),
			), target)
		},
		func(any, error) Failure {
			return FailWithExpected(fmt.Sprintf(
				"Expected the promise NOT to be rejected with <%s>",
				Prettify(target),
			), target)
		},
	)
}
