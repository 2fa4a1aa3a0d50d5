// Package expect is the entry point of the assertion engine. It
// classifies a value and returns the wrapper for its shape: plugins
// registered with Top priority first, then the built-in rules, then
// Bottom plugins, then a generic fallback.
//
//	expect.Expect(3).(*assertion.NumberAssertion).ToBePositive()
//	expect.Std().Number(3).Not().ToBeNegative()
package expect

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"digital.vasic.expect/pkg/assertion"
	"digital.vasic.expect/pkg/future"
	"digital.vasic.expect/pkg/logging"
	"digital.vasic.expect/pkg/metrics"
	"digital.vasic.expect/pkg/plugin"
)

// RuleFallback names the generic fallback rule.
const RuleFallback = "any"

// builtins is the fixed ladder tried between Top and Bottom plugins.
// time.Time precedes array and object, error precedes object.
var builtins = []assertion.Factory{
	assertion.BooleanFactory,
	assertion.NumberFactory,
	assertion.StringFactory,
	assertion.DateFactory,
	assertion.ArrayFactory,
	assertion.PromiseFactory,
	assertion.FunctionFactory,
	assertion.ErrorFactory,
	assertion.ObjectFactory,
}

// Expector dispatches values to wrappers. Failures raised by its
// wrappers are logged, counted and then passed to its FailHandler.
type Expector struct {
	registry *plugin.Registry
	logger   logging.Logger
	metrics  metrics.Recorder
	handler  assertion.FailHandler
	onClose  func() error
}

// Option configures an Expector.
type Option func(*Expector)

// WithRegistry sets the plugin registry. The default is a fresh,
// empty registry.
func WithRegistry(r *plugin.Registry) Option {
	return func(e *Expector) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Expector) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(e *Expector) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithFailHandler sets the handler failures end up in. The default
// panics with the error.
func WithFailHandler(h assertion.FailHandler) Option {
	return func(e *Expector) {
		if h != nil {
			e.handler = h
		}
	}
}

// New creates an Expector.
func New(opts ...Option) *Expector {
	e := &Expector{
		registry: plugin.NewRegistry(),
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopMetrics{},
		handler:  assertion.PanicHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the Expector consults.
func (e *Expector) Registry() *plugin.Registry {
	return e.registry
}

// Logger returns the Expector's logger.
func (e *Expector) Logger() logging.Logger {
	return e.logger
}

// Register adds plugins to the Expector's registry.
func (e *Expector) Register(plugins ...plugin.Plugin) error {
	return e.registry.Register(plugins...)
}

// Expect returns the wrapper for value. It never fails: a value no
// rule claims gets an *assertion.AnyAssertion. A panic raised by a
// plugin's predicate or constructor propagates unchanged.
func (e *Expector) Expect(value any) assertion.Wrapper {
	rule, build := e.resolve(value)

	e.metrics.RecordDispatch(rule)
	e.logger.Debug("value dispatched",
		logging.StringField("rule", rule),
		logging.StringField("value", assertion.Prettify(value)),
	)

	w := build(value)
	if w == nil {
		e.handlerFor(rule)(&assertion.UnsupportedOperationError{
			Message: fmt.Sprintf("plugin %q built a nil wrapper", rule),
		})
		w = assertion.AnyFactory.Wrap(value)
	}
	return w.WithHandler(e.handlerFor(w.TypeName()))
}

// Rule returns the name of the rule Expect would choose for value:
// a plugin name, a built-in type name, or RuleFallback.
func (e *Expector) Rule(value any) string {
	rule, _ := e.resolve(value)
	return rule
}

func (e *Expector) resolve(value any) (string, func(any) assertion.Wrapper) {
	for _, p := range e.registry.ByPriority(plugin.Top) {
		if p.Predicate(value) {
			return p.Name, p.Build
		}
	}
	for _, f := range builtins {
		if f.Predicate(value) {
			return f.TypeName(), f.Wrap
		}
	}
	for _, p := range e.registry.ByPriority(plugin.Bottom) {
		if p.Predicate(value) {
			return p.Name, p.Build
		}
	}
	return RuleFallback, assertion.AnyFactory.Wrap
}

// Await waits for an asynchronous check and reports its failure
// through the Expector's handler like a synchronous check would. It
// returns the value the check settled with, or nil on failure.
func (e *Expector) Await(ctx context.Context, check *future.Future[any]) any {
	v, err := check.Await(ctx)
	if err != nil {
		e.handlerFor(assertion.PromiseFactory.Name)(err)
		return nil
	}
	return v
}

// handlerFor decorates the Expector's handler with logging and
// metrics for failures raised by a wrapper named wrapper.
func (e *Expector) handlerFor(wrapper string) assertion.FailHandler {
	return func(err error) {
		kind := kindOf(err)
		e.metrics.RecordFailure(kind)

		record := logging.FailureLog{
			Kind:    kind,
			Wrapper: wrapper,
			Message: err.Error(),
		}
		var ae *assertion.AssertionError
		if errors.As(err, &ae) {
			record.Actual = assertion.Prettify(ae.Actual)
			if ae.HasExpected {
				record.Expected = assertion.Prettify(ae.Expected)
			}
		}
		e.logger.LogFailure(record)

		e.handler(err)
	}
}

func kindOf(err error) string {
	switch {
	case assertion.IsKind(err, assertion.KindAssertion):
		return string(assertion.KindAssertion)
	case assertion.IsKind(err, assertion.KindUnsupportedOperation):
		return string(assertion.KindUnsupportedOperation)
	}
	return "error"
}

var (
	stdOnce sync.Once
	std     *Expector
)

// Std returns the package-level Expector, bound to plugin.Default.
func Std() *Expector {
	stdOnce.Do(func() {
		std = New(WithRegistry(plugin.Default))
	})
	return std
}

// Expect dispatches value with the package-level Expector.
func Expect(value any) assertion.Wrapper {
	return Std().Expect(value)
}

// Register adds plugins to plugin.Default.
func Register(plugins ...plugin.Plugin) error {
	return plugin.Default.Register(plugins...)
}
