package headloss

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Calculator.
const (
	// Metrics.
	CalculatorProcessedTotal    = metricz.Key("calculator.processed.total")
	CalculatorSuccessesTotal    = metricz.Key("calculator.successes.total")
	CalculatorFailuresTotal     = metricz.Key("calculator.failures.total")
	CalculatorLaminarTotal      = metricz.Key("calculator.laminar.total")
	CalculatorTransitionalTotal = metricz.Key("calculator.transitional.total")
	CalculatorTurbulentTotal    = metricz.Key("calculator.turbulent.total")
	CalculatorDurationMs        = metricz.Key("calculator.duration.ms")

	// Spans.
	CalculatorProcessSpan = tracez.Key("calculator.process")

	// Tags.
	CalculatorTagModel    = tracez.Tag("calculator.model")
	CalculatorTagRegime   = tracez.Tag("calculator.regime")
	CalculatorTagReynolds = tracez.Tag("calculator.reynolds")
	CalculatorTagSuccess  = tracez.Tag("calculator.success")
	CalculatorTagError    = tracez.Tag("calculator.error")

	// Hook event keys.
	CalculatorEventComputed = hookz.Key("calculator.computed")
	CalculatorEventRejected = hookz.Key("calculator.rejected")
)

// ComputeEvent represents one head-loss computation. It is emitted via hookz
// when a computation completes or is rejected, providing visibility into
// which model ran, what regime the flow was in, and what it produced.
type ComputeEvent struct {
	Name      Name          // Calculator name
	Model     Model         // Correlation that was selected
	Input     Input         // Physical parameters of the query
	Result    Result        // Breakdown (zero value on rejection)
	Success   bool          // Whether the computation produced a result
	Error     error         // Failure (if rejected)
	Duration  time.Duration // How long the computation took
	Timestamp time.Time     // When the event occurred
}

// Calculator wraps the pure Compute function with a fixed correlation and
// full observability: counters and a duration gauge, a span per computation,
// and typed events on completion or rejection.
//
// The calculator holds no state between computations other than the model
// selector, so a single instance is safe for concurrent use. Create it once
// and reuse it so the metrics and events accumulate in one place.
//
// Example:
//
//	calc := headloss.NewCalculator("cooling-loop", headloss.Fang)
//	defer calc.Close()
//
//	calc.OnRejected(func(_ context.Context, e headloss.ComputeEvent) error {
//	    log.Printf("rejected: %v", e.Error)
//	    return nil
//	})
//
//	result, err := calc.Process(ctx, input)
type Calculator struct {
	name    Name
	model   Model
	mu      sync.RWMutex
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ComputeEvent]
	clock   clockz.Clock
}

// NewCalculator creates a Calculator that estimates head loss with the given
// correlation. An invalid model is not rejected here; Process surfaces the
// UnsupportedModelError so the failure is observable like any other.
func NewCalculator(name Name, model Model) *Calculator {
	// Initialize observability
	metrics := metricz.New()
	metrics.Counter(CalculatorProcessedTotal)
	metrics.Counter(CalculatorSuccessesTotal)
	metrics.Counter(CalculatorFailuresTotal)
	metrics.Counter(CalculatorLaminarTotal)
	metrics.Counter(CalculatorTransitionalTotal)
	metrics.Counter(CalculatorTurbulentTotal)
	metrics.Gauge(CalculatorDurationMs)

	return &Calculator{
		name:    name,
		model:   model,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[ComputeEvent](),
	}
}

// Process runs one head-loss computation through the configured correlation.
// The result and error semantics are exactly those of Compute; Process only
// adds observation around them.
func (c *Calculator) Process(ctx context.Context, in Input) (result Result, err error) {
	defer recoverFromPanic(&err, c.name)

	c.metrics.Counter(CalculatorProcessedTotal).Inc()
	clock := c.getClock()
	start := clock.Now()

	ctx, span := c.tracer.StartSpan(ctx, CalculatorProcessSpan)
	defer func() {
		elapsed := clock.Since(start)
		c.metrics.Gauge(CalculatorDurationMs).Set(float64(elapsed.Milliseconds()))

		if err == nil {
			span.SetTag(CalculatorTagSuccess, "true")
			c.metrics.Counter(CalculatorSuccessesTotal).Inc()
		} else {
			span.SetTag(CalculatorTagSuccess, "false")
			span.SetTag(CalculatorTagError, err.Error())
			c.metrics.Counter(CalculatorFailuresTotal).Inc()
		}
		span.Finish()
	}()

	model := c.Model()
	span.SetTag(CalculatorTagModel, model.String())

	result, err = Compute(in, model)
	duration := clock.Since(start)

	if err != nil {
		// Emit rejected event
		_ = c.hooks.Emit(ctx, CalculatorEventRejected, ComputeEvent{ //nolint:errcheck
			Name:      c.name,
			Model:     model,
			Input:     in,
			Success:   false,
			Error:     err,
			Duration:  duration,
			Timestamp: clock.Now(),
		})
		return Result{}, err
	}

	span.SetTag(CalculatorTagRegime, result.Regime.String())
	span.SetTag(CalculatorTagReynolds, formatReynolds(result.Reynolds))
	c.countRegime(result.Regime)

	// Emit computed event
	_ = c.hooks.Emit(ctx, CalculatorEventComputed, ComputeEvent{ //nolint:errcheck
		Name:      c.name,
		Model:     model,
		Input:     in,
		Result:    result,
		Success:   true,
		Duration:  duration,
		Timestamp: clock.Now(),
	})
	return result, nil
}

func formatReynolds(re float64) string {
	return strconv.FormatFloat(re, 'g', 6, 64)
}

func (c *Calculator) countRegime(r Regime) {
	switch r {
	case RegimeLaminar:
		c.metrics.Counter(CalculatorLaminarTotal).Inc()
	case RegimeTransitional:
		c.metrics.Counter(CalculatorTransitionalTotal).Inc()
	case RegimeTurbulent:
		c.metrics.Counter(CalculatorTurbulentTotal).Inc()
	}
}

// SetModel changes the correlation used by subsequent computations.
func (c *Calculator) SetModel(model Model) *Calculator {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
	return c
}

// Model returns the correlation currently in use.
func (c *Calculator) Model() Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// Name returns the calculator's name.
func (c *Calculator) Name() Name {
	return c.name
}

// Metrics returns the metrics registry for this calculator.
func (c *Calculator) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this calculator.
func (c *Calculator) Tracer() *tracez.Tracer {
	return c.tracer
}

// WithClock sets the clock used for event timestamps and durations.
// Intended for testing with a fake clock.
func (c *Calculator) WithClock(clock clockz.Clock) *Calculator {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

func (c *Calculator) getClock() clockz.Clock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// OnComputed registers a handler for completed computations. The handler is
// called asynchronously after Process returns a result.
func (c *Calculator) OnComputed(handler func(context.Context, ComputeEvent) error) error {
	_, err := c.hooks.Hook(CalculatorEventComputed, handler)
	return err
}

// OnRejected registers a handler for rejected computations, useful for
// monitoring invalid inputs or numeric edge cases in production data.
func (c *Calculator) OnRejected(handler func(context.Context, ComputeEvent) error) error {
	_, err := c.hooks.Hook(CalculatorEventRejected, handler)
	return err
}

// Close gracefully shuts down observability components.
func (c *Calculator) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}
