package calculation

// DefaultDepletionCapMonths bounds the depletion-duration simulation at 100
// years. The cap is not a domain constant; override it per engine with
// WithDepletionCap when a longer horizon is needed.
const DefaultDepletionCapMonths = 1200

// Engine runs the retirement planning calculations. Every method validates its
// inputs up front, then either returns a complete result with a fresh
// trajectory owned by the caller, or an error and no result. The engine holds
// no per-calculation state, so a single instance is safe for concurrent use.
type Engine struct {
	DepletionCapMonths int
	Logger             Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDepletionCap overrides the maximum number of months the
// depletion-duration simulation will run. Non-positive values are ignored.
func WithDepletionCap(months int) Option {
	return func(e *Engine) {
		if months > 0 {
			e.DepletionCapMonths = months
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// NewEngine creates a calculation engine with the default depletion cap and a
// no-op logger.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		DepletionCapMonths: DefaultDepletionCapMonths,
		Logger:             NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger
// is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// yearOf maps a 1-based month index to its 1-based year.
func yearOf(month int) int {
	return (month + 11) / 12
}
