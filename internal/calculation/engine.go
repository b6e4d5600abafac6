package calculation

import "time"

// Engine builds cash-flow projections from a plan document. It is stateless
// between calls; Rebuild works on a clone of the plan and never mutates the
// caller's document.
type Engine struct {
	Logger Logger
	// Clock supplies the wall-clock time used for rent escalation and the
	// pension birth-year split. Tests pin it.
	Clock func() time.Time
}

// NewEngine creates an engine with a no-op logger and the real clock.
func NewEngine() *Engine {
	return &Engine{
		Logger: NopLogger{},
		Clock:  time.Now,
	}
}

// SetLogger sets the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}
