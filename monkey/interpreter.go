package monkey

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// Config controls interpreter execution bounds. The zero value imposes no
// bounds at all.
type Config struct {
	// StepQuota caps the number of evaluated nodes per Eval call.
	StepQuota int
	// RecursionLimit caps the depth of nested user function calls.
	RecursionLimit int
}

// Engine evaluates Monkey programs against a set of builtins.
type Engine struct {
	config   Config
	builtins map[string]Value
}

// NewEngine constructs an Engine and registers the standard builtins.
func NewEngine(cfg Config) *Engine {
	if cfg.StepQuota < 0 {
		cfg.StepQuota = 0
	}
	if cfg.RecursionLimit < 0 {
		cfg.RecursionLimit = 0
	}

	engine := &Engine{
		config:   cfg,
		builtins: make(map[string]Value, len(defaultBuiltins)),
	}
	for name, fn := range defaultBuiltins {
		engine.RegisterBuiltin(name, fn)
	}
	return engine
}

// RegisterBuiltin registers a callable global available to programs. User
// bindings with the same name shadow it.
func (e *Engine) RegisterBuiltin(name string, fn BuiltinFunc) {
	e.builtins[name] = NewBuiltin(name, fn)
}

// Builtins returns a copy of the registered builtin map.
func (e *Engine) Builtins() map[string]Value {
	out := make(map[string]Value, len(e.builtins))
	maps.Copy(out, e.builtins)
	return out
}

// BuiltinNames returns the registered builtin names in sorted order.
func (e *Engine) BuiltinNames() []string {
	return slices.Sorted(maps.Keys(e.builtins))
}

// Parse parses src. A non-nil error is always a ParseErrors.
func (e *Engine) Parse(src string) (*Program, error) {
	return Parse(src)
}

// Eval evaluates node in env. A nil env gets a fresh global scope.
// Runtime failures come back as ERROR values, never as panics.
func (e *Engine) Eval(ctx context.Context, node Node, env *Env) Value {
	if env == nil {
		env = NewEnv(nil)
	}
	return e.newExecution(ctx).eval(node, env)
}

// Run parses and evaluates src in a fresh global scope. Nothing is
// evaluated when the source has parse errors.
func (e *Engine) Run(ctx context.Context, src string) (Value, error) {
	program, err := e.Parse(src)
	if err != nil {
		return NewNull(), err
	}
	return e.Eval(ctx, program, nil), nil
}

// ConfigSummary provides a human-readable description of the interpreter limits.
func (e *Engine) ConfigSummary() string {
	return fmt.Sprintf("steps=%s recursion=%s", limitString(e.config.StepQuota), limitString(e.config.RecursionLimit))
}

func (e *Engine) newExecution(ctx context.Context) *Execution {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Execution{
		engine:         e,
		ctx:            ctx,
		quota:          e.config.StepQuota,
		recursionLimit: e.config.RecursionLimit,
	}
}

func limitString(n int) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}
