package monkey

import "context"

// Session evaluates successive inputs against one persistent global scope,
// so bindings made by one input are visible to the next.
type Session struct {
	engine *Engine
	env    *Env
}

// NewSession starts a session with an empty global scope.
func (e *Engine) NewSession() *Session {
	return &Session{engine: e, env: NewEnv(nil)}
}

// Eval parses and evaluates src in the session scope. On a parse error the
// scope is left untouched.
func (s *Session) Eval(ctx context.Context, src string) (Value, error) {
	program, err := s.engine.Parse(src)
	if err != nil {
		return NewNull(), err
	}
	return s.engine.Eval(ctx, program, s.env), nil
}

// Env returns the session's global scope.
func (s *Session) Env() *Env { return s.env }

// Engine returns the engine the session evaluates with.
func (s *Session) Engine() *Engine { return s.engine }

// Reset discards every binding made so far.
func (s *Session) Reset() { s.env = NewEnv(nil) }
