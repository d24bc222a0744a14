package monkey

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func evalSource(t *testing.T, input string) Value {
	t.Helper()
	return evalWithEngine(t, NewEngine(Config{}), input)
}

func evalWithEngine(t *testing.T, engine *Engine, input string) Value {
	t.Helper()
	val, err := engine.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("run %q: %v", input, err)
	}
	return val
}

func expectInt(t *testing.T, input string, val Value, want int64) {
	t.Helper()
	if val.Kind() != KindInt || val.Int() != want {
		t.Fatalf("%q: expected %d, got %s (%s)", input, want, val, val.Kind())
	}
}

func expectBool(t *testing.T, input string, val Value, want bool) {
	t.Helper()
	if val.Kind() != KindBool || val.Bool() != want {
		t.Fatalf("%q: expected %t, got %s (%s)", input, want, val, val.Kind())
	}
}

func expectError(t *testing.T, input string, val Value, want string) {
	t.Helper()
	if !val.IsError() {
		t.Fatalf("%q: expected error %q, got %s (%s)", input, want, val, val.Kind())
	}
	if val.ErrorMessage() != want {
		t.Fatalf("%q: expected error %q, got %q", input, want, val.ErrorMessage())
	}
}

func TestEvalIntegerExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"5", 5},
		{"-5", -5},
		{"--1", 1},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
		{"((1 + 2) * (3 - -5) / 2) + (1 / 1) - 0", 13},
		{"7 / 2", 3},
		{"-7 / 2", -3},
	}

	for _, tt := range tests {
		expectInt(t, tt.input, evalSource(t, tt.input), tt.want)
	}
}

func TestEvalBooleanExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"true == true", true},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 > 2) == true", false},
		{"!true", false},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
		{"!0", false},
		{`!""`, false},
		{"!if (false) { 1 }", true},
	}

	for _, tt := range tests {
		expectBool(t, tt.input, evalSource(t, tt.input), tt.want)
	}
}

func TestEvalIfElseExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (0) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
		{"if (true) { if (false) { 1 } else { 2 } }", int64(2)},
		{"if (true) { }", nil},
	}

	for _, tt := range tests {
		val := evalSource(t, tt.input)
		if tt.want == nil {
			if !val.IsNull() {
				t.Fatalf("%q: expected null, got %s", tt.input, val)
			}
			continue
		}
		expectInt(t, tt.input, val, tt.want.(int64))
	}
}

func TestEvalReturnStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
		{"let f = fn(x) { return x; x + 10; }; f(10);", 10},
		{"let f = fn(x) { let r = x + 10; return r; return 9; }; f(0);", 10},
		{"let gettwo = fn() { if (true) { return 2; } 3 }; gettwo()", 2},
		{"let f = fn() { let x = if (true) { return 4; }; x + 100 }; f()", 4},
	}

	for _, tt := range tests {
		expectInt(t, tt.input, evalSource(t, tt.input), tt.want)
	}
}

func TestEvalBareReturnYieldsNull(t *testing.T) {
	for _, input := range []string{"return;", "fn() { return; 5 }()", "fn() { }()", ""} {
		if val := evalSource(t, input); !val.IsNull() {
			t.Fatalf("%q: expected null, got %s", input, val)
		}
	}
}

func TestEvalErrorHandling(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true + 5", "type mismatch: NULL + INTEGER"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { if (10 > 1) { return true + false; } return 1; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{`"Hello" - "World"`, "unknown operator: STRING - STRING"},
		{`"a" == "a"`, "unknown operator: STRING == STRING"},
		{"foobar", "identifier not found: foobar"},
		{"let x = y; 5", "identifier not found: y"},
		{"1 / 0", "division by zero"},
		{"5(1)", "not a function: INTEGER"},
		{"1[0]", "index operator not supported: INTEGER"},
		{`[1][""]`, "index must be INTEGER, got STRING"},
		{"add(1, foo)", "identifier not found: add"},
		{"[1, foo, 3]", "identifier not found: foo"},
		{"fn(x) { x }(y)", "identifier not found: y"},
		{"len(1)", "argument to `len` not supported, got INTEGER"},
		{"if (missing) { 1 }", "identifier not found: missing"},
	}

	for _, tt := range tests {
		expectError(t, tt.input, evalSource(t, tt.input), tt.want)
	}
}

func TestEvalNegatingNonIntegerIsNull(t *testing.T) {
	for _, input := range []string{"-true", `-"a"`, "-[1]"} {
		if val := evalSource(t, input); !val.IsNull() {
			t.Fatalf("%q: expected null, got %s", input, val)
		}
	}
}

func TestEvalLetStatements(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
		{"let a = 1; let a = a + 1; a", 2},
	}

	for _, tt := range tests {
		expectInt(t, tt.input, evalSource(t, tt.input), tt.want)
	}
	if val := evalSource(t, "let a = 5;"); !val.IsNull() {
		t.Fatalf("expected let to evaluate to null, got %s", val)
	}
}

func TestEvalFunctionObject(t *testing.T) {
	val := evalSource(t, "fn(x) { x + 2; };")
	if val.Kind() != KindFunction {
		t.Fatalf("expected function, got %s", val.Kind())
	}
	fn := val.Function()
	if len(fn.Parameters) != 1 || fn.Parameters[0].Value != "x" {
		t.Fatalf("unexpected parameters %v", fn.Parameters)
	}
	if fn.Body.String() != "{ (x + 2); }" {
		t.Fatalf("unexpected body %s", fn.Body)
	}
	if val.String() != "fn(x) { (x + 2); }" {
		t.Fatalf("unexpected rendering %s", val)
	}
}

func TestEvalFunctionApplication(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
		{"let fib = fn(n) { if (n < 2) { return n }; fib(n - 1) + fib(n - 2) }; fib(6)", 8},
		{"let fib = fn(n) { if (n < 2) { return n }; fib(n - 1) + fib(n - 2) }; fib(15)", 610},
	}

	for _, tt := range tests {
		expectInt(t, tt.input, evalSource(t, tt.input), tt.want)
	}
}

func TestEvalClosures(t *testing.T) {
	input := `
let newAdder = fn(x) { fn(y) { x + y } };
let addTwo = newAdder(2);
addTwo(3);`
	expectInt(t, input, evalSource(t, input), 5)

	counter := `
let x = 1;
let f = fn() { x };
let x = 10;
f()`
	expectInt(t, counter, evalSource(t, counter), 10)
}

func TestEvalShadowingDoesNotLeak(t *testing.T) {
	input := `
let x = 3;
let f = fn(x) { let x = x * 100; x };
f(1);
x`
	expectInt(t, input, evalSource(t, input), 3)

	inner := `let f = fn() { let y = 1; y }; f(); y`
	expectError(t, inner, evalSource(t, inner), "identifier not found: y")
}

func TestEvalPermissiveArity(t *testing.T) {
	extra := "let f = fn(a) { a }; f(1, 2, 3)"
	expectInt(t, extra, evalSource(t, extra), 1)

	missing := "let f = fn(a, b) { b }; f(1)"
	expectError(t, missing, evalSource(t, missing), "identifier not found: b")

	outer := "let b = 7; let f = fn(a, b) { b }; f(1)"
	expectInt(t, outer, evalSource(t, outer), 7)
}

func TestEvalStrings(t *testing.T) {
	val := evalSource(t, `let greet = fn(name) { "Hello, " + name + "!" }; greet("Monkey")`)
	if val.Kind() != KindString || val.Str() != "Hello, Monkey!" {
		t.Fatalf("unexpected value %s (%s)", val, val.Kind())
	}
	expectError(t, `"a" + 1`, evalSource(t, `"a" + 1`), "type mismatch: STRING + INTEGER")
}

func TestEvalArraysAndIndexing(t *testing.T) {
	val := evalSource(t, "[1, 2 * 2, 3 + 3]")
	if val.String() != "[1, 4, 6]" {
		t.Fatalf("unexpected array %s", val)
	}

	tests := []struct {
		input string
		want  any
	}{
		{"[1, 2, 3][0]", int64(1)},
		{"[1, 2, 3][2]", int64(3)},
		{"let i = 0; [1][i];", int64(1)},
		{"[1, 2, 3][1 + 1];", int64(3)},
		{"let a = [1, 2, 3]; a[0] + a[1] + a[2];", int64(6)},
		{"[1, 2, 3][3]", nil},
		{"[1, 2, 3][-1]", nil},
	}
	for _, tt := range tests {
		got := evalSource(t, tt.input)
		if tt.want == nil {
			if !got.IsNull() {
				t.Fatalf("%q: expected null, got %s", tt.input, got)
			}
			continue
		}
		expectInt(t, tt.input, got, tt.want.(int64))
	}
}

func TestEvalHigherOrderBuiltins(t *testing.T) {
	input := `
let map = fn(arr, f) {
  let iter = fn(arr, acc) {
    if (len(arr) == 0) { acc } else { iter(rest(arr), push(acc, f(first(arr)))) }
  };
  iter(arr, []);
};
map([1, 2, 3], fn(x) { x * 2 })`
	if got := evalSource(t, input).String(); got != "[2, 4, 6]" {
		t.Fatalf("unexpected result %s", got)
	}
}

func TestRunReturnsParseErrorsWithoutEvaluating(t *testing.T) {
	engine := NewEngine(Config{})
	called := false
	engine.RegisterBuiltin("touch", func(args ...Value) Value {
		called = true
		return NewNull()
	})

	val, err := engine.Run(context.Background(), "touch(); let = 1;")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var errs ParseErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ParseErrors, got %T", err)
	}
	if !val.IsNull() {
		t.Fatalf("expected null result, got %s", val)
	}
	if called {
		t.Fatalf("program was evaluated despite parse errors")
	}
}

func TestRegisterBuiltinIsShadowedByBindings(t *testing.T) {
	engine := NewEngine(Config{})
	engine.RegisterBuiltin("answer", func(args ...Value) Value { return NewInt(42) })

	expectInt(t, "answer()", evalWithEngine(t, engine, "answer()"), 42)
	shadowed := "let answer = fn() { 1 }; answer()"
	expectInt(t, shadowed, evalWithEngine(t, engine, shadowed), 1)
	shadowLen := `let len = 5; len`
	expectInt(t, shadowLen, evalWithEngine(t, engine, shadowLen), 5)
}

func TestStepQuotaExceeded(t *testing.T) {
	engine := NewEngine(Config{StepQuota: 50})
	input := "let loop = fn(n) { loop(n + 1) }; loop(0)"
	expectError(t, input, evalWithEngine(t, engine, input), "step quota exceeded (50)")

	expectInt(t, "1 + 2", evalWithEngine(t, engine, "1 + 2"), 3)
}

func TestRecursionLimitExceeded(t *testing.T) {
	engine := NewEngine(Config{RecursionLimit: 3})
	input := "let recurse = fn(n) { if (n == 0) { 0 } else { recurse(n - 1) + 1 } }; recurse(5)"
	expectError(t, input, evalWithEngine(t, engine, input), "recursion depth exceeded (limit 3)")

	within := "let recurse = fn(n) { if (n == 0) { 0 } else { recurse(n - 1) + 1 } }; recurse(2)"
	expectInt(t, within, evalWithEngine(t, engine, within), 2)
}

func TestEvalHonorsContextCancellation(t *testing.T) {
	engine := NewEngine(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	val, err := engine.Run(ctx, "let loop = fn() { loop() }; loop()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectError(t, "cancelled", val, context.Canceled.Error())
}

func TestEvalNilEnvGetsFreshScope(t *testing.T) {
	engine := NewEngine(Config{})
	program, err := engine.Parse("let x = 2; x * 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expectInt(t, "x * 3", engine.Eval(context.Background(), program, nil), 6)
}

func TestSessionPersistsBindings(t *testing.T) {
	session := NewEngine(Config{}).NewSession()
	ctx := context.Background()

	if _, err := session.Eval(ctx, "let add = fn(a, b) { a + b };"); err != nil {
		t.Fatalf("eval: %v", err)
	}
	val, err := session.Eval(ctx, "add(2, 3)")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	expectInt(t, "add(2, 3)", val, 5)

	if _, err := session.Eval(ctx, "let broken = ;"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, ok := session.Env().Get("broken"); ok {
		t.Fatalf("failed parse should not bind names")
	}

	session.Reset()
	val, _ = session.Eval(ctx, "add")
	expectError(t, "add", val, "identifier not found: add")
}

func TestConfigSummary(t *testing.T) {
	got := NewEngine(Config{StepQuota: 10}).ConfigSummary()
	if !strings.Contains(got, "steps=10") || !strings.Contains(got, "recursion=unlimited") {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestLanguageProperties(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"let a = 1; let b = a * 2; b + a;", 3},
		{"let fib = fn(n) { if (n < 2) { return n; } fib(n-1) + fib(n-2); }; fib(6);", 8},
		{"let bar = 1; let foo = fn(x) { let bar = 2; bar + x; }; foo(bar);", 3},
		{"let a = [1,2,3]; first(a) + last(a) + rest(a)[0]", 6},
		{"let a = [1,2,3]; let b = push(a, 4); len(b) * 10 + len(a)", 43},
	}

	for _, tt := range tests {
		expectInt(t, tt.input, evalSource(t, tt.input), tt.want)
	}

	expectError(t, `5 + "x";`, evalSource(t, `5 + "x";`), "type mismatch: INTEGER + STRING")
}
