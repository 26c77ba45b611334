package lambda

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(name string, stamp int) *Var {
	return &Var{Ident: Ident{Name: name, Stamp: stamp}}
}

func cint(n int) *Const {
	return &Const{Value: ConstInt{Value: n}}
}

func TestExprRendering(t *testing.T) {
	x := Ident{Name: "x", Stamp: 1}
	testCases := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "variable",
			expr:     v("x", 1),
			expected: "x/1",
		},
		{
			name:     "unstamped variable",
			expr:     v("x", 0),
			expected: "x",
		},
		{
			name:     "constant",
			expr:     cint(42),
			expected: "42",
		},
		{
			name:     "apply",
			expr:     &Apply{Fn: v("f", 1), Args: []Expr{cint(1), cint(2)}},
			expected: "(apply f/1 1 2)",
		},
		{
			name:     "apply with tailcall hint",
			expr:     &Apply{Fn: v("f", 1), Args: []Expr{cint(1)}, Tailcall: true},
			expected: "(apply f/1 1 @tailcall)",
		},
		{
			name: "apply with inline and specialise hints",
			expr: &Apply{
				Fn:          v("f", 1),
				Args:        []Expr{cint(1)},
				Inlined:     NeverInline,
				Specialised: AlwaysSpecialise,
			},
			expected: "(apply f/1 1 never_inline always_specialise)",
		},
		{
			name:     "apply with unroll hint",
			expr:     &Apply{Fn: v("f", 1), Args: []Expr{cint(1)}, Inlined: UnrollInline, Unroll: 4},
			expected: "(apply f/1 1 unroll(4))",
		},
		{
			name: "curried function",
			expr: &Function{
				Kind:   Curried,
				Params: []Param{{Ident: x, Kind: IntVal}, {Ident: Ident{Name: "y", Stamp: 2}}},
				Body:   v("x", 1),
			},
			expected: "(function x/1[int] y/2 x/1)",
		},
		{
			name: "tupled function with return kind",
			expr: &Function{
				Kind:   Tupled,
				Params: []Param{{Ident: x}, {Ident: Ident{Name: "y", Stamp: 2}, Kind: FloatVal}},
				Return: IntVal,
				Body:   cint(0),
			},
			expected: "(function (x/1, y/2[float]) : int 0)",
		},
		{
			name: "function attributes",
			expr: &Function{
				Kind:   Curried,
				Params: []Param{{Ident: x}},
				Body:   v("x", 1),
				Attr: FunctionAttribute{
					Inline:     AlwaysInline,
					Local:      AlwaysLocal,
					IsAFunctor: true,
					Stub:       true,
				},
			},
			expected: "(function x/1 always_inline always_local is_a_functor stub x/1)",
		},
		{
			name:     "strict let",
			expr:     &Let{Ident: Ident{Name: "x"}, Bound: cint(1), Body: &Var{Ident: Ident{Name: "x"}}},
			expected: "(let (x = 1) x)",
		},
		{
			name: "let modes and value kinds",
			expr: &Let{
				Kind: LetAlias, Ident: x, ValueKind: IntVal, Bound: cint(1),
				Body: &Let{
					Kind: LetVariable, Ident: Ident{Name: "y", Stamp: 2}, Bound: cint(2),
					Body: v("y", 2),
				},
			},
			expected: "(let (x/1 =a[int] 1) (y/2 =v 2) y/2)",
		},
		{
			name: "letrec",
			expr: &LetRec{
				Bindings: []Binding{
					{Ident: x, Value: cint(1)},
					{Ident: Ident{Name: "y", Stamp: 2}, Value: v("x", 1)},
				},
				Body: v("y", 2),
			},
			expected: "(letrec (x/1 1) (y/2 x/1) y/2)",
		},
		{
			name:     "primitive call",
			expr:     &Prim{Op: AddInt{}, Args: []Expr{v("x", 1), cint(1)}},
			expected: "(+ x/1 1)",
		},
		{
			name:     "primitive with parameterized token",
			expr:     &Prim{Op: MakeBlock{Tag: 0}, Args: []Expr{cint(1), cint(2)}},
			expected: "(makeblock 0 1 2)",
		},
		{
			name: "switch with default",
			expr: &Switch{
				Arg:        v("s", 1),
				Consts:     []IntCase{{Value: 0, Body: cint(10)}},
				Blocks:     []IntCase{{Value: 1, Body: v("s", 1)}},
				Failaction: cint(0),
			},
			expected: "(switch s/1 case int 0: 10 case tag 1: s/1 default: 0)",
		},
		{
			name: "exhaustive switch",
			expr: &Switch{
				Arg:    v("s", 1),
				Consts: []IntCase{{Value: 0, Body: cint(10)}, {Value: 1, Body: cint(20)}},
			},
			expected: "(switch* s/1 case int 0: 10 case int 1: 20)",
		},
		{
			name: "string switch",
			expr: &StringSwitch{
				Arg:     v("s", 1),
				Cases:   []StringCase{{Value: "a", Body: cint(1)}, {Value: "b\n", Body: cint(2)}},
				Default: cint(0),
			},
			expected: `(stringswitch s/1 case "a": 1 case "b\n": 2 default: 0)`,
		},
		{
			name:     "static raise",
			expr:     &StaticRaise{Label: 3, Args: []Expr{v("x", 1)}},
			expected: "(exit 3 x/1)",
		},
		{
			name: "static catch",
			expr: &StaticCatch{
				Body:    &StaticRaise{Label: 3, Args: []Expr{cint(1)}},
				Label:   3,
				Vars:    []Param{{Ident: x, Kind: IntVal}},
				Handler: v("x", 1),
			},
			expected: "(catch (exit 3 1) with (3 x/1[int]) x/1)",
		},
		{
			name:     "try with",
			expr:     &TryWith{Body: cint(1), Ident: Ident{Name: "e", Stamp: 9}, Handler: v("e", 9)},
			expected: "(try 1 with e/9 e/9)",
		},
		{
			name:     "conditional",
			expr:     &If{Cond: v("c", 1), Then: cint(1), Else: cint(2)},
			expected: "(if c/1 1 2)",
		},
		{
			name: "conditional with nil-pattern hint",
			expr: &If{
				Cond: v("c", 1), Then: cint(1), Else: cint(2),
				Shape: CondShape{Kind: CondShapeNil},
			},
			expected: "(if c/1:[] 1 2)",
		},
		{
			name: "conditional with constructor hint",
			expr: &If{
				Cond: v("c", 1), Then: cint(1), Else: cint(2),
				Shape: CondShape{Kind: CondShapeConstructor, Name: "Cons"},
			},
			expected: "(if c/1:Cons 1 2)",
		},
		{
			name:     "while",
			expr:     &While{Cond: v("c", 1), Body: v("b", 2)},
			expected: "(while c/1 b/2)",
		},
		{
			name:     "for upward",
			expr:     &For{Ident: Ident{Name: "i", Stamp: 1}, Lo: cint(0), Hi: cint(9), Body: v("b", 2)},
			expected: "(for i/1 0 to 9 b/2)",
		},
		{
			name: "for downward",
			expr: &For{
				Ident: Ident{Name: "i", Stamp: 1}, Lo: cint(9), Hi: cint(0),
				Dir: DownTo, Body: v("b", 2),
			},
			expected: "(for i/1 9 downto 0 b/2)",
		},
		{
			name:     "assign",
			expr:     &Assign{Ident: Ident{Name: "r", Stamp: 4}, Value: cint(2)},
			expected: "(assign r/4 2)",
		},
		{
			name:     "plain send",
			expr:     &Send{Receiver: v("o", 1), Selector: v("m", 2), Args: []Expr{cint(1)}},
			expected: "(send o/1 m/2 1)",
		},
		{
			name:     "self send",
			expr:     &Send{Kind: SelfMethod, Receiver: v("o", 1), Selector: v("m", 2)},
			expected: "(sendself o/1 m/2)",
		},
		{
			name:     "cached send",
			expr:     &Send{Kind: CachedMethod, Receiver: v("o", 1), Selector: v("m", 2)},
			expected: "(sendcache o/1 m/2)",
		},
		{
			name: "before event",
			expr: &Event{
				Expr: v("x", 1),
				Info: EventInfo{Kind: EventBefore, File: "foo.ml", Line: 3, StartChar: 1, EndChar: 5},
			},
			expected: "(before foo.ml(3):1-5 x/1)",
		},
		{
			name: "ghost event",
			expr: &Event{
				Expr: v("x", 1),
				Info: EventInfo{Kind: EventAfter, File: "foo.ml", Line: 3, Ghost: true, StartChar: 1, EndChar: 5},
			},
			expected: "(after foo.ml(3)<ghost>:1-5 x/1)",
		},
		{
			name: "module definition event",
			expr: &Event{
				Expr: v("x", 2),
				Info: EventInfo{
					Kind:   EventModuleDefinition,
					Module: Ident{Name: "M", Stamp: 1},
					File:   "m.ml",
					Line:   1,
				},
			},
			expected: "(module-defn(M/1) m.ml(1):0-0 x/2)",
		},
		{
			name:     "ifused",
			expr:     &IfUsed{Ident: x, Body: v("y", 2)},
			expected: "(ifused x/1 y/2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExprString(tc.expr))
		})
	}
}

// A chain of sequences prints flat regardless of how it was nested.
func TestSequenceFlattening(t *testing.T) {
	a, b, c := v("a", 1), v("b", 2), v("c", 3)

	leftNested := &Seq{First: &Seq{First: a, Second: b}, Second: c}
	rightNested := &Seq{First: a, Second: &Seq{First: b, Second: c}}

	assert.Equal(t, "(seq a/1 b/2 c/3)", ExprString(leftNested))
	assert.Equal(t, ExprString(leftNested), ExprString(rightNested))
}

// Nested simple lets collapse into one binding group before the terminal
// body.
func TestLetChainFlattening(t *testing.T) {
	inner := &Let{Ident: Ident{Name: "y", Stamp: 2}, Bound: cint(2), Body: v("y", 2)}
	outer := &Let{Ident: Ident{Name: "x", Stamp: 1}, Bound: cint(1), Body: inner}

	assert.Equal(t, "(let (x/1 = 1) (y/2 = 2) y/2)", ExprString(outer))
}

// A letrec body is a boundary: its bindings never merge into an enclosing
// let group.
func TestLetChainStopsAtLetRec(t *testing.T) {
	rec := &LetRec{
		Bindings: []Binding{{Ident: Ident{Name: "y", Stamp: 2}, Value: cint(2)}},
		Body:     v("y", 2),
	}
	outer := &Let{Ident: Ident{Name: "x", Stamp: 1}, Bound: cint(1), Body: rec}

	assert.Equal(t, "(let (x/1 = 1) (letrec (y/2 2) y/2))", ExprString(outer))
}

func TestPrintingIsDeterministic(t *testing.T) {
	expr := &Let{
		Ident: Ident{Name: "x", Stamp: 1},
		Bound: &Prim{Op: MakeBlock{Tag: 0}, Args: []Expr{cint(1), cint(2)}},
		Body: &Switch{
			Arg:        v("x", 1),
			Consts:     []IntCase{{Value: 0, Body: cint(1)}},
			Failaction: cint(0),
		},
	}
	first := ExprString(expr)
	second := ExprString(expr)
	assert.Equal(t, first, second)
}

// Argument, binding and arm lists must appear in input order.
func TestListOrderIsPreserved(t *testing.T) {
	apply := &Apply{Fn: v("f", 1), Args: []Expr{cint(3), cint(1), cint(2)}}
	assert.Equal(t, "(apply f/1 3 1 2)", ExprString(apply))

	sw := &Switch{
		Arg: v("s", 1),
		Consts: []IntCase{
			{Value: 5, Body: cint(50)},
			{Value: 2, Body: cint(20)},
		},
	}
	assert.Equal(t, "(switch* s/1 case int 5: 50 case int 2: 20)", ExprString(sw))
}

func TestPrintProgramIsRootExpression(t *testing.T) {
	prog := &Program{
		Module: Ident{Name: "Main"},
		Code:   &Prim{Op: AddInt{}, Args: []Expr{cint(1), cint(2)}},
	}
	sb := &strings.Builder{}
	require.NoError(t, PrintProgram(sb, prog))
	assert.Equal(t, "(+ 1 2)", sb.String())
	assert.Equal(t, sb.String(), ExprString(prog.Code))
}

func TestUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { _ = ExprString(nil) })
	assert.Panics(t, func() { _ = ConstantString(nil) })
	assert.Panics(t, func() { _ = PrimitiveString(nil) })
	assert.Panics(t, func() { _ = PrimitiveName(nil) })
}
