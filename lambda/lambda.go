// Package lambda models the compiler's untyped functional IR and renders it
// as text. The IR sits between the typed frontend and closure conversion:
// expressions are a closed variant set, constants and primitive operations
// are closed variant sets of their own, and the printer in this package is
// the single source of truth for how every variant is displayed.
//
// Trees are built by the frontend and handed here by reference; nothing in
// this package mutates or retains them.
package lambda

import (
	"fmt"
	"strconv"
)

// Ident is a compiler identifier: a source name plus a disambiguating stamp
// assigned by the symbol table. A zero stamp is a predefined or global name
// and prints bare.
type Ident struct {
	Name  string
	Stamp int
}

func (id Ident) String() string {
	if id.Stamp == 0 {
		return id.Name
	}
	return id.Name + "/" + strconv.Itoa(id.Stamp)
}

// ValueKind annotates parameters, let bindings and function returns with the
// machine representation the middle end committed to.
type ValueKind int

const (
	GenVal ValueKind = iota
	IntVal
	FloatVal
	Boxed32Val
	Boxed64Val
	BoxedNativeVal
)

// LetKind is the binding strictness of a non-recursive let.
type LetKind int

const (
	LetStrict LetKind = iota
	LetAlias
	LetStrictOpt
	LetVariable
)

// FunctionKind is the calling convention of a function definition.
type FunctionKind int

const (
	Curried FunctionKind = iota
	Tupled
)

// InlineHint, SpecialiseHint and LocalHint carry the optimizer directives
// attached to functions and call sites. They only affect display here.
type InlineHint int

const (
	DefaultInline InlineHint = iota
	AlwaysInline
	NeverInline
	HintInline
	UnrollInline
)

type SpecialiseHint int

const (
	DefaultSpecialise SpecialiseHint = iota
	AlwaysSpecialise
	NeverSpecialise
)

type LocalHint int

const (
	DefaultLocal LocalHint = iota
	AlwaysLocal
	NeverLocal
)

// FunctionAttribute groups the per-function directives set by the frontend.
type FunctionAttribute struct {
	Inline     InlineHint
	Unroll     int // iterations, UnrollInline only
	Specialise SpecialiseHint
	Local      LocalHint
	IsAFunctor bool
	Stub       bool
}

// Direction is the iteration direction of a counted for loop.
type Direction int

const (
	UpTo Direction = iota
	DownTo
)

// MethodKind is the dispatch mode of a send.
type MethodKind int

const (
	PlainMethod MethodKind = iota
	SelfMethod
	CachedMethod
)

// CondShapeKind annotates a conditional with the pattern shape the match
// compiler derived it from. Display only.
type CondShapeKind int

const (
	CondShapeNone CondShapeKind = iota
	CondShapeNil
	CondShapeConstructor
)

type CondShape struct {
	Kind CondShapeKind
	Name string // constructor name, CondShapeConstructor only
}

// EventKind distinguishes the instrumentation points a debug event marks.
type EventKind int

const (
	EventBefore EventKind = iota
	EventAfter
	EventFunctionBody
	EventPseudo
	EventModuleDefinition
)

// EventInfo is the source-position payload of a debug-event wrapper. The
// positions are supplied by the frontend's location bookkeeping.
type EventInfo struct {
	Kind      EventKind
	Module    Ident // EventModuleDefinition only
	File      string
	Line      int
	StartChar int
	EndChar   int
	Ghost     bool
}

// Param is a function or catch-handler parameter with its value kind.
type Param struct {
	Ident Ident
	Kind  ValueKind
}

// Expr is the base for all IR expressions. The variant set is closed: the
// printer switches over it exhaustively and panics on anything else, so a
// new variant cannot ship without a rendering rule.
type Expr interface {
	exprNode()
	// ExprName is the name of the syntax-type of the expression.
	ExprName() string
	// Describe is what to call this expression in diagnostics.
	Describe() string
}

// Var is a reference to a bound identifier.
type Var struct {
	Ident Ident
}

// Const is a structured compile-time constant.
type Const struct {
	Value Constant
}

// Apply is function application with its call-site hints.
type Apply struct {
	Fn          Expr
	Args        []Expr
	Tailcall    bool
	Inlined     InlineHint
	Unroll      int // iterations, UnrollInline only
	Specialised SpecialiseHint
}

// Function is a function definition.
type Function struct {
	Kind   FunctionKind
	Params []Param
	Return ValueKind
	Body   Expr
	Attr   FunctionAttribute
}

// Let is a single non-recursive binding.
type Let struct {
	Kind      LetKind
	Ident     Ident
	ValueKind ValueKind
	Bound     Expr
	Body      Expr
}

// Binding pairs an identifier with its definition inside a letrec group.
type Binding struct {
	Ident Ident
	Value Expr
}

// LetRec is a mutually-recursive binding group; Bindings keep the order the
// frontend produced, which reflects declaration order in the source.
type LetRec struct {
	Bindings []Binding
	Body     Expr
}

// Prim applies a primitive operation to its arguments.
type Prim struct {
	Op   Primitive
	Args []Expr
}

// IntCase is one arm of an integer or block-tag switch.
type IntCase struct {
	Value int
	Body  Expr
}

// Switch dispatches on an integer value or a block tag. A nil Failaction
// means the arms are known to be exhaustive.
type Switch struct {
	Arg        Expr
	Consts     []IntCase
	Blocks     []IntCase
	Failaction Expr
}

// StringCase is one arm of a string switch.
type StringCase struct {
	Value string
	Body  Expr
}

// StringSwitch dispatches on a string value. A nil Default means no
// fallthrough arm.
type StringSwitch struct {
	Arg     Expr
	Cases   []StringCase
	Default Expr
}

// StaticRaise jumps to the enclosing catch with the same label.
type StaticRaise struct {
	Label int
	Args  []Expr
}

// StaticCatch runs Body and handles StaticRaise(Label) with Handler, binding
// the raised arguments to Vars.
type StaticCatch struct {
	Body    Expr
	Label   int
	Vars    []Param
	Handler Expr
}

// TryWith is exception handling proper, as opposed to the static catch form.
type TryWith struct {
	Body    Expr
	Ident   Ident
	Handler Expr
}

// If is a conditional, optionally annotated with the match shape it came
// from.
type If struct {
	Cond  Expr
	Then  Expr
	Else  Expr
	Shape CondShape
}

// Seq evaluates First for effect, then Second. Chains of sequences are
// displayed flattened whichever way they were nested.
type Seq struct {
	First  Expr
	Second Expr
}

// While is a conditional loop.
type While struct {
	Cond Expr
	Body Expr
}

// For is a counted loop over Ident from Lo to Hi.
type For struct {
	Ident Ident
	Lo    Expr
	Hi    Expr
	Dir   Direction
	Body  Expr
}

// Assign mutates a Variable-kind binding in scope.
type Assign struct {
	Ident Ident
	Value Expr
}

// Send is dynamic method dispatch.
type Send struct {
	Kind     MethodKind
	Receiver Expr
	Selector Expr
	Args     []Expr
}

// Event wraps an expression with debugger instrumentation metadata.
type Event struct {
	Expr Expr
	Info EventInfo
}

// IfUsed marks Body as only meaningful if Ident is later referenced.
type IfUsed struct {
	Ident Ident
	Body  Expr
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Const)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Function)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Prim)(nil)
	_ Expr = (*Switch)(nil)
	_ Expr = (*StringSwitch)(nil)
	_ Expr = (*StaticRaise)(nil)
	_ Expr = (*StaticCatch)(nil)
	_ Expr = (*TryWith)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Seq)(nil)
	_ Expr = (*While)(nil)
	_ Expr = (*For)(nil)
	_ Expr = (*Assign)(nil)
	_ Expr = (*Send)(nil)
	_ Expr = (*Event)(nil)
	_ Expr = (*IfUsed)(nil)
)

func (*Var) exprNode()          {}
func (*Const) exprNode()        {}
func (*Apply) exprNode()        {}
func (*Function) exprNode()     {}
func (*Let) exprNode()          {}
func (*LetRec) exprNode()       {}
func (*Prim) exprNode()         {}
func (*Switch) exprNode()       {}
func (*StringSwitch) exprNode() {}
func (*StaticRaise) exprNode()  {}
func (*StaticCatch) exprNode()  {}
func (*TryWith) exprNode()      {}
func (*If) exprNode()           {}
func (*Seq) exprNode()          {}
func (*While) exprNode()        {}
func (*For) exprNode()          {}
func (*Assign) exprNode()       {}
func (*Send) exprNode()         {}
func (*Event) exprNode()        {}
func (*IfUsed) exprNode()       {}

func (*Var) ExprName() string          { return "Var" }
func (*Const) ExprName() string        { return "Const" }
func (*Apply) ExprName() string        { return "Apply" }
func (*Function) ExprName() string     { return "Function" }
func (*Let) ExprName() string          { return "Let" }
func (*LetRec) ExprName() string       { return "LetRec" }
func (*Prim) ExprName() string         { return "Prim" }
func (*Switch) ExprName() string       { return "Switch" }
func (*StringSwitch) ExprName() string { return "StringSwitch" }
func (*StaticRaise) ExprName() string  { return "StaticRaise" }
func (*StaticCatch) ExprName() string  { return "StaticCatch" }
func (*TryWith) ExprName() string      { return "TryWith" }
func (*If) ExprName() string           { return "If" }
func (*Seq) ExprName() string          { return "Seq" }
func (*While) ExprName() string        { return "While" }
func (*For) ExprName() string          { return "For" }
func (*Assign) ExprName() string       { return "Assign" }
func (*Send) ExprName() string         { return "Send" }
func (*Event) ExprName() string        { return "Event" }
func (*IfUsed) ExprName() string       { return "IfUsed" }

func (*Var) Describe() string          { return "variable" }
func (*Const) Describe() string        { return "constant" }
func (*Apply) Describe() string        { return "function application" }
func (*Function) Describe() string     { return "function definition" }
func (*Let) Describe() string          { return "let binding" }
func (*LetRec) Describe() string       { return "recursive binding group" }
func (*Prim) Describe() string         { return "primitive call" }
func (*Switch) Describe() string       { return "switch" }
func (*StringSwitch) Describe() string { return "string switch" }
func (*StaticRaise) Describe() string  { return "static raise" }
func (*StaticCatch) Describe() string  { return "static catch" }
func (*TryWith) Describe() string      { return "exception handler" }
func (*If) Describe() string           { return "conditional" }
func (*Seq) Describe() string          { return "sequence" }
func (*While) Describe() string        { return "while loop" }
func (*For) Describe() string          { return "for loop" }
func (*Assign) Describe() string       { return "assignment" }
func (*Send) Describe() string         { return "method send" }
func (*Event) Describe() string        { return "debug event" }
func (*IfUsed) Describe() string       { return "conditional inclusion" }

// Program is a top-level compilation unit: one root expression under the
// unit's module identifier.
type Program struct {
	Module Ident
	Code   Expr
}

func (p *Program) String() string {
	return fmt.Sprintf("program %s", p.Module)
}
