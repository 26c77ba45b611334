package lambda

// Constant is a structured compile-time constant. Like Expr, the variant set
// is closed and the printer covers it exhaustively.
type Constant interface {
	constant()
}

var (
	_ Constant = ConstInt{}
	_ Constant = ConstChar{}
	_ Constant = ConstString{}
	_ Constant = ConstImmString{}
	_ Constant = ConstFloat{}
	_ Constant = ConstInt32{}
	_ Constant = ConstInt64{}
	_ Constant = ConstNativeInt{}
	_ Constant = ConstPointer{}
	_ Constant = ConstBlock{}
	_ Constant = ConstFloatArray{}
)

// ConstInt is an immediate integer.
type ConstInt struct {
	Value int
}

// ConstChar is an immediate character.
type ConstChar struct {
	Value rune
}

// ConstString is a string literal from the source program.
type ConstString struct {
	Value string
}

// ConstImmString is an immutable interned string introduced by the compiler.
type ConstImmString struct {
	Value string
}

// ConstFloat keeps the source text of the literal so printing round-trips
// exactly what the programmer wrote.
type ConstFloat struct {
	Text string
}

type ConstInt32 struct {
	Value int32
}

type ConstInt64 struct {
	Value int64
}

// ConstNativeInt is a boxed platform-word-sized integer.
type ConstNativeInt struct {
	Value int64
}

// PointerHint says what an immediate pointer-like constant stands for.
type PointerHint int

const (
	PointerNoHint PointerHint = iota
	PointerBool
	PointerNil
	PointerUnit
	PointerNamed
)

// ConstPointer is a pointer-like immediate: an unboxed value the runtime
// treats as a pointer-tagged scalar, such as a constant constructor.
type ConstPointer struct {
	Value int
	Hint  PointerHint
	Name  string // constructor name, PointerNamed only
}

// BlockShape says what source-level aggregate a constant block came from.
type BlockShape int

const (
	BlockShapeNone BlockShape = iota
	BlockShapeRecord
	BlockShapeTuple
	BlockShapeConstructor
)

// ConstBlock is a tagged heap block of sub-constants. Fields keep their
// original order.
type ConstBlock struct {
	Tag    int
	Fields []Constant
	Shape  BlockShape
	Name   string // constructor name, BlockShapeConstructor only
}

// ConstFloatArray is an array of unboxed floats, each kept as source text.
type ConstFloatArray struct {
	Values []string
}

func (ConstInt) constant()        {}
func (ConstChar) constant()       {}
func (ConstString) constant()     {}
func (ConstImmString) constant()  {}
func (ConstFloat) constant()      {}
func (ConstInt32) constant()      {}
func (ConstInt64) constant()      {}
func (ConstNativeInt) constant()  {}
func (ConstPointer) constant()    {}
func (ConstBlock) constant()      {}
func (ConstFloatArray) constant() {}
