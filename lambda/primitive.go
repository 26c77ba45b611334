package lambda

// Primitive is a built-in operation applied through Prim. The variant set is
// closed; see print.go for the two total mappings over it (display token and
// canonical name).
type Primitive interface {
	primitive()
}

// Mutability classifies blocks and arrays at their construction site.
type Mutability int

const (
	Immutable Mutability = iota
	Mutable
)

// Safety distinguishes bounds-checked operations from their unsafe variants.
type Safety int

const (
	Safe Safety = iota
	Unsafe
)

// ImmediateOrPointer classifies a stored value for the write barrier.
type ImmediateOrPointer int

const (
	Immediate ImmediateOrPointer = iota
	Pointer
)

// InitializationKind says whether a field write is an ordinary assignment or
// part of initializing a fresh block.
type InitializationKind int

const (
	InitAssignment InitializationKind = iota
	InitHeap
	InitRoot
)

// FieldHint is the semantic role of an accessed field, when the frontend
// still knows it. Display only.
type FieldHint int

const (
	FieldHintNone FieldHint = iota
	FieldHintModule
	FieldHintRecord
	FieldHintRecordInline
	FieldHintConstructor
	FieldHintTuple
	FieldHintCons
)

// IntComparison is shared by integer and boxed-integer comparisons.
type IntComparison int

const (
	CmpEq IntComparison = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// FloatComparison carries the negated forms needed to express unordered
// comparisons on NaN-capable floats.
type FloatComparison int

const (
	FCmpEq FloatComparison = iota
	FCmpNe
	FCmpLt
	FCmpNotLt
	FCmpGt
	FCmpNotGt
	FCmpLe
	FCmpNotLe
	FCmpGe
	FCmpNotGe
)

// ArrayKind is the element representation of an array operation.
type ArrayKind int

const (
	GenArray ArrayKind = iota
	AddrArray
	IntArray
	FloatArray
)

// BoxedInteger selects the width of a boxed-integer operation.
type BoxedInteger int

const (
	BintNative BoxedInteger = iota
	Bint32
	Bint64
)

// BigarrayKind is the element type of a bigarray access.
type BigarrayKind int

const (
	BigarrayUnknown BigarrayKind = iota
	BigarrayFloat32
	BigarrayFloat64
	BigarraySint8
	BigarrayUint8
	BigarraySint16
	BigarrayUint16
	BigarrayInt32
	BigarrayInt64
	BigarrayInt
	BigarrayNativeInt
	BigarrayComplex32
	BigarrayComplex64
)

// BigarrayLayout is the memory layout of a bigarray access.
type BigarrayLayout int

const (
	LayoutUnknown BigarrayLayout = iota
	LayoutC
	LayoutFortran
)

// RecordRepr is the runtime representation of a duplicated record.
type RecordRepr int

const (
	RecordRegular RecordRepr = iota
	RecordFloat
	RecordUnboxed
	RecordInlined
	RecordExtension
)

// CompileTimeConstant is a target-platform query answered at compile time.
type CompileTimeConstant int

const (
	BigEndian CompileTimeConstant = iota
	WordSize
	IntSize
	MaxWosize
	OstypeUnix
	OstypeWin32
	OstypeCygwin
	BackendType
)

// RaiseKind distinguishes the three exception-raising entry points.
type RaiseKind int

const (
	RaiseRegular RaiseKind = iota
	RaiseReraise
	RaiseNotrace
)

// Identity and application helpers.
type (
	Identity      struct{}
	BytesToString struct{}
	BytesOfString struct{}
	Ignore        struct{}
	RevApply      struct{}
	DirApply      struct{}
)

// Global slot access.
type (
	GetGlobal struct{ Ident Ident }
	SetGlobal struct{ Ident Ident }
)

// Block and record construction and access.
type (
	MakeBlock struct {
		Tag   int
		Mut   Mutability
		Shape []ValueKind // nil when the field kinds are unknown
	}
	MakeFloatBlock struct{ Mut Mutability }
	Field          struct {
		Index int
		Ptr   ImmediateOrPointer
		Mut   Mutability
		Hint  FieldHint
	}
	FieldComputed struct{}
	SetField      struct {
		Index int
		Ptr   ImmediateOrPointer
		Init  InitializationKind
	}
	SetFieldComputed struct {
		Ptr  ImmediateOrPointer
		Init InitializationKind
	}
	FloatField    struct{ Index int }
	SetFloatField struct {
		Index int
		Init  InitializationKind
	}
	DupRecord struct {
		Repr RecordRepr
		Tag  int // inlined records only
		Size int
	}
)

// Effect-handler runtime entry points.
type (
	RunStack  struct{}
	Perform   struct{}
	Resume    struct{}
	Reperform struct{}
)

// CCall marks a call to an external symbol.
type CCall struct{ Name string }

// Raise throws an exception value.
type Raise struct{ Kind RaiseKind }

// Boolean operations.
type (
	SequAnd struct{}
	SequOr  struct{}
	Not     struct{}
)

// Tagged-integer arithmetic.
type (
	NegInt    struct{}
	AddInt    struct{}
	SubInt    struct{}
	MulInt    struct{}
	DivInt    struct{ Safety Safety }
	ModInt    struct{ Safety Safety }
	AndInt    struct{}
	OrInt     struct{}
	XorInt    struct{}
	LslInt    struct{}
	LsrInt    struct{}
	AsrInt    struct{}
	IntComp   struct{ Cmp IntComparison }
	OffsetInt struct{ N int }
	OffsetRef struct{ N int }
)

// Structural comparison helpers specialized by the frontend.
type (
	CompareInts   struct{}
	CompareFloats struct{}
	CompareBints  struct{ Size BoxedInteger }
)

// Int/float conversions.
type (
	IntOfFloat struct{}
	FloatOfInt struct{}
)

// Float arithmetic.
type (
	NegFloat  struct{}
	AbsFloat  struct{}
	AddFloat  struct{}
	SubFloat  struct{}
	MulFloat  struct{}
	DivFloat  struct{}
	FloatComp struct{ Cmp FloatComparison }
)

// String and bytes access.
type (
	StringLength struct{}
	StringRefU   struct{}
	StringRefS   struct{}
	BytesLength  struct{}
	BytesRefU    struct{}
	BytesSetU    struct{}
	BytesRefS    struct{}
	BytesSetS    struct{}
)

// Array operations, parameterized by element kind.
type (
	ArrayLength struct{ Kind ArrayKind }
	MakeArray   struct {
		Kind ArrayKind
		Mut  Mutability
	}
	DupArray struct {
		Kind ArrayKind
		Mut  Mutability
	}
	ArrayRefU struct{ Kind ArrayKind }
	ArraySetU struct{ Kind ArrayKind }
	ArrayRefS struct{ Kind ArrayKind }
	ArraySetS struct{ Kind ArrayKind }
)

// Immediacy and range tests.
type (
	IsInt struct{}
	IsOut struct{}
)

// CtConst answers a compile-time platform query.
type CtConst struct{ Const CompileTimeConstant }

// Boxed-integer operations.
type (
	BintOfInt struct{ Size BoxedInteger }
	IntOfBint struct{ Size BoxedInteger }
	CvtBint   struct{ From, To BoxedInteger }
	NegBint   struct{ Size BoxedInteger }
	AddBint   struct{ Size BoxedInteger }
	SubBint   struct{ Size BoxedInteger }
	MulBint   struct{ Size BoxedInteger }
	DivBint   struct {
		Size   BoxedInteger
		Safety Safety
	}
	ModBint struct {
		Size   BoxedInteger
		Safety Safety
	}
	AndBint  struct{ Size BoxedInteger }
	OrBint   struct{ Size BoxedInteger }
	XorBint  struct{ Size BoxedInteger }
	LslBint  struct{ Size BoxedInteger }
	LsrBint  struct{ Size BoxedInteger }
	AsrBint  struct{ Size BoxedInteger }
	BintComp struct {
		Size BoxedInteger
		Cmp  IntComparison
	}
)

// Bigarray access.
type (
	BigarrayRef struct {
		Safety Safety
		Dims   int
		Kind   BigarrayKind
		Layout BigarrayLayout
	}
	BigarraySet struct {
		Safety Safety
		Dims   int
		Kind   BigarrayKind
		Layout BigarrayLayout
	}
	BigarrayDim struct{ N int }
)

// Unaligned multi-byte loads and stores.
type (
	StringLoad16    struct{ Safety Safety }
	StringLoad32    struct{ Safety Safety }
	StringLoad64    struct{ Safety Safety }
	BytesLoad16     struct{ Safety Safety }
	BytesLoad32     struct{ Safety Safety }
	BytesLoad64     struct{ Safety Safety }
	BytesSet16      struct{ Safety Safety }
	BytesSet32      struct{ Safety Safety }
	BytesSet64      struct{ Safety Safety }
	BigstringLoad16 struct{ Safety Safety }
	BigstringLoad32 struct{ Safety Safety }
	BigstringLoad64 struct{ Safety Safety }
	BigstringSet16  struct{ Safety Safety }
	BigstringSet32  struct{ Safety Safety }
	BigstringSet64  struct{ Safety Safety }
)

// Byte swaps.
type (
	Bswap16 struct{}
	Bbswap  struct{ Size BoxedInteger }
)

// IntAsPointer casts a raw integer to an out-of-heap pointer.
type IntAsPointer struct{}

// Atomic operations.
type (
	AtomicLoad     struct{ Ptr ImmediateOrPointer }
	AtomicExchange struct{}
	AtomicCAS      struct{}
	AtomicFetchAdd struct{}
)

// Opaque prevents the optimizer from looking through its argument.
type Opaque struct{}

// Poll is a cooperative yield point inserted by the backend.
type Poll struct{}

// Nop marks an expression that compiles to nothing.
type Nop struct{}

func (Identity) primitive()         {}
func (BytesToString) primitive()    {}
func (BytesOfString) primitive()    {}
func (Ignore) primitive()           {}
func (RevApply) primitive()         {}
func (DirApply) primitive()         {}
func (GetGlobal) primitive()        {}
func (SetGlobal) primitive()        {}
func (MakeBlock) primitive()        {}
func (MakeFloatBlock) primitive()   {}
func (Field) primitive()            {}
func (FieldComputed) primitive()    {}
func (SetField) primitive()         {}
func (SetFieldComputed) primitive() {}
func (FloatField) primitive()       {}
func (SetFloatField) primitive()    {}
func (DupRecord) primitive()        {}
func (RunStack) primitive()         {}
func (Perform) primitive()          {}
func (Resume) primitive()           {}
func (Reperform) primitive()        {}
func (CCall) primitive()            {}
func (Raise) primitive()            {}
func (SequAnd) primitive()          {}
func (SequOr) primitive()           {}
func (Not) primitive()              {}
func (NegInt) primitive()           {}
func (AddInt) primitive()           {}
func (SubInt) primitive()           {}
func (MulInt) primitive()           {}
func (DivInt) primitive()           {}
func (ModInt) primitive()           {}
func (AndInt) primitive()           {}
func (OrInt) primitive()            {}
func (XorInt) primitive()           {}
func (LslInt) primitive()           {}
func (LsrInt) primitive()           {}
func (AsrInt) primitive()           {}
func (IntComp) primitive()          {}
func (OffsetInt) primitive()        {}
func (OffsetRef) primitive()        {}
func (CompareInts) primitive()      {}
func (CompareFloats) primitive()    {}
func (CompareBints) primitive()     {}
func (IntOfFloat) primitive()       {}
func (FloatOfInt) primitive()       {}
func (NegFloat) primitive()         {}
func (AbsFloat) primitive()         {}
func (AddFloat) primitive()         {}
func (SubFloat) primitive()         {}
func (MulFloat) primitive()         {}
func (DivFloat) primitive()         {}
func (FloatComp) primitive()        {}
func (StringLength) primitive()     {}
func (StringRefU) primitive()       {}
func (StringRefS) primitive()       {}
func (BytesLength) primitive()      {}
func (BytesRefU) primitive()        {}
func (BytesSetU) primitive()        {}
func (BytesRefS) primitive()        {}
func (BytesSetS) primitive()        {}
func (ArrayLength) primitive()      {}
func (MakeArray) primitive()        {}
func (DupArray) primitive()         {}
func (ArrayRefU) primitive()        {}
func (ArraySetU) primitive()        {}
func (ArrayRefS) primitive()        {}
func (ArraySetS) primitive()        {}
func (IsInt) primitive()            {}
func (IsOut) primitive()            {}
func (CtConst) primitive()          {}
func (BintOfInt) primitive()        {}
func (IntOfBint) primitive()        {}
func (CvtBint) primitive()          {}
func (NegBint) primitive()          {}
func (AddBint) primitive()          {}
func (SubBint) primitive()          {}
func (MulBint) primitive()          {}
func (DivBint) primitive()          {}
func (ModBint) primitive()          {}
func (AndBint) primitive()          {}
func (OrBint) primitive()           {}
func (XorBint) primitive()          {}
func (LslBint) primitive()          {}
func (LsrBint) primitive()          {}
func (AsrBint) primitive()          {}
func (BintComp) primitive()         {}
func (BigarrayRef) primitive()      {}
func (BigarraySet) primitive()      {}
func (BigarrayDim) primitive()      {}
func (StringLoad16) primitive()     {}
func (StringLoad32) primitive()     {}
func (StringLoad64) primitive()     {}
func (BytesLoad16) primitive()      {}
func (BytesLoad32) primitive()      {}
func (BytesLoad64) primitive()      {}
func (BytesSet16) primitive()       {}
func (BytesSet32) primitive()       {}
func (BytesSet64) primitive()       {}
func (BigstringLoad16) primitive()  {}
func (BigstringLoad32) primitive()  {}
func (BigstringLoad64) primitive()  {}
func (BigstringSet16) primitive()   {}
func (BigstringSet32) primitive()   {}
func (BigstringSet64) primitive()   {}
func (Bswap16) primitive()          {}
func (Bbswap) primitive()           {}
func (IntAsPointer) primitive()     {}
func (AtomicLoad) primitive()       {}
func (AtomicExchange) primitive()   {}
func (AtomicCAS) primitive()        {}
func (AtomicFetchAdd) primitive()   {}
func (Opaque) primitive()           {}
func (Poll) primitive()             {}
func (Nop) primitive()              {}

// AllPrimitives returns one representative instance of every primitive tag,
// in declaration order. It backs the table dump in the CLI and the totality
// checks in tests; the parameters chosen here are arbitrary.
func AllPrimitives() []Primitive {
	return []Primitive{
		Identity{},
		BytesToString{},
		BytesOfString{},
		Ignore{},
		RevApply{},
		DirApply{},
		GetGlobal{Ident: Ident{Name: "G"}},
		SetGlobal{Ident: Ident{Name: "G"}},
		MakeBlock{},
		MakeFloatBlock{},
		Field{},
		FieldComputed{},
		SetField{},
		SetFieldComputed{},
		FloatField{},
		SetFloatField{},
		DupRecord{Size: 1},
		RunStack{},
		Perform{},
		Resume{},
		Reperform{},
		CCall{Name: "caml_sys_exit"},
		Raise{},
		SequAnd{},
		SequOr{},
		Not{},
		NegInt{},
		AddInt{},
		SubInt{},
		MulInt{},
		DivInt{},
		ModInt{},
		AndInt{},
		OrInt{},
		XorInt{},
		LslInt{},
		LsrInt{},
		AsrInt{},
		IntComp{},
		OffsetInt{N: 1},
		OffsetRef{N: 1},
		CompareInts{},
		CompareFloats{},
		CompareBints{},
		IntOfFloat{},
		FloatOfInt{},
		NegFloat{},
		AbsFloat{},
		AddFloat{},
		SubFloat{},
		MulFloat{},
		DivFloat{},
		FloatComp{},
		StringLength{},
		StringRefU{},
		StringRefS{},
		BytesLength{},
		BytesRefU{},
		BytesSetU{},
		BytesRefS{},
		BytesSetS{},
		ArrayLength{},
		MakeArray{},
		DupArray{},
		ArrayRefU{},
		ArraySetU{},
		ArrayRefS{},
		ArraySetS{},
		IsInt{},
		IsOut{},
		CtConst{},
		BintOfInt{},
		IntOfBint{},
		CvtBint{From: Bint32, To: Bint64},
		NegBint{},
		AddBint{},
		SubBint{},
		MulBint{},
		DivBint{},
		ModBint{},
		AndBint{},
		OrBint{},
		XorBint{},
		LslBint{},
		LsrBint{},
		AsrBint{},
		BintComp{},
		BigarrayRef{Dims: 1},
		BigarraySet{Dims: 1},
		BigarrayDim{N: 1},
		StringLoad16{},
		StringLoad32{},
		StringLoad64{},
		BytesLoad16{},
		BytesLoad32{},
		BytesLoad64{},
		BytesSet16{},
		BytesSet32{},
		BytesSet64{},
		BigstringLoad16{},
		BigstringLoad32{},
		BigstringLoad64{},
		BigstringSet16{},
		BigstringSet32{},
		BigstringSet64{},
		Bswap16{},
		Bbswap{},
		IntAsPointer{},
		AtomicLoad{},
		AtomicExchange{},
		AtomicCAS{},
		AtomicFetchAdd{},
		Opaque{},
		Poll{},
		Nop{},
	}
}
