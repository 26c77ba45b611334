package lambda

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loon-lang/loon/internal/box"
)

// This file is the rendering engine: total mappings from every descriptor,
// constant, primitive and expression variant to its canonical textual form.
// The output is consumed by diff-based tooling, so token choice, grouping and
// list order are all part of the contract. Every switch below ends in a panic
// so that a variant added without a rendering rule fails loudly in tests
// rather than printing something silently wrong.

// ExprString renders e at the default layout width.
func ExprString(e Expr) string {
	sb := &strings.Builder{}
	_ = PrintExpr(sb, e)
	return sb.String()
}

// PrintExpr renders e to w. The returned error can only originate from w.
func PrintExpr(w io.Writer, e Expr) error {
	return box.Render(w, box.DefaultWidth, exprDoc(e))
}

// ConstantString renders a structured constant.
func ConstantString(c Constant) string {
	sb := &strings.Builder{}
	_ = PrintConstant(sb, c)
	return sb.String()
}

// PrintConstant renders c to w.
func PrintConstant(w io.Writer, c Constant) error {
	return box.Render(w, box.DefaultWidth, constantDoc(c))
}

// PrimitiveString is the display token of p: the mnemonic shown inside
// rendered expressions, including p's parameters.
func PrimitiveString(p Primitive) string {
	return primitiveToken(p)
}

// PrintPrimitive writes p's display token to w.
func PrintPrimitive(w io.Writer, p Primitive) error {
	_, err := io.WriteString(w, primitiveToken(p))
	return err
}

// PrintPrimitiveName writes p's canonical name to w.
func PrintPrimitiveName(w io.Writer, p Primitive) error {
	_, err := io.WriteString(w, PrimitiveName(p))
	return err
}

// PrintProgram renders a compilation unit: the root expression with no extra
// framing.
func PrintProgram(w io.Writer, prog *Program) error {
	return PrintExpr(w, prog.Code)
}

// Descriptor printers. Each is a pure total mapping from a small closed
// enumeration to its token.

func intComparisonToken(c IntComparison) string {
	switch c {
	case CmpEq:
		return "=="
	case CmpNe:
		return "!="
	case CmpLt:
		return "<"
	case CmpLe:
		return "<="
	case CmpGt:
		return ">"
	case CmpGe:
		return ">="
	}
	panic(fmt.Sprintf("lambda: unknown integer comparison %d", c))
}

func floatComparisonToken(c FloatComparison) string {
	switch c {
	case FCmpEq:
		return "==."
	case FCmpNe:
		return "!=."
	case FCmpLt:
		return "<."
	case FCmpNotLt:
		return "!<."
	case FCmpGt:
		return ">."
	case FCmpNotGt:
		return "!>."
	case FCmpLe:
		return "<=."
	case FCmpNotLe:
		return "!<=."
	case FCmpGe:
		return ">=."
	case FCmpNotGe:
		return "!>=."
	}
	panic(fmt.Sprintf("lambda: unknown float comparison %d", c))
}

func arrayKindToken(k ArrayKind) string {
	switch k {
	case GenArray:
		return "gen"
	case AddrArray:
		return "addr"
	case IntArray:
		return "int"
	case FloatArray:
		return "float"
	}
	panic(fmt.Sprintf("lambda: unknown array kind %d", k))
}

// boxedIntegerMark is the module-style prefix used by boxed-integer
// mnemonics, e.g. Int32.add.
func boxedIntegerMark(b BoxedInteger) string {
	switch b {
	case BintNative:
		return "Nativeint"
	case Bint32:
		return "Int32"
	case Bint64:
		return "Int64"
	}
	panic(fmt.Sprintf("lambda: unknown boxed integer %d", b))
}

func boxedIntegerName(b BoxedInteger) string {
	switch b {
	case BintNative:
		return "nativeint"
	case Bint32:
		return "int32"
	case Bint64:
		return "int64"
	}
	panic(fmt.Sprintf("lambda: unknown boxed integer %d", b))
}

func bigarrayKindToken(k BigarrayKind) string {
	switch k {
	case BigarrayUnknown:
		return "generic"
	case BigarrayFloat32:
		return "float32"
	case BigarrayFloat64:
		return "float64"
	case BigarraySint8:
		return "sint8"
	case BigarrayUint8:
		return "uint8"
	case BigarraySint16:
		return "sint16"
	case BigarrayUint16:
		return "uint16"
	case BigarrayInt32:
		return "int32"
	case BigarrayInt64:
		return "int64"
	case BigarrayInt:
		return "camlint"
	case BigarrayNativeInt:
		return "nativeint"
	case BigarrayComplex32:
		return "complex32"
	case BigarrayComplex64:
		return "complex64"
	}
	panic(fmt.Sprintf("lambda: unknown bigarray kind %d", k))
}

func bigarrayLayoutToken(l BigarrayLayout) string {
	switch l {
	case LayoutUnknown:
		return "unknown"
	case LayoutC:
		return "C"
	case LayoutFortran:
		return "Fortran"
	}
	panic(fmt.Sprintf("lambda: unknown bigarray layout %d", l))
}

func recordReprToken(r RecordRepr, tag int) string {
	switch r {
	case RecordRegular:
		return "record"
	case RecordFloat:
		return "float"
	case RecordUnboxed:
		return "unboxed"
	case RecordInlined:
		return "inlined(" + strconv.Itoa(tag) + ")"
	case RecordExtension:
		return "ext"
	}
	panic(fmt.Sprintf("lambda: unknown record representation %d", r))
}

func ctConstToken(c CompileTimeConstant) string {
	switch c {
	case BigEndian:
		return "big_endian"
	case WordSize:
		return "word_size"
	case IntSize:
		return "int_size"
	case MaxWosize:
		return "max_wosize"
	case OstypeUnix:
		return "ostype_unix"
	case OstypeWin32:
		return "ostype_win32"
	case OstypeCygwin:
		return "ostype_cygwin"
	case BackendType:
		return "backend_type"
	}
	panic(fmt.Sprintf("lambda: unknown compile-time constant %d", c))
}

func raiseKindToken(k RaiseKind) string {
	switch k {
	case RaiseRegular:
		return "raise"
	case RaiseReraise:
		return "reraise"
	case RaiseNotrace:
		return "raise_notrace"
	}
	panic(fmt.Sprintf("lambda: unknown raise kind %d", k))
}

// valueKindSuffix is the bracketed annotation on parameters and bindings;
// generic values carry no mark.
func valueKindSuffix(k ValueKind) string {
	switch k {
	case GenVal:
		return ""
	case IntVal:
		return "[int]"
	case FloatVal:
		return "[float]"
	case Boxed32Val:
		return "[int32]"
	case Boxed64Val:
		return "[int64]"
	case BoxedNativeVal:
		return "[nativeint]"
	}
	panic(fmt.Sprintf("lambda: unknown value kind %d", k))
}

// valueKindName is the bare spelling used after ":" in return positions.
func valueKindName(k ValueKind) string {
	switch k {
	case GenVal:
		return ""
	case IntVal:
		return "int"
	case FloatVal:
		return "float"
	case Boxed32Val:
		return "int32"
	case Boxed64Val:
		return "int64"
	case BoxedNativeVal:
		return "nativeint"
	}
	panic(fmt.Sprintf("lambda: unknown value kind %d", k))
}

func letKindToken(k LetKind) string {
	switch k {
	case LetStrict:
		return ""
	case LetAlias:
		return "a"
	case LetStrictOpt:
		return "o"
	case LetVariable:
		return "v"
	}
	panic(fmt.Sprintf("lambda: unknown let kind %d", k))
}

func fieldHintSuffix(h FieldHint) string {
	switch h {
	case FieldHintNone:
		return ""
	case FieldHintModule:
		return ":module"
	case FieldHintRecord:
		return ":record"
	case FieldHintRecordInline:
		return ":record-inline"
	case FieldHintConstructor:
		return ":con"
	case FieldHintTuple:
		return ":tuple"
	case FieldHintCons:
		return ":cons"
	}
	panic(fmt.Sprintf("lambda: unknown field hint %d", h))
}

func initKindMark(k InitializationKind) string {
	switch k {
	case InitAssignment:
		return ""
	case InitHeap:
		return "(heap-init)"
	case InitRoot:
		return "(root-init)"
	}
	panic(fmt.Sprintf("lambda: unknown initialization kind %d", k))
}

func immediacyMark(p ImmediateOrPointer) string {
	switch p {
	case Immediate:
		return "imm"
	case Pointer:
		return "ptr"
	}
	panic(fmt.Sprintf("lambda: unknown immediacy %d", p))
}

func blockShapeSuffix(s BlockShape, name string) string {
	switch s {
	case BlockShapeNone:
		return ""
	case BlockShapeRecord:
		return ":record"
	case BlockShapeTuple:
		return ":tuple"
	case BlockShapeConstructor:
		return ":con'" + name + "'"
	}
	panic(fmt.Sprintf("lambda: unknown block shape %d", s))
}

func pointerHintSuffix(h PointerHint, name string) string {
	switch h {
	case PointerNoHint:
		return ""
	case PointerBool:
		return ":bool"
	case PointerNil:
		return ":nil"
	case PointerUnit:
		return ":unit"
	case PointerNamed:
		return ":" + name
	}
	panic(fmt.Sprintf("lambda: unknown pointer hint %d", h))
}

// makeBlockShape is the field-kind list appended to makeblock when the
// frontend knows the representation of each field.
func makeBlockShape(shape []ValueKind) string {
	if len(shape) == 0 {
		return ""
	}
	kinds := make([]string, len(shape))
	for i, k := range shape {
		name := valueKindName(k)
		if name == "" {
			name = "*"
		}
		kinds[i] = name
	}
	return " (" + strings.Join(kinds, ",") + ")"
}

// Constant printer.

func constantDoc(c Constant) box.Doc {
	switch c := c.(type) {
	case ConstInt:
		return box.Text(strconv.Itoa(c.Value))
	case ConstChar:
		return box.Text(strconv.QuoteRune(c.Value))
	case ConstString:
		return box.Text(strconv.Quote(c.Value))
	case ConstImmString:
		return box.Text("#" + strconv.Quote(c.Value))
	case ConstFloat:
		return box.Text(c.Text)
	case ConstInt32:
		return box.Text(strconv.FormatInt(int64(c.Value), 10) + "l")
	case ConstInt64:
		return box.Text(strconv.FormatInt(c.Value, 10) + "L")
	case ConstNativeInt:
		return box.Text(strconv.FormatInt(c.Value, 10) + "n")
	case ConstPointer:
		return box.Text(strconv.Itoa(c.Value) + "a" + pointerHintSuffix(c.Hint, c.Name))
	case ConstBlock:
		head := strconv.Itoa(c.Tag) + blockShapeSuffix(c.Shape, c.Name)
		if len(c.Fields) == 0 {
			return box.Text("[" + head + "]")
		}
		parts := []box.Doc{box.Text("[" + head + ":")}
		for _, f := range c.Fields {
			parts = append(parts, box.Break(), constantDoc(f))
		}
		parts = append(parts, box.Text("]"))
		return box.Group(1, parts...)
	case ConstFloatArray:
		if len(c.Values) == 0 {
			return box.Text("[| |]")
		}
		parts := []box.Doc{box.Text("[|")}
		for i, f := range c.Values {
			if i > 0 {
				parts = append(parts, box.Break())
			}
			parts = append(parts, box.Text(f))
		}
		parts = append(parts, box.Text("|]"))
		return box.Group(2, parts...)
	}
	panic(fmt.Sprintf("lambda: unknown constant %T", c))
}

// Primitive display tokens. The mnemonic composes the base token with the
// operation's parameters; PrimitiveName below is the parameter-independent
// counterpart.

func primitiveToken(p Primitive) string {
	switch p := p.(type) {
	case Identity:
		return "id"
	case BytesToString:
		return "bytes_to_string"
	case BytesOfString:
		return "bytes_of_string"
	case Ignore:
		return "ignore"
	case RevApply:
		return "revapply"
	case DirApply:
		return "dirapply"
	case GetGlobal:
		return "global " + p.Ident.String()
	case SetGlobal:
		return "setglobal " + p.Ident.String()
	case MakeBlock:
		base := "makeblock"
		if p.Mut == Mutable {
			base = "makemutable"
		}
		return base + " " + strconv.Itoa(p.Tag) + makeBlockShape(p.Shape)
	case MakeFloatBlock:
		if p.Mut == Mutable {
			return "makefloatblock"
		}
		return "makefloatblock_imm"
	case Field:
		var instr string
		switch {
		case p.Ptr == Immediate:
			instr = "field_int"
		case p.Mut == Mutable:
			instr = "field_mut"
		default:
			instr = "field_imm"
		}
		return instr + fieldHintSuffix(p.Hint) + " " + strconv.Itoa(p.Index)
	case FieldComputed:
		return "field_computed"
	case SetField:
		return "setfield_" + immediacyMark(p.Ptr) + initKindMark(p.Init) + " " + strconv.Itoa(p.Index)
	case SetFieldComputed:
		return "setfield_" + immediacyMark(p.Ptr) + "_computed" + initKindMark(p.Init)
	case FloatField:
		return "floatfield " + strconv.Itoa(p.Index)
	case SetFloatField:
		return "setfloatfield" + initKindMark(p.Init) + " " + strconv.Itoa(p.Index)
	case DupRecord:
		return "duprecord " + recordReprToken(p.Repr, p.Tag) + " " + strconv.Itoa(p.Size)
	case RunStack:
		return "runstack"
	case Perform:
		return "perform"
	case Resume:
		return "resume"
	case Reperform:
		return "reperform"
	case CCall:
		return p.Name
	case Raise:
		return raiseKindToken(p.Kind)
	case SequAnd:
		return "&&"
	case SequOr:
		return "||"
	case Not:
		return "not"
	case NegInt:
		return "~"
	case AddInt:
		return "+"
	case SubInt:
		return "-"
	case MulInt:
		return "*"
	case DivInt:
		if p.Safety == Unsafe {
			return "/u"
		}
		return "/"
	case ModInt:
		if p.Safety == Unsafe {
			return "mod/u"
		}
		return "mod"
	case AndInt:
		return "and"
	case OrInt:
		return "or"
	case XorInt:
		return "xor"
	case LslInt:
		return "lsl"
	case LsrInt:
		return "lsr"
	case AsrInt:
		return "asr"
	case IntComp:
		return intComparisonToken(p.Cmp)
	case OffsetInt:
		return strconv.Itoa(p.N) + "+"
	case OffsetRef:
		return "+:=" + strconv.Itoa(p.N)
	case CompareInts:
		return "compare_ints"
	case CompareFloats:
		return "compare_floats"
	case CompareBints:
		return "compare_bints " + boxedIntegerName(p.Size)
	case IntOfFloat:
		return "int_of_float"
	case FloatOfInt:
		return "float_of_int"
	case NegFloat:
		return "~."
	case AbsFloat:
		return "abs."
	case AddFloat:
		return "+."
	case SubFloat:
		return "-."
	case MulFloat:
		return "*."
	case DivFloat:
		return "/."
	case FloatComp:
		return floatComparisonToken(p.Cmp)
	case StringLength:
		return "string.length"
	case StringRefU:
		return "string.unsafe_get"
	case StringRefS:
		return "string.get"
	case BytesLength:
		return "bytes.length"
	case BytesRefU:
		return "bytes.unsafe_get"
	case BytesSetU:
		return "bytes.unsafe_set"
	case BytesRefS:
		return "bytes.get"
	case BytesSetS:
		return "bytes.set"
	case ArrayLength:
		return "array.length[" + arrayKindToken(p.Kind) + "]"
	case MakeArray:
		if p.Mut == Mutable {
			return "makearray[" + arrayKindToken(p.Kind) + "]"
		}
		return "makearray_imm[" + arrayKindToken(p.Kind) + "]"
	case DupArray:
		if p.Mut == Mutable {
			return "duparray[" + arrayKindToken(p.Kind) + "]"
		}
		return "duparray_imm[" + arrayKindToken(p.Kind) + "]"
	case ArrayRefU:
		return "array.unsafe_get[" + arrayKindToken(p.Kind) + "]"
	case ArraySetU:
		return "array.unsafe_set[" + arrayKindToken(p.Kind) + "]"
	case ArrayRefS:
		return "array.get[" + arrayKindToken(p.Kind) + "]"
	case ArraySetS:
		return "array.set[" + arrayKindToken(p.Kind) + "]"
	case IsInt:
		return "isint"
	case IsOut:
		return "isout"
	case CtConst:
		return "sys.constant_" + ctConstToken(p.Const)
	case BintOfInt:
		return boxedIntegerMark(p.Size) + ".of_int"
	case IntOfBint:
		return boxedIntegerMark(p.Size) + ".to_int"
	case CvtBint:
		return boxedIntegerName(p.To) + "_of_" + boxedIntegerName(p.From)
	case NegBint:
		return boxedIntegerMark(p.Size) + ".neg"
	case AddBint:
		return boxedIntegerMark(p.Size) + ".add"
	case SubBint:
		return boxedIntegerMark(p.Size) + ".sub"
	case MulBint:
		return boxedIntegerMark(p.Size) + ".mul"
	case DivBint:
		if p.Safety == Unsafe {
			return boxedIntegerMark(p.Size) + ".div_unsafe"
		}
		return boxedIntegerMark(p.Size) + ".div"
	case ModBint:
		if p.Safety == Unsafe {
			return boxedIntegerMark(p.Size) + ".mod_unsafe"
		}
		return boxedIntegerMark(p.Size) + ".mod"
	case AndBint:
		return boxedIntegerMark(p.Size) + ".and"
	case OrBint:
		return boxedIntegerMark(p.Size) + ".or"
	case XorBint:
		return boxedIntegerMark(p.Size) + ".xor"
	case LslBint:
		return boxedIntegerMark(p.Size) + ".lsl"
	case LsrBint:
		return boxedIntegerMark(p.Size) + ".lsr"
	case AsrBint:
		return boxedIntegerMark(p.Size) + ".asr"
	case BintComp:
		return boxedIntegerMark(p.Size) + "." + intComparisonToken(p.Cmp)
	case BigarrayRef:
		return bigarrayAccess("get", p.Safety, p.Kind, p.Layout)
	case BigarraySet:
		return bigarrayAccess("set", p.Safety, p.Kind, p.Layout)
	case BigarrayDim:
		return "Bigarray.dim_" + strconv.Itoa(p.N)
	case StringLoad16:
		return unalignedAccess("string", "get16", p.Safety)
	case StringLoad32:
		return unalignedAccess("string", "get32", p.Safety)
	case StringLoad64:
		return unalignedAccess("string", "get64", p.Safety)
	case BytesLoad16:
		return unalignedAccess("bytes", "get16", p.Safety)
	case BytesLoad32:
		return unalignedAccess("bytes", "get32", p.Safety)
	case BytesLoad64:
		return unalignedAccess("bytes", "get64", p.Safety)
	case BytesSet16:
		return unalignedAccess("bytes", "set16", p.Safety)
	case BytesSet32:
		return unalignedAccess("bytes", "set32", p.Safety)
	case BytesSet64:
		return unalignedAccess("bytes", "set64", p.Safety)
	case BigstringLoad16:
		return unalignedAccess("bigarray.array1", "get16", p.Safety)
	case BigstringLoad32:
		return unalignedAccess("bigarray.array1", "get32", p.Safety)
	case BigstringLoad64:
		return unalignedAccess("bigarray.array1", "get64", p.Safety)
	case BigstringSet16:
		return unalignedAccess("bigarray.array1", "set16", p.Safety)
	case BigstringSet32:
		return unalignedAccess("bigarray.array1", "set32", p.Safety)
	case BigstringSet64:
		return unalignedAccess("bigarray.array1", "set64", p.Safety)
	case Bswap16:
		return "bswap16"
	case Bbswap:
		return boxedIntegerMark(p.Size) + ".bswap"
	case IntAsPointer:
		return "int_as_pointer"
	case AtomicLoad:
		if p.Ptr == Pointer {
			return "atomic_load_ptr"
		}
		return "atomic_load_imm"
	case AtomicExchange:
		return "atomic_exchange"
	case AtomicCAS:
		return "atomic_cas"
	case AtomicFetchAdd:
		return "atomic_fetch_add"
	case Opaque:
		return "opaque"
	case Poll:
		return "poll"
	case Nop:
		return "nop"
	}
	panic(fmt.Sprintf("lambda: unknown primitive %T", p))
}

func bigarrayAccess(name string, s Safety, k BigarrayKind, l BigarrayLayout) string {
	if s == Unsafe {
		name = "unsafe_" + name
	}
	return "Bigarray." + name + "[" + bigarrayKindToken(k) + "," + bigarrayLayoutToken(l) + "]"
}

func unalignedAccess(base, op string, s Safety) string {
	if s == Unsafe {
		op = "unsafe_" + op
	}
	return base + "." + op
}

// PrimitiveName is the canonical name of p's operation tag. It ignores p's
// parameters: every Field maps to "Field" whatever its index or hints. The
// names are stable identifiers for structural comparison across compiler
// versions; a new operation gets a new name, never a reused one.
func PrimitiveName(p Primitive) string {
	switch p.(type) {
	case Identity:
		return "Identity"
	case BytesToString:
		return "BytesToString"
	case BytesOfString:
		return "BytesOfString"
	case Ignore:
		return "Ignore"
	case RevApply:
		return "RevApply"
	case DirApply:
		return "DirApply"
	case GetGlobal:
		return "GetGlobal"
	case SetGlobal:
		return "SetGlobal"
	case MakeBlock:
		return "MakeBlock"
	case MakeFloatBlock:
		return "MakeFloatBlock"
	case Field:
		return "Field"
	case FieldComputed:
		return "FieldComputed"
	case SetField:
		return "SetField"
	case SetFieldComputed:
		return "SetFieldComputed"
	case FloatField:
		return "FloatField"
	case SetFloatField:
		return "SetFloatField"
	case DupRecord:
		return "DupRecord"
	case RunStack:
		return "RunStack"
	case Perform:
		return "Perform"
	case Resume:
		return "Resume"
	case Reperform:
		return "Reperform"
	case CCall:
		return "CCall"
	case Raise:
		return "Raise"
	case SequAnd:
		return "SequAnd"
	case SequOr:
		return "SequOr"
	case Not:
		return "Not"
	case NegInt:
		return "NegInt"
	case AddInt:
		return "AddInt"
	case SubInt:
		return "SubInt"
	case MulInt:
		return "MulInt"
	case DivInt:
		return "DivInt"
	case ModInt:
		return "ModInt"
	case AndInt:
		return "AndInt"
	case OrInt:
		return "OrInt"
	case XorInt:
		return "XorInt"
	case LslInt:
		return "LslInt"
	case LsrInt:
		return "LsrInt"
	case AsrInt:
		return "AsrInt"
	case IntComp:
		return "IntComp"
	case OffsetInt:
		return "OffsetInt"
	case OffsetRef:
		return "OffsetRef"
	case CompareInts:
		return "CompareInts"
	case CompareFloats:
		return "CompareFloats"
	case CompareBints:
		return "CompareBints"
	case IntOfFloat:
		return "IntOfFloat"
	case FloatOfInt:
		return "FloatOfInt"
	case NegFloat:
		return "NegFloat"
	case AbsFloat:
		return "AbsFloat"
	case AddFloat:
		return "AddFloat"
	case SubFloat:
		return "SubFloat"
	case MulFloat:
		return "MulFloat"
	case DivFloat:
		return "DivFloat"
	case FloatComp:
		return "FloatComp"
	case StringLength:
		return "StringLength"
	case StringRefU:
		return "StringRefU"
	case StringRefS:
		return "StringRefS"
	case BytesLength:
		return "BytesLength"
	case BytesRefU:
		return "BytesRefU"
	case BytesSetU:
		return "BytesSetU"
	case BytesRefS:
		return "BytesRefS"
	case BytesSetS:
		return "BytesSetS"
	case ArrayLength:
		return "ArrayLength"
	case MakeArray:
		return "MakeArray"
	case DupArray:
		return "DupArray"
	case ArrayRefU:
		return "ArrayRefU"
	case ArraySetU:
		return "ArraySetU"
	case ArrayRefS:
		return "ArrayRefS"
	case ArraySetS:
		return "ArraySetS"
	case IsInt:
		return "IsInt"
	case IsOut:
		return "IsOut"
	case CtConst:
		return "CtConst"
	case BintOfInt:
		return "BintOfInt"
	case IntOfBint:
		return "IntOfBint"
	case CvtBint:
		return "CvtBint"
	case NegBint:
		return "NegBint"
	case AddBint:
		return "AddBint"
	case SubBint:
		return "SubBint"
	case MulBint:
		return "MulBint"
	case DivBint:
		return "DivBint"
	case ModBint:
		return "ModBint"
	case AndBint:
		return "AndBint"
	case OrBint:
		return "OrBint"
	case XorBint:
		return "XorBint"
	case LslBint:
		return "LslBint"
	case LsrBint:
		return "LsrBint"
	case AsrBint:
		return "AsrBint"
	case BintComp:
		return "BintComp"
	case BigarrayRef:
		return "BigarrayRef"
	case BigarraySet:
		return "BigarraySet"
	case BigarrayDim:
		return "BigarrayDim"
	case StringLoad16:
		return "StringLoad16"
	case StringLoad32:
		return "StringLoad32"
	case StringLoad64:
		return "StringLoad64"
	case BytesLoad16:
		return "BytesLoad16"
	case BytesLoad32:
		return "BytesLoad32"
	case BytesLoad64:
		return "BytesLoad64"
	case BytesSet16:
		return "BytesSet16"
	case BytesSet32:
		return "BytesSet32"
	case BytesSet64:
		return "BytesSet64"
	case BigstringLoad16:
		return "BigstringLoad16"
	case BigstringLoad32:
		return "BigstringLoad32"
	case BigstringLoad64:
		return "BigstringLoad64"
	case BigstringSet16:
		return "BigstringSet16"
	case BigstringSet32:
		return "BigstringSet32"
	case BigstringSet64:
		return "BigstringSet64"
	case Bswap16:
		return "Bswap16"
	case Bbswap:
		return "Bbswap"
	case IntAsPointer:
		return "IntAsPointer"
	case AtomicLoad:
		return "AtomicLoad"
	case AtomicExchange:
		return "AtomicExchange"
	case AtomicCAS:
		return "AtomicCAS"
	case AtomicFetchAdd:
		return "AtomicFetchAdd"
	case Opaque:
		return "Opaque"
	case Poll:
		return "Poll"
	case Nop:
		return "Nop"
	}
	panic(fmt.Sprintf("lambda: unknown primitive %T", p))
}

// Expression printer.

func exprDoc(e Expr) box.Doc {
	switch e := e.(type) {
	case *Var:
		return box.Text(e.Ident.String())
	case *Const:
		return constantDoc(e.Value)
	case *Apply:
		parts := []box.Doc{box.Text("(apply"), box.Break(), exprDoc(e.Fn)}
		for _, arg := range e.Args {
			parts = append(parts, box.Break(), exprDoc(arg))
		}
		if e.Tailcall {
			parts = append(parts, box.Break(), box.Text("@tailcall"))
		}
		if tok := inlineHintToken(e.Inlined, e.Unroll); tok != "" {
			parts = append(parts, box.Break(), box.Text(tok))
		}
		if tok := specialiseHintToken(e.Specialised); tok != "" {
			parts = append(parts, box.Break(), box.Text(tok))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(2, parts...)
	case *Function:
		parts := []box.Doc{box.Text("(function")}
		switch e.Kind {
		case Curried:
			for _, p := range e.Params {
				parts = append(parts, box.Break(), box.Text(p.Ident.String()+valueKindSuffix(p.Kind)))
			}
		case Tupled:
			names := make([]string, len(e.Params))
			for i, p := range e.Params {
				names[i] = p.Ident.String() + valueKindSuffix(p.Kind)
			}
			parts = append(parts, box.Break(), box.Text("("+strings.Join(names, ", ")+")"))
		default:
			panic(fmt.Sprintf("lambda: unknown function kind %d", e.Kind))
		}
		for _, tok := range functionAttrTokens(e.Attr) {
			parts = append(parts, box.Break(), box.Text(tok))
		}
		if name := valueKindName(e.Return); name != "" {
			parts = append(parts, box.Break(), box.Text(": "+name))
		}
		parts = append(parts, box.Break(), exprDoc(e.Body), box.Text(")"))
		return box.Group(2, parts...)
	case *Let:
		// A run of nested lets displays as one flat binding group; peel
		// the chain iteratively before rendering the terminal body.
		parts := []box.Doc{box.Text("(let")}
		var body Expr = e
		for {
			l, ok := body.(*Let)
			if !ok {
				break
			}
			parts = append(parts, box.Break(), letBindingDoc(l))
			body = l.Body
		}
		parts = append(parts, box.Break(), exprDoc(body), box.Text(")"))
		return box.Group(2, parts...)
	case *LetRec:
		parts := []box.Doc{box.Text("(letrec")}
		for _, b := range e.Bindings {
			parts = append(parts, box.Break(),
				box.Group(2, box.Text("("+b.Ident.String()), box.Break(), exprDoc(b.Value), box.Text(")")))
		}
		parts = append(parts, box.Break(), exprDoc(e.Body), box.Text(")"))
		return box.Group(2, parts...)
	case *Prim:
		parts := []box.Doc{box.Text("(" + primitiveToken(e.Op))}
		for _, arg := range e.Args {
			parts = append(parts, box.Break(), exprDoc(arg))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(2, parts...)
	case *Switch:
		head := "switch"
		if e.Failaction == nil {
			head = "switch*"
		}
		parts := []box.Doc{box.Text("(" + head + " "), exprDoc(e.Arg)}
		for _, c := range e.Consts {
			parts = append(parts, box.Break(), caseDoc("case int "+strconv.Itoa(c.Value)+":", c.Body))
		}
		for _, c := range e.Blocks {
			parts = append(parts, box.Break(), caseDoc("case tag "+strconv.Itoa(c.Value)+":", c.Body))
		}
		if e.Failaction != nil {
			parts = append(parts, box.Break(), caseDoc("default:", e.Failaction))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(1, parts...)
	case *StringSwitch:
		parts := []box.Doc{box.Text("(stringswitch "), exprDoc(e.Arg)}
		for _, c := range e.Cases {
			parts = append(parts, box.Break(), caseDoc("case "+strconv.Quote(c.Value)+":", c.Body))
		}
		if e.Default != nil {
			parts = append(parts, box.Break(), caseDoc("default:", e.Default))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(1, parts...)
	case *StaticRaise:
		parts := []box.Doc{box.Text("(exit"), box.Break(), box.Text(strconv.Itoa(e.Label))}
		for _, arg := range e.Args {
			parts = append(parts, box.Break(), exprDoc(arg))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(2, parts...)
	case *StaticCatch:
		label := strconv.Itoa(e.Label)
		for _, v := range e.Vars {
			label += " " + v.Ident.String() + valueKindSuffix(v.Kind)
		}
		return box.Group(2,
			box.Text("(catch"), box.Break(), exprDoc(e.Body),
			box.Break(), box.Text("with ("+label+")"),
			box.Break(), exprDoc(e.Handler), box.Text(")"))
	case *TryWith:
		return box.Group(2,
			box.Text("(try"), box.Break(), exprDoc(e.Body),
			box.Break(), box.Text("with "+e.Ident.String()),
			box.Break(), exprDoc(e.Handler), box.Text(")"))
	case *If:
		cond := exprDoc(e.Cond)
		switch e.Shape.Kind {
		case CondShapeNone:
		case CondShapeNil:
			cond = box.Group(0, cond, box.Text(":[]"))
		case CondShapeConstructor:
			cond = box.Group(0, cond, box.Text(":"+e.Shape.Name))
		default:
			panic(fmt.Sprintf("lambda: unknown conditional shape %d", e.Shape.Kind))
		}
		return box.Group(2,
			box.Text("(if"), box.Break(), cond,
			box.Break(), exprDoc(e.Then),
			box.Break(), exprDoc(e.Else), box.Text(")"))
	case *Seq:
		parts := []box.Doc{box.Text("(seq")}
		for _, step := range flattenSeq(e) {
			parts = append(parts, box.Break(), exprDoc(step))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(2, parts...)
	case *While:
		return box.Group(2,
			box.Text("(while"), box.Break(), exprDoc(e.Cond),
			box.Break(), exprDoc(e.Body), box.Text(")"))
	case *For:
		dir := "to"
		if e.Dir == DownTo {
			dir = "downto"
		}
		return box.Group(2,
			box.Text("(for "+e.Ident.String()), box.Break(), exprDoc(e.Lo),
			box.Break(), box.Text(dir), box.Break(), exprDoc(e.Hi),
			box.Break(), exprDoc(e.Body), box.Text(")"))
	case *Assign:
		return box.Group(2,
			box.Text("(assign "+e.Ident.String()), box.Break(), exprDoc(e.Value), box.Text(")"))
	case *Send:
		head := "(send"
		switch e.Kind {
		case PlainMethod:
		case SelfMethod:
			head = "(sendself"
		case CachedMethod:
			head = "(sendcache"
		default:
			panic(fmt.Sprintf("lambda: unknown method kind %d", e.Kind))
		}
		parts := []box.Doc{box.Text(head), box.Break(), exprDoc(e.Receiver), box.Break(), exprDoc(e.Selector)}
		for _, arg := range e.Args {
			parts = append(parts, box.Break(), exprDoc(arg))
		}
		parts = append(parts, box.Text(")"))
		return box.Group(2, parts...)
	case *Event:
		return box.Group(2,
			box.Text("("+eventHeader(e.Info)), box.Break(), exprDoc(e.Expr), box.Text(")"))
	case *IfUsed:
		return box.Group(2,
			box.Text("(ifused "+e.Ident.String()), box.Break(), exprDoc(e.Body), box.Text(")"))
	}
	panic(fmt.Sprintf("lambda: unknown expression %T", e))
}

func letBindingDoc(l *Let) box.Doc {
	head := l.Ident.String() + " =" + letKindToken(l.Kind) + valueKindSuffix(l.ValueKind)
	return box.Group(2, box.Text("("+head), box.Break(), exprDoc(l.Bound), box.Text(")"))
}

func caseDoc(label string, body Expr) box.Doc {
	return box.Group(2, box.Text(label), box.Break(), exprDoc(body))
}

// flattenSeq unwinds a chain of sequences, nested in either direction, into
// evaluation order. Iterative so long chains cost no extra stack.
func flattenSeq(e Expr) []Expr {
	var steps []Expr
	stack := []Expr{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s, ok := cur.(*Seq); ok {
			stack = append(stack, s.Second, s.First)
			continue
		}
		steps = append(steps, cur)
	}
	return steps
}

func inlineHintToken(h InlineHint, unroll int) string {
	switch h {
	case DefaultInline:
		return ""
	case AlwaysInline:
		return "always_inline"
	case NeverInline:
		return "never_inline"
	case HintInline:
		return "hint_inline"
	case UnrollInline:
		return "unroll(" + strconv.Itoa(unroll) + ")"
	}
	panic(fmt.Sprintf("lambda: unknown inline hint %d", h))
}

func specialiseHintToken(h SpecialiseHint) string {
	switch h {
	case DefaultSpecialise:
		return ""
	case AlwaysSpecialise:
		return "always_specialise"
	case NeverSpecialise:
		return "never_specialise"
	}
	panic(fmt.Sprintf("lambda: unknown specialise hint %d", h))
}

func localHintToken(h LocalHint) string {
	switch h {
	case DefaultLocal:
		return ""
	case AlwaysLocal:
		return "always_local"
	case NeverLocal:
		return "never_local"
	}
	panic(fmt.Sprintf("lambda: unknown local hint %d", h))
}

func functionAttrTokens(attr FunctionAttribute) []string {
	var toks []string
	if tok := inlineHintToken(attr.Inline, attr.Unroll); tok != "" {
		toks = append(toks, tok)
	}
	if tok := specialiseHintToken(attr.Specialise); tok != "" {
		toks = append(toks, tok)
	}
	if tok := localHintToken(attr.Local); tok != "" {
		toks = append(toks, tok)
	}
	if attr.IsAFunctor {
		toks = append(toks, "is_a_functor")
	}
	if attr.Stub {
		toks = append(toks, "stub")
	}
	return toks
}

func eventKindToken(info EventInfo) string {
	switch info.Kind {
	case EventBefore:
		return "before"
	case EventAfter:
		return "after"
	case EventFunctionBody:
		return "funct-body"
	case EventPseudo:
		return "pseudo"
	case EventModuleDefinition:
		return "module-defn(" + info.Module.String() + ")"
	}
	panic(fmt.Sprintf("lambda: unknown event kind %d", info.Kind))
}

func eventHeader(info EventInfo) string {
	ghost := ""
	if info.Ghost {
		ghost = "<ghost>"
	}
	return fmt.Sprintf("%s %s(%d)%s:%d-%d",
		eventKindToken(info), info.File, info.Line, ghost, info.StartChar, info.EndChar)
}
