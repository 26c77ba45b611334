package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstantRendering(t *testing.T) {
	testCases := []struct {
		name     string
		constant Constant
		expected string
	}{
		{name: "integer", constant: ConstInt{Value: 42}, expected: "42"},
		{name: "negative integer", constant: ConstInt{Value: -7}, expected: "-7"},
		{name: "character", constant: ConstChar{Value: 'a'}, expected: "'a'"},
		{name: "escaped character", constant: ConstChar{Value: '\n'}, expected: `'\n'`},
		{name: "string", constant: ConstString{Value: "hi"}, expected: `"hi"`},
		{name: "string with escapes", constant: ConstString{Value: "a\"b"}, expected: `"a\"b"`},
		{name: "interned string", constant: ConstImmString{Value: "hi"}, expected: `#"hi"`},
		{name: "float keeps source text", constant: ConstFloat{Text: "1.00"}, expected: "1.00"},
		{name: "int32", constant: ConstInt32{Value: 5}, expected: "5l"},
		{name: "int64", constant: ConstInt64{Value: 5}, expected: "5L"},
		{name: "native int", constant: ConstNativeInt{Value: 5}, expected: "5n"},
		{name: "bare pointer", constant: ConstPointer{Value: 3}, expected: "3a"},
		{name: "unit pointer", constant: ConstPointer{Value: 0, Hint: PointerUnit}, expected: "0a:unit"},
		{name: "bool pointer", constant: ConstPointer{Value: 1, Hint: PointerBool}, expected: "1a:bool"},
		{name: "nil pointer", constant: ConstPointer{Value: 0, Hint: PointerNil}, expected: "0a:nil"},
		{
			name:     "named pointer",
			constant: ConstPointer{Value: 0, Hint: PointerNamed, Name: "None"},
			expected: "0a:None",
		},
		{name: "empty block", constant: ConstBlock{Tag: 0}, expected: "[0]"},
		{
			name:     "block with fields",
			constant: ConstBlock{Tag: 0, Fields: []Constant{ConstInt{Value: 1}, ConstInt{Value: 2}}},
			expected: "[0: 1 2]",
		},
		{
			name:     "record block",
			constant: ConstBlock{Tag: 0, Fields: []Constant{ConstInt{Value: 1}}, Shape: BlockShapeRecord},
			expected: "[0:record: 1]",
		},
		{
			name:     "tuple block",
			constant: ConstBlock{Tag: 0, Fields: []Constant{ConstInt{Value: 1}}, Shape: BlockShapeTuple},
			expected: "[0:tuple: 1]",
		},
		{
			name: "constructor block",
			constant: ConstBlock{
				Tag:    1,
				Fields: []Constant{ConstString{Value: "x"}},
				Shape:  BlockShapeConstructor,
				Name:   "Some",
			},
			expected: `[1:con'Some': "x"]`,
		},
		{
			name: "nested block",
			constant: ConstBlock{Tag: 0, Fields: []Constant{
				ConstBlock{Tag: 1, Fields: []Constant{ConstInt{Value: 3}}},
				ConstPointer{Value: 0},
			}},
			expected: "[0: [1: 3] 0a]",
		},
		{name: "empty float array", constant: ConstFloatArray{}, expected: "[| |]"},
		{
			name:     "float array",
			constant: ConstFloatArray{Values: []string{"1.0", "2.5"}},
			expected: "[|1.0 2.5|]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ConstantString(tc.constant))
		})
	}
}
