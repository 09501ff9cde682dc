// Package gomeridian implements the type mapping layer of the Meridian Go client.
//
// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.
package gomeridian

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"strconv"
	"strings"
)

// TypeCode identifies a Meridian data type. The set is closed: the server
// never sends a code outside it, and codes it may add in the future arrive
// as TypeCodeUnspecified on clients of this version.
type TypeCode int

const (
	// TypeCodeUnspecified represents a type the client does not know. It is the designed
	// escape hatch for codes introduced by newer servers, not an error state.
	TypeCodeUnspecified TypeCode = iota
	// TypeCodeBool represents the BOOL data type, a true/false value.
	TypeCodeBool
	// TypeCodeInt64 represents the INT64 data type, a 64-bit signed integer.
	TypeCodeInt64
	// TypeCodeFloat64 represents the FLOAT64 data type, a 64-bit IEEE 754 floating point number.
	TypeCodeFloat64
	// TypeCodeTimestamp represents the TIMESTAMP data type, a point in time with nanosecond precision.
	TypeCodeTimestamp
	// TypeCodeDate represents the DATE data type, a calendar date with no time of day.
	TypeCodeDate
	// TypeCodeString represents the STRING data type, a variable-length text value with an
	// optional maximum length.
	TypeCodeString
	// TypeCodeBytes represents the BYTES data type, a variable-length binary value with an
	// optional maximum length.
	TypeCodeBytes
	// TypeCodeArray represents the ARRAY data type, an ordered sequence of values that all
	// share one element type.
	TypeCodeArray
	// TypeCodeStruct represents the STRUCT data type, an ordered sequence of named, typed
	// fields.
	TypeCodeStruct
)

// typeCodeNames maps each code to the name used on the wire and in DDL.
var typeCodeNames = map[TypeCode]string{
	TypeCodeUnspecified: "UNSPECIFIED",
	TypeCodeBool:        "BOOL",
	TypeCodeInt64:       "INT64",
	TypeCodeFloat64:     "FLOAT64",
	TypeCodeTimestamp:   "TIMESTAMP",
	TypeCodeDate:        "DATE",
	TypeCodeString:      "STRING",
	TypeCodeBytes:       "BYTES",
	TypeCodeArray:       "ARRAY",
	TypeCodeStruct:      "STRUCT",
}

var typeCodesByName = invertTypeCodeNames(typeCodeNames)

func invertTypeCodeNames(m map[TypeCode]string) map[string]TypeCode {
	inv := make(map[string]TypeCode, len(m))
	for code, name := range m {
		if _, ok := inv[name]; ok {
			panic("failed to build the type code lookup due to duplicated names")
		}
		inv[name] = code
	}
	return inv
}

func (c TypeCode) String() string {
	if name, ok := typeCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("TYPE_CODE(%d)", int(c))
}

// typeCodeByName resolves a wire name to its code. The second return value
// reports whether the name belongs to the known set.
func typeCodeByName(name string) (TypeCode, bool) {
	code, ok := typeCodesByName[strings.ToUpper(name)]
	return code, ok
}

// Type describes one Meridian column or value type: a scalar, an array of
// another type, or a struct of named fields. A Type is immutable after
// construction and therefore safe for unrestricted concurrent use.
type Type struct {
	code    TypeCode
	size    int64
	sizeSet bool
	elem    *Type          // set iff code is TypeCodeArray
	fields  []StructField  // set iff code is TypeCodeStruct, declaration order
	index   map[string]int // name -> last declaration position
}

// StructField is a single name/type pair of a STRUCT descriptor.
type StructField struct {
	Name string
	Type *Type
}

// Canonical descriptors for the non-parameterized scalar types. Repeated
// scalar lookups return these exact instances; comparing against them with
// == is valid, though Equal is the contract.
var (
	// TypeUnspecified is the descriptor of values whose type the client does not know.
	TypeUnspecified = &Type{code: TypeCodeUnspecified}
	// TypeBool is the BOOL descriptor.
	TypeBool = &Type{code: TypeCodeBool}
	// TypeInt64 is the INT64 descriptor.
	TypeInt64 = &Type{code: TypeCodeInt64}
	// TypeFloat64 is the FLOAT64 descriptor.
	TypeFloat64 = &Type{code: TypeCodeFloat64}
	// TypeTimestamp is the TIMESTAMP descriptor.
	TypeTimestamp = &Type{code: TypeCodeTimestamp}
	// TypeDate is the DATE descriptor.
	TypeDate = &Type{code: TypeCodeDate}
	// TypeString is the STRING descriptor with no maximum length.
	TypeString = &Type{code: TypeCodeString}
	// TypeBytes is the BYTES descriptor with no maximum length.
	TypeBytes = &Type{code: TypeCodeBytes}
)

// scalarTypes maps each scalar code to its canonical descriptor. The table
// is populated once at package initialization and never written afterwards,
// so lookups need no synchronization.
var scalarTypes = map[TypeCode]*Type{
	TypeCodeUnspecified: TypeUnspecified,
	TypeCodeBool:        TypeBool,
	TypeCodeInt64:       TypeInt64,
	TypeCodeFloat64:     TypeFloat64,
	TypeCodeTimestamp:   TypeTimestamp,
	TypeCodeDate:        TypeDate,
	TypeCodeString:      TypeString,
	TypeCodeBytes:       TypeBytes,
}

// ScalarOf returns the canonical descriptor for a scalar type code. Codes
// outside the known set yield TypeUnspecified so that newer servers remain
// usable. Passing TypeCodeArray or TypeCodeStruct is a programming error
// reported as a MeridianError; composite descriptors carry structure that a
// bare code cannot express.
func ScalarOf(code TypeCode) (*Type, error) {
	if code == TypeCodeArray || code == TypeCodeStruct {
		return nil, errNonScalarCode(code)
	}
	if t, ok := scalarTypes[code]; ok {
		return t, nil
	}
	return TypeUnspecified, nil
}

// ArrayOf returns the descriptor of an ARRAY whose elements all have the
// given type. Any descriptor can be an element, including nested arrays and
// structs. A nil element is normalized to TypeUnspecified.
func ArrayOf(elem *Type) *Type {
	if elem == nil {
		elem = TypeUnspecified
	}
	return &Type{code: TypeCodeArray, elem: elem}
}

// StructOf returns the descriptor of a STRUCT with the given fields. The
// declaration order is preserved exactly; it determines the positional
// correspondence with row values on the wire. Field names are not required
// to be unique: every declaration is kept for serialization, and name
// lookups resolve to the last declaration.
func StructOf(fields ...StructField) *Type {
	fs := make([]StructField, len(fields))
	copy(fs, fields)
	index := make(map[string]int, len(fs))
	for i := range fs {
		if fs[i].Type == nil {
			fs[i].Type = TypeUnspecified
		}
		index[fs[i].Name] = i
	}
	return &Type{code: TypeCodeStruct, fields: fs, index: index}
}

// WithSize returns a copy of the descriptor constrained to the given
// maximum length. Only STRING and BYTES accept a maximum length; any other
// receiver yields a MeridianError naming the two kinds. The size must not
// be negative; zero is legal.
func (t *Type) WithSize(size int64) (*Type, error) {
	if t.code != TypeCodeString && t.code != TypeCodeBytes {
		return nil, errSizeNotSupported(t.code)
	}
	return newSizedType(t.code, size)
}

// newSizedType is the single constructor for size-bearing descriptors;
// every sized STRING/BYTES, whether built locally or decoded from the wire,
// funnels through here.
func newSizedType(code TypeCode, size int64) (*Type, error) {
	if size < 0 {
		return nil, errNegativeSize(size)
	}
	return &Type{code: code, size: size, sizeSet: true}, nil
}

// Code returns the type code.
func (t *Type) Code() TypeCode {
	return t.code
}

// Size returns the maximum length constraint and whether one is set. Only
// STRING and BYTES descriptors ever carry one.
func (t *Type) Size() (int64, bool) {
	return t.size, t.sizeSet
}

// Elem returns the element descriptor of an ARRAY, or nil for any other
// kind.
func (t *Type) Elem() *Type {
	return t.elem
}

// NumFields returns the number of declared STRUCT fields, counting
// duplicate names once per declaration. It is zero for any other kind.
func (t *Type) NumFields() int {
	return len(t.fields)
}

// Field returns the STRUCT field at the given declaration position. It
// panics if the position is out of range, like indexing a slice.
func (t *Type) Field(i int) StructField {
	return t.fields[i]
}

// FieldByName returns the STRUCT field with the given name and its
// declaration position. When a name is declared more than once the last
// declaration wins. The position is -1 when the name is absent or the
// descriptor is not a STRUCT.
func (t *Type) FieldByName(name string) (StructField, int) {
	if i, ok := t.index[name]; ok {
		return t.fields[i], i
	}
	return StructField{}, -1
}

// Fields returns a copy of the declared field sequence.
func (t *Type) Fields() []StructField {
	if len(t.fields) == 0 {
		return nil
	}
	fs := make([]StructField, len(t.fields))
	copy(fs, t.fields)
	return fs
}

// Equal reports whether two descriptors denote the same type: same code,
// same maximum length including its absence, recursively equal element
// types, and the same STRUCT members. Members compare as the name-to-type
// mapping with the last declaration of a duplicate name winning; declared
// order does not participate even though the wire preserves it. Positional
// row binding keys on the order, equality on the member set.
func (t *Type) Equal(u *Type) bool {
	if t == u {
		return true
	}
	if t == nil || u == nil {
		return false
	}
	if t.code != u.code || t.sizeSet != u.sizeSet || t.size != u.size {
		return false
	}
	if (t.elem == nil) != (u.elem == nil) {
		return false
	}
	if t.elem != nil && !t.elem.Equal(u.elem) {
		return false
	}
	if t.code == TypeCodeStruct {
		if len(t.index) != len(u.index) {
			return false
		}
		for name, i := range t.index {
			j, ok := u.index[name]
			if !ok || !t.fields[i].Type.Equal(u.fields[j].Type) {
				return false
			}
		}
	}
	return true
}

// Hash returns a structural digest consistent with Equal. The code, the
// maximum length and its presence, the element digest, and the distinct
// STRUCT member count feed the hash; member names and types stay out, which
// keeps the digest independent of declaration order like the equality it
// pairs with.
func (t *Type) Hash() uint64 {
	h := fnv.New64a()
	t.hashInto(h)
	return h.Sum64()
}

func (t *Type) hashInto(h hash.Hash64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(t.code))
	h.Write(buf[:])
	if t.sizeSet {
		h.Write([]byte{1})
		binary.LittleEndian.PutUint64(buf[:], uint64(t.size))
		h.Write(buf[:])
	} else {
		h.Write([]byte{0})
	}
	if t.elem != nil {
		t.elem.hashInto(h)
	}
	if t.code == TypeCodeStruct {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(t.index)))
		h.Write(buf[:])
	}
}

// String renders the descriptor the way DDL spells it, e.g. STRING(10),
// ARRAY<INT64>, or STRUCT<a INT64, b ARRAY<BOOL>>.
func (t *Type) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

func (t *Type) render(sb *strings.Builder) {
	switch t.code {
	case TypeCodeArray:
		sb.WriteString("ARRAY<")
		t.elem.render(sb)
		sb.WriteByte('>')
	case TypeCodeStruct:
		sb.WriteString("STRUCT<")
		for i, f := range t.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteByte(' ')
			f.Type.render(sb)
		}
		sb.WriteByte('>')
	default:
		sb.WriteString(t.code.String())
		if t.sizeSet {
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatInt(t.size, 10))
			sb.WriteByte(')')
		}
	}
}
