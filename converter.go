// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"reflect"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// DataKind classifies descriptors into the coarse host-side kinds that
// generic database tooling understands: one kind per scalar family, Object
// for everything composite or unknown.
type DataKind int

// DataKind values. DataKindObject is the zero value and covers UNSPECIFIED,
// ARRAY and STRUCT descriptors.
const (
	DataKindObject DataKind = iota
	DataKindBoolean
	DataKindInt64
	DataKindDouble
	DataKindDateTime
	DataKindDate
	DataKindString
	DataKindBinary
)

var dataKindNames = map[DataKind]string{
	DataKindObject:   "Object",
	DataKindBoolean:  "Boolean",
	DataKindInt64:    "Int64",
	DataKindDouble:   "Double",
	DataKindDateTime: "DateTime",
	DataKindDate:     "Date",
	DataKindString:   "String",
	DataKindBinary:   "Binary",
}

func (k DataKind) String() string {
	if name, ok := dataKindNames[k]; ok {
		return name
	}
	return "Object"
}

// DataKind translates the descriptor to its generic host-side kind.
func (t *Type) DataKind() DataKind {
	switch t.code {
	case TypeCodeBool:
		return DataKindBoolean
	case TypeCodeInt64:
		return DataKindInt64
	case TypeCodeFloat64:
		return DataKindDouble
	case TypeCodeTimestamp:
		return DataKindDateTime
	case TypeCodeDate:
		return DataKindDate
	case TypeCodeString:
		return DataKindString
	case TypeCodeBytes:
		return DataKindBinary
	}
	return DataKindObject
}

// ScanType translates the descriptor to the Go type a row decoder scans its
// values into. Arrays scan into slices of the element scan type, structs into
// string-keyed maps since Go has no ordered map; the descriptor itself keeps
// the field order. UNSPECIFIED values scan into the generic protobuf value
// container the wire protocol falls back to.
func (t *Type) ScanType() reflect.Type {
	switch t.code {
	case TypeCodeBool:
		return reflect.TypeOf(true)
	case TypeCodeInt64:
		return reflect.TypeOf(int64(0))
	case TypeCodeFloat64:
		return reflect.TypeOf(float64(0))
	case TypeCodeTimestamp, TypeCodeDate:
		return reflect.TypeOf(time.Time{})
	case TypeCodeString:
		return reflect.TypeOf("")
	case TypeCodeBytes:
		return reflect.TypeOf([]byte{})
	case TypeCodeArray:
		return reflect.SliceOf(t.elem.ScanType())
	case TypeCodeStruct:
		return reflect.TypeOf(map[string]interface{}{})
	}
	return reflect.TypeOf((*structpb.Value)(nil))
}

// InferType translates a Go type to a descriptor. The mapping is a lossy
// heuristic for callers that supply no explicit descriptor: the checks run in
// a fixed order and the first match wins, so byte sequences map to BYTES
// before any other slice or array handling and time.Time to TIMESTAMP before
// any other struct. Every integer family up to 64 bits, signed or unsigned,
// lands on INT64; both float widths land on FLOAT64. Types with no mapping
// yield TypeUnspecified.
func InferType(rt reflect.Type) *Type {
	if rt == nil {
		return TypeUnspecified
	}
	if (rt.Kind() == reflect.Slice || rt.Kind() == reflect.Array) && rt.Elem().Kind() == reflect.Uint8 {
		return TypeBytes
	}
	if rt == reflect.TypeOf(time.Time{}) {
		return TypeTimestamp
	}
	switch rt.Kind() {
	case reflect.Bool:
		return TypeBool
	case reflect.Float32, reflect.Float64:
		return TypeFloat64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInt64
	case reflect.String:
		return TypeString
	}
	return TypeUnspecified
}

// InferValueType translates a Go value to a descriptor, see InferType.
// A nil value carries no type information and yields TypeUnspecified.
func InferValueType(v interface{}) *Type {
	if v == nil {
		return TypeUnspecified
	}
	return InferType(reflect.TypeOf(v))
}
