// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"github.com/apache/arrow/go/v16/arrow"
)

// ArrowDataType translates the descriptor to the Arrow data type used when
// result sets are fetched as Arrow record batches. Timestamps carry UTC
// because the wire protocol encodes instants, not wall-clock times.
// UNSPECIFIED values travel as JSON text in arrow batches.
func (t *Type) ArrowDataType() arrow.DataType {
	switch t.code {
	case TypeCodeBool:
		return arrow.FixedWidthTypes.Boolean
	case TypeCodeInt64:
		return arrow.PrimitiveTypes.Int64
	case TypeCodeFloat64:
		return arrow.PrimitiveTypes.Float64
	case TypeCodeTimestamp:
		return &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}
	case TypeCodeDate:
		return arrow.FixedWidthTypes.Date32
	case TypeCodeString:
		return arrow.BinaryTypes.String
	case TypeCodeBytes:
		return arrow.BinaryTypes.Binary
	case TypeCodeArray:
		return arrow.ListOf(t.elem.ArrowDataType())
	case TypeCodeStruct:
		fields := make([]arrow.Field, len(t.fields))
		for i, f := range t.fields {
			fields[i] = arrow.Field{Name: f.Name, Type: f.Type.ArrowDataType(), Nullable: true}
		}
		return arrow.StructOf(fields...)
	}
	logger.Debugf("no arrow mapping for type %v, falling back to utf8", t.code)
	return arrow.BinaryTypes.String
}

// NewArrowSchema builds the Arrow schema for a result-set column list.
// Column order and names are preserved; nullability maps straight through.
func NewArrowSchema(columns []Column) *arrow.Schema {
	fields := make([]arrow.Field, len(columns))
	for i, c := range columns {
		fields[i] = arrow.Field{Name: c.Name, Type: c.Type.ArrowDataType(), Nullable: c.Nullable}
	}
	return arrow.NewSchema(fields, nil)
}
