// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"fmt"
)

// TypeSpec is the wire representation of a type: one record per descriptor
// node, nested for composite kinds. It is the exact JSON shape the Meridian
// REST protocol uses in result schemas and parameter declarations. Field
// order inside Fields is significant and preserved on both encode and
// decode.
type TypeSpec struct {
	Code             string      `json:"code"`
	Size             *int64      `json:"size,omitempty"`
	ArrayElementType *TypeSpec   `json:"arrayElementType,omitempty"`
	Fields           []FieldSpec `json:"fields,omitempty"`
}

// FieldSpec is the wire representation of one STRUCT field.
type FieldSpec struct {
	Name string    `json:"name"`
	Type *TypeSpec `json:"type"`
}

// ColumnSpec is the wire representation of one result-set column.
type ColumnSpec struct {
	Name     string    `json:"name"`
	Type     *TypeSpec `json:"type"`
	Nullable bool      `json:"nullable"`
}

// ToWire emits the wire record for the descriptor. Composite kinds recurse;
// STRUCT fields are emitted in declaration order, duplicates included. The
// operation is total: every constructible descriptor has a wire form.
func (t *Type) ToWire() *TypeSpec {
	spec := &TypeSpec{Code: t.code.String()}
	if t.sizeSet {
		size := t.size
		spec.Size = &size
	}
	if t.elem != nil {
		spec.ArrayElementType = t.elem.ToWire()
	}
	if t.code == TypeCodeStruct {
		spec.Fields = make([]FieldSpec, len(t.fields))
		for i, f := range t.fields {
			spec.Fields[i] = FieldSpec{Name: f.Name, Type: f.Type.ToWire()}
		}
	}
	return spec
}

// TypeFromWire reconstructs a descriptor from its wire record. Codes outside
// the known set yield TypeUnspecified, payload ignored, so newer servers
// keep working against this client. Records that violate the protocol shape
// for a known code are rejected: an ARRAY without an element type, a STRUCT
// field without a type, a size on a kind that takes none, or a negative
// size. Decoding the output of ToWire always yields a descriptor equal to
// the source; only canonical scalar identity is lost, never value equality.
func TypeFromWire(spec *TypeSpec) (*Type, error) {
	if spec == nil {
		return nil, errMalformedTypeSpec("type record is nil")
	}
	code, known := typeCodeByName(spec.Code)
	if !known {
		logger.Debugf("unknown wire type code %q, treating as UNSPECIFIED", spec.Code)
		return TypeUnspecified, nil
	}
	switch code {
	case TypeCodeArray:
		if spec.Size != nil {
			return nil, errMalformedTypeSpec("size set on ARRAY")
		}
		if spec.ArrayElementType == nil {
			return nil, errMalformedTypeSpec("ARRAY record has no arrayElementType")
		}
		elem, err := TypeFromWire(spec.ArrayElementType)
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case TypeCodeStruct:
		if spec.Size != nil {
			return nil, errMalformedTypeSpec("size set on STRUCT")
		}
		fields := make([]StructField, len(spec.Fields))
		for i, f := range spec.Fields {
			if f.Type == nil {
				return nil, errMalformedTypeSpec(fmt.Sprintf("STRUCT field %q has no type", f.Name))
			}
			ft, err := TypeFromWire(f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = StructField{Name: f.Name, Type: ft}
		}
		return StructOf(fields...), nil
	default:
		if spec.Size != nil {
			if code != TypeCodeString && code != TypeCodeBytes {
				return nil, errMalformedTypeSpec(fmt.Sprintf("size set on %v", code))
			}
			return newSizedType(code, *spec.Size)
		}
		return ScalarOf(code)
	}
}

// Column is one column of a result schema: the decoded counterpart of a
// ColumnSpec. Row decoders use its Type to pick host representations; this
// package only supplies the mapping.
type Column struct {
	Name     string
	Type     *Type
	Nullable bool
}

// ToWire emits the wire record for the column.
func (c Column) ToWire() ColumnSpec {
	return ColumnSpec{Name: c.Name, Type: c.Type.ToWire(), Nullable: c.Nullable}
}

// ColumnFromWire reconstructs a result-schema column from its wire record.
func ColumnFromWire(spec *ColumnSpec) (Column, error) {
	if spec == nil {
		return Column{}, errMalformedTypeSpec("column record is nil")
	}
	if spec.Type == nil {
		return Column{}, errMalformedTypeSpec(fmt.Sprintf("column %q has no type", spec.Name))
	}
	t, err := TypeFromWire(spec.Type)
	if err != nil {
		return Column{}, err
	}
	return Column{Name: spec.Name, Type: t, Nullable: spec.Nullable}, nil
}

// ColumnsFromWire reconstructs a whole result schema, preserving column
// order.
func ColumnsFromWire(specs []ColumnSpec) ([]Column, error) {
	cols := make([]Column, len(specs))
	for i := range specs {
		col, err := ColumnFromWire(&specs[i])
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// ColumnsToWire emits the wire records for a whole result schema.
func ColumnsToWire(cols []Column) []ColumnSpec {
	specs := make([]ColumnSpec, len(cols))
	for i, c := range cols {
		specs[i] = c.ToWire()
	}
	return specs
}
