// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"encoding/json"
	"testing"
)

func TestTypeWireRoundTrip(t *testing.T) {
	testcases := []*Type{
		TypeUnspecified,
		TypeBool,
		TypeInt64,
		TypeFloat64,
		TypeTimestamp,
		TypeDate,
		TypeString,
		TypeBytes,
		mustWithSizeQuiet(TypeString, 10),
		mustWithSizeQuiet(TypeString, 0),
		mustWithSizeQuiet(TypeBytes, 16),
		ArrayOf(TypeInt64),
		ArrayOf(ArrayOf(TypeString)),
		ArrayOf(mustWithSizeQuiet(TypeBytes, 8)),
		StructOf(),
		StructOf(StructField{Name: "a", Type: TypeInt64}),
		StructOf(
			StructField{Name: "a", Type: TypeInt64},
			StructField{Name: "a", Type: TypeString},
		),
		ArrayOf(StructOf(
			StructField{Name: "id", Type: TypeInt64},
			StructField{Name: "tags", Type: ArrayOf(mustWithSizeQuiet(TypeString, 64))},
		)),
	}
	for _, typ := range testcases {
		t.Run(typ.String(), func(t *testing.T) {
			decoded, err := TypeFromWire(typ.ToWire())
			assertNilF(t, err, "decode error")
			assertTrueE(t, decoded.Equal(typ), "round trip preserves equality")
		})
	}
}

func TestTypeWireRoundTripThroughJSON(t *testing.T) {
	typ := ArrayOf(StructOf(
		StructField{Name: "name", Type: mustWithSizeQuiet(TypeString, 100)},
		StructField{Name: "scores", Type: ArrayOf(TypeFloat64)},
	))
	raw, err := json.Marshal(typ.ToWire())
	assertNilF(t, err, "marshal error")

	var spec TypeSpec
	assertNilF(t, json.Unmarshal(raw, &spec), "unmarshal error")
	decoded, err := TypeFromWire(&spec)
	assertNilF(t, err, "decode error")
	assertTrueE(t, decoded.Equal(typ), "round trip preserves equality")
}

func TestTypeWireJSONShape(t *testing.T) {
	testcases := []struct {
		typ  *Type
		want string
	}{
		{TypeBool, `{"code":"BOOL"}`},
		{mustWithSizeQuiet(TypeString, 10), `{"code":"STRING","size":10}`},
		{mustWithSizeQuiet(TypeString, 0), `{"code":"STRING","size":0}`},
		{ArrayOf(TypeInt64), `{"code":"ARRAY","arrayElementType":{"code":"INT64"}}`},
		{StructOf(), `{"code":"STRUCT"}`},
		{
			StructOf(StructField{Name: "a", Type: TypeInt64}),
			`{"code":"STRUCT","fields":[{"name":"a","type":{"code":"INT64"}}]}`,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			raw, err := json.Marshal(tc.typ.ToWire())
			assertNilF(t, err, "marshal error")
			assertEqualE(t, string(raw), tc.want, "wire JSON")
		})
	}
}

func TestScalarWireRoundTripReturnsCanonicalInstance(t *testing.T) {
	decoded, err := TypeFromWire(TypeInt64.ToWire())
	assertNilF(t, err, "decode error")
	assertTrueE(t, decoded == TypeInt64, "canonical instance restored")
}

func TestSizedWireRecordEqualsWithSize(t *testing.T) {
	size := int64(10)
	decoded, err := TypeFromWire(&TypeSpec{Code: "STRING", Size: &size})
	assertNilF(t, err, "decode error")

	sized, err := TypeString.WithSize(10)
	assertNilF(t, err, "with size error")
	assertTrueE(t, decoded.Equal(sized), "wire-built and WithSize-built descriptors are equal")
	assertEqualE(t, decoded.Hash(), sized.Hash(), "equal descriptors share a hash")
}

func TestStructWireKeepsDeclarationOrder(t *testing.T) {
	a := StructOf(StructField{Name: "a", Type: TypeInt64}, StructField{Name: "b", Type: TypeBool})
	b := StructOf(StructField{Name: "b", Type: TypeBool}, StructField{Name: "a", Type: TypeInt64})
	assertTrueF(t, a.Equal(b), "reordered structs are equal")

	specA := a.ToWire()
	specB := b.ToWire()
	assertEqualE(t, specA.Fields[0].Name, "a", "first field of a")
	assertEqualE(t, specB.Fields[0].Name, "b", "first field of b")
}

func TestStructWireKeepsDuplicateDeclarations(t *testing.T) {
	typ := StructOf(
		StructField{Name: "a", Type: TypeInt64},
		StructField{Name: "a", Type: TypeString},
	)
	spec := typ.ToWire()
	assertEqualF(t, len(spec.Fields), 2, "both declarations emitted")

	decoded, err := TypeFromWire(spec)
	assertNilF(t, err, "decode error")
	assertEqualE(t, decoded.NumFields(), 2, "both declarations restored")
	assertDeepEqualE(t, decoded.Fields(), typ.Fields(), "declaration sequence restored")
	assertTrueE(t, decoded.Equal(typ), "round trip preserves equality")
}

func TestTypeFromWireUnknownCode(t *testing.T) {
	size := int64(38)
	testcases := []struct {
		name string
		spec *TypeSpec
	}{
		{name: "bare unknown code", spec: &TypeSpec{Code: "GEOMETRY"}},
		{name: "unknown code with payload", spec: &TypeSpec{Code: "DECIMAL", Size: &size}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			typ, err := TypeFromWire(tc.spec)
			assertNilF(t, err, "unknown codes are not an error")
			assertTrueE(t, typ == TypeUnspecified, "unknown code maps to UNSPECIFIED")
		})
	}
}

func TestTypeFromWireRejectsMalformedRecords(t *testing.T) {
	size := int64(10)
	negative := int64(-1)
	testcases := []struct {
		name       string
		spec       *TypeSpec
		wantNumber int
	}{
		{name: "nil record", spec: nil, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "array without element type", spec: &TypeSpec{Code: "ARRAY"}, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "size on array", spec: &TypeSpec{Code: "ARRAY", Size: &size, ArrayElementType: &TypeSpec{Code: "INT64"}}, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "size on struct", spec: &TypeSpec{Code: "STRUCT", Size: &size}, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "size on bool", spec: &TypeSpec{Code: "BOOL", Size: &size}, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "struct field without type", spec: &TypeSpec{Code: "STRUCT", Fields: []FieldSpec{{Name: "a"}}}, wantNumber: ErrCodeMalformedTypeSpec},
		{name: "negative size", spec: &TypeSpec{Code: "STRING", Size: &negative}, wantNumber: ErrCodeNegativeSize},
		{
			name:       "nested malformed element",
			spec:       &TypeSpec{Code: "ARRAY", ArrayElementType: &TypeSpec{Code: "ARRAY"}},
			wantNumber: ErrCodeMalformedTypeSpec,
		},
		{
			name: "nested malformed field",
			spec: &TypeSpec{Code: "STRUCT", Fields: []FieldSpec{
				{Name: "a", Type: &TypeSpec{Code: "BOOL", Size: &size}},
			}},
			wantNumber: ErrCodeMalformedTypeSpec,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TypeFromWire(tc.spec)
			assertNotNilF(t, err, "decode error")
			var me *MeridianError
			assertErrorsAsF(t, err, &me)
			assertEqualE(t, me.Number, tc.wantNumber, "error code")
		})
	}
}

func TestColumnsWireRoundTrip(t *testing.T) {
	cols := []Column{
		{Name: "id", Type: TypeInt64, Nullable: false},
		{Name: "name", Type: mustWithSizeQuiet(TypeString, 100), Nullable: true},
		{Name: "tags", Type: ArrayOf(TypeString), Nullable: true},
	}
	decoded, err := ColumnsFromWire(ColumnsToWire(cols))
	assertNilF(t, err, "decode error")
	assertEqualF(t, len(decoded), len(cols), "column count")
	for i := range cols {
		assertEqualE(t, decoded[i].Name, cols[i].Name, "column name")
		assertEqualE(t, decoded[i].Nullable, cols[i].Nullable, "nullable")
		assertTrueE(t, decoded[i].Type.Equal(cols[i].Type), "column type")
	}
}

func TestColumnsFromWireDecodesResultSchemaJSON(t *testing.T) {
	raw := `[
		{"name": "id", "type": {"code": "INT64"}, "nullable": false},
		{"name": "payload", "type": {"code": "STRUCT", "fields": [
			{"name": "key", "type": {"code": "STRING", "size": 10}},
			{"name": "values", "type": {"code": "ARRAY", "arrayElementType": {"code": "FLOAT64"}}}
		]}, "nullable": true}
	]`
	var specs []ColumnSpec
	assertNilF(t, json.Unmarshal([]byte(raw), &specs), "unmarshal error")

	cols, err := ColumnsFromWire(specs)
	assertNilF(t, err, "decode error")
	assertEqualF(t, len(cols), 2, "column count")
	assertEqualE(t, cols[0].Name, "id", "column name")
	assertTrueE(t, cols[0].Type == TypeInt64, "scalar column type")
	assertEqualE(t, cols[1].Type.String(), "STRUCT<key STRING(10), values ARRAY<FLOAT64>>", "composite column type")
}

func TestColumnFromWireRejectsMalformedRecords(t *testing.T) {
	_, err := ColumnFromWire(nil)
	assertNotNilF(t, err, "nil record error")

	_, err = ColumnFromWire(&ColumnSpec{Name: "c"})
	assertNotNilF(t, err, "missing type error")
	assertStringContainsE(t, err.Error(), `column "c" has no type`, "error message")
}
