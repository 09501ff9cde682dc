// Copyright (c) 2023-2025 Meridian Data, Inc. All rights reserved.

package gomeridian

import (
	"fmt"
)

// MeridianError is an error type including various Meridian specific information.
type MeridianError struct {
	Number      int
	SQLState    string
	Message     string
	MessageArgs []interface{}
}

func (me *MeridianError) Error() string {
	message := me.Message
	if len(me.MessageArgs) > 0 {
		message = fmt.Sprintf(me.Message, me.MessageArgs...)
	}
	if me.SQLState != "" {
		return fmt.Sprintf("%06d (%s): %s", me.Number, me.SQLState, message)
	}
	return fmt.Sprintf("%06d: %s", me.Number, message)
}

// SQLState values attached to client-side errors. The server never sees
// these; they classify local errors the same way server errors arrive
// classified.
const (
	// SQLStateInvalidParameterValue classifies errors caused by an argument
	// that is invalid no matter which descriptor it is applied to.
	SQLStateInvalidParameterValue = "22023"
	// SQLStateFeatureNotSupported classifies errors caused by applying an
	// operation to a descriptor kind that does not support it.
	SQLStateFeatureNotSupported = "0A000"
	// SQLStateMalformedWireType classifies rejections of wire type records
	// that violate the protocol shape.
	SQLStateMalformedWireType = "22P02"
)

const (
	// type construction

	// ErrCodeNegativeSize is an error code for the case where a maximum length below zero is requested.
	ErrCodeNegativeSize = 270001
	// ErrCodeSizeNotSupported is an error code for the case where a maximum length is applied to a kind other than STRING or BYTES.
	ErrCodeSizeNotSupported = 270002
	// ErrCodeNonScalarCode is an error code for the case where a composite type code is passed to the scalar lookup.
	ErrCodeNonScalarCode = 270003

	// wire decoding

	// ErrCodeMalformedTypeSpec is an error code for the case where a wire type record violates the protocol shape.
	ErrCodeMalformedTypeSpec = 271001

	// client configuration

	// ErrCodeClientConfigFailed is an error code for the case where loading the client configuration failed.
	ErrCodeClientConfigFailed = 272001
)

const (
	errMsgNegativeSize       = "maximum length must not be negative. size: %v"
	errMsgSizeNotSupported   = "maximum length applies to STRING and BYTES only. type: %v"
	errMsgNonScalarCode      = "%v is not a scalar type code"
	errMsgMalformedTypeSpec  = "malformed wire type record: %v"
	errMsgClientConfigFailed = "client configuration failed. err: %v"
)

func errNegativeSize(size int64) *MeridianError {
	return &MeridianError{
		Number:      ErrCodeNegativeSize,
		SQLState:    SQLStateInvalidParameterValue,
		Message:     errMsgNegativeSize,
		MessageArgs: []interface{}{size},
	}
}

func errSizeNotSupported(code TypeCode) *MeridianError {
	return &MeridianError{
		Number:      ErrCodeSizeNotSupported,
		SQLState:    SQLStateFeatureNotSupported,
		Message:     errMsgSizeNotSupported,
		MessageArgs: []interface{}{code},
	}
}

func errNonScalarCode(code TypeCode) *MeridianError {
	return &MeridianError{
		Number:      ErrCodeNonScalarCode,
		SQLState:    SQLStateInvalidParameterValue,
		Message:     errMsgNonScalarCode,
		MessageArgs: []interface{}{code},
	}
}

func errMalformedTypeSpec(reason string) *MeridianError {
	return &MeridianError{
		Number:      ErrCodeMalformedTypeSpec,
		SQLState:    SQLStateMalformedWireType,
		Message:     errMsgMalformedTypeSpec,
		MessageArgs: []interface{}{reason},
	}
}
