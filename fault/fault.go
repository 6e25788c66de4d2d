// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = ProcessError("node count mismatch")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrHeightMismatch       = ProcessError("cached height mismatch")
	ErrIndexOutOfRange      = InvalidError("index out of range")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("invalid traversal order")
	ErrInvalidOutput        = InvalidError("invalid output format")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrNotATable            = InvalidError("configuration did not return a table")
	ErrNotFound             = NotFoundError("value not found")
	ErrOrderViolation       = ProcessError("values out of order")
	ErrParentMismatch       = ProcessError("parent pointer mismatch")
	ErrSizeMismatch         = ProcessError("cached size mismatch")
	ErrSortMismatch         = ProcessError("tree sort and slice sort disagree")
	ErrUnbalanced           = ProcessError("node is unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
