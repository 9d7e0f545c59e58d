// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// ledger errors
var (
	ErrNotFound             = errors.New("ErrNotFound")
	ErrDecode               = errors.New("ErrDecode")
	ErrEmpty                = errors.New("ErrEmpty")
	ErrInvalidParam         = errors.New("ErrInvalidParam")
	ErrInvalidAddress       = errors.New("ErrInvalidAddress")
	ErrAmount               = errors.New("ErrAmount")
	ErrNoBalance            = errors.New("ErrNoBalance")
	ErrSign                 = errors.New("ErrSign")
	ErrTxExpire             = errors.New("ErrTxExpire")
	ErrTxMsgSizeTooBig      = errors.New("ErrTxMsgSizeTooBig")
	ErrTxDup                = errors.New("ErrTxDup")
	ErrExecNotFound         = errors.New("ErrExecNotFound")
	ErrActionNotSupport     = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport      = errors.New("ErrQueryNotSupport")
	ErrSendSameToRecv       = errors.New("ErrSendSameToRecv")
	ErrOverflow             = errors.New("ErrOverflow")
	ErrAccountNotExist      = errors.New("ErrAccountNotExist")
	ErrMintExists           = errors.New("ErrMintExists")
	ErrMintNotExist         = errors.New("ErrMintNotExist")
	ErrMintAuthority        = errors.New("ErrMintAuthority")
	ErrMintMismatch         = errors.New("ErrMintMismatch")
	ErrTokenAccountExists   = errors.New("ErrTokenAccountExists")
	ErrTokenAccountNotExist = errors.New("ErrTokenAccountNotExist")
	ErrTokenOwner           = errors.New("ErrTokenOwner")
	ErrTokenSymbol          = errors.New("ErrTokenSymbol")
	ErrNonZeroBalance       = errors.New("ErrNonZeroBalance")
	ErrConfig               = errors.New("ErrConfig")
)
