// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

//Encode  编码
func Encode(data interface{}) []byte {
	b, err := rlp.EncodeToBytes(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Decode  解码
func Decode(data []byte, msg interface{}) error {
	if err := rlp.DecodeBytes(data, msg); err != nil {
		return errors.Wrapf(ErrDecode, "%v", err)
	}
	return nil
}

//Size  编码后大小
func Size(data interface{}) int {
	return len(Encode(data))
}
