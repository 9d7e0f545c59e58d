// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cty "github.com/33cn/rpschain/system/dapp/coins/types"
	"github.com/33cn/rpschain/types"
)

// Exec_Transfer 转账
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction, index int) (*types.Receipt, error) {
	signer, err := tx.Signer()
	if err != nil {
		return nil, err
	}
	return c.GetCoinsAccount().Transfer(signer.Address(), transfer.To, transfer.Amount)
}
