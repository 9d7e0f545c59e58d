// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rpschain/common"
	"github.com/33cn/rpschain/common/crypto"
	"github.com/33cn/rpschain/common/crypto/secp256k1"
	cty "github.com/33cn/rpschain/system/dapp/coins/types"
	"github.com/33cn/rpschain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.50000000", FormatAmountValue2Display(150000000, CoinDecimals))
	assert.Equal(t, "10", FormatAmountValue2Display(10, 0))
	assert.Equal(t, "0.01", FormatAmountValue2Display(1, 2))

	v, err := FormatAmountDisplay2Value("1.5", CoinDecimals)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), v)

	v, err = FormatAmountDisplay2Value("10", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), v)

	_, err = FormatAmountDisplay2Value("0.001", 2)
	assert.ErrorIs(t, err, types.ErrAmount)
	_, err = FormatAmountDisplay2Value("-1", 2)
	assert.ErrorIs(t, err, types.ErrAmount)
	_, err = FormatAmountDisplay2Value("abc", 2)
	assert.ErrorIs(t, err, types.ErrAmount)
	_, err = FormatAmountDisplay2Value("18446744073709551616", 0)
	assert.ErrorIs(t, err, types.ErrOverflow)
}

func TestSignTx(t *testing.T) {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	key := common.ToHex(priv.Bytes())

	addr, err := KeyAddress(key)
	require.NoError(t, err)

	tx := types.CreateTx(cty.CoinsX, &cty.CoinsAction{Transfer: &cty.CoinsTransfer{To: addr, Amount: 1}})
	require.NoError(t, SignTx(tx, key))
	assert.True(t, tx.CheckSign())
	assert.Equal(t, addr, tx.From())

	assert.Error(t, SignTx(tx, "0xzz"))
}
