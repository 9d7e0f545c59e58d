// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check addresses for public keys, executors and
// program derived accounts
package address

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/33cn/rpschain/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// AddressLength length of the decoded address: version + hash160 + checksum
const AddressLength = 25

// ErrCheckChecksum address checksum error
var ErrCheckChecksum = errors.New("address checksum error")

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 计算执行器的公钥, 没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(ExecPubKey(name)).String()
	addressCache.Add(name, addrstr)
	return addrstr
}

// DerivePubKey hash of (seed, execer, tag, seeds...). Like ExecPubKey the
// result is not a curve point so nobody can sign for it.
func DerivePubKey(execer, tag string, seeds ...[]byte) []byte {
	if len(execer) > MaxExecNameLength {
		panic("name too long")
	}
	var buf bytes.Buffer
	buf.Write(addrSeed)
	buf.WriteString(execer)
	buf.WriteByte(':')
	buf.WriteString(tag)
	for _, s := range seeds {
		buf.WriteByte(':')
		buf.Write(s)
	}
	hash := common.Sha2Sum(buf.Bytes())
	return hash[:]
}

// DeriveAddress address of an account owned by the execer, addressed by tag and seeds
func DeriveAddress(execer, tag string, seeds ...[]byte) string {
	var key strings.Builder
	key.WriteString(execer)
	key.WriteByte('/')
	key.WriteString(tag)
	for _, s := range seeds {
		key.WriteByte('/')
		key.WriteString(hex.EncodeToString(s))
	}
	if value, ok := addressCache.Get(key.String()); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(DerivePubKey(execer, tag, seeds...)).String()
	addressCache.Add(key.String(), addrstr)
	return addrstr
}

//PubKeyToAddr 公钥转为地址字符串
func PubKeyToAddr(in []byte) string {
	return PubKeyToAddress(in).String()
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey[:], in[:])
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = decode(addr)
	checkAddressCache.Add(addr, e)
	return
}

// Decode base58 address -> 25 raw bytes, checksum verified
func Decode(addr string) ([]byte, error) {
	return decode(addr)
}

func decode(addr string) ([]byte, error) {
	dec := base58.Decode(addr)
	if len(dec) == 0 {
		return nil, errors.New("Cannot decode b58 string '" + addr + "'")
	}
	if len(dec) != AddressLength {
		return nil, errors.New("Address length error " + hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, ErrCheckChecksum
	}
	return dec, nil
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (*Address, error) {
	dec, err := decode(hs)
	if err != nil {
		return nil, err
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return a, nil
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
