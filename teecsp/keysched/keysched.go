//此源码被清华学神尹成大魔王专业翻译分析并修改
//尹成QQ77025077
//尹成微信18510341407
//尹成所在QQ群721929980
//尹成邮箱 yinc13@mails.tsinghua.edu.cn
//尹成毕业于清华大学,微软区块链领域全球最有价值专家
//https://mvp.microsoft.com/zh-cn/PublicProfile/4033620
/*
版权所有IBM公司。保留所有权利。

SPDX许可证标识符：Apache-2.0
**/


//keysched包公开AES加密密钥计划，供调用者绕过流式密码引擎
//直接加密单个块。
package keysched

import (
	"encoding/binary"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"golang.org/x/sys/cpu"
)

//BlockSize是AES块大小（字节）。
const BlockSize = 16

var (
	sbox [256]byte
	rcon = [...]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
)

func rotl8(x byte, shift uint) byte {
	return x<<shift | x>>(8-shift)
}

//S盒由GF(2^8)中的乘法逆加仿射变换生成
func init() {
	p, q := byte(1), byte(1)
	for {
		if p&0x80 != 0 {
			p = p ^ p<<1 ^ 0x1b
		} else {
			p = p ^ p<<1
		}
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}
		sbox[p] = q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4) ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63
}

//Rounds返回给定密钥长度的轮数，密钥长度无效时返回0。
func Rounds(keyLen int) int {
	switch keyLen {
	case 16:
		return 10
	case 24:
		return 12
	case 32:
		return 14
	}
	return 0
}

//StorageSize返回保存rounds轮的展开密钥所需的字节数。
func StorageSize(rounds int) int {
	return BlockSize * (rounds + 1)
}

//HardwareAccelerated报告CPU是否提供AES指令。
//展开的密钥格式与此无关。
func HardwareAccelerated() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 | uint32(sbox[w>>16&0xff])<<16 | uint32(sbox[w>>8&0xff])<<8 | uint32(sbox[w&0xff])
}

//ExpandEncKey按照FIPS-197第5.2节展开key，将轮密钥以大端字写入encKey，
//并返回轮数。
func ExpandEncKey(key, encKey []byte) (int, error) {
	rounds := Rounds(len(key))
	if rounds == 0 {
		return 0, teecsp.NewError(teecsp.BadParameters, "Invalid AES key length [%d]", len(key))
	}
	if need := StorageSize(rounds); len(encKey) < need {
		return 0, teecsp.NewError(teecsp.BadParameters, "Expanded key buffer too small [%d < %d]", len(encKey), need)
	}

	nk := len(key) / 4
	n := 4 * (rounds + 1)
	w := make([]uint32, n)
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < n; i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(t<<8|t>>24) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	for i, v := range w {
		binary.BigEndian.PutUint32(encKey[4*i:], v)
	}
	for i := range w {
		w[i] = 0
	}
	return rounds, nil
}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

//EncryptBlock用ExpandEncKey产生的密钥计划加密src的第一个块并写入dst。
//参数无效时会panic，与crypto/cipher.Block的约定相同。
func EncryptBlock(encKey []byte, rounds int, dst, src []byte) {
	if rounds != 10 && rounds != 12 && rounds != 14 {
		panic("keysched: invalid number of rounds")
	}
	if len(encKey) < StorageSize(rounds) {
		panic("keysched: expanded key too short")
	}
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("keysched: input not full block")
	}

	var s [BlockSize]byte
	copy(s[:], src)
	addRoundKey(&s, encKey[:BlockSize])
	for r := 1; r <= rounds; r++ {
		for i := range s {
			s[i] = sbox[s[i]]
		}
		shiftRows(&s)
		if r != rounds {
			mixColumns(&s)
		}
		addRoundKey(&s, encKey[BlockSize*r:BlockSize*(r+1)])
	}
	copy(dst, s[:])
}

func addRoundKey(s *[BlockSize]byte, k []byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

//状态按列存储：s[r+4c]
func shiftRows(s *[BlockSize]byte) {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

func mixColumns(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		s[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		s[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		s[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}
