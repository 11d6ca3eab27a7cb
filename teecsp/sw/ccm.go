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


package sw

import (
	"crypto/cipher"
	"encoding/binary"

	"github.com/hyperledger/fabric-teecsp/teecsp/internal/xorblock"
	"github.com/pkg/errors"
)

const (
	ccmBlockSize   = 16
	ccmMinNonceLen = 7
	ccmMaxNonceLen = 13
	ccmMinTagLen   = 4
	ccmMaxTagLen   = 16
	ccmMaxKeyLen   = 32
)

//ccmState是流式CCM后端（NIST SP 800-38C）。
//两个长度都必须在init时已知，因为它们被编码在B0中。
type ccmState struct {
	block  cipher.Block
	q      int
	x      [ccmBlockSize]byte
	buf    [ccmBlockSize]byte
	n      int
	ctr    [ccmBlockSize]byte
	stream [ccmBlockSize]byte
	used   int
	s0     [ccmBlockSize]byte
}

func (c *ccmState) init(block cipher.Block, nonce []byte, tagLen, aadLen, payloadLen int) error {
	if block.BlockSize() != ccmBlockSize {
		return errors.New("CCM requires a 128-bit block cipher")
	}
	if len(nonce) < ccmMinNonceLen || len(nonce) > ccmMaxNonceLen {
		return errors.Errorf("invalid CCM nonce length [%d]", len(nonce))
	}
	if tagLen < ccmMinTagLen || tagLen > ccmMaxTagLen || tagLen%2 != 0 {
		return errors.Errorf("invalid CCM tag length [%d]", tagLen)
	}
	q := 15 - len(nonce)
	if q < 8 && uint64(payloadLen) >= uint64(1)<<(8*uint(q)) {
		return errors.Errorf("payload length [%d] does not fit in %d bytes", payloadLen, q)
	}

	*c = ccmState{block: block, q: q, used: ccmBlockSize}

	var b0 [ccmBlockSize]byte
	if aadLen > 0 {
		b0[0] |= 0x40
	}
	b0[0] |= byte((tagLen-2)/2) << 3
	b0[0] |= byte(q - 1)
	copy(b0[1:], nonce)
	putLength(b0[ccmBlockSize-q:], uint64(payloadLen))
	block.Encrypt(c.x[:], b0[:])

	if aadLen > 0 {
		var prefix [10]byte
		var p []byte
		switch {
		case aadLen < 0xff00:
			binary.BigEndian.PutUint16(prefix[:2], uint16(aadLen))
			p = prefix[:2]
		case uint64(aadLen) <= 0xffffffff:
			prefix[0], prefix[1] = 0xff, 0xfe
			binary.BigEndian.PutUint32(prefix[2:6], uint32(aadLen))
			p = prefix[:6]
		default:
			prefix[0], prefix[1] = 0xff, 0xff
			binary.BigEndian.PutUint64(prefix[2:10], uint64(aadLen))
			p = prefix[:10]
		}
		c.absorb(p)
	}

	c.ctr[0] = byte(q - 1)
	copy(c.ctr[1:], nonce)
	block.Encrypt(c.s0[:], c.ctr[:])
	c.incCounter()
	return nil
}

//putLength将v以大端方式写入整个dst
func putLength(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func (c *ccmState) incCounter() {
	for i := ccmBlockSize - 1; i >= ccmBlockSize-c.q; i-- {
		c.ctr[i]++
		if c.ctr[i] != 0 {
			return
		}
	}
}

//absorb将数据送入CBC-MAC
func (c *ccmState) absorb(data []byte) {
	for len(data) > 0 {
		k := copy(c.buf[c.n:], data)
		c.n += k
		data = data[k:]
		if c.n == ccmBlockSize {
			xorblock.Bytes(c.x[:], c.x[:], c.buf[:])
			c.block.Encrypt(c.x[:], c.x[:])
			c.n = 0
		}
	}
}

func (c *ccmState) flush() {
	if c.n == 0 {
		return
	}
	for i := c.n; i < ccmBlockSize; i++ {
		c.buf[i] = 0
	}
	xorblock.Bytes(c.x[:], c.x[:], c.buf[:])
	c.block.Encrypt(c.x[:], c.x[:])
	c.n = 0
}

func (c *ccmState) keyStream(dst, src []byte) {
	for len(src) > 0 {
		if c.used == ccmBlockSize {
			c.block.Encrypt(c.stream[:], c.ctr[:])
			c.incCounter()
			c.used = 0
		}
		n := ccmBlockSize - c.used
		if n > len(src) {
			n = len(src)
		}
		xorblock.Bytes(dst[:n], src[:n], c.stream[c.used:c.used+n])
		c.used += n
		src, dst = src[n:], dst[n:]
	}
}

func (c *ccmState) updateAAD(data []byte) {
	c.absorb(data)
}

func (c *ccmState) startPayload() {
	c.flush()
}

func (c *ccmState) updatePayload(encrypt bool, src, dst []byte) {
	if encrypt {
		c.absorb(src)
		c.keyStream(dst, src)
	} else {
		c.keyStream(dst, src)
		c.absorb(dst[:len(src)])
	}
}

func (c *ccmState) tag(out []byte) {
	c.flush()
	var t [ccmBlockSize]byte
	xorblock.Bytes(t[:], c.x[:], c.s0[:])
	copy(out, t[:])
}

func (c *ccmState) clone() aeadBackend {
	d := *c
	return &d
}

func (c *ccmState) wipe() {
	*c = ccmState{}
}
