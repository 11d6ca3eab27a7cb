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
	gcmBlockSize = 16
	gcmMinTagLen = 12
	gcmMaxTagLen = 16
)

//fieldElement是GF(2^128)中的元素，采用GCM的位顺序
type fieldElement struct {
	hi, lo uint64
}

func loadElement(b []byte) fieldElement {
	return fieldElement{binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:16])}
}

func (e fieldElement) store(b []byte) {
	binary.BigEndian.PutUint64(b[:8], e.hi)
	binary.BigEndian.PutUint64(b[8:16], e.lo)
}

//gfMul按照NIST SP 800-38D算法1逐位相乘，不使用依赖秘密的分支
func gfMul(x, y fieldElement) fieldElement {
	var z fieldElement
	v := y
	for i := uint(0); i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = (x.hi >> (63 - i)) & 1
		} else {
			bit = (x.lo >> (127 - i)) & 1
		}
		mask := 0 - bit
		z.hi ^= v.hi & mask
		z.lo ^= v.lo & mask

		lsb := v.lo & 1
		v.lo = v.lo>>1 | v.hi<<63
		v.hi >>= 1
		v.hi ^= 0xe100000000000000 & (0 - lsb)
	}
	return z
}

//gcmState是流式GCM后端
type gcmState struct {
	block  cipher.Block
	h      fieldElement
	y      fieldElement
	j0     [gcmBlockSize]byte
	ctr    [gcmBlockSize]byte
	stream [gcmBlockSize]byte
	used   int
	buf    [gcmBlockSize]byte
	n      int
	aadLen uint64
	ctLen  uint64
}

func (g *gcmState) init(block cipher.Block, nonce []byte, tagLen, aadLen, payloadLen int) error {
	if block.BlockSize() != gcmBlockSize {
		return errors.New("GCM requires a 128-bit block cipher")
	}
	if tagLen < gcmMinTagLen || tagLen > gcmMaxTagLen {
		return errors.Errorf("invalid GCM tag length [%d]", tagLen)
	}
	if len(nonce) == 0 {
		return errors.New("GCM nonce must not be empty")
	}

	*g = gcmState{block: block, used: gcmBlockSize}

	var hb [gcmBlockSize]byte
	block.Encrypt(hb[:], hb[:])
	g.h = loadElement(hb[:])

	if len(nonce) == 12 {
		copy(g.j0[:], nonce)
		g.j0[15] = 1
	} else {
		g.absorb(nonce)
		g.flush()
		var lens [gcmBlockSize]byte
		binary.BigEndian.PutUint64(lens[8:], uint64(len(nonce))*8)
		g.absorb(lens[:])
		g.y.store(g.j0[:])
		g.y = fieldElement{}
	}
	g.ctr = g.j0
	inc32(g.ctr[:])
	return nil
}

//absorb将数据送入GHASH，缓冲不完整的块
func (g *gcmState) absorb(data []byte) {
	for len(data) > 0 {
		c := copy(g.buf[g.n:], data)
		g.n += c
		data = data[c:]
		if g.n == gcmBlockSize {
			x := loadElement(g.buf[:])
			g.y.hi ^= x.hi
			g.y.lo ^= x.lo
			g.y = gfMul(g.y, g.h)
			g.n = 0
		}
	}
}

//flush对最后不完整的块进行零填充
func (g *gcmState) flush() {
	if g.n == 0 {
		return
	}
	for i := g.n; i < gcmBlockSize; i++ {
		g.buf[i] = 0
	}
	x := loadElement(g.buf[:])
	g.y.hi ^= x.hi
	g.y.lo ^= x.lo
	g.y = gfMul(g.y, g.h)
	g.n = 0
}

func (g *gcmState) keyStream(dst, src []byte) {
	for len(src) > 0 {
		if g.used == gcmBlockSize {
			g.block.Encrypt(g.stream[:], g.ctr[:])
			inc32(g.ctr[:])
			g.used = 0
		}
		n := gcmBlockSize - g.used
		if n > len(src) {
			n = len(src)
		}
		xorblock.Bytes(dst[:n], src[:n], g.stream[g.used:g.used+n])
		g.used += n
		src, dst = src[n:], dst[n:]
	}
}

func (g *gcmState) updateAAD(data []byte) {
	g.absorb(data)
	g.aadLen += uint64(len(data))
}

func (g *gcmState) startPayload() {
	g.flush()
}

func (g *gcmState) updatePayload(encrypt bool, src, dst []byte) {
	if encrypt {
		g.keyStream(dst, src)
		g.absorb(dst[:len(src)])
	} else {
		g.absorb(src)
		g.keyStream(dst, src)
	}
	g.ctLen += uint64(len(src))
}

func (g *gcmState) tag(out []byte) {
	g.flush()
	var lens [gcmBlockSize]byte
	binary.BigEndian.PutUint64(lens[:8], g.aadLen*8)
	binary.BigEndian.PutUint64(lens[8:], g.ctLen*8)
	g.absorb(lens[:])

	var s, t [gcmBlockSize]byte
	g.y.store(s[:])
	g.block.Encrypt(t[:], g.j0[:])
	xorblock.Bytes(t[:], t[:], s[:])
	copy(out, t[:])
}

func (g *gcmState) clone() aeadBackend {
	c := *g
	return &c
}

func (g *gcmState) wipe() {
	*g = gcmState{}
}

//inc32将块的最右边32位作为模2^32计数器加一
func inc32(ctr []byte) {
	n := binary.BigEndian.Uint32(ctr[len(ctr)-4:])
	binary.BigEndian.PutUint32(ctr[len(ctr)-4:], n+1)
}
