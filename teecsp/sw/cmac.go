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
	"github.com/hyperledger/fabric-teecsp/teecsp/internal/xorblock"
	"github.com/pkg/errors"
)

//cmacState保存RFC 4493 CMAC的运行状态。
//最后一个完整块被保留在buf中，直到finish决定使用哪个子密钥。
type cmacState struct {
	k1, k2 [maxBlockSize]byte
	x      [maxBlockSize]byte
	buf    [maxBlockSize]byte
	n      int
}

func (s *cipherState) setupCMAC() error {
	if s.desc == nil {
		return errors.New("cipher state not set up")
	}
	if s.desc.BlockSize != maxBlockSize {
		return errors.Errorf("CMAC requires a %d byte block cipher", maxBlockSize)
	}
	s.cmac = &cmacState{}
	return nil
}

func (s *cipherState) cmacStarts(key []byte) error {
	if s.cmac == nil {
		return errors.New("CMAC not set up")
	}
	if err := s.setKey(key, 0); err != nil {
		return err
	}

	var l [maxBlockSize]byte
	s.encryptBlock(l[:], l[:])
	shiftLeftXorRb(s.cmac.k1[:], l[:])
	shiftLeftXorRb(s.cmac.k2[:], s.cmac.k1[:])
	for i := range l {
		l[i] = 0
	}
	return s.cmacReset()
}

func (s *cipherState) cmacReset() error {
	if s.cmac == nil {
		return errors.New("CMAC not set up")
	}
	m := s.cmac
	for i := range m.x {
		m.x[i] = 0
		m.buf[i] = 0
	}
	m.n = 0
	return nil
}

func (s *cipherState) cmacUpdate(data []byte) error {
	if s.cmac == nil || s.block == nil {
		return errors.New("CMAC key not set")
	}
	m := s.cmac
	for len(data) > 0 {
		if m.n == maxBlockSize {
			xorblock.Bytes(m.x[:], m.x[:], m.buf[:])
			s.encryptBlock(m.x[:], m.x[:])
			m.n = 0
		}
		c := copy(m.buf[m.n:], data)
		m.n += c
		data = data[c:]
	}
	return nil
}

func (s *cipherState) cmacFinish(out []byte) error {
	if s.cmac == nil || s.block == nil {
		return errors.New("CMAC key not set")
	}
	m := s.cmac

	var last [maxBlockSize]byte
	copy(last[:], m.buf[:m.n])
	if m.n == maxBlockSize {
		xorblock.Bytes(last[:], last[:], m.k1[:])
	} else {
		last[m.n] = 0x80
		xorblock.Bytes(last[:], last[:], m.k2[:])
	}
	xorblock.Bytes(last[:], last[:], m.x[:])
	s.encryptBlock(last[:], last[:])
	copy(out, last[:])
	return nil
}

func (m *cmacState) wipe() {
	*m = cmacState{}
}

//shiftLeftXorRb计算GF(2^128)中的加倍
func shiftLeftXorRb(dst, src []byte) {
	msb := src[0] >> 7
	for i := 0; i < len(src)-1; i++ {
		dst[i] = src[i]<<1 | src[i+1]>>7
	}
	dst[len(src)-1] = src[len(src)-1] << 1
	dst[len(src)-1] ^= 0x87 & (0 - msb)
}
