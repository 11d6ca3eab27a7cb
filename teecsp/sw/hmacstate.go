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
	"hash"
	"unsafe"

	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/pkg/errors"
)

//hmacState是可克隆的HMAC后端上下文（RFC 2104）。
//crypto/hmac不公开其内部摘要，因此无法复制正在运行的MAC。
type hmacState struct {
	desc  *registry.HashDescriptor
	inner hash.Hash
	outer hash.Hash
	ipad  []byte
	opad  []byte
}

var hmacStateSize = int(unsafe.Sizeof(hmacState{}))

func (s *hmacState) setup(desc *registry.HashDescriptor) error {
	if desc == nil {
		return errors.New("digest descriptor must not be nil")
	}
	s.desc = desc
	s.inner = desc.New()
	s.outer = desc.New()
	return nil
}

func (s *hmacState) starts(key []byte) error {
	if s.desc == nil {
		return errors.New("HMAC not set up")
	}
	bs := s.desc.BlockSize
	if len(key) > bs {
		h := s.desc.New()
		h.Write(key)
		key = h.Sum(nil)
	}
	s.ipad = make([]byte, bs)
	s.opad = make([]byte, bs)
	copy(s.ipad, key)
	copy(s.opad, key)
	for i := range s.ipad {
		s.ipad[i] ^= 0x36
		s.opad[i] ^= 0x5c
	}
	s.reset()
	return nil
}

func (s *hmacState) reset() {
	if s.inner == nil {
		return
	}
	s.inner.Reset()
	if s.ipad != nil {
		s.inner.Write(s.ipad)
	}
}

func (s *hmacState) update(data []byte) error {
	if s.ipad == nil {
		return errors.New("HMAC key not set")
	}
	s.inner.Write(data)
	return nil
}

func (s *hmacState) finish(out []byte) error {
	if s.ipad == nil {
		return errors.New("HMAC key not set")
	}
	var scratch [64]byte
	sum := s.inner.Sum(scratch[:0])
	s.outer.Reset()
	s.outer.Write(s.opad)
	s.outer.Write(sum)
	copy(out, s.outer.Sum(scratch[:0]))
	return nil
}

func (s *hmacState) clone() (*hmacState, error) {
	c := &hmacState{desc: s.desc}
	if s.desc == nil {
		return c, nil
	}
	inner, err := cloneHash(s.desc, s.inner)
	if err != nil {
		return nil, err
	}
	c.inner = inner
	c.outer = s.desc.New()
	if s.ipad != nil {
		c.ipad = append([]byte(nil), s.ipad...)
		c.opad = append([]byte(nil), s.opad...)
	}
	return c, nil
}

func (s *hmacState) free() {
	for i := range s.ipad {
		s.ipad[i] = 0
	}
	for i := range s.opad {
		s.opad[i] = 0
	}
	*s = hmacState{}
}
