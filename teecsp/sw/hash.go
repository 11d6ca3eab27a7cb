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
	"encoding"
	"hash"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
)

type hasher struct {
	reg *registry.Registry
}

func (h *hasher) HashCtxSize(algo teecsp.Algorithm) (int, error) {
	if algo.Class() != teecsp.ClassDigest {
		return 0, teecsp.NewError(teecsp.NotSupported, "Unsupported digest algorithm [%s]", algo)
	}
	desc := h.reg.HashInfo(algo)
	if desc == nil {
		return 0, teecsp.NewError(teecsp.NotSupported, "Digest algorithm [%s] not enabled", algo)
	}
	return desc.StateSize, nil
}

func (h *hasher) AllocHashCtx(algo teecsp.Algorithm) (teecsp.HashContext, error) {
	if _, err := h.HashCtxSize(algo); err != nil {
		return nil, err
	}
	return &hashCtx{algo: algo, desc: h.reg.HashInfo(algo)}, nil
}

type hashState int

const (
	hashAllocated hashState = iota
	hashActive
	hashFinalized
	hashFreed
)

type hashCtx struct {
	algo  teecsp.Algorithm
	desc  *registry.HashDescriptor
	h     hash.Hash
	state hashState
}

func (c *hashCtx) Algorithm() teecsp.Algorithm {
	return c.algo
}

func (c *hashCtx) Init() error {
	if c.state == hashFreed {
		return teecsp.NewError(teecsp.BadState, "Hash context already freed")
	}
	if c.h == nil {
		c.h = c.desc.New()
	} else {
		c.h.Reset()
	}
	c.state = hashActive
	return nil
}

func (c *hashCtx) Update(data []byte) error {
	if c.state != hashActive {
		return teecsp.NewError(teecsp.BadState, "Hash context not initialized")
	}
	c.h.Write(data)
	return nil
}

func (c *hashCtx) Final(digest []byte) error {
	if c.state != hashActive {
		return teecsp.NewError(teecsp.BadState, "Hash context not initialized")
	}
	if c.desc.Size > teecsp.MaxHashSize {
		return teecsp.NewError(teecsp.BadState, "Digest size [%d] exceeds the maximum [%d]", c.desc.Size, teecsp.MaxHashSize)
	}

	var scratch [teecsp.MaxHashSize]byte
	sum := c.h.Sum(scratch[:0])
	copy(digest, sum)
	for i := range scratch {
		scratch[i] = 0
	}
	c.state = hashFinalized
	return nil
}

func (c *hashCtx) CopyFrom(src teecsp.HashContext) error {
	s, ok := src.(*hashCtx)
	if !ok || s == nil {
		return teecsp.NewError(teecsp.BadParameters, "Invalid source context [%T]", src)
	}
	if s.algo != c.algo {
		return teecsp.NewError(teecsp.BadParameters, "Algorithm mismatch [%s != %s]", s.algo, c.algo)
	}
	if c.state == hashFreed || s.state == hashFreed {
		return teecsp.NewError(teecsp.BadState, "Hash context already freed")
	}

	if s.h == nil {
		c.h = nil
		c.state = s.state
		return nil
	}

	h, err := cloneHash(s.desc, s.h)
	if err != nil {
		return err
	}
	c.h = h
	c.state = s.state
	return nil
}

func (c *hashCtx) released() bool {
	return c.state == hashFreed
}

func (c *hashCtx) Free() {
	if c.h != nil {
		c.h.Reset()
	}
	c.h = nil
	c.state = hashFreed
}

//clonehash通过序列化中间状态复制正在运行的摘要
func cloneHash(desc *registry.HashDescriptor, src hash.Hash) (hash.Hash, error) {
	m, ok := src.(encoding.BinaryMarshaler)
	if !ok {
		return nil, teecsp.NewError(teecsp.BadState, "Digest state of %s cannot be copied", desc.Name)
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return nil, teecsp.WrapError(teecsp.BadState, err, "Failed copying digest state of %s", desc.Name)
	}

	dst := desc.New()
	u, ok := dst.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, teecsp.NewError(teecsp.BadState, "Digest state of %s cannot be restored", desc.Name)
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return nil, teecsp.WrapError(teecsp.BadState, err, "Failed restoring digest state of %s", desc.Name)
	}
	return dst, nil
}
