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
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
)

type blockCipher struct {
	reg *registry.Registry
}

func (b *blockCipher) CipherCtxSize(algo teecsp.Algorithm) (int, error) {
	var f registry.Feature
	switch algo {
	case teecsp.AESECBNoPad, teecsp.DESECBNoPad, teecsp.DES3ECBNoPad:
		f = registry.FeatureECB
	case teecsp.AESCBCNoPad, teecsp.DESCBCNoPad, teecsp.DES3CBCNoPad:
		f = registry.FeatureCBC
	case teecsp.AESCTR:
		f = registry.FeatureCTR
	case teecsp.AESXTS, teecsp.AESCTS:
		return 0, teecsp.NewError(teecsp.NotSupported, "Cipher mode [%s] has no backend", algo)
	default:
		return 0, teecsp.NewError(teecsp.NotSupported, "Unsupported cipher algorithm [%s]", algo)
	}
	family := registry.FeatureAES
	if algo.MainAlgorithm() != teecsp.MainAES {
		family = registry.FeatureDES
	}
	if !b.reg.Enabled(f) || !b.reg.Enabled(family) {
		return 0, teecsp.NewError(teecsp.NotSupported, "Cipher [%s] not enabled", algo)
	}
	return cipherStateSize, nil
}

//defaultKeyBits是分配时假定的密钥大小。init会按实际密钥长度重新绑定。
func defaultKeyBits(algo teecsp.Algorithm) int {
	switch algo.MainAlgorithm() {
	case teecsp.MainDES:
		return 64
	default:
		return 128
	}
}

func (b *blockCipher) AllocCipherCtx(algo teecsp.Algorithm) (teecsp.CipherContext, error) {
	if _, err := b.CipherCtxSize(algo); err != nil {
		return nil, err
	}
	desc := b.reg.CipherInfo(algo, defaultKeyBits(algo))
	if desc == nil {
		return nil, teecsp.NewError(teecsp.NotSupported, "Cipher [%s] not enabled", algo)
	}

	c := &cipherCtx{algo: algo, reg: b.reg}
	if err := c.state.setup(desc); err != nil {
		c.Free()
		return nil, teecsp.WrapError(teecsp.BadState, err, "Failed setting up cipher [%s]", algo)
	}
	return c, nil
}

func (b *blockCipher) BlockSize(algo teecsp.Algorithm) (int, error) {
	desc := b.reg.CipherInfo(algo, defaultKeyBits(algo))
	if desc == nil {
		return 0, teecsp.NewError(teecsp.NotSupported, "Unsupported cipher algorithm [%s]", algo)
	}
	return desc.BlockSize, nil
}

type cipherCtx struct {
	algo   teecsp.Algorithm
	reg    *registry.Registry
	state  cipherState
	mode   teecsp.OperationMode
	active bool
	freed  bool
}

func (c *cipherCtx) Algorithm() teecsp.Algorithm {
	return c.algo
}

func (c *cipherCtx) Init(mode teecsp.OperationMode, key1, key2, iv []byte) error {
	if c.freed {
		return teecsp.NewError(teecsp.BadState, "Cipher context already freed")
	}
	if mode != teecsp.ModeEncrypt && mode != teecsp.ModeDecrypt {
		return teecsp.NewError(teecsp.BadParameters, "Invalid operation mode [%d]", mode)
	}

	desc := c.reg.CipherInfo(c.algo, len(key1)*8)
	if desc == nil {
		return teecsp.NewError(teecsp.NotSupported, "Unsupported key length [%d] for [%s]", len(key1), c.algo)
	}
	if err := c.state.setupInfo(desc); err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed binding cipher [%s]", c.algo)
	}
	if err := c.state.setKey(key1, mode); err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed setting key for [%s]", c.algo)
	}
	if iv != nil {
		if err := c.state.setIV(iv); err != nil {
			return teecsp.WrapError(teecsp.BadState, err, "Failed setting IV for [%s]", c.algo)
		}
	}
	c.state.reset()

	c.mode = mode
	c.active = true
	return nil
}

func (c *cipherCtx) Update(mode teecsp.OperationMode, lastBlock bool, src, dst []byte) error {
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "Cipher context not initialized")
	}
	if mode != c.mode {
		return teecsp.NewError(teecsp.BadParameters, "Operation mode [%s] differs from the one set at init [%s]", mode, c.mode)
	}
	if len(dst) < len(src) {
		return teecsp.NewError(teecsp.ShortBuffer, "Output buffer too small [%d < %d]", len(dst), len(src))
	}

	bs := c.state.desc.BlockSize
	if c.state.desc.Mode != registry.ModeCTR && len(src)%bs != 0 {
		return teecsp.NewError(teecsp.BadParameters, "Input length [%d] not a multiple of the block size [%d]", len(src), bs)
	}

	if c.state.desc.Mode == registry.ModeECB {
		for i := 0; i < len(src); i += bs {
			if err := c.state.update(src[i:i+bs], dst[i:i+bs]); err != nil {
				return teecsp.WrapError(teecsp.BadState, err, "Failed processing block")
			}
		}
		return nil
	}

	if err := c.state.update(src, dst[:len(src)]); err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed processing data")
	}
	return nil
}

func (c *cipherCtx) Final() {}

func (c *cipherCtx) CopyFrom(src teecsp.CipherContext) error {
	s, ok := src.(*cipherCtx)
	if !ok || s == nil {
		return teecsp.NewError(teecsp.BadParameters, "Invalid source context [%T]", src)
	}
	if s.algo != c.algo {
		return teecsp.NewError(teecsp.BadParameters, "Algorithm mismatch [%s != %s]", s.algo, c.algo)
	}
	if c.freed || s.freed {
		return teecsp.NewError(teecsp.BadState, "Cipher context already freed")
	}
	c.state = *s.state.clone()
	c.mode = s.mode
	c.active = s.active
	return nil
}

func (c *cipherCtx) released() bool {
	return c.freed
}

func (c *cipherCtx) Free() {
	c.state.free()
	c.active = false
	c.freed = true
}
