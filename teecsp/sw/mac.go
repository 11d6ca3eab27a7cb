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

type authenticator struct {
	reg *registry.Registry
}

func isHMAC(algo teecsp.Algorithm) bool {
	return algo.Class() == teecsp.ClassMAC && algo.ChainMode() == 0 && algo.MainAlgorithm() < teecsp.MainAES
}

func (a *authenticator) MACCtxSize(algo teecsp.Algorithm) (int, error) {
	switch {
	case isHMAC(algo):
		if !a.reg.Enabled(registry.FeatureHMAC) {
			return 0, teecsp.NewError(teecsp.NotSupported, "HMAC not enabled")
		}
		if a.reg.HashInfo(algo) == nil {
			return 0, teecsp.NewError(teecsp.NotSupported, "Digest for [%s] not enabled", algo)
		}
		return hmacStateSize, nil
	case algo == teecsp.AESCMAC:
		if !a.reg.Enabled(registry.FeatureCMAC) {
			return 0, teecsp.NewError(teecsp.NotSupported, "CMAC not enabled")
		}
		if a.reg.CipherInfo(teecsp.AESECBNoPad, 128) == nil {
			return 0, teecsp.NewError(teecsp.NotSupported, "AES not enabled")
		}
		return cipherStateSize, nil
	case algo.Class() == teecsp.ClassMAC:
		return 0, teecsp.NewError(teecsp.NotSupported, "MAC algorithm [%s] has no backend", algo)
	}
	return 0, teecsp.NewError(teecsp.NotSupported, "Unsupported MAC algorithm [%s]", algo)
}

func (a *authenticator) AllocMACCtx(algo teecsp.Algorithm) (teecsp.MACContext, error) {
	if _, err := a.MACCtxSize(algo); err != nil {
		return nil, err
	}

	c := &macCtx{algo: algo, reg: a.reg}
	if isHMAC(algo) {
		desc := a.reg.HashInfo(algo)
		if desc == nil {
			return nil, teecsp.NewError(teecsp.NotSupported, "Digest for [%s] not enabled", algo)
		}
		c.hmac = &hmacState{}
		if err := c.hmac.setup(desc); err != nil {
			c.Free()
			return nil, teecsp.WrapError(teecsp.Generic, err, "Failed setting up [%s]", algo)
		}
		return c, nil
	}

	desc := a.reg.CipherInfo(teecsp.AESECBNoPad, 128)
	if desc == nil {
		return nil, teecsp.NewError(teecsp.NotSupported, "AES not enabled")
	}
	c.cmac = &cipherState{}
	if err := c.cmac.setup(desc); err != nil {
		c.Free()
		return nil, teecsp.WrapError(teecsp.Generic, err, "Failed setting up [%s]", algo)
	}
	if err := c.cmac.setupCMAC(); err != nil {
		c.Free()
		return nil, teecsp.WrapError(teecsp.Generic, err, "Failed setting up [%s]", algo)
	}
	return c, nil
}

type macCtx struct {
	algo   teecsp.Algorithm
	reg    *registry.Registry
	hmac   *hmacState
	cmac   *cipherState
	active bool
	freed  bool
}

func (c *macCtx) Algorithm() teecsp.Algorithm {
	return c.algo
}

func (c *macCtx) size() int {
	if c.hmac != nil {
		return c.hmac.desc.Size
	}
	return c.cmac.desc.BlockSize
}

func (c *macCtx) Init(key []byte) error {
	if c.freed {
		return teecsp.NewError(teecsp.BadState, "MAC context already freed")
	}

	if c.hmac != nil {
		c.hmac.reset()
		if err := c.hmac.starts(key); err != nil {
			return teecsp.WrapError(teecsp.Generic, err, "Failed keying [%s]", c.algo)
		}
		c.active = true
		return nil
	}

	desc := c.reg.CipherInfo(teecsp.AESECBNoPad, len(key)*8)
	if desc == nil {
		return teecsp.NewError(teecsp.NotSupported, "Unsupported key length [%d] for [%s]", len(key), c.algo)
	}
	if err := c.cmac.setupInfo(desc); err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed binding [%s]", c.algo)
	}
	if err := c.cmac.cmacReset(); err != nil {
		return teecsp.WrapError(teecsp.Generic, err, "Failed resetting [%s]", c.algo)
	}
	if err := c.cmac.cmacStarts(key); err != nil {
		return teecsp.WrapError(teecsp.Generic, err, "Failed keying [%s]", c.algo)
	}
	c.active = true
	return nil
}

func (c *macCtx) Update(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "MAC context not initialized")
	}

	var err error
	if c.hmac != nil {
		err = c.hmac.update(data)
	} else {
		err = c.cmac.cmacUpdate(data)
	}
	if err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed updating [%s]", c.algo)
	}
	return nil
}

func (c *macCtx) Final(mac []byte) error {
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "MAC context not initialized")
	}
	if size := c.size(); len(mac) < size {
		return teecsp.NewError(teecsp.ShortBuffer, "MAC buffer too small [%d < %d]", len(mac), size)
	}

	var err error
	if c.hmac != nil {
		err = c.hmac.finish(mac)
	} else {
		err = c.cmac.cmacFinish(mac)
	}
	if err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed finalizing [%s]", c.algo)
	}
	return nil
}

func (c *macCtx) CopyFrom(src teecsp.MACContext) error {
	s, ok := src.(*macCtx)
	if !ok || s == nil {
		return teecsp.NewError(teecsp.BadParameters, "Invalid source context [%T]", src)
	}
	if s.algo != c.algo {
		return teecsp.NewError(teecsp.BadParameters, "Algorithm mismatch [%s != %s]", s.algo, c.algo)
	}
	if c.freed || s.freed {
		return teecsp.NewError(teecsp.BadState, "MAC context already freed")
	}

	if s.hmac != nil {
		h, err := s.hmac.clone()
		if err != nil {
			return err
		}
		c.hmac = h
	} else {
		c.cmac = s.cmac.clone()
	}
	c.active = s.active
	return nil
}

func (c *macCtx) released() bool {
	return c.freed
}

func (c *macCtx) Free() {
	if c.hmac != nil {
		c.hmac.free()
	}
	if c.cmac != nil {
		c.cmac.free()
	}
	c.active = false
	c.freed = true
}
