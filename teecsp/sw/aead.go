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
	"crypto/subtle"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
)

//aeadBackend是CCM和GCM共有的流式接口
type aeadBackend interface {
	init(block cipher.Block, nonce []byte, tagLen, aadLen, payloadLen int) error
	updateAAD(data []byte)
	startPayload()
	updatePayload(encrypt bool, src, dst []byte)
	tag(out []byte)
	clone() aeadBackend
	wipe()
}

type authEncryptor struct {
	reg *registry.Registry
}

func (a *authEncryptor) AEADEnabled(algo teecsp.Algorithm) error {
	var f registry.Feature
	switch algo {
	case teecsp.AESCCM:
		f = registry.FeatureCCM
	case teecsp.AESGCM:
		f = registry.FeatureGCM
	default:
		return teecsp.NewError(teecsp.NotSupported, "Unsupported AE algorithm [%s]", algo)
	}
	if !a.reg.Enabled(f) || !a.reg.Enabled(registry.FeatureAES) {
		return teecsp.NewError(teecsp.NotSupported, "AE algorithm [%s] not enabled", algo)
	}
	return nil
}

func (a *authEncryptor) AllocAEADCtx(algo teecsp.Algorithm) (teecsp.AEADContext, error) {
	if err := a.AEADEnabled(algo); err != nil {
		return nil, err
	}
	c := &aeadCtx{algo: algo, reg: a.reg}
	if algo == teecsp.AESCCM {
		c.backend = &ccmState{}
	} else {
		c.backend = &gcmState{}
	}
	return c, nil
}

type aeadCtx struct {
	algo    teecsp.Algorithm
	reg     *registry.Registry
	backend aeadBackend

	mode        teecsp.OperationMode
	tagLen      int
	aadLen      int
	payloadLen  int
	aadDone     int
	payloadDone int
	started     bool
	active      bool
	freed       bool
}

func (c *aeadCtx) Algorithm() teecsp.Algorithm {
	return c.algo
}

func (c *aeadCtx) Init(mode teecsp.OperationMode, key, nonce []byte, tagLen, aadLen, payloadLen int) error {
	if c.freed {
		return teecsp.NewError(teecsp.BadState, "AE context already freed")
	}
	if mode != teecsp.ModeEncrypt && mode != teecsp.ModeDecrypt {
		return teecsp.NewError(teecsp.BadParameters, "Invalid operation mode [%d]", mode)
	}
	if aadLen < 0 || payloadLen < 0 {
		return teecsp.NewError(teecsp.BadParameters, "Invalid declared lengths [%d, %d]", aadLen, payloadLen)
	}
	if c.algo == teecsp.AESCCM && len(key) > ccmMaxKeyLen {
		return teecsp.NewError(teecsp.BadParameters, "Invalid key length [%d]", len(key))
	}

	desc := c.reg.CipherInfo(teecsp.AESECBNoPad, len(key)*8)
	if desc == nil {
		return teecsp.NewError(teecsp.BadParameters, "Invalid key length [%d]", len(key))
	}
	block, err := desc.NewBlock(key)
	if err != nil {
		return teecsp.WrapError(teecsp.BadState, err, "Failed setting key for [%s]", c.algo)
	}
	if err := c.backend.init(block, nonce, tagLen, aadLen, payloadLen); err != nil {
		return teecsp.WrapError(teecsp.BadParameters, err, "Failed initializing [%s]", c.algo)
	}

	c.mode = mode
	c.tagLen = tagLen
	c.aadLen = aadLen
	c.payloadLen = payloadLen
	c.aadDone = 0
	c.payloadDone = 0
	c.started = false
	c.active = true
	return nil
}

func (c *aeadCtx) UpdateAAD(data []byte) error {
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "AE context not initialized")
	}
	if c.started {
		return teecsp.NewError(teecsp.BadState, "AAD supplied after payload processing started")
	}
	if c.aadDone+len(data) > c.aadLen {
		return teecsp.NewError(teecsp.BadParameters, "AAD exceeds the declared length [%d]", c.aadLen)
	}
	c.backend.updateAAD(data)
	c.aadDone += len(data)
	return nil
}

//process在检查所有先决条件后才修改状态
func (c *aeadCtx) process(src, dst []byte) error {
	if len(dst) < len(src) {
		return teecsp.NewError(teecsp.ShortBuffer, "Output buffer too small [%d < %d]", len(dst), len(src))
	}
	if !c.started && c.aadDone != c.aadLen {
		return teecsp.NewError(teecsp.BadState, "AAD incomplete [%d of %d]", c.aadDone, c.aadLen)
	}
	if c.payloadDone+len(src) > c.payloadLen {
		return teecsp.NewError(teecsp.BadParameters, "Payload exceeds the declared length [%d]", c.payloadLen)
	}

	if !c.started {
		c.backend.startPayload()
		c.started = true
	}
	if len(src) > 0 {
		c.backend.updatePayload(c.mode == teecsp.ModeEncrypt, src, dst[:len(src)])
		c.payloadDone += len(src)
	}
	return nil
}

func (c *aeadCtx) UpdatePayload(mode teecsp.OperationMode, src, dst []byte) error {
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "AE context not initialized")
	}
	if mode != c.mode {
		return teecsp.NewError(teecsp.BadParameters, "Operation mode [%s] differs from the one set at init [%s]", mode, c.mode)
	}
	return c.process(src, dst)
}

func (c *aeadCtx) finalChecks(mode teecsp.OperationMode, src []byte) error {
	if !c.active {
		return teecsp.NewError(teecsp.BadState, "AE context not initialized")
	}
	if c.mode != mode {
		return teecsp.NewError(teecsp.BadState, "AE context initialized for %s", c.mode)
	}
	if c.payloadDone+len(src) != c.payloadLen {
		return teecsp.NewError(teecsp.BadParameters, "Payload length [%d] differs from the declared length [%d]", c.payloadDone+len(src), c.payloadLen)
	}
	return nil
}

func (c *aeadCtx) EncFinal(src, dst, tag []byte) (int, error) {
	if err := c.finalChecks(teecsp.ModeEncrypt, src); err != nil {
		return 0, err
	}
	if len(tag) < c.tagLen {
		return 0, teecsp.NewError(teecsp.ShortBuffer, "Tag buffer too small [%d < %d]", len(tag), c.tagLen)
	}
	if err := c.process(src, dst); err != nil {
		return 0, err
	}

	var full [gcmMaxTagLen]byte
	c.backend.tag(full[:])
	copy(tag, full[:c.tagLen])
	c.active = false
	return c.tagLen, nil
}

func (c *aeadCtx) DecFinal(src, dst, tag []byte) error {
	if err := c.finalChecks(teecsp.ModeDecrypt, src); err != nil {
		return err
	}
	if err := c.process(src, dst); err != nil {
		return err
	}

	var full [gcmMaxTagLen]byte
	c.backend.tag(full[:])
	c.active = false
	if subtle.ConstantTimeEq(int32(len(tag)), int32(c.tagLen)) != 1 ||
		subtle.ConstantTimeCompare(full[:c.tagLen], tag) != 1 {
		for i := range dst[:len(src)] {
			dst[i] = 0
		}
		return teecsp.NewError(teecsp.Security, "Tag verification failed")
	}
	return nil
}

func (c *aeadCtx) Final() {
	if c.backend != nil {
		c.backend.wipe()
	}
	c.active = false
}

func (c *aeadCtx) CopyFrom(src teecsp.AEADContext) error {
	s, ok := src.(*aeadCtx)
	if !ok || s == nil {
		return teecsp.NewError(teecsp.BadParameters, "Invalid source context [%T]", src)
	}
	if s.algo != c.algo {
		return teecsp.NewError(teecsp.BadParameters, "Algorithm mismatch [%s != %s]", s.algo, c.algo)
	}
	if c.freed || s.freed {
		return teecsp.NewError(teecsp.BadState, "AE context already freed")
	}
	backend := s.backend.clone()
	*c = *s
	c.backend = backend
	return nil
}

func (c *aeadCtx) released() bool {
	return c.freed
}

func (c *aeadCtx) Free() {
	if c.backend != nil {
		c.backend.wipe()
	}
	c.active = false
	c.freed = true
}
