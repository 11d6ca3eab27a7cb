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
	"reflect"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	"github.com/hyperledger/fabric-teecsp/common/metrics/disabled"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/keysched"
	"github.com/pkg/errors"
)

var (
	logger = flogging.MustGetLogger("teecsp.sw")
)

const (
	familyHash     = "hash"
	familyCipher   = "cipher"
	familyMAC      = "mac"
	familyAEAD     = "aead"
	familyRNG      = "rng"
	familyKeySched = "keysched"
)

//CSP提供了基于teecsp.CSP接口的通用实现。
//它按算法标识符分派到以下包装器：Hasher、BlockCipher、
//Authenticator、AuthEncryptor。没有注册包装器的算法返回NotSupported。
//
//上下文不加锁；同一上下文上的调用必须由调用者串行化。
type CSP struct {
	rng     RNG
	metrics *Metrics
	logger  *flogging.Logger

	Hashers        map[teecsp.Algorithm]Hasher
	BlockCiphers   map[teecsp.Algorithm]BlockCipher
	Authenticators map[teecsp.Algorithm]Authenticator
	AuthEncryptors map[teecsp.Algorithm]AuthEncryptor
}

//new返回没有任何包装器的CSP。m为nil时不记录度量。
func New(rng RNG, m *Metrics) (*CSP, error) {
	if rng == nil {
		return nil, errors.New("Invalid RNG instance. It must be different from nil.")
	}
	if m == nil {
		m = NewMetrics(&disabled.Provider{})
	}

	return &CSP{
		rng:            rng,
		metrics:        m,
		logger:         logger,
		Hashers:        make(map[teecsp.Algorithm]Hasher),
		BlockCiphers:   make(map[teecsp.Algorithm]BlockCipher),
		Authenticators: make(map[teecsp.Algorithm]Authenticator),
		AuthEncryptors: make(map[teecsp.Algorithm]AuthEncryptor),
	}, nil
}

//setlogger替换用于报告失败的记录器。
func (csp *CSP) SetLogger(l *flogging.Logger) {
	if l != nil {
		csp.logger = l
	}
}

//AddWrapper将传递的算法绑定到传递的包装器。
//包装器必须是以下接口之一的实例：Hasher、BlockCipher、Authenticator、AuthEncryptor。
func (csp *CSP) AddWrapper(algo teecsp.Algorithm, w interface{}) error {
	if w == nil {
		return errors.Errorf("wrapper cannot be nil")
	}
	switch dt := w.(type) {
	case Hasher:
		csp.Hashers[algo] = dt
	case BlockCipher:
		csp.BlockCiphers[algo] = dt
	case Authenticator:
		csp.Authenticators[algo] = dt
	case AuthEncryptor:
		csp.AuthEncryptors[algo] = dt
	default:
		return errors.Errorf("wrapper type not valid, must be on of: Hasher, BlockCipher, Authenticator, AuthEncryptor")
	}
	return nil
}

//done记录操作结果。BadState表示后端意外失败，以警告级别记录。
func (csp *CSP) done(family, operation string, algo teecsp.Algorithm, err error) error {
	if err != nil {
		if teecsp.IsKind(err, teecsp.BadState) {
			csp.logger.Warnf("%s %s [%s] failed: %s", family, operation, algo, err)
		} else {
			csp.logger.Debugf("%s %s [%s] failed: %s", family, operation, algo, err)
		}
	}
	return csp.metrics.observe(family, operation, err)
}

//releasedContext由本包的上下文实现，重复释放不再计入存活上下文数
type releasedContext interface {
	released() bool
}

func (csp *CSP) release(family string, ctx interface{ Free() }) {
	if r, ok := ctx.(releasedContext); ok && r.released() {
		return
	}
	ctx.Free()
	csp.metrics.LiveContexts.With("family", family).Add(-1)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

type algorithmBound interface {
	Algorithm() teecsp.Algorithm
}

func checkContext(ctx algorithmBound, algo teecsp.Algorithm) error {
	if isNil(ctx) {
		return teecsp.NewError(teecsp.BadParameters, "Invalid context. It must not be nil.")
	}
	if ctx.Algorithm() != algo {
		return teecsp.NewError(teecsp.BadParameters, "Context algorithm [%s] differs from [%s]", ctx.Algorithm(), algo)
	}
	return nil
}

func unsupported(algo teecsp.Algorithm) error {
	return teecsp.NewError(teecsp.NotSupported, "Unsupported algorithm [%s]", algo)
}

//HashCtxSize返回算法的摘要上下文大小。
func (csp *CSP) HashCtxSize(algo teecsp.Algorithm) (int, error) {
	h, found := csp.Hashers[algo]
	if !found {
		return 0, unsupported(algo)
	}
	return h.HashCtxSize(algo)
}

func (csp *CSP) HashAllocCtx(algo teecsp.Algorithm) (teecsp.HashContext, error) {
	h, found := csp.Hashers[algo]
	if !found {
		return nil, csp.done(familyHash, "alloc", algo, unsupported(algo))
	}
	ctx, err := h.AllocHashCtx(algo)
	if err != nil {
		return nil, csp.done(familyHash, "alloc", algo, err)
	}
	csp.metrics.LiveContexts.With("family", familyHash).Add(1)
	return ctx, csp.done(familyHash, "alloc", algo, nil)
}

//HashFreeCtx释放ctx。算法无法解析表示配置不一致，进程将终止。
func (csp *CSP) HashFreeCtx(ctx teecsp.HashContext, algo teecsp.Algorithm) {
	if _, err := csp.HashCtxSize(algo); err != nil {
		csp.logger.Panicf("Freeing hash context of unresolvable algorithm [%s]: %s", algo, err)
	}
	if isNil(ctx) {
		return
	}
	csp.release(familyHash, ctx)
}

func (csp *CSP) HashCopyState(dst, src teecsp.HashContext, algo teecsp.Algorithm) error {
	if err := checkContext(dst, algo); err != nil {
		return csp.done(familyHash, "copy", algo, err)
	}
	if err := checkContext(src, algo); err != nil {
		return csp.done(familyHash, "copy", algo, err)
	}
	return csp.done(familyHash, "copy", algo, dst.CopyFrom(src))
}

func (csp *CSP) HashInit(ctx teecsp.HashContext, algo teecsp.Algorithm) error {
	if _, found := csp.Hashers[algo]; !found {
		return csp.done(familyHash, "init", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyHash, "init", algo, err)
	}
	return csp.done(familyHash, "init", algo, ctx.Init())
}

func (csp *CSP) HashUpdate(ctx teecsp.HashContext, algo teecsp.Algorithm, data []byte) error {
	if _, found := csp.Hashers[algo]; !found {
		return csp.done(familyHash, "update", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyHash, "update", algo, err)
	}
	return csp.done(familyHash, "update", algo, ctx.Update(data))
}

func (csp *CSP) HashFinal(ctx teecsp.HashContext, algo teecsp.Algorithm, digest []byte) error {
	if _, found := csp.Hashers[algo]; !found {
		return csp.done(familyHash, "final", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyHash, "final", algo, err)
	}
	return csp.done(familyHash, "final", algo, ctx.Final(digest))
}

func (csp *CSP) CipherCtxSize(algo teecsp.Algorithm) (int, error) {
	c, found := csp.BlockCiphers[algo]
	if !found {
		return 0, unsupported(algo)
	}
	return c.CipherCtxSize(algo)
}

func (csp *CSP) CipherAllocCtx(algo teecsp.Algorithm) (teecsp.CipherContext, error) {
	c, found := csp.BlockCiphers[algo]
	if !found {
		return nil, csp.done(familyCipher, "alloc", algo, unsupported(algo))
	}
	ctx, err := c.AllocCipherCtx(algo)
	if err != nil {
		return nil, csp.done(familyCipher, "alloc", algo, err)
	}
	csp.metrics.LiveContexts.With("family", familyCipher).Add(1)
	return ctx, csp.done(familyCipher, "alloc", algo, nil)
}

func (csp *CSP) CipherFreeCtx(ctx teecsp.CipherContext, algo teecsp.Algorithm) {
	if _, err := csp.CipherCtxSize(algo); err != nil {
		csp.logger.Panicf("Freeing cipher context of unresolvable algorithm [%s]: %s", algo, err)
	}
	if isNil(ctx) {
		return
	}
	csp.release(familyCipher, ctx)
}

func (csp *CSP) CipherCopyState(dst, src teecsp.CipherContext, algo teecsp.Algorithm) error {
	if err := checkContext(dst, algo); err != nil {
		return csp.done(familyCipher, "copy", algo, err)
	}
	if err := checkContext(src, algo); err != nil {
		return csp.done(familyCipher, "copy", algo, err)
	}
	return csp.done(familyCipher, "copy", algo, dst.CopyFrom(src))
}

func (csp *CSP) CipherInit(ctx teecsp.CipherContext, algo teecsp.Algorithm, mode teecsp.OperationMode, key1, key2, iv []byte) error {
	if _, found := csp.BlockCiphers[algo]; !found {
		return csp.done(familyCipher, "init", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyCipher, "init", algo, err)
	}
	return csp.done(familyCipher, "init", algo, ctx.Init(mode, key1, key2, iv))
}

func (csp *CSP) CipherUpdate(ctx teecsp.CipherContext, algo teecsp.Algorithm, mode teecsp.OperationMode, lastBlock bool, src, dst []byte) error {
	if _, found := csp.BlockCiphers[algo]; !found {
		return csp.done(familyCipher, "update", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyCipher, "update", algo, err)
	}
	return csp.done(familyCipher, "update", algo, ctx.Update(mode, lastBlock, src, dst))
}

//CipherFinal不执行任何操作；无效的上下文被忽略。
func (csp *CSP) CipherFinal(ctx teecsp.CipherContext, algo teecsp.Algorithm) {
	if checkContext(ctx, algo) != nil {
		return
	}
	ctx.Final()
}

func (csp *CSP) CipherBlockSize(algo teecsp.Algorithm) (int, error) {
	c, found := csp.BlockCiphers[algo]
	if !found {
		return 0, unsupported(algo)
	}
	return c.BlockSize(algo)
}

func (csp *CSP) MACCtxSize(algo teecsp.Algorithm) (int, error) {
	a, found := csp.Authenticators[algo]
	if !found {
		return 0, unsupported(algo)
	}
	return a.MACCtxSize(algo)
}

func (csp *CSP) MACAllocCtx(algo teecsp.Algorithm) (teecsp.MACContext, error) {
	a, found := csp.Authenticators[algo]
	if !found {
		return nil, csp.done(familyMAC, "alloc", algo, unsupported(algo))
	}
	ctx, err := a.AllocMACCtx(algo)
	if err != nil {
		return nil, csp.done(familyMAC, "alloc", algo, err)
	}
	csp.metrics.LiveContexts.With("family", familyMAC).Add(1)
	return ctx, csp.done(familyMAC, "alloc", algo, nil)
}

func (csp *CSP) MACFreeCtx(ctx teecsp.MACContext, algo teecsp.Algorithm) {
	if _, err := csp.MACCtxSize(algo); err != nil {
		csp.logger.Panicf("Freeing MAC context of unresolvable algorithm [%s]: %s", algo, err)
	}
	if isNil(ctx) {
		return
	}
	csp.release(familyMAC, ctx)
}

func (csp *CSP) MACCopyState(dst, src teecsp.MACContext, algo teecsp.Algorithm) error {
	if err := checkContext(dst, algo); err != nil {
		return csp.done(familyMAC, "copy", algo, err)
	}
	if err := checkContext(src, algo); err != nil {
		return csp.done(familyMAC, "copy", algo, err)
	}
	return csp.done(familyMAC, "copy", algo, dst.CopyFrom(src))
}

func (csp *CSP) MACInit(ctx teecsp.MACContext, algo teecsp.Algorithm, key []byte) error {
	if _, found := csp.Authenticators[algo]; !found {
		return csp.done(familyMAC, "init", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyMAC, "init", algo, err)
	}
	return csp.done(familyMAC, "init", algo, ctx.Init(key))
}

//MACUpdate对空数据直接成功。
func (csp *CSP) MACUpdate(ctx teecsp.MACContext, algo teecsp.Algorithm, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, found := csp.Authenticators[algo]; !found {
		return csp.done(familyMAC, "update", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyMAC, "update", algo, err)
	}
	return csp.done(familyMAC, "update", algo, ctx.Update(data))
}

func (csp *CSP) MACFinal(ctx teecsp.MACContext, algo teecsp.Algorithm, mac []byte) error {
	if _, found := csp.Authenticators[algo]; !found {
		return csp.done(familyMAC, "final", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyMAC, "final", algo, err)
	}
	return csp.done(familyMAC, "final", algo, ctx.Final(mac))
}

func (csp *CSP) AEADAllocCtx(algo teecsp.Algorithm) (teecsp.AEADContext, error) {
	a, found := csp.AuthEncryptors[algo]
	if !found {
		return nil, csp.done(familyAEAD, "alloc", algo, unsupported(algo))
	}
	ctx, err := a.AllocAEADCtx(algo)
	if err != nil {
		return nil, csp.done(familyAEAD, "alloc", algo, err)
	}
	csp.metrics.LiveContexts.With("family", familyAEAD).Add(1)
	return ctx, csp.done(familyAEAD, "alloc", algo, nil)
}

func (csp *CSP) AEADFreeCtx(ctx teecsp.AEADContext, algo teecsp.Algorithm) {
	a, found := csp.AuthEncryptors[algo]
	if !found {
		csp.logger.Panicf("Freeing AE context of unresolvable algorithm [%s]", algo)
	}
	if err := a.AEADEnabled(algo); err != nil {
		csp.logger.Panicf("Freeing AE context of unresolvable algorithm [%s]: %s", algo, err)
	}
	if isNil(ctx) {
		return
	}
	csp.release(familyAEAD, ctx)
}

func (csp *CSP) AEADCopyState(dst, src teecsp.AEADContext, algo teecsp.Algorithm) error {
	if err := checkContext(dst, algo); err != nil {
		return csp.done(familyAEAD, "copy", algo, err)
	}
	if err := checkContext(src, algo); err != nil {
		return csp.done(familyAEAD, "copy", algo, err)
	}
	return csp.done(familyAEAD, "copy", algo, dst.CopyFrom(src))
}

func (csp *CSP) AEADInit(ctx teecsp.AEADContext, algo teecsp.Algorithm, mode teecsp.OperationMode, key, nonce []byte, tagLen, aadLen, payloadLen int) error {
	if _, found := csp.AuthEncryptors[algo]; !found {
		return csp.done(familyAEAD, "init", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyAEAD, "init", algo, err)
	}
	return csp.done(familyAEAD, "init", algo, ctx.Init(mode, key, nonce, tagLen, aadLen, payloadLen))
}

func (csp *CSP) AEADUpdateAAD(ctx teecsp.AEADContext, algo teecsp.Algorithm, data []byte) error {
	if _, found := csp.AuthEncryptors[algo]; !found {
		return csp.done(familyAEAD, "update_aad", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyAEAD, "update_aad", algo, err)
	}
	return csp.done(familyAEAD, "update_aad", algo, ctx.UpdateAAD(data))
}

func (csp *CSP) AEADUpdatePayload(ctx teecsp.AEADContext, algo teecsp.Algorithm, mode teecsp.OperationMode, src, dst []byte) error {
	if _, found := csp.AuthEncryptors[algo]; !found {
		return csp.done(familyAEAD, "update_payload", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyAEAD, "update_payload", algo, err)
	}
	return csp.done(familyAEAD, "update_payload", algo, ctx.UpdatePayload(mode, src, dst))
}

func (csp *CSP) AEADEncFinal(ctx teecsp.AEADContext, algo teecsp.Algorithm, src, dst, tag []byte) (int, error) {
	if _, found := csp.AuthEncryptors[algo]; !found {
		return 0, csp.done(familyAEAD, "enc_final", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return 0, csp.done(familyAEAD, "enc_final", algo, err)
	}
	n, err := ctx.EncFinal(src, dst, tag)
	return n, csp.done(familyAEAD, "enc_final", algo, err)
}

//AEADDecFinal在标签不匹配时返回Security。
func (csp *CSP) AEADDecFinal(ctx teecsp.AEADContext, algo teecsp.Algorithm, src, dst, tag []byte) error {
	if _, found := csp.AuthEncryptors[algo]; !found {
		return csp.done(familyAEAD, "dec_final", algo, unsupported(algo))
	}
	if err := checkContext(ctx, algo); err != nil {
		return csp.done(familyAEAD, "dec_final", algo, err)
	}
	err := ctx.DecFinal(src, dst, tag)
	if teecsp.IsKind(err, teecsp.Security) {
		csp.logger.Warnf("Authentication tag mismatch for [%s]", algo)
	}
	return csp.done(familyAEAD, "dec_final", algo, err)
}

func (csp *CSP) AEADFinal(ctx teecsp.AEADContext, algo teecsp.Algorithm) {
	if checkContext(ctx, algo) != nil {
		return
	}
	ctx.Final()
}

func (csp *CSP) RNGRead(buf []byte) error {
	csp.metrics.RNGRequests.Observe(float64(len(buf)))
	if len(buf) == 0 {
		return nil
	}
	n, err := csp.rng.Read(buf)
	if err == nil && n != len(buf) {
		err = teecsp.NewError(teecsp.BadState, "Short random read [%d of %d]", n, len(buf))
	}
	if err != nil && teecsp.KindOf(err) == teecsp.Generic {
		err = teecsp.WrapError(teecsp.BadState, err, "Failed generating random bytes")
	}
	if err != nil {
		csp.logger.Errorf("Random generation failed: %s", err)
	}
	return csp.metrics.observe(familyRNG, "read", err)
}

func (csp *CSP) RNGAddEntropy(data []byte) error {
	return csp.metrics.observe(familyRNG, "add_entropy", csp.rng.AddEntropy(data))
}

func (csp *CSP) AESExpandEncKey(key, encKey []byte) (int, error) {
	rounds, err := keysched.ExpandEncKey(key, encKey)
	return rounds, csp.metrics.observe(familyKeySched, "expand", err)
}

func (csp *CSP) AESEncBlock(encKey []byte, rounds int, src, dst []byte) {
	keysched.EncryptBlock(encKey, rounds, dst, src)
}
