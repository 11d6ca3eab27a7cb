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
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"math/rand"
	"testing"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func stdBlock(t *testing.T, algo teecsp.Algorithm, key []byte) cipher.Block {
	var (
		b   cipher.Block
		err error
	)
	switch algo.MainAlgorithm() {
	case teecsp.MainAES:
		b, err = aes.NewCipher(key)
	case teecsp.MainDES:
		b, err = des.NewCipher(key)
	case teecsp.MainDES3:
		b, err = des.NewTripleDESCipher(key)
	}
	require.NoError(t, err)
	return b
}

//stdEncrypt使用标准库计算期望的密文
func stdEncrypt(t *testing.T, algo teecsp.Algorithm, key, iv, src []byte) []byte {
	b := stdBlock(t, algo, key)
	dst := make([]byte, len(src))
	switch algo.ChainMode() {
	case teecsp.ChainECBNoPad:
		for i := 0; i < len(src); i += b.BlockSize() {
			b.Encrypt(dst[i:], src[i:])
		}
	case teecsp.ChainCBCNoPad:
		cipher.NewCBCEncrypter(b, iv).CryptBlocks(dst, src)
	case teecsp.ChainCTR:
		cipher.NewCTR(b, iv).XORKeyStream(dst, src)
	}
	return dst
}

func cipherOnce(t *testing.T, csp *CSP, algo teecsp.Algorithm, mode teecsp.OperationMode, key, iv []byte, chunks ...[]byte) []byte {
	ctx, err := csp.CipherAllocCtx(algo)
	require.NoError(t, err)
	defer csp.CipherFreeCtx(ctx, algo)

	require.NoError(t, csp.CipherInit(ctx, algo, mode, key, nil, iv))
	var out []byte
	for _, c := range chunks {
		dst := make([]byte, len(c))
		require.NoError(t, csp.CipherUpdate(ctx, algo, mode, false, c, dst))
		out = append(out, dst...)
	}
	csp.CipherFinal(ctx, algo)
	return out
}

func TestCipherMatchesStandardLibrary(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		algo   teecsp.Algorithm
		keyLen int
	}{
		{teecsp.AESECBNoPad, 16},
		{teecsp.AESECBNoPad, 24},
		{teecsp.AESECBNoPad, 32},
		{teecsp.AESCBCNoPad, 16},
		{teecsp.AESCBCNoPad, 32},
		{teecsp.AESCTR, 16},
		{teecsp.AESCTR, 24},
		{teecsp.AESCTR, 32},
		{teecsp.DESECBNoPad, 8},
		{teecsp.DESCBCNoPad, 8},
		{teecsp.DES3ECBNoPad, 24},
		{teecsp.DES3CBCNoPad, 24},
	}

	for _, tt := range tests {
		bs, err := csp.CipherBlockSize(tt.algo)
		require.NoError(t, err)
		key := randomBytes(r, tt.keyLen)
		iv := randomBytes(r, bs)
		msg := randomBytes(r, 8*bs)

		expected := stdEncrypt(t, tt.algo, key, iv, msg)
		ct := cipherOnce(t, csp, tt.algo, teecsp.ModeEncrypt, key, iv, msg)
		assert.Equal(t, expected, ct, "%s/%d", tt.algo, tt.keyLen)

		pt := cipherOnce(t, csp, tt.algo, teecsp.ModeDecrypt, key, iv, ct)
		assert.Equal(t, msg, pt, "%s/%d", tt.algo, tt.keyLen)

		//分块处理与一次处理结果相同
		split := cipherOnce(t, csp, tt.algo, teecsp.ModeEncrypt, key, iv, msg[:2*bs], msg[2*bs:3*bs], msg[3*bs:])
		assert.Equal(t, expected, split, "%s/%d split", tt.algo, tt.keyLen)
	}
}

func TestCipherCTRStreamsAcrossUpdates(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	key := unhex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	iv := unhex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")
	msg := bytes.Repeat([]byte{0x5a}, 64)

	whole := cipherOnce(t, csp, teecsp.AESCTR, teecsp.ModeEncrypt, key, iv, msg)
	halves := cipherOnce(t, csp, teecsp.AESCTR, teecsp.ModeEncrypt, key, iv, msg[:32], msg[32:])
	odd := cipherOnce(t, csp, teecsp.AESCTR, teecsp.ModeEncrypt, key, iv, msg[:7], msg[7:9], msg[9:])
	assert.Equal(t, whole, halves)
	assert.Equal(t, whole, odd)

	//NIST SP 800-38A F.5.1的第一个块
	first := cipherOnce(t, csp, teecsp.AESCTR, teecsp.ModeEncrypt, key, iv, unhex(t, "6bc1bee22e409f96e93d7e117393172a"))
	assert.Equal(t, unhex(t, "874d6191b620e3261bef6864990db6ce"), first)
}

func TestCipherUnalignedBuffers(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	r := rand.New(rand.NewSource(9))
	key := randomBytes(r, 16)
	iv := randomBytes(r, 16)
	buf := randomBytes(r, 3*16+1)
	msg := buf[1:]

	for _, algo := range []teecsp.Algorithm{teecsp.AESCBCNoPad, teecsp.AESCTR} {
		expected := stdEncrypt(t, algo, key, iv, msg)

		ctx, err := csp.CipherAllocCtx(algo)
		require.NoError(t, err)
		require.NoError(t, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key, nil, iv))
		out := make([]byte, len(msg)+3)[3:]
		require.NoError(t, csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, false, msg, out))
		csp.CipherFreeCtx(ctx, algo)
		assert.Equal(t, expected, out, algo.String())

		ct := append([]byte{0}, out...)[1:]
		pt := cipherOnce(t, csp, algo, teecsp.ModeDecrypt, key, iv, ct[:16], ct[16:])
		assert.Equal(t, msg, pt, algo.String())
	}
}

func TestCipherCounterCarry(t *testing.T) {
	t.Parallel()
	ctr := []byte{0x00, 0xff, 0xff}
	incCounter(ctr)
	assert.Equal(t, []byte{0x01, 0x00, 0x00}, ctr)
}

func TestCipherBlockAlignment(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	key := make([]byte, 16)

	for _, algo := range []teecsp.Algorithm{teecsp.AESECBNoPad, teecsp.AESCBCNoPad} {
		ctx, err := csp.CipherAllocCtx(algo)
		require.NoError(t, err)
		require.NoError(t, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key, nil, make([]byte, 16)))
		err = csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, false, make([]byte, 15), make([]byte, 15))
		assertKind(t, teecsp.BadParameters, err, algo.String())
		csp.CipherFreeCtx(ctx, algo)
	}
}

func TestCipherRebindsKeySize(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	algo := teecsp.AESCBCNoPad

	ctx, err := csp.CipherAllocCtx(algo)
	require.NoError(t, err)
	defer csp.CipherFreeCtx(ctx, algo)

	//分配时假定128位密钥，init可以绑定到256位
	key := bytes.Repeat([]byte{1}, 32)
	iv := make([]byte, 16)
	require.NoError(t, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key, nil, iv))
	dst := make([]byte, 16)
	require.NoError(t, csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, true, make([]byte, 16), dst))
	assert.Equal(t, stdEncrypt(t, algo, key, iv, make([]byte, 16)), dst)

	//然后再回到128位
	require.NoError(t, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key[:16], nil, iv))

	assertKind(t, teecsp.NotSupported, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key[:20], nil, iv))
	assertKind(t, teecsp.BadState, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key[:16], nil, iv[:8]))
	assertKind(t, teecsp.BadParameters, csp.CipherInit(ctx, algo, teecsp.OperationMode(5), key[:16], nil, iv))
}

func TestCipherDES3TwoKey(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	r := rand.New(rand.NewSource(3))
	k := randomBytes(r, 16)
	msg := randomBytes(r, 32)

	twoKey := cipherOnce(t, csp, teecsp.DES3ECBNoPad, teecsp.ModeEncrypt, k, nil, msg)
	threeKey := cipherOnce(t, csp, teecsp.DES3ECBNoPad, teecsp.ModeEncrypt, append(append([]byte{}, k...), k[:8]...), nil, msg)
	assert.Equal(t, threeKey, twoKey)
}

func TestCipherContextErrors(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	algo := teecsp.AESCTR
	key := make([]byte, 16)

	ctx, err := csp.CipherAllocCtx(algo)
	require.NoError(t, err)
	assert.Equal(t, algo, ctx.Algorithm())

	assertKind(t, teecsp.BadState, csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, false, make([]byte, 4), make([]byte, 4)))

	require.NoError(t, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key, nil, make([]byte, 16)))
	assertKind(t, teecsp.BadParameters, csp.CipherUpdate(ctx, algo, teecsp.ModeDecrypt, false, make([]byte, 4), make([]byte, 4)))
	assertKind(t, teecsp.ShortBuffer, csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, false, make([]byte, 4), make([]byte, 3)))
	assertKind(t, teecsp.BadParameters, csp.CipherUpdate(ctx, teecsp.AESECBNoPad, teecsp.ModeEncrypt, false, nil, nil))
	assertKind(t, teecsp.BadParameters, csp.CipherUpdate(nil, algo, teecsp.ModeEncrypt, false, nil, nil))

	csp.CipherFreeCtx(ctx, algo)
	assertKind(t, teecsp.BadState, csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, key, nil, nil))
}

func TestCipherCopyState(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	algo := teecsp.AESCTR
	key := bytes.Repeat([]byte{7}, 16)
	iv := make([]byte, 16)
	msg := bytes.Repeat([]byte{0x11}, 48)

	a, err := csp.CipherAllocCtx(algo)
	require.NoError(t, err)
	b, err := csp.CipherAllocCtx(algo)
	require.NoError(t, err)
	require.NoError(t, csp.CipherInit(a, algo, teecsp.ModeEncrypt, key, nil, iv))

	head := make([]byte, 20)
	require.NoError(t, csp.CipherUpdate(a, algo, teecsp.ModeEncrypt, false, msg[:20], head))
	require.NoError(t, csp.CipherCopyState(b, a, algo))

	tailA := make([]byte, 28)
	tailB := make([]byte, 28)
	require.NoError(t, csp.CipherUpdate(a, algo, teecsp.ModeEncrypt, false, msg[20:], tailA))
	require.NoError(t, csp.CipherUpdate(b, algo, teecsp.ModeEncrypt, false, msg[20:], tailB))
	assert.Equal(t, tailA, tailB)
	assert.Equal(t, stdEncrypt(t, algo, key, iv, msg), append(head, tailA...))

	c, err := csp.CipherAllocCtx(teecsp.AESCBCNoPad)
	require.NoError(t, err)
	assertKind(t, teecsp.BadParameters, c.CopyFrom(a))
}

func TestCipherNotSupported(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t, registry.FeatureAES, registry.FeatureCBC)

	for _, algo := range []teecsp.Algorithm{
		teecsp.AESECBNoPad, teecsp.AESCTR, teecsp.AESXTS, teecsp.AESCTS,
		teecsp.DESCBCNoPad, teecsp.DES3CBCNoPad, teecsp.SHA256,
	} {
		_, err := csp.CipherCtxSize(algo)
		assertKind(t, teecsp.NotSupported, err, algo.String())
		ctx, err := csp.CipherAllocCtx(algo)
		assertKind(t, teecsp.NotSupported, err, algo.String())
		assert.Nil(t, ctx)
	}

	size, err := csp.CipherCtxSize(teecsp.AESCBCNoPad)
	assert.NoError(t, err)
	assert.Equal(t, cipherStateSize, size)

	bs, err := csp.CipherBlockSize(teecsp.AESCBCNoPad)
	assert.NoError(t, err)
	assert.Equal(t, 16, bs)
	_, err = csp.CipherBlockSize(teecsp.DESCBCNoPad)
	assertKind(t, teecsp.NotSupported, err)

	all := newTestCSP(t)
	bs, err = all.CipherBlockSize(teecsp.DES3ECBNoPad)
	assert.NoError(t, err)
	assert.Equal(t, 8, bs)
}
