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
	"crypto/aes"
	"crypto/cipher"
	"math/rand"
	"testing"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aeadCase struct {
	key, nonce, aad, payload []byte
	tagLen                   int
}

//seal分段提供AAD和有效载荷，返回密文和标签
func seal(t *testing.T, csp *CSP, algo teecsp.Algorithm, c aeadCase, split int) ([]byte, []byte) {
	ctx, err := csp.AEADAllocCtx(algo)
	require.NoError(t, err)
	defer csp.AEADFreeCtx(ctx, algo)

	require.NoError(t, csp.AEADInit(ctx, algo, teecsp.ModeEncrypt, c.key, c.nonce, c.tagLen, len(c.aad), len(c.payload)))
	for i := 0; i < len(c.aad); i += split {
		end := i + split
		if end > len(c.aad) {
			end = len(c.aad)
		}
		require.NoError(t, csp.AEADUpdateAAD(ctx, algo, c.aad[i:end]))
	}

	ct := make([]byte, len(c.payload))
	last := len(c.payload) - len(c.payload)%split
	if last == len(c.payload) && last > 0 {
		last -= split
	}
	for i := 0; i < last; i += split {
		require.NoError(t, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeEncrypt, c.payload[i:i+split], ct[i:i+split]))
	}
	tag := make([]byte, 16)
	n, err := csp.AEADEncFinal(ctx, algo, c.payload[last:], ct[last:], tag)
	require.NoError(t, err)
	assert.Equal(t, c.tagLen, n)
	csp.AEADFinal(ctx, algo)
	return ct, tag[:n]
}

func unseal(t *testing.T, csp *CSP, algo teecsp.Algorithm, c aeadCase, ct, tag []byte) ([]byte, error) {
	ctx, err := csp.AEADAllocCtx(algo)
	require.NoError(t, err)
	defer csp.AEADFreeCtx(ctx, algo)

	require.NoError(t, csp.AEADInit(ctx, algo, teecsp.ModeDecrypt, c.key, c.nonce, c.tagLen, len(c.aad), len(ct)))
	require.NoError(t, csp.AEADUpdateAAD(ctx, algo, c.aad))
	pt := make([]byte, len(ct))
	half := len(ct) / 2
	require.NoError(t, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeDecrypt, ct[:half], pt[:half]))
	err = csp.AEADDecFinal(ctx, algo, ct[half:], pt[half:], tag)
	return pt, err
}

func TestGCMMatchesStandardLibrary(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	r := rand.New(rand.NewSource(5))

	for _, keyLen := range []int{16, 24, 32} {
		for _, nonceLen := range []int{12, 8, 60} {
			for _, tagLen := range []int{12, 16} {
				if nonceLen != 12 && tagLen != 16 {
					continue
				}
				for _, sizes := range [][2]int{{0, 0}, {13, 0}, {0, 31}, {20, 64}, {5, 100}} {
					c := aeadCase{
						key:     randomBytes(r, keyLen),
						nonce:   randomBytes(r, nonceLen),
						aad:     randomBytes(r, sizes[0]),
						payload: randomBytes(r, sizes[1]),
						tagLen:  tagLen,
					}

					block, err := aes.NewCipher(c.key)
					require.NoError(t, err)
					var gcm cipher.AEAD
					if nonceLen == 12 {
						gcm, err = cipher.NewGCMWithTagSize(block, tagLen)
					} else {
						gcm, err = cipher.NewGCMWithNonceSize(block, nonceLen)
					}
					require.NoError(t, err)
					sealed := gcm.Seal(nil, c.nonce, c.payload, c.aad)

					ct, tag := seal(t, csp, teecsp.AESGCM, c, 7)
					assert.Equal(t, sealed[:len(c.payload)], ct, "key %d nonce %d tag %d sizes %v", keyLen, nonceLen, tagLen, sizes)
					assert.Equal(t, sealed[len(c.payload):], tag, "key %d nonce %d tag %d sizes %v", keyLen, nonceLen, tagLen, sizes)

					pt, err := unseal(t, csp, teecsp.AESGCM, c, ct, tag)
					assert.NoError(t, err)
					assert.Equal(t, c.payload, pt)
				}
			}
		}
	}
}

func TestCCMVectors(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)

	//NIST SP 800-38C附录C
	tests := []struct {
		nonce, aad, payload, expected string
		tagLen                        int
	}{
		{
			nonce:    "10111213141516",
			aad:      "0001020304050607",
			payload:  "20212223",
			tagLen:   4,
			expected: "7162015b4dac255d",
		},
		{
			nonce:    "1011121314151617",
			aad:      "000102030405060708090a0b0c0d0e0f",
			payload:  "202122232425262728292a2b2c2d2e2f",
			tagLen:   6,
			expected: "d2a1f0e051ea5f62081a7792073d593d1fc64fbfaccd",
		},
	}

	for _, tt := range tests {
		c := aeadCase{
			key:     unhex(t, "404142434445464748494a4b4c4d4e4f"),
			nonce:   unhex(t, tt.nonce),
			aad:     unhex(t, tt.aad),
			payload: unhex(t, tt.payload),
			tagLen:  tt.tagLen,
		}
		for _, split := range []int{1, 3, 16} {
			ct, tag := seal(t, csp, teecsp.AESCCM, c, split)
			assert.Equal(t, unhex(t, tt.expected), append(ct, tag...), "split %d", split)

			pt, err := unseal(t, csp, teecsp.AESCCM, c, ct, tag)
			assert.NoError(t, err)
			assert.Equal(t, c.payload, pt)
		}
	}
}

func TestAEADTagMismatch(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)

	for _, algo := range []teecsp.Algorithm{teecsp.AESGCM, teecsp.AESCCM} {
		c := aeadCase{
			key:     make([]byte, 16),
			nonce:   make([]byte, 12),
			aad:     []byte("header"),
			payload: []byte("attack at dawn, not at dusk"),
			tagLen:  16,
		}
		ct, tag := seal(t, csp, algo, c, 4)

		tag[0] ^= 0x80
		pt, err := unseal(t, csp, algo, c, ct, tag)
		assertKind(t, teecsp.Security, err, algo.String())
		assert.Equal(t, make([]byte, len(ct)-len(ct)/2), pt[len(ct)/2:], algo.String())

		tag[0] ^= 0x80
		_, err = unseal(t, csp, algo, c, ct, tag[:12])
		assertKind(t, teecsp.Security, err, algo.String())

		ct[0] ^= 1
		_, err = unseal(t, csp, algo, c, ct, tag)
		assertKind(t, teecsp.Security, err, algo.String())
	}
}

func TestAEADOrdering(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	algo := teecsp.AESGCM
	key := make([]byte, 16)
	nonce := make([]byte, 12)
	buf := make([]byte, 32)

	ctx, err := csp.AEADAllocCtx(algo)
	require.NoError(t, err)
	defer csp.AEADFreeCtx(ctx, algo)

	assertKind(t, teecsp.BadState, csp.AEADUpdateAAD(ctx, algo, []byte("a")))

	require.NoError(t, csp.AEADInit(ctx, algo, teecsp.ModeEncrypt, key, nonce, 16, 4, 8))

	//AAD必须在有效载荷之前完整提供
	assertKind(t, teecsp.BadState, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeEncrypt, buf[:4], buf[:4]))
	assertKind(t, teecsp.BadParameters, csp.AEADUpdateAAD(ctx, algo, []byte("12345")))
	require.NoError(t, csp.AEADUpdateAAD(ctx, algo, []byte("1234")))

	assertKind(t, teecsp.BadParameters, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeDecrypt, buf[:4], buf[:4]))
	assertKind(t, teecsp.ShortBuffer, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeEncrypt, buf[:4], buf[:3]))
	assertKind(t, teecsp.BadParameters, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeEncrypt, buf[:9], buf[:9]))
	require.NoError(t, csp.AEADUpdatePayload(ctx, algo, teecsp.ModeEncrypt, buf[:4], buf[:4]))
	assertKind(t, teecsp.BadState, csp.AEADUpdateAAD(ctx, algo, nil))

	//声明的有效载荷长度必须在final时完全匹配
	_, err = csp.AEADEncFinal(ctx, algo, buf[:2], buf[:2], make([]byte, 16))
	assertKind(t, teecsp.BadParameters, err)
	_, err = csp.AEADEncFinal(ctx, algo, buf[:4], buf[:4], make([]byte, 8))
	assertKind(t, teecsp.ShortBuffer, err)
	assertKind(t, teecsp.BadState, csp.AEADDecFinal(ctx, algo, buf[:4], buf[:4], make([]byte, 16)))

	n, err := csp.AEADEncFinal(ctx, algo, buf[:4], buf[:4], make([]byte, 16))
	assert.NoError(t, err)
	assert.Equal(t, 16, n)

	//final之后上下文必须重新init
	_, err = csp.AEADEncFinal(ctx, algo, nil, nil, make([]byte, 16))
	assertKind(t, teecsp.BadState, err)
}

func TestAEADInitParameters(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)
	key := make([]byte, 16)

	tests := []struct {
		algo     teecsp.Algorithm
		key      []byte
		nonceLen int
		tagLen   int
		payload  int
	}{
		{teecsp.AESGCM, key, 12, 8, 0},
		{teecsp.AESGCM, key, 12, 17, 0},
		{teecsp.AESGCM, key, 0, 16, 0},
		{teecsp.AESGCM, key[:10], 12, 16, 0},
		{teecsp.AESCCM, key, 6, 16, 0},
		{teecsp.AESCCM, key, 14, 16, 0},
		{teecsp.AESCCM, key, 12, 5, 0},
		{teecsp.AESCCM, key, 12, 18, 0},
		{teecsp.AESCCM, key, 13, 16, 1 << 16},
		{teecsp.AESCCM, make([]byte, 33), 12, 16, 0},
	}

	for i, tt := range tests {
		ctx, err := csp.AEADAllocCtx(tt.algo)
		require.NoError(t, err)
		err = csp.AEADInit(ctx, tt.algo, teecsp.ModeEncrypt, tt.key, make([]byte, tt.nonceLen), tt.tagLen, 0, tt.payload)
		assertKind(t, teecsp.BadParameters, err, i)
		csp.AEADFreeCtx(ctx, tt.algo)
	}

	ctx, err := csp.AEADAllocCtx(teecsp.AESCCM)
	require.NoError(t, err)
	assertKind(t, teecsp.BadParameters, csp.AEADInit(ctx, teecsp.AESCCM, teecsp.OperationMode(3), key, make([]byte, 12), 16, 0, 0))
	assertKind(t, teecsp.BadParameters, csp.AEADInit(ctx, teecsp.AESCCM, teecsp.ModeEncrypt, key, make([]byte, 12), 16, -1, 0))
}

func TestAEADCopyState(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t)

	for _, algo := range []teecsp.Algorithm{teecsp.AESGCM, teecsp.AESCCM} {
		c := aeadCase{key: make([]byte, 16), nonce: make([]byte, 12), aad: []byte("aad"), payload: []byte("0123456789abcdef0123"), tagLen: 16}
		expectedCT, expectedTag := seal(t, csp, algo, c, 32)

		a, err := csp.AEADAllocCtx(algo)
		require.NoError(t, err)
		b, err := csp.AEADAllocCtx(algo)
		require.NoError(t, err)

		require.NoError(t, csp.AEADInit(a, algo, teecsp.ModeEncrypt, c.key, c.nonce, 16, 3, 20))
		require.NoError(t, csp.AEADUpdateAAD(a, algo, c.aad))
		head := make([]byte, 10)
		require.NoError(t, csp.AEADUpdatePayload(a, algo, teecsp.ModeEncrypt, c.payload[:10], head))
		require.NoError(t, csp.AEADCopyState(b, a, algo))

		for _, ctx := range []teecsp.AEADContext{a, b} {
			tail := make([]byte, 10)
			tag := make([]byte, 16)
			_, err := csp.AEADEncFinal(ctx, algo, c.payload[10:], tail, tag)
			require.NoError(t, err)
			assert.Equal(t, expectedCT, append(append([]byte{}, head...), tail...), algo.String())
			assert.Equal(t, expectedTag, tag, algo.String())
		}

		other, err := csp.AEADAllocCtx(teecsp.AESGCM)
		require.NoError(t, err)
		if algo == teecsp.AESCCM {
			assertKind(t, teecsp.BadParameters, other.CopyFrom(a))
		}
		csp.AEADFreeCtx(a, algo)
		csp.AEADFreeCtx(b, algo)
	}
}

func TestAEADNotSupported(t *testing.T) {
	t.Parallel()
	csp := newTestCSP(t, registry.FeatureAES, registry.FeatureGCM)

	_, err := csp.AEADAllocCtx(teecsp.AESCCM)
	assertKind(t, teecsp.NotSupported, err)
	_, err = csp.AEADAllocCtx(teecsp.AESGCM)
	assert.NoError(t, err)
	_, err = csp.AEADAllocCtx(teecsp.AESCTR)
	assertKind(t, teecsp.NotSupported, err)

	noAES := newTestCSP(t, registry.FeatureGCM)
	_, err = noAES.AEADAllocCtx(teecsp.AESGCM)
	assertKind(t, teecsp.NotSupported, err)
}
