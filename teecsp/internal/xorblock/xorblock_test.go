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


package xorblock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func naive(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func TestBytesUnalignedOperands(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(3))

	backing := make([]byte, 3*(chunkSize*2+64))
	r.Read(backing)
	third := len(backing) / 3

	for _, size := range []int{1, 7, 8, 15, 16, 17, 31, 32, 33, 64, 100, chunkSize, chunkSize + 1, 2*chunkSize + 5} {
		for off := 0; off < 17; off++ {
			a := backing[off : off+size]
			b := backing[third+off+1 : third+off+1+size]
			dst := make([]byte, size+off)[off:]

			expected := naive(a, b)
			Bytes(dst, a, b)
			assert.Equal(t, expected, dst, "size %d offset %d", size, off)
		}
	}
}

func TestBytesInPlace(t *testing.T) {
	t.Parallel()

	a := []byte("0123456789abcdefXYZ")
	b := []byte("fedcba9876543210zyx")
	expected := naive(a[1:], b[1:])

	Bytes(a[1:], a[1:], b[1:])
	assert.Equal(t, expected, a[1:])

	a = []byte("0123456789abcdefXYZ")
	Bytes(b[1:], a[1:], b[1:])
	assert.Equal(t, expected, b[1:])
}

func TestBytesEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Bytes(nil, nil, nil) })
}

func TestBytesLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { Bytes(make([]byte, 4), make([]byte, 4), make([]byte, 3)) })
}
