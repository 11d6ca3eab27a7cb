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


package teecsp

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindCodes(t *testing.T) {
	t.Parallel()

	codes := map[Kind]uint32{
		Generic:        0xFFFF0000,
		BadParameters:  0xFFFF0006,
		BadState:       0xFFFF0007,
		NotImplemented: 0xFFFF0009,
		NotSupported:   0xFFFF000A,
		OutOfMemory:    0xFFFF000C,
		Security:       0xFFF0000F,
		ShortBuffer:    0xFFFF0010,
	}
	for k, code := range codes {
		assert.Equal(t, code, k.Code(), "kind %s", k)
	}
	assert.Equal(t, "SHORT_BUFFER", ShortBuffer.String())
	assert.Equal(t, "KIND(42)", Kind(42).String())
}

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	err := NewError(BadParameters, "Invalid key length [%d]", 7)
	assert.EqualError(t, err, "Invalid key length [7]")
	assert.Equal(t, BadParameters, KindOf(err))

	cause := errors.New("boom")
	err = WrapError(BadState, cause, "Failed setting key")
	assert.EqualError(t, err, "Failed setting key: boom")
	assert.Equal(t, cause, errors.Cause(errors.Unwrap(err)))

	wrapped := errors.Wrap(err, "outer")
	assert.Equal(t, BadState, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, BadState))
	assert.False(t, IsKind(wrapped, Security))

	assert.Equal(t, Generic, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, Generic))
}
