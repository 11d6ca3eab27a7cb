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


package acipher

import (
	"testing"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/stretchr/testify/assert"
)

func TestUnimplementedProvider(t *testing.T) {
	t.Parallel()

	var p Provider = Unimplemented{}
	notImpl := func(err error) {
		assert.True(t, teecsp.IsKind(err, teecsp.NotImplemented), "got %v", err)
		assert.Equal(t, uint32(0xFFFF0009), teecsp.KindOf(err).Code())
	}

	notImpl(p.AllocRSAKeypair(&RSAKeypair{}, 2048))
	notImpl(p.AllocRSAPublicKey(&RSAPublicKey{}, 2048))
	notImpl(p.GenRSAKey(&RSAKeypair{}, 2048))
	_, err := p.RSANoPadEncrypt(&RSAPublicKey{}, nil, nil)
	notImpl(err)
	_, err = p.RSANoPadDecrypt(&RSAKeypair{}, nil, nil)
	notImpl(err)
	_, err = p.RSAESEncrypt(teecsp.RSAESPKCS1V15, &RSAPublicKey{}, nil, nil, nil)
	notImpl(err)
	_, err = p.RSAESDecrypt(teecsp.RSAESPKCS1V15, &RSAKeypair{}, nil, nil, nil)
	notImpl(err)
	_, err = p.RSASSASign(teecsp.RSASSAPKCS1V15SHA256, &RSAKeypair{}, 0, nil, nil)
	notImpl(err)
	notImpl(p.RSASSAVerify(teecsp.RSASSAPKCS1V15SHA256, &RSAPublicKey{}, 0, nil, nil))

	notImpl(p.AllocDSAKeypair(&DSAKeypair{}, 2048))
	notImpl(p.AllocDSAPublicKey(&DSAPublicKey{}, 2048))
	notImpl(p.GenDSAKey(&DSAKeypair{}, 2048))
	_, err = p.DSASign(teecsp.DSASHA256, &DSAKeypair{}, nil, nil)
	notImpl(err)
	notImpl(p.DSAVerify(teecsp.DSASHA256, &DSAPublicKey{}, nil, nil))

	notImpl(p.AllocDHKeypair(&DHKeypair{}, 2048))
	notImpl(p.GenDHKey(&DHKeypair{}, nil, 256))
	notImpl(p.DHSharedSecret(&DHKeypair{}, nil, nil))

	notImpl(p.AllocECCKeypair(&ECCKeypair{}, 256))
	notImpl(p.AllocECCPublicKey(&ECCPublicKey{}, 256))
	notImpl(p.GenECCKey(&ECCKeypair{}))
	_, err = p.ECCSign(teecsp.ECDSAP256, &ECCKeypair{}, nil, nil)
	notImpl(err)
	notImpl(p.ECCVerify(teecsp.ECDSAP256, &ECCPublicKey{}, nil, nil))
	_, err = p.ECCSharedSecret(&ECCKeypair{}, &ECCPublicKey{}, nil)
	notImpl(err)

	assert.NotPanics(t, func() {
		p.FreeRSAPublicKey(&RSAPublicKey{})
		p.FreeECCPublicKey(&ECCPublicKey{})
	})
}

func TestBignum(t *testing.T) {
	t.Parallel()

	b := AllocateBignum(256)
	assert.Nil(t, b)
	assert.Equal(t, 0, b.NumBytes())
	assert.Equal(t, 0, b.NumBits())
	assert.True(t, teecsp.IsKind(b.SetBytes([]byte{1}), teecsp.NotImplemented))
	assert.NotPanics(t, b.Free)

	assert.Panics(t, func() { b.Bytes(make([]byte, 4)) })
	assert.Panics(t, func() { b.CopyFrom(nil) })
	assert.Panics(t, b.Clear)
	assert.Panics(t, func() { b.Compare(nil) })
	assert.Panics(t, (&Bignum{}).Free)
}
