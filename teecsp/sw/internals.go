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
)

//hasher是一个类似CSP的接口，提供摘要上下文
type Hasher interface {

//hashctxsize返回算法的摘要上下文大小，
//如果系列被禁用或未知，则返回NotSupported。
	HashCtxSize(algo teecsp.Algorithm) (int, error)

//allochashctx分配一个全新的摘要上下文。
	AllocHashCtx(algo teecsp.Algorithm) (teecsp.HashContext, error)
}

//blockcipher是一个类似CSP的接口，提供对称密码上下文
type BlockCipher interface {
	CipherCtxSize(algo teecsp.Algorithm) (int, error)
	AllocCipherCtx(algo teecsp.Algorithm) (teecsp.CipherContext, error)

//blocksize返回算法的块大小（字节）。
	BlockSize(algo teecsp.Algorithm) (int, error)
}

//authenticator是一个类似CSP的接口，提供MAC上下文
type Authenticator interface {
	MACCtxSize(algo teecsp.Algorithm) (int, error)
	AllocMACCtx(algo teecsp.Algorithm) (teecsp.MACContext, error)
}

//authencryptor是一个类似CSP的接口，提供认证加密上下文
type AuthEncryptor interface {

//aeadenabled报告算法是否已启用，否则返回NotSupported。
	AEADEnabled(algo teecsp.Algorithm) error
	AllocAEADCtx(algo teecsp.Algorithm) (teecsp.AEADContext, error)
}

//rng是确定性随机位生成器的视图
type RNG interface {
	Read(p []byte) (int, error)
	AddEntropy(data []byte) error
}
