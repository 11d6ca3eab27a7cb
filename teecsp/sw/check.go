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
	"crypto/subtle"

	"github.com/hyperledger/fabric-teecsp/teecsp"
)

//HashSHA256Check计算data的SHA-256，并以恒定时间与digest比较。
//不匹配时返回Security。
func (csp *CSP) HashSHA256Check(digest, data []byte) error {
	ctx, err := csp.HashAllocCtx(teecsp.SHA256)
	if err != nil {
		return err
	}
	defer csp.HashFreeCtx(ctx, teecsp.SHA256)

	if err := csp.HashInit(ctx, teecsp.SHA256); err != nil {
		return err
	}
	if err := csp.HashUpdate(ctx, teecsp.SHA256, data); err != nil {
		return err
	}
	var sum [32]byte
	if err := csp.HashFinal(ctx, teecsp.SHA256, sum[:]); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(sum[:], digest) != 1 {
		return csp.done(familyHash, "check", teecsp.SHA256, teecsp.NewError(teecsp.Security, "SHA-256 digest mismatch"))
	}
	return nil
}
