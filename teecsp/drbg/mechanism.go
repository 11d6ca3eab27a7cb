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


package drbg

import (
	"strings"

	"github.com/pkg/errors"
)

//Mechanism选择DRBG构造。每个生成器只使用一种。
type Mechanism int

const (
	//CTR是带派生函数的AES-256 CTR_DRBG（SP 800-90A第10.2节）。
	CTR Mechanism = iota
	//HMAC是HMAC-SHA256 HMAC_DRBG（SP 800-90A第10.1.2节）。
	HMAC
)

func (m Mechanism) String() string {
	switch m {
	case CTR:
		return "CTR"
	case HMAC:
		return "HMAC"
	}
	return "UNKNOWN"
}

//ParseMechanism按名称（不区分大小写）查找机制。
func ParseMechanism(name string) (Mechanism, error) {
	switch strings.ToUpper(name) {
	case "CTR", "CTR_DRBG":
		return CTR, nil
	case "HMAC", "HMAC_DRBG":
		return HMAC, nil
	}
	return 0, errors.Errorf("unknown DRBG mechanism [%s]", name)
}

//mechanism是SP 800-90A的instantiate/reseed/generate三元组。
//调用者负责重新播种计数。
type mechanism interface {
	instantiate(entropy, nonce, personalization []byte) error
	reseed(entropy, additional []byte) error
	generate(out, additional []byte) error
	wipe()
}

func newMechanism(m Mechanism) (mechanism, error) {
	switch m {
	case CTR:
		return &ctrDRBG{}, nil
	case HMAC:
		return &hmacDRBG{}, nil
	}
	return nil, errors.Errorf("unknown DRBG mechanism [%d]", m)
}
