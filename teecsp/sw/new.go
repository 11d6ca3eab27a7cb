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
	"github.com/hyperledger/fabric-teecsp/common/metrics"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/pkg/errors"
)

//NewDefault返回启用所有功能、不记录度量的软件CSP。
func NewDefault(rng RNG) (*CSP, error) {
	reg, err := registry.New(registry.AllFeatures()...)
	if err != nil {
		return nil, errors.Wrap(err, "Failed initializing registry")
	}
	return NewWithParams(reg, rng, nil)
}

//newwithparams返回基于软件的CSP的新实例。
//每个已知标识符都绑定到其系列的包装器；被禁用的算法由包装器
//在分配之前拒绝。provider为nil时不记录度量。
func NewWithParams(reg *registry.Registry, rng RNG, provider metrics.Provider) (*CSP, error) {
	if reg == nil {
		return nil, errors.New("Invalid registry instance. It must be different from nil.")
	}

	var m *Metrics
	if provider != nil {
		m = NewMetrics(provider)
	}
	swcsp, err := New(rng, m)
	if err != nil {
		return nil, err
	}

	h := &hasher{reg: reg}
	b := &blockCipher{reg: reg}
	a := &authenticator{reg: reg}
	e := &authEncryptor{reg: reg}

//设置哈希
	for _, algo := range teecsp.AlgorithmsOfClass(teecsp.ClassDigest) {
		swcsp.AddWrapper(algo, h)
	}

//设置分组密码
	for _, algo := range teecsp.AlgorithmsOfClass(teecsp.ClassCipher) {
		swcsp.AddWrapper(algo, b)
	}

//设置MAC
	for _, algo := range teecsp.AlgorithmsOfClass(teecsp.ClassMAC) {
		swcsp.AddWrapper(algo, a)
	}

//设置认证加密
	for _, algo := range teecsp.AlgorithmsOfClass(teecsp.ClassAE) {
		swcsp.AddWrapper(algo, e)
	}

	logger.Debugf("Initialized software CSP with features %v", reg.Features())
	return swcsp, nil
}
