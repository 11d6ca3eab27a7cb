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


package factory

import (
	"io"
	"strings"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	fmetrics "github.com/hyperledger/fabric-teecsp/common/flogging/metrics"
	"github.com/hyperledger/fabric-teecsp/common/metrics"
	"github.com/hyperledger/fabric-teecsp/common/metrics/disabled"
	"github.com/hyperledger/fabric-teecsp/common/metrics/prometheus"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/drbg"
	"github.com/hyperledger/fabric-teecsp/teecsp/keysched"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/hyperledger/fabric-teecsp/teecsp/sw"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
)

const (
//SoftwareBasedFactoryName是基于软件的CSP实现的工厂名称。
	SoftwareBasedFactoryName = "SW"
)

//SWFactory是基于软件的CSP的工厂。
type SWFactory struct {
//Registerer在选择prometheus时使用，为nil时使用默认注册器。
	Registerer prom.Registerer
}

//name返回此工厂的名称
func (f *SWFactory) Name() string {
	return SoftwareBasedFactoryName
}

//get返回使用opts的CSP实例。
func (f *SWFactory) Get(config *FactoryOpts) (teecsp.CSP, error) {
//验证参数
	if config == nil || config.SwOpts == nil {
		return nil, errors.New("Invalid config. It must not be nil.")
	}

	swOpts := config.SwOpts
	if err := swOpts.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid SW options")
	}

	features, err := swOpts.features()
	if err != nil {
		return nil, err
	}
	reg, err := registry.New(features...)
	if err != nil {
		return nil, errors.Wrap(err, "Failed initializing registry")
	}

	rng, err := newGenerator(swOpts.RNG)
	if err != nil {
		return nil, errors.Wrap(err, "Failed initializing DRBG")
	}

	provider := f.metricsProvider(swOpts.Metrics)
	if swOpts.Metrics != nil && swOpts.Metrics.LoggingObserver {
		flogging.Global.SetObserver(fmetrics.NewObserver(provider))
	}

	logger.Debugf("DRBG [%s], hardware AES [%t]", rng.Mechanism(), keysched.HardwareAccelerated())
	csp, err := sw.NewWithParams(reg, rng, provider)
	if err != nil {
		return nil, err
	}
	return csp, nil
}

func newGenerator(opts *RNGOpts) (*drbg.Generator, error) {
	if opts == nil {
		opts = GetDefaultOpts().SwOpts.RNG
	}

	mech := drbg.CTR
	if opts.DRBG != "" {
		var err error
		if mech, err = drbg.ParseMechanism(opts.DRBG); err != nil {
			return nil, err
		}
	}

	var entropy io.Reader
	switch strings.ToLower(opts.Entropy) {
	case EntropyPseudo:
		logger.Warnf("Using pseudo entropy with seed [%d]; random output is predictable", opts.Seed)
		entropy = drbg.NewPseudoEntropy(opts.Seed)
	default:
		entropy = drbg.SystemEntropy()
	}

	return drbg.New(drbg.Config{
		Mechanism:       mech,
		Entropy:         entropy,
		ReseedInterval:  opts.ReseedInterval,
		Personalization: []byte(opts.Personalization),
	})
}

func (f *SWFactory) metricsProvider(opts *MetricsOpts) metrics.Provider {
	if opts != nil && strings.ToLower(opts.Provider) == MetricsPrometheus {
		return &prometheus.Provider{Registerer: f.Registerer}
	}
	return &disabled.Provider{}
}
