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
)

var (
	operationsCounterOpts = metrics.CounterOpts{
		Namespace:  "teecsp",
		Name:       "operations",
		Help:       "The number of provider operations invoked.",
		LabelNames: []string{"family", "operation"},
	}
	failuresCounterOpts = metrics.CounterOpts{
		Namespace:  "teecsp",
		Name:       "operation_failures",
		Help:       "The number of provider operations that returned an error.",
		LabelNames: []string{"family", "operation", "kind"},
	}
	liveContextsGaugeOpts = metrics.GaugeOpts{
		Namespace:  "teecsp",
		Name:       "live_contexts",
		Help:       "The number of allocated and not yet freed contexts.",
		LabelNames: []string{"family"},
	}
	rngRequestHistogramOpts = metrics.HistogramOpts{
		Namespace: "teecsp",
		Name:      "rng_request_bytes",
		Help:      "The size of random byte requests.",
		Buckets:   []float64{16, 32, 64, 128, 256, 1024, 4096},
	}
)

//Metrics保存提供程序门面记录的度量
type Metrics struct {
	Operations   metrics.Counter
	Failures     metrics.Counter
	LiveContexts metrics.Gauge
	RNGRequests  metrics.Histogram
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Operations:   p.NewCounter(operationsCounterOpts),
		Failures:     p.NewCounter(failuresCounterOpts),
		LiveContexts: p.NewGauge(liveContextsGaugeOpts),
		RNGRequests:  p.NewHistogram(rngRequestHistogramOpts),
	}
}

func (m *Metrics) observe(family, operation string, err error) error {
	m.Operations.With("family", family, "operation", operation).Add(1)
	if err != nil {
		m.Failures.With("family", family, "operation", operation, "kind", teecsp.KindOf(err).String()).Add(1)
	}
	return err
}
