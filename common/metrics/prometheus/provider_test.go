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


package prometheus_test

import (
	"io"
	"net/http/httptest"
	"testing"

	commonmetrics "github.com/hyperledger/fabric-teecsp/common/metrics"
	"github.com/hyperledger/fabric-teecsp/common/metrics/prometheus"
	. "github.com/onsi/gomega"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func scrape(t *testing.T, registry *prom.Registry) string {
	server := httptest.NewServer(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	if err != nil {
		t.Fatalf("scrape failed: %s", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading scrape failed: %s", err)
	}
	return string(b)
}

func TestCounter(t *testing.T) {
	t.Parallel()
	gt := NewGomegaWithT(t)

	registry := prom.NewRegistry()
	var p commonmetrics.Provider = &prometheus.Provider{Registerer: registry}

	counter := p.NewCounter(commonmetrics.CounterOpts{
		Namespace:  "teecsp",
		Subsystem:  "test",
		Name:       "operations",
		Help:       "This is some help text for the counter",
		LabelNames: []string{"family", "operation"},
	})
	counter.With("family", "hash", "operation", "init").Add(1)
	counter.With("family", "mac", "operation", "final").Add(2)

	out := scrape(t, registry)
	gt.Expect(out).To(ContainSubstring(`# HELP teecsp_test_operations This is some help text for the counter`))
	gt.Expect(out).To(ContainSubstring(`# TYPE teecsp_test_operations counter`))
	gt.Expect(out).To(ContainSubstring(`teecsp_test_operations{family="hash",operation="init"} 1`))
	gt.Expect(out).To(ContainSubstring(`teecsp_test_operations{family="mac",operation="final"} 2`))
}

func TestGauge(t *testing.T) {
	t.Parallel()
	gt := NewGomegaWithT(t)

	registry := prom.NewRegistry()
	p := &prometheus.Provider{Registerer: registry}

	gauge := p.NewGauge(commonmetrics.GaugeOpts{
		Namespace:  "teecsp",
		Name:       "live_contexts",
		Help:       "Live contexts",
		LabelNames: []string{"family"},
	})
	gauge.With("family", "cipher").Add(3)
	gauge.With("family", "cipher").Add(-1)
	gauge.With("family", "aead").Set(7)

	out := scrape(t, registry)
	gt.Expect(out).To(ContainSubstring(`# TYPE teecsp_live_contexts gauge`))
	gt.Expect(out).To(ContainSubstring(`teecsp_live_contexts{family="cipher"} 2`))
	gt.Expect(out).To(ContainSubstring(`teecsp_live_contexts{family="aead"} 7`))
}

func TestHistogram(t *testing.T) {
	t.Parallel()
	gt := NewGomegaWithT(t)

	registry := prom.NewRegistry()
	p := &prometheus.Provider{Registerer: registry}

	histogram := p.NewHistogram(commonmetrics.HistogramOpts{
		Namespace: "teecsp",
		Name:      "rng_request_bytes",
		Help:      "Request sizes",
		Buckets:   []float64{16, 64},
	})
	histogram.Observe(10)
	histogram.Observe(50)
	histogram.Observe(100)

	out := scrape(t, registry)
	gt.Expect(out).To(ContainSubstring(`teecsp_rng_request_bytes_bucket{le="16"} 1`))
	gt.Expect(out).To(ContainSubstring(`teecsp_rng_request_bytes_bucket{le="64"} 2`))
	gt.Expect(out).To(ContainSubstring(`teecsp_rng_request_bytes_bucket{le="+Inf"} 3`))
	gt.Expect(out).To(ContainSubstring(`teecsp_rng_request_bytes_count 3`))
	gt.Expect(out).To(ContainSubstring(`teecsp_rng_request_bytes_sum 160`))
}

func TestDuplicateRegistration(t *testing.T) {
	t.Parallel()
	gt := NewGomegaWithT(t)

	registry := prom.NewRegistry()
	p := &prometheus.Provider{Registerer: registry}
	opts := commonmetrics.CounterOpts{Namespace: "teecsp", Name: "dup", Help: "dup", LabelNames: []string{"a"}}

	first := p.NewCounter(opts)
	var second commonmetrics.Counter
	gt.Expect(func() { second = p.NewCounter(opts) }).NotTo(Panic())

	first.With("a", "x").Add(1)
	second.With("a", "x").Add(1)
	gt.Expect(scrape(t, registry)).To(ContainSubstring(`teecsp_dup{a="x"} 2`))
}
