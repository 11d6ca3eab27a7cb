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


package metrics

//provider是度量的抽象工厂。实现可以将度量导出到
//Prometheus，也可以将其全部丢弃。
type Provider interface {
//newcounter创建计数器的新实例。
	NewCounter(CounterOpts) Counter
//NewGauge创建仪表的新实例。
	NewGauge(GaugeOpts) Gauge
//newhistogram创建直方图的新实例。
	NewHistogram(HistogramOpts) Histogram
}

//计数器只增不减。
type Counter interface {
//with为CounterOpts中的每个LabelNames提供标签值，成对给出。
	With(labelValues ...string) Counter

//add将delta加到计数器上。
	Add(delta float64)
}

//CounterOpts包含创建计数器所需的选项
type CounterOpts struct {
//Namespace、Subsystem和Name用下划线连接成完全限定名。
	Namespace string
	Subsystem string
	Name      string

//帮助提供有关此度量的信息。
	Help string

//LabelNames是with调用时必须提供值的标签名。
	LabelNames []string
}

//仪表是表示某个度量的当前值的仪表。
type Gauge interface {
	With(labelValues ...string) Gauge

//add将delta（可以为负）加到仪表上。
	Add(delta float64)

//set用于更新与仪表关联的当前值。
	Set(value float64)
}

//GaugeOpts包含创建仪表所需的选项
type GaugeOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

//直方图记录观测值并将其计入可配置的桶中。
type Histogram interface {
	With(labelValues ...string) Histogram
	Observe(value float64)
}

//HistogramOpts包含创建直方图所需的选项
type HistogramOpts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string

//Buckets为Prometheus提供桶边界。为空时使用默认桶。
	Buckets []float64

	LabelNames []string
}
