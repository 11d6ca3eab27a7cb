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
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hyperledger/fabric-teecsp/teecsp/drbg"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/pkg/errors"
)

const (
//EntropySystem从操作系统读取熵。
	EntropySystem = "system"
//EntropyPseudo使用确定性的伪熵源，只适用于测试。
	EntropyPseudo = "pseudo"

	MetricsDisabled   = "disabled"
	MetricsPrometheus = "prometheus"
)

//FactoryOpts包含用于初始化工厂的选项
type FactoryOpts struct {
	ProviderName string  `mapstructure:"default" json:"default" yaml:"Default"`
	SwOpts       *SwOpts `mapstructure:"SW,omitempty" json:"SW,omitempty" yaml:"SwOpts"`
}

//swopts包含swfactory的选项。
//算法列表对应构建时的算法选择，列表为空表示不启用该系列。
type SwOpts struct {
	Hashes  []string `mapstructure:"hashes" json:"hashes" yaml:"Hashes"`
	Ciphers []string `mapstructure:"ciphers" json:"ciphers" yaml:"Ciphers"`
	Modes   []string `mapstructure:"modes" json:"modes" yaml:"Modes"`
	MACs    []string `mapstructure:"macs" json:"macs" yaml:"MACs"`
	AEADs   []string `mapstructure:"aeads" json:"aeads" yaml:"AEADs"`

	RNG     *RNGOpts     `mapstructure:"rng,omitempty" json:"rng,omitempty" yaml:"RNG"`
	Metrics *MetricsOpts `mapstructure:"metrics,omitempty" json:"metrics,omitempty" yaml:"Metrics"`
}

//rngopts配置确定性随机位生成器
type RNGOpts struct {
	DRBG            string `mapstructure:"drbg" json:"drbg" yaml:"DRBG"`
	ReseedInterval  uint64 `mapstructure:"reseedinterval" json:"reseedinterval" yaml:"ReseedInterval"`
	Entropy         string `mapstructure:"entropy" json:"entropy" yaml:"Entropy"`
	Seed            uint32 `mapstructure:"seed" json:"seed" yaml:"Seed"`
	Personalization string `mapstructure:"personalization" json:"personalization" yaml:"Personalization"`
}

type MetricsOpts struct {
	Provider string `mapstructure:"provider" json:"provider" yaml:"Provider"`
//LoggingObserver为true时按级别统计日志条目
	LoggingObserver bool `mapstructure:"loggingobserver" json:"loggingobserver" yaml:"LoggingObserver"`
}

var featureGroups = []struct {
	name     string
	features []registry.Feature
}{
	{"hash", []registry.Feature{
		registry.FeatureMD5, registry.FeatureSHA1, registry.FeatureSHA224, registry.FeatureSHA256,
		registry.FeatureSHA384, registry.FeatureSHA512, registry.FeatureSHA3,
	}},
	{"cipher", []registry.Feature{registry.FeatureAES, registry.FeatureDES}},
	{"mode", []registry.Feature{
		registry.FeatureECB, registry.FeatureCBC, registry.FeatureCTR, registry.FeatureCTS, registry.FeatureXTS,
	}},
	{"mac", []registry.Feature{registry.FeatureHMAC, registry.FeatureCMAC, registry.FeatureCBCMAC}},
	{"aead", []registry.Feature{registry.FeatureCCM, registry.FeatureGCM}},
}

func names(fs []registry.Feature) []string {
	var s []string
	for _, f := range fs {
		s = append(s, string(f))
	}
	return s
}

//GetDefaultOpts为Opts提供默认实现，
//启用所有算法，使用系统熵和CTR_DRBG，不导出度量。
func GetDefaultOpts() *FactoryOpts {
	return &FactoryOpts{
		ProviderName: SoftwareBasedFactoryName,
		SwOpts: &SwOpts{
			Hashes:  names(featureGroups[0].features),
			Ciphers: names(featureGroups[1].features),
			Modes:   names(featureGroups[2].features),
			MACs:    names(featureGroups[3].features),
			AEADs:   names(featureGroups[4].features),
			RNG: &RNGOpts{
				DRBG:           drbg.CTR.String(),
				ReseedInterval: drbg.DefaultReseedInterval,
				Entropy:        EntropySystem,
			},
			Metrics: &MetricsOpts{Provider: MetricsDisabled},
		},
	}
}

func (o *SwOpts) lists() [][]string {
	return [][]string{o.Hashes, o.Ciphers, o.Modes, o.MACs, o.AEADs}
}

//features将算法列表转换为注册表功能，
//每个名称必须属于它所在列表的系列。
func (o *SwOpts) features() ([]registry.Feature, error) {
	var result error
	var fs []registry.Feature
	for i, list := range o.lists() {
		group := featureGroups[i]
		for _, name := range list {
			f, err := registry.ParseFeature(strings.TrimSpace(name))
			if err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "invalid %s entry", group.name))
				continue
			}
			if !contains(group.features, f) {
				result = multierror.Append(result, errors.Errorf("feature [%s] is not a %s algorithm", f, group.name))
				continue
			}
			fs = append(fs, f)
		}
	}
	return fs, result
}

func contains(fs []registry.Feature, f registry.Feature) bool {
	for _, c := range fs {
		if c == f {
			return true
		}
	}
	return false
}

//Validate报告选项中的所有问题，而不仅仅是第一个。
func (o *SwOpts) Validate() error {
	var result error
	if _, err := o.features(); err != nil {
		result = multierror.Append(result, err)
	}

	if o.RNG != nil {
		if o.RNG.DRBG != "" {
			if _, err := drbg.ParseMechanism(o.RNG.DRBG); err != nil {
				result = multierror.Append(result, err)
			}
		}
		switch strings.ToLower(o.RNG.Entropy) {
		case "", EntropySystem, EntropyPseudo:
		default:
			result = multierror.Append(result, errors.Errorf("unknown entropy source [%s]", o.RNG.Entropy))
		}
	}

	if o.Metrics != nil {
		switch strings.ToLower(o.Metrics.Provider) {
		case "", MetricsDisabled, MetricsPrometheus:
		default:
			result = multierror.Append(result, errors.Errorf("unknown metrics provider [%s]", o.Metrics.Provider))
		}
	}
	return result
}
