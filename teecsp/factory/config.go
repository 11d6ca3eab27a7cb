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

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
//EnvPrefix是覆盖配置的环境变量前缀，例如TEECSP_CSP_DEFAULT。
	EnvPrefix = "TEECSP"

//ConfigKey是配置文件中工厂选项所在的键。
	ConfigKey = "CSP"
)

//NewViper返回读取TEECSP_*环境变量的viper实例。
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

//readopts从v的CSP键解码工厂选项。
//键不存在时返回GetDefaultOpts。
func ReadOpts(v *viper.Viper) (*FactoryOpts, error) {
	if !v.IsSet(ConfigKey) {
		return GetDefaultOpts(), nil
	}

	opts := &FactoryOpts{}
	if err := v.UnmarshalKey(ConfigKey, opts); err != nil {
		return nil, errors.Wrapf(err, "could not decode %s configuration", ConfigKey)
	}

//UnmarshalKey不会合并嵌套键的环境变量
	key := ConfigKey + ".default"
	if name := v.GetString(key); name != "" {
		opts.ProviderName = name
	}
	if opts.ProviderName == "" {
		opts.ProviderName = SoftwareBasedFactoryName
	}
	return opts, nil
}

//LoadOpts从文件读取工厂选项，文件格式由扩展名决定。
func LoadOpts(path string) (*FactoryOpts, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "could not read configuration file [%s]", path)
	}
	return ReadOpts(v)
}
