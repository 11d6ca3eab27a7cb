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
	"sync"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/pkg/errors"
)

var (
//缺省CSP
	defaultCSP teecsp.CSP

//尚未调用InitFactories时（只应在测试用例中发生）临时使用此CSP
	bootCSP teecsp.CSP

//CSP工厂
	cspMap map[string]teecsp.CSP

//工厂初始化时的同步
	factoriesInitOnce sync.Once
	bootCSPInitOnce   sync.Once

//工厂初始化错误
	factoriesInitError error

	logger = flogging.MustGetLogger("teecsp.factory")
)

//CSPFactory用于获取teecsp.CSP接口的实例。
//一个工厂有一个用来称呼它的名字。
type CSPFactory interface {

//name返回此工厂的名称
	Name() string

//get返回使用opts的CSP实例。
	Get(opts *FactoryOpts) (teecsp.CSP, error)
}

//getdefault返回非短暂（长期）CSP
func GetDefault() teecsp.CSP {
	if defaultCSP == nil {
		logger.Warn("Before using CSP, please call InitFactories(). Falling back to bootCSP.")
		bootCSPInitOnce.Do(func() {
			var err error
			f := &SWFactory{}
			bootCSP, err = f.Get(GetDefaultOpts())
			if err != nil {
				panic("CSP Internal error, failed initialization with GetDefaultOpts!")
			}
		})
		return bootCSP
	}
	return defaultCSP
}

//getcsp返回以name注册的CSP。
func GetCSP(name string) (teecsp.CSP, error) {
	csp, ok := cspMap[name]
	if !ok {
		return nil, errors.Errorf("Could not find CSP, no '%s' provider", name)
	}
	return csp, nil
}

func initCSP(f CSPFactory, config *FactoryOpts) error {
	csp, err := f.Get(config)
	if err != nil {
		return errors.Errorf("Could not initialize CSP %s [%s]", f.Name(), err)
	}

	logger.Debugf("Initialize CSP [%s]", f.Name())
	cspMap[f.Name()] = csp
	return nil
}

//必须在使用工厂接口之前调用InitFactories。
//config可以为nil，此时使用GetDefaultOpts。
//只有在找不到默认CSP时才会返回错误。
func InitFactories(config *FactoryOpts) error {
	factoriesInitOnce.Do(func() {
		setFactories(config)
	})

	return factoriesInitError
}

func setFactories(config *FactoryOpts) error {
//对默认选项采取一些预防措施
	if config == nil {
		config = GetDefaultOpts()
	}

	if config.ProviderName == "" {
		config.ProviderName = SoftwareBasedFactoryName
	}

	if config.SwOpts == nil {
		config.SwOpts = GetDefaultOpts().SwOpts
	}

//初始化工厂映射
	cspMap = make(map[string]teecsp.CSP)

//基于软件的CSP
	f := &SWFactory{}
	if err := initCSP(f, config); err != nil {
		factoriesInitError = errors.Wrap(err, "Failed initializing SW.CSP")
	}

	var ok bool
	defaultCSP, ok = cspMap[config.ProviderName]
	if !ok {
		if factoriesInitError != nil {
			factoriesInitError = errors.Errorf("%s\nCould not find default `%s` CSP", factoriesInitError, config.ProviderName)
		} else {
			factoriesInitError = errors.Errorf("Could not find default `%s` CSP", config.ProviderName)
		}
	}

	return factoriesInitError
}

//getcspfromopts返回根据输入中传递的选项创建的CSP。
func GetCSPFromOpts(config *FactoryOpts) (teecsp.CSP, error) {
	if config == nil {
		return nil, errors.New("Invalid config. It must not be nil.")
	}

	var f CSPFactory
	switch config.ProviderName {
	case SoftwareBasedFactoryName:
		f = &SWFactory{}
	default:
		return nil, errors.Errorf("Could not find CSP, no '%s' provider", config.ProviderName)
	}

	csp, err := f.Get(config)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not initialize CSP %s", f.Name())
	}
	return csp, nil
}
