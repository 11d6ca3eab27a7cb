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


package common

import (
	"fmt"
	"io"
	"os"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	"github.com/hyperledger/fabric-teecsp/teecsp/factory"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	saveConfigCommand = "saveConfig"
)

var (
//用于终止CLI的函数
	terminate = os.Exit
//用于将输出重定向到的函数
	outWriter io.Writer = os.Stderr

//CLI参数
	provider, drbgMechanism, entropy, personalization, metricsProvider *string
	hashes, ciphers, modes, macs, aeads                                *[]string
	seed                                                               *uint32
	reseedInterval                                                     *uint64
	logSpec, logFormat                                                 *string
	configFile                                                         *string
)

//cli command定义添加到cli的命令
//通过外部消费者。
type CLICommand func(Config) error

//cli定义命令行解释器
type CLI struct {
	app         *kingpin.Application
	dispatchers map[string]CLICommand
}

//new cli创建具有给定名称和帮助消息的新cli
func NewCLI(name, help string) *CLI {
	return &CLI{
		app:         kingpin.New(name, help),
		dispatchers: make(map[string]CLICommand),
	}
}

//命令将新的顶级命令添加到CLI
func (cli *CLI) Command(name, help string, onCommand CLICommand) *kingpin.CmdClause {
	cmd := cli.app.Command(name, help)
	cli.dispatchers[name] = onCommand
	return cmd
}

//run使cli处理参数并执行带有标志的命令
func (cli *CLI) Run(args []string) {
	configFile = cli.app.Flag("configFile", "Specifies the config file to load the configuration from").String()
	persist := cli.app.Command(saveConfigCommand, fmt.Sprintf("Save the config passed by flags into the file specified by --configFile"))
	configureFlags(cli.app)

	command := kingpin.MustParse(cli.app.Parse(args))
	if command == persist.FullCommand() {
		if *configFile == "" {
			out("--configFile must be used to specify the configuration file")
			return
		}
		persistConfig(parseFlagsToConfig(), *configFile)
		return
	}

	var conf Config
	if *configFile == "" {
		conf = parseFlagsToConfig()
		if err := validateConfig(conf); err != nil {
			out("Invalid flags:", err)
			terminate(1)
			return
		}
	} else {
		conf = loadConfig(*configFile)
	}

	f, exists := cli.dispatchers[command]
	if !exists {
		out("Unknown command:", command)
		terminate(1)
		return
	}

	flogging.Init(flogging.Config{
		LogSpec: conf.Logging.Spec,
		Format:  conf.Logging.Format,
		Writer:  outWriter,
	})

	err := f(conf)
	if err != nil {
		out(err)
		terminate(1)
		return
	}
}

func configureFlags(persistCommand *kingpin.Application) {
//提供程序标志
	provider = persistCommand.Flag("provider", "Sets the name of the crypto provider").Default("SW").String()
//算法选择标志，全部为空时启用所有算法
	hashes = persistCommand.Flag("hash", "Enables a digest family (MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA3)").Strings()
	ciphers = persistCommand.Flag("cipher", "Enables a block cipher (AES, DES)").Strings()
	modes = persistCommand.Flag("mode", "Enables a chaining mode (ECB, CBC, CTR, CTS, XTS)").Strings()
	macs = persistCommand.Flag("mac", "Enables a MAC construction (HMAC, CMAC, CBC_MAC)").Strings()
	aeads = persistCommand.Flag("aead", "Enables an authenticated encryption mode (CCM, GCM)").Strings()
//随机数生成器标志
	drbgMechanism = persistCommand.Flag("drbg", "Sets the DRBG construction").Default("ctr").Enum("ctr", "hmac")
	entropy = persistCommand.Flag("entropy", "Sets the entropy source; pseudo is only meant for tests").Default(factory.EntropySystem).Enum(factory.EntropySystem, factory.EntropyPseudo)
	seed = persistCommand.Flag("seed", "Sets the seed of the pseudo entropy source").Uint32()
	reseedInterval = persistCommand.Flag("reseedInterval", "Sets the number of generate requests between reseeds").Uint64()
	personalization = persistCommand.Flag("personalization", "Sets the DRBG personalization string").String()
//度量和日志标志
	metricsProvider = persistCommand.Flag("metrics", "Sets the metrics provider").Default(factory.MetricsDisabled).Enum(factory.MetricsDisabled, factory.MetricsPrometheus)
	logSpec = persistCommand.Flag("logSpec", "Sets the logging specification, e.g. teecsp.sw=debug:info").String()
	logFormat = persistCommand.Flag("logFormat", "Sets the logging format").Default("console").Enum("console", "json")
}

func persistConfig(conf Config, file string) {
	if err := conf.ToFile(file); err != nil {
		out("Failed persisting configuration:", err)
		terminate(1)
	}
}

func loadConfig(file string) Config {
	conf, err := ConfigFromFile(file)
	if err != nil {
		out("Failed loading config", err)
		terminate(1)
		return Config{}
	}
	return conf
}

func parseFlagsToConfig() Config {
	swOpts := &factory.SwOpts{
		Hashes:  *hashes,
		Ciphers: *ciphers,
		Modes:   *modes,
		MACs:    *macs,
		AEADs:   *aeads,
		RNG: &factory.RNGOpts{
			DRBG:            *drbgMechanism,
			ReseedInterval:  *reseedInterval,
			Entropy:         *entropy,
			Seed:            *seed,
			Personalization: *personalization,
		},
		Metrics: &factory.MetricsOpts{Provider: *metricsProvider},
	}
	if len(swOpts.Hashes)+len(swOpts.Ciphers)+len(swOpts.Modes)+len(swOpts.MACs)+len(swOpts.AEADs) == 0 {
		defaults := factory.GetDefaultOpts().SwOpts
		swOpts.Hashes = defaults.Hashes
		swOpts.Ciphers = defaults.Ciphers
		swOpts.Modes = defaults.Modes
		swOpts.MACs = defaults.MACs
		swOpts.AEADs = defaults.AEADs
	}

	conf := Config{
		Version: v1,
		Logging: LoggingConfig{
			Spec:   *logSpec,
			Format: *logFormat,
		},
		CSP: factory.FactoryOpts{
			ProviderName: *provider,
			SwOpts:       swOpts,
		},
	}
	return conf
}

func out(a ...interface{}) {
	fmt.Fprintln(outWriter, a...)
}
