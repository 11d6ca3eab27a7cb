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


package cmd

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/hyperledger/fabric-teecsp/cmd/common"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/factory"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	DigestCommand   = "digest"
	MACCommand      = "mac"
	RandomCommand   = "random"
	SelftestCommand = "selftest"
	InfoCommand     = "info"
)

var (
//responseWriter定义stdout
	responseWriter io.Writer = os.Stdout
//inputReader在未指定--input时使用
	inputReader io.Reader = os.Stdin
)

//CSPProvider根据工厂选项构建CSP
type CSPProvider func(opts *factory.FactoryOpts) (teecsp.CSP, error)

//去：生成mokery-dir。-name命令注册器-case下划线-output mocks/

//命令注册寄存器命令
type CommandRegistrar interface {
//命令将新的顶级命令添加到CLI
	Command(name, help string, onCommand common.CLICommand) *kingpin.CmdClause
}

//addcommands将teecsp命令注册到给定的commandregistrar
func AddCommands(cli CommandRegistrar) {
	provider := CSPProvider(factory.GetCSPFromOpts)

	digestCmd := NewDigestCmd(provider, responseWriter)
	digest := cli.Command(DigestCommand, "Compute the digest of the input", digestCmd.Execute)
	digestCmd.SetAlgorithm(digest.Flag("algorithm", "Sets the digest algorithm, e.g. SHA256").Default("SHA256").String())
	digestCmd.SetInput(digest.Flag("input", "Sets the input file; stdin when omitted").String())

	macCmd := NewMACCmd(provider, responseWriter)
	mac := cli.Command(MACCommand, "Compute the MAC of the input", macCmd.Execute)
	macCmd.SetAlgorithm(mac.Flag("algorithm", "Sets the MAC algorithm, e.g. HMAC_SHA256 or AES_CMAC").Default("HMAC_SHA256").String())
	macCmd.SetKey(mac.Flag("key", "Sets the hex encoded key").Required().String())
	macCmd.SetInput(mac.Flag("input", "Sets the input file; stdin when omitted").String())

	randomCmd := NewRandomCmd(provider, responseWriter)
	random := cli.Command(RandomCommand, "Print random bytes from the DRBG", randomCmd.Execute)
	randomCmd.SetLength(random.Flag("bytes", "Sets the number of random bytes").Default("32").Int())

	selftestCmd := NewSelftestCmd(provider, responseWriter)
	cli.Command(SelftestCommand, "Run the known answer tests", selftestCmd.Execute)

	infoCmd := NewInfoCmd(provider, responseWriter)
	cli.Command(InfoCommand, "Describe the enabled algorithms", infoCmd.Execute)
}

func newCSP(provider CSPProvider, conf common.Config) (teecsp.CSP, error) {
	if provider == nil {
		return nil, errors.New("no CSP provider")
	}
	opts := conf.CSP
	return provider(&opts)
}

func readInput(input *string) ([]byte, error) {
	if input == nil || *input == "" {
		return ioutil.ReadAll(inputReader)
	}
	data, err := ioutil.ReadFile(*input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading input")
	}
	return data, nil
}

func algorithmOf(name *string, class teecsp.Class) (teecsp.Algorithm, error) {
	if name == nil || *name == "" {
		return 0, errors.New("no algorithm specified")
	}
	algo, err := teecsp.AlgorithmByName(*name)
	if err != nil {
		return 0, err
	}
	if algo.Class() != class {
		return 0, errors.Errorf("algorithm [%s] cannot be used here", algo)
	}
	return algo, nil
}
