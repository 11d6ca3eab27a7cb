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
	"encoding/hex"
	"fmt"
	"io"

	"github.com/hyperledger/fabric-teecsp/cmd/common"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/pkg/errors"
)

//NewMACCmd创建新的MACCmd
func NewMACCmd(provider CSPProvider, w io.Writer) *MACCmd {
	return &MACCmd{provider: provider, writer: w}
}

//MACCmd计算输入的消息认证码并以十六进制打印
type MACCmd struct {
	provider  CSPProvider
	writer    io.Writer
	algorithm *string
	key       *string
	input     *string
}

func (mc *MACCmd) SetAlgorithm(algorithm *string) {
	mc.algorithm = algorithm
}

func (mc *MACCmd) SetKey(key *string) {
	mc.key = key
}

func (mc *MACCmd) SetInput(input *string) {
	mc.input = input
}

//执行执行命令
func (mc *MACCmd) Execute(conf common.Config) error {
	algo, err := algorithmOf(mc.algorithm, teecsp.ClassMAC)
	if err != nil {
		return err
	}
	if mc.key == nil || *mc.key == "" {
		return errors.New("no key specified")
	}
	key, err := hex.DecodeString(*mc.key)
	if err != nil {
		return errors.Wrap(err, "key is not hex encoded")
	}
	data, err := readInput(mc.input)
	if err != nil {
		return err
	}
	csp, err := newCSP(mc.provider, conf)
	if err != nil {
		return err
	}

	mac, err := MAC(csp, algo, key, data)
	if err != nil {
		return err
	}
	fmt.Fprintln(mc.writer, hex.EncodeToString(mac))
	return nil
}

//MAC用key计算data的消息认证码。
func MAC(csp teecsp.CSP, algo teecsp.Algorithm, key, data []byte) ([]byte, error) {
	ctx, err := csp.MACAllocCtx(algo)
	if err != nil {
		return nil, err
	}
	defer csp.MACFreeCtx(ctx, algo)

	if err := csp.MACInit(ctx, algo, key); err != nil {
		return nil, err
	}
	if err := csp.MACUpdate(ctx, algo, data); err != nil {
		return nil, err
	}
	mac := make([]byte, algo.OutputSize())
	if err := csp.MACFinal(ctx, algo, mac); err != nil {
		return nil, err
	}
	return mac, nil
}
