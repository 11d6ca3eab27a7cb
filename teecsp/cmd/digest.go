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
)

//NewDigestCmd创建新的DigestCmd
func NewDigestCmd(provider CSPProvider, w io.Writer) *DigestCmd {
	return &DigestCmd{provider: provider, writer: w}
}

//DigestCmd计算输入的摘要并以十六进制打印
type DigestCmd struct {
	provider  CSPProvider
	writer    io.Writer
	algorithm *string
	input     *string
}

func (dc *DigestCmd) SetAlgorithm(algorithm *string) {
	dc.algorithm = algorithm
}

func (dc *DigestCmd) SetInput(input *string) {
	dc.input = input
}

//执行执行命令
func (dc *DigestCmd) Execute(conf common.Config) error {
	algo, err := algorithmOf(dc.algorithm, teecsp.ClassDigest)
	if err != nil {
		return err
	}
	data, err := readInput(dc.input)
	if err != nil {
		return err
	}
	csp, err := newCSP(dc.provider, conf)
	if err != nil {
		return err
	}

	digest, err := Digest(csp, algo, data)
	if err != nil {
		return err
	}
	fmt.Fprintln(dc.writer, hex.EncodeToString(digest))
	return nil
}

//Digest通过CSP的分配-初始化-更新-完成序列计算data的摘要。
func Digest(csp teecsp.CSP, algo teecsp.Algorithm, data []byte) ([]byte, error) {
	ctx, err := csp.HashAllocCtx(algo)
	if err != nil {
		return nil, err
	}
	defer csp.HashFreeCtx(ctx, algo)

	if err := csp.HashInit(ctx, algo); err != nil {
		return nil, err
	}
	if err := csp.HashUpdate(ctx, algo, data); err != nil {
		return nil, err
	}
	digest := make([]byte, algo.OutputSize())
	if err := csp.HashFinal(ctx, algo, digest); err != nil {
		return nil, err
	}
	return digest, nil
}
