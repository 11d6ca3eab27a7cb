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
	"github.com/pkg/errors"
)

const maxRandomBytes = 1 << 20

//NewRandomCmd创建新的RandomCmd
func NewRandomCmd(provider CSPProvider, w io.Writer) *RandomCmd {
	return &RandomCmd{provider: provider, writer: w}
}

//RandomCmd以十六进制打印DRBG的输出
type RandomCmd struct {
	provider CSPProvider
	writer   io.Writer
	length   *int
}

func (rc *RandomCmd) SetLength(length *int) {
	rc.length = length
}

//执行执行命令
func (rc *RandomCmd) Execute(conf common.Config) error {
	n := 32
	if rc.length != nil {
		n = *rc.length
	}
	if n <= 0 || n > maxRandomBytes {
		return errors.Errorf("invalid number of bytes [%d]", n)
	}
	csp, err := newCSP(rc.provider, conf)
	if err != nil {
		return err
	}

	buf := make([]byte, n)
	if err := csp.RNGRead(buf); err != nil {
		return err
	}
	fmt.Fprintln(rc.writer, hex.EncodeToString(buf))
	return nil
}
