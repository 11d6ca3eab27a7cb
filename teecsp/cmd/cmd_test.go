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


package cmd_test

import (
	"testing"

	"github.com/hyperledger/fabric-teecsp/teecsp/cmd"
	"github.com/hyperledger/fabric-teecsp/teecsp/cmd/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestAddCommands(t *testing.T) {
	app := kingpin.New("foo", "bar")
	cli := &mocks.CommandRegistrar{}
	configFunc := mock.AnythingOfType("common.CLICommand")
	for _, name := range []string{cmd.DigestCommand, cmd.MACCommand, cmd.RandomCommand, cmd.SelftestCommand, cmd.InfoCommand} {
		cli.On("Command", name, mock.Anything, configFunc).Return(app.Command(name, ""))
	}
	cmd.AddCommands(cli)
	cli.AssertExpectations(t)

//确保为子命令配置了标志
	for _, c := range []string{cmd.DigestCommand, cmd.MACCommand} {
		assert.NotNil(t, app.GetCommand(c).GetFlag("algorithm"))
		assert.NotNil(t, app.GetCommand(c).GetFlag("input"))
	}
	assert.NotNil(t, app.GetCommand(cmd.MACCommand).GetFlag("key"))
	assert.NotNil(t, app.GetCommand(cmd.RandomCommand).GetFlag("bytes"))
	assert.Nil(t, app.GetCommand(cmd.InfoCommand).GetFlag("algorithm"))
}
