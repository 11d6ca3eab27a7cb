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


package flogging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

const defaultLevel = zapcore.InfoLevel

//Global是进程范围的日志记录系统。
var Global *Logging

func init() {
	logging, err := New(Config{})
	if err != nil {
		panic(err)
	}
	Global = logging
}

//init用提供的配置重新初始化全局日志记录，配置无效时恐慌。
func Init(config Config) {
	if err := Global.Apply(config); err != nil {
		panic(err)
	}
}

//reset将全局日志记录恢复为默认值，主要用于测试。
func Reset() {
	Global.Apply(Config{})
}

//loggerlevel返回具有提供名称的记录器的有效级别。
func LoggerLevel(loggerName string) string {
	return strings.ToUpper(Global.Level(loggerName).String())
}

//MustGetLogger创建具有指定名称的记录器。名称无效时恐慌。
func MustGetLogger(loggerName string) *Logger {
	return Global.Logger(loggerName)
}

//activatespec激活全局日志规范，规范无效时恐慌。
func ActivateSpec(spec string) {
	if err := Global.ActivateSpec(spec); err != nil {
		panic(err)
	}
}
