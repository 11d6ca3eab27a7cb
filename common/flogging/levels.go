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
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
//DisabledLevel表示禁用的日志级别，该级别的日志永远不会发出。
	DisabledLevel = zapcore.FatalLevel + 1

//PayloadLevel用于记录极其详细的调试信息，例如操作数据。
	PayloadLevel = zapcore.DebugLevel - 1
)

//nametolevel将级别名称转换为zap级别。无法识别的名称映射为INFO。
func NameToLevel(level string) zapcore.Level {
	l, err := nameToLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func nameToLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "payload":
		return PayloadLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "notice":
		return zapcore.InfoLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error", "critical":
		return zapcore.ErrorLevel, nil
	case "dpanic":
		return zapcore.DPanicLevel, nil
	case "panic":
		return zapcore.PanicLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return DisabledLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

//isvalidlevel报告名称是否可以在日志规范中使用。
func IsValidLevel(level string) bool {
	_, err := nameToLevel(level)
	return err == nil
}
