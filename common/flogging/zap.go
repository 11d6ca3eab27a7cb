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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//newzaplogger围绕core创建一个zap记录器，记录调用者并为错误附加堆栈。
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(
		core,
		append([]zap.Option{
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		}, options...)...,
	)
}

//NewLogger创建一个委托给zap.SugaredLogger的记录器。
func NewLogger(l *zap.Logger, options ...zap.Option) *Logger {
	return &Logger{
		s: l.WithOptions(append(options, zap.AddCallerSkip(1))...).Sugar(),
	}
}

//logger是zap.SugaredLogger的适配器。不带格式后缀的方法
//用fmt.Sprintln构建消息，因此参数之间以空格分隔。
type Logger struct{ s *zap.SugaredLogger }

func (f *Logger) Debug(args ...interface{})                   { f.s.Debugf(formatArgs(args)) }
func (f *Logger) Debugf(template string, args ...interface{}) { f.s.Debugf(template, args...) }
func (f *Logger) Debugw(msg string, kvPairs ...interface{})   { f.s.Debugw(msg, kvPairs...) }
func (f *Logger) Info(args ...interface{})                    { f.s.Infof(formatArgs(args)) }
func (f *Logger) Infof(template string, args ...interface{})  { f.s.Infof(template, args...) }
func (f *Logger) Infow(msg string, kvPairs ...interface{})    { f.s.Infow(msg, kvPairs...) }
func (f *Logger) Warn(args ...interface{})                    { f.s.Warnf(formatArgs(args)) }
func (f *Logger) Warnf(template string, args ...interface{})  { f.s.Warnf(template, args...) }
func (f *Logger) Warnw(msg string, kvPairs ...interface{})    { f.s.Warnw(msg, kvPairs...) }
func (f *Logger) Error(args ...interface{})                   { f.s.Errorf(formatArgs(args)) }
func (f *Logger) Errorf(template string, args ...interface{}) { f.s.Errorf(template, args...) }
func (f *Logger) Errorw(msg string, kvPairs ...interface{})   { f.s.Errorw(msg, kvPairs...) }
func (f *Logger) Panic(args ...interface{})                   { f.s.Panicf(formatArgs(args)) }
func (f *Logger) Panicf(template string, args ...interface{}) { f.s.Panicf(template, args...) }
func (f *Logger) Fatal(args ...interface{})                   { f.s.Fatalf(formatArgs(args)) }
func (f *Logger) Fatalf(template string, args ...interface{}) { f.s.Fatalf(template, args...) }

//payloadf以PayloadLevel记录，用于转储操作数据。
func (f *Logger) Payloadf(template string, args ...interface{}) {
	if ce := f.s.Desugar().Check(PayloadLevel, fmt.Sprintf(template, args...)); ce != nil {
		ce.Write()
	}
}

func (f *Logger) Named(name string) *Logger { return &Logger{s: f.s.Named(name)} }
func (f *Logger) Sync() error               { return f.s.Sync() }
func (f *Logger) Zap() *zap.Logger          { return f.s.Desugar() }

func (f *Logger) IsEnabledFor(level zapcore.Level) bool {
	return f.s.Desugar().Core().Enabled(level)
}

func (f *Logger) With(args ...interface{}) *Logger {
	return &Logger{s: f.s.With(args...)}
}

func formatArgs(args []interface{}) string { return strings.TrimSuffix(fmt.Sprintln(args...), "\n") }
