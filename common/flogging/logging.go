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
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//SpecEnvVar是在未提供日志规范时读取的环境变量。
const SpecEnvVar = "TEECSP_LOGGING_SPEC"

//config用于提供日志记录实例的依赖项。
type Config struct {
//Format为“json”时记录格式化为JSON，为“console”或空时
//使用人类可读的控制台格式。
	Format string

//LogSpec确定启用的日志级别，必须能够由ActivateSpec处理。
//为空时读取TEECSP_LOGGING_SPEC，然后回退到INFO。
	LogSpec string

//Writer是编码后日志记录的接收器，默认为os.Stderr。
	Writer io.Writer
}

//logging维护与结构化日志记录系统关联的状态。
type Logging struct {
	*LoggerLevels

	mutex         sync.RWMutex
	encoding      Encoding
	encoderConfig zapcore.EncoderConfig
	writer        zapcore.WriteSyncer
	observer      Observer
}

//new创建一个新的日志记录系统，并用提供的配置初始化它。
func New(c Config) (*Logging, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	s := &Logging{
		LoggerLevels:  &LoggerLevels{defaultLevel: defaultLevel},
		encoderConfig: encoderConfig,
	}
	if err := s.Apply(c); err != nil {
		return nil, err
	}
	return s, nil
}

//apply将提供的配置应用于日志记录系统。
func (s *Logging) Apply(c Config) error {
	if err := s.SetFormat(c.Format); err != nil {
		return err
	}

	if c.LogSpec == "" {
		c.LogSpec = os.Getenv(SpecEnvVar)
	}
	if c.LogSpec == "" {
		c.LogSpec = defaultLevel.String()
	}
	if err := s.LoggerLevels.ActivateSpec(c.LogSpec); err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	s.SetWriter(c.Writer)
	return nil
}

//setformat更新日志记录的编码方式。之后创建的日志条目将使用新格式。
func (s *Logging) SetFormat(format string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch format {
	case "", "console":
		s.encoding = CONSOLE
	case "json":
		s.encoding = JSON
	default:
		return errors.Errorf("invalid logging format '%s': must be 'console' or 'json'", format)
	}
	return nil
}

//setwriter控制将格式化的日志记录写入哪个writer。
//除*os.File外，writer必须能被多个goroutine安全地并发使用。
func (s *Logging) SetWriter(w io.Writer) {
	var sw zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		sw = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sw = t
	default:
		sw = zapcore.AddSync(w)
	}

	s.mutex.Lock()
	s.writer = sw
	s.mutex.Unlock()
}

//setobserver设置在检查或写入日志条目时调用的观察者。只支持一个观察者。
func (s *Logging) SetObserver(observer Observer) {
	s.mutex.Lock()
	s.observer = observer
	s.mutex.Unlock()
}

func (s *Logging) Write(b []byte) (int, error) {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()
	return w.Write(b)
}

func (s *Logging) Sync() error {
	s.mutex.RLock()
	w := s.writer
	s.mutex.RUnlock()
	return w.Sync()
}

func (s *Logging) Encoding() Encoding {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.encoding
}

//zaplogger用指定的名称实例化新的zap.Logger。
//名称用于确定启用了哪些日志级别。
func (s *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	s.mutex.RLock()
	core := &Core{
//级别检查在Core.Check中按记录器名称进行
		LevelEnabler: zap.LevelEnablerFunc(func(zapcore.Level) bool { return true }),
		Levels:       s.LoggerLevels,
		Encoders: map[Encoding]zapcore.Encoder{
			JSON:    zapcore.NewJSONEncoder(s.encoderConfig),
			CONSOLE: zapcore.NewConsoleEncoder(s.encoderConfig),
		},
		Selector: s,
		Output:   s,
		Observer: s,
	}
	s.mutex.RUnlock()

	return NewZapLogger(core).Named(name)
}

func (s *Logging) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) {
	s.mutex.RLock()
	observer := s.observer
	s.mutex.RUnlock()

	if observer != nil {
		observer.Check(e, ce)
	}
}

func (s *Logging) WriteEntry(e zapcore.Entry, fields []zapcore.Field) {
	s.mutex.RLock()
	observer := s.observer
	s.mutex.RUnlock()

	if observer != nil {
		observer.WriteEntry(e, fields)
	}
}

//logger用指定的名称实例化新的Logger。
func (s *Logging) Logger(name string) *Logger {
	return NewLogger(s.ZapLogger(name))
}
