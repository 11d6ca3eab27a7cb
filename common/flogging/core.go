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
	"go.uber.org/zap/zapcore"
)

type Encoding int8

const (
	CONSOLE = iota
	JSON
)

//encodingselector决定日志记录编码为JSON还是控制台格式。
type EncodingSelector interface {
	Encoding() Encoding
}

//Observer在检查和写入日志条目时收到通知。
type Observer interface {
	Check(e zapcore.Entry, ce *zapcore.CheckedEntry)
	WriteEntry(e zapcore.Entry, fields []zapcore.Field)
}

//core是一个zapcore.Core，它同时持有JSON和控制台编码器，
//并在写入时根据选择器选择其一。级别按记录器名称
//从LoggerLevels查找，因此ActivateSpec会立即对现有记录器生效。
type Core struct {
	zapcore.LevelEnabler
	Levels   *LoggerLevels
	Encoders map[Encoding]zapcore.Encoder
	Selector EncodingSelector
	Output   zapcore.WriteSyncer
	Observer Observer
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clones := make(map[Encoding]zapcore.Encoder, len(c.Encoders))
	for name, enc := range c.Encoders {
		clone := enc.Clone()
		for i := range fields {
			fields[i].AddTo(clone)
		}
		clones[name] = clone
	}

	clone := *c
	clone.Encoders = clones
	return &clone
}

func (c *Core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Observer != nil {
		c.Observer.Check(e, ce)
	}
	if !c.Enabled(e.Level) || !c.Levels.Level(e.LoggerName).Enabled(e.Level) {
		return ce
	}
	return ce.AddCore(e, c)
}

func (c *Core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	enc, ok := c.Encoders[c.Selector.Encoding()]
	if !ok {
		enc = c.Encoders[CONSOLE]
	}

	buf, err := enc.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	_, err = c.Output.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level >= zapcore.PanicLevel {
		c.Sync()
	}
	if c.Observer != nil {
		c.Observer.WriteEntry(e, fields)
	}
	return nil
}

func (c *Core) Sync() error {
	return c.Output.Sync()
}
