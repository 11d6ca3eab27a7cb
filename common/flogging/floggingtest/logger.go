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


package floggingtest

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	"github.com/onsi/gomega/gbytes"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

//EncoderConfig是测试记录器使用的控制台编码配置。
//它省略时间和调用者，因此条目是确定的。
var EncoderConfig = zapcore.EncoderConfig{
	LevelKey:         "level",
	NameKey:          "name",
	MessageKey:       "msg",
	EncodeLevel:      zapcore.CapitalLevelEncoder,
	EncodeName:       func(name string, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString("[" + name + "]") },
	ConsoleSeparator: " ",
}

//Recorder保存测试记录器写入的条目和消息。
type Recorder struct {
	mutex    sync.RWMutex
	entries  []string
	messages []string
	buffer   *gbytes.Buffer
}

func newRecorder() *Recorder {
	return &Recorder{buffer: gbytes.NewBuffer()}
}

func (r *Recorder) addEntry(e zapcore.Entry, line *buffer.Buffer) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.buffer.Write(line.Bytes())
	r.entries = append(r.entries, strings.TrimRight(line.String(), "\n"))
	r.messages = append(r.messages, e.Message)
}

func (r *Recorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.buffer = gbytes.NewBuffer()
	r.entries = nil
	r.messages = nil
}

//buffer满足gbytes.BufferProvider，因此可以直接与gbytes.Say一起使用。
func (r *Recorder) Buffer() *gbytes.Buffer {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.buffer
}

func (r *Recorder) Entries() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string{}, r.entries...)
}

func (r *Recorder) Messages() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string{}, r.messages...)
}

func (r *Recorder) EntriesContaining(sub string) []string {
	return filter(r.Entries(), func(s string) bool { return strings.Contains(s, sub) })
}

func (r *Recorder) EntriesMatching(regex string) []string {
	re := regexp.MustCompile(regex)
	return filter(r.Entries(), re.MatchString)
}

func (r *Recorder) MessagesContaining(sub string) []string {
	return filter(r.Messages(), func(s string) bool { return strings.Contains(s, sub) })
}

func (r *Recorder) MessagesMatching(regex string) []string {
	re := regexp.MustCompile(regex)
	return filter(r.Messages(), re.MatchString)
}

func filter(in []string, keep func(string) bool) []string {
	out := []string{}
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

//RecordingCore是一个将每个条目交给Recorder的zapcore.Core。
type RecordingCore struct {
	zapcore.LevelEnabler
	encoder  zapcore.Encoder
	recorder *Recorder
	writer   zapcore.WriteSyncer
}

func (r *RecordingCore) Write(e zapcore.Entry, fields []zapcore.Field) error {
	buf, err := r.encoder.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	r.writer.Write(buf.Bytes())
	r.recorder.addEntry(e, buf)
	buf.Free()
	return nil
}

func (r *RecordingCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if r.Enabled(e.Level) {
		ce = ce.AddCore(e, r)
	}
	if ce != nil && e.Level == zapcore.FatalLevel {
		panic(e.Message)
	}
	return ce
}

func (r *RecordingCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &RecordingCore{
		LevelEnabler: r.LevelEnabler,
		encoder:      r.encoder.Clone(),
		recorder:     r.recorder,
		writer:       r.writer,
	}
	for _, f := range fields {
		f.AddTo(clone.encoder)
	}
	return clone
}

func (r *RecordingCore) Sync() error {
	return r.writer.Sync()
}

//TestingWriter将条目转发到testing.TB.Logf。
type TestingWriter struct{ testing.TB }

func (t *TestingWriter) Write(buf []byte) (int, error) {
	t.Logf("%s", bytes.TrimRight(buf, "\n"))
	return len(buf), nil
}

func (t *TestingWriter) Sync() error { return nil }

type Option func(r *RecordingCore, l *zap.Logger) *zap.Logger

func Named(loggerName string) Option {
	return func(r *RecordingCore, l *zap.Logger) *zap.Logger {
		return l.Named(loggerName)
	}
}

func AtLevel(level zapcore.Level) Option {
	return func(r *RecordingCore, l *zap.Logger) *zap.Logger {
		r.LevelEnabler = zap.LevelEnablerFunc(level.Enabled)
		return l
	}
}

//NewTestLogger返回一个在DEBUG级别记录的记录器及其Recorder。
func NewTestLogger(tb testing.TB, options ...Option) (*flogging.Logger, *Recorder) {
	recorder := newRecorder()
	recordingCore := &RecordingCore{
		LevelEnabler: zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled),
		encoder:      zapcore.NewConsoleEncoder(EncoderConfig),
		recorder:     recorder,
		writer:       &TestingWriter{TB: tb},
	}

	zl := zap.New(recordingCore)
	for _, o := range options {
		zl = o(recordingCore, zl)
	}
	return flogging.NewLogger(zl), recorder
}
