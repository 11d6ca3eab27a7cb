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
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

//loggerlevels跟踪已命名记录器的日志级别。
type LoggerLevels struct {
	mutex        sync.RWMutex
	defaultLevel zapcore.Level
	specs        map[string]zapcore.Level
	levelCache   map[string]zapcore.Level
}

//DefaultLevel返回未显式设置级别的记录器的级别。
func (l *LoggerLevels) DefaultLevel() zapcore.Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.defaultLevel
}

//activatespec用于修改日志记录级别。规范格式为
//[<logger>[,<logger>...]=]<level>[:[<logger>[,<logger>...]=]<level>...]
//以句点结尾的记录器名称只匹配该名称本身，不匹配其子记录器。
func (l *LoggerLevels) ActivateSpec(spec string) error {
	defaultLevel, specs, err := parseSpec(spec)
	if err != nil {
		return err
	}

	l.mutex.Lock()
	l.defaultLevel = defaultLevel
	l.specs = specs
	l.levelCache = map[string]zapcore.Level{}
	l.mutex.Unlock()
	return nil
}

func parseSpec(spec string) (zapcore.Level, map[string]zapcore.Level, error) {
	defaultLevel := zapcore.InfoLevel
	specs := map[string]zapcore.Level{}

	for _, segment := range strings.Split(spec, ":") {
		parts := strings.Split(segment, "=")
		switch len(parts) {
		case 1:
			if segment != "" && !IsValidLevel(segment) {
				return 0, nil, errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
			}
			defaultLevel = NameToLevel(segment)

		case 2:
			if parts[0] == "" {
				return 0, nil, errors.Errorf("invalid logging specification '%s': no logger specified in segment '%s'", spec, segment)
			}
			if !IsValidLevel(parts[1]) {
				return 0, nil, errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
			}
			level := NameToLevel(parts[1])
			for _, name := range strings.Split(parts[0], ",") {
				if !isValidLoggerName(strings.TrimSuffix(name, ".")) {
					return 0, nil, errors.Errorf("invalid logging specification '%s': bad logger name '%s'", spec, name)
				}
				specs[name] = level
			}

		default:
			return 0, nil, errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
		}
	}
	return defaultLevel, specs, nil
}

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_#:-]+(\.[[:alnum:]_#:-]+)*$`)

func isValidLoggerName(loggerName string) bool {
	return loggerNameRegexp.MatchString(loggerName)
}

//level返回记录器的有效日志级别。
func (l *LoggerLevels) Level(loggerName string) zapcore.Level {
	l.mutex.RLock()
	level, ok := l.levelCache[loggerName]
	l.mutex.RUnlock()
	if ok {
		return level
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	level = l.lookup(loggerName)
	if l.levelCache == nil {
		l.levelCache = map[string]zapcore.Level{}
	}
	l.levelCache[loggerName] = level
	return level
}

//lookup先尝试精确名称（带句点后缀），然后沿点分层次逐级向上查找
func (l *LoggerLevels) lookup(loggerName string) zapcore.Level {
	if lvl, ok := l.specs[loggerName+"."]; ok {
		return lvl
	}
	for name := loggerName; name != ""; {
		if lvl, ok := l.specs[name]; ok {
			return lvl
		}
		idx := strings.LastIndex(name, ".")
		if idx <= 0 {
			break
		}
		name = name[:idx]
	}
	return l.defaultLevel
}

//spec返回活动日志规范的规范化版本。
func (l *LoggerLevels) Spec() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var fields []string
	for k, v := range l.specs {
		fields = append(fields, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(fields)
	fields = append(fields, l.defaultLevel.String())
	return strings.Join(fields, ":")
}
