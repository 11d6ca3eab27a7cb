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


package teecsp

import (
	"fmt"

	"github.com/pkg/errors"
)

//kind对提供程序返回的每个错误进行分类。
type Kind int

const (
//Generic是未另行分类的后端设置失败。
	Generic Kind = iota
//BadParameters表示调用者错误，没有部分副作用。
	BadParameters
//NotSupported表示算法或模式未启用或从不支持。
	NotSupported
//OutOfMemory表示分配失败。
	OutOfMemory
//BadState表示后端返回了内部错误或违反了状态机。
	BadState
//ShortBuffer是可恢复的：调用者可以用更大的缓冲区重试。
	ShortBuffer
//Security表示标签/摘要验证失败或熵播种失败。
	Security
//NotImplemented由没有后端的入口点返回。
	NotImplemented
)

var kindNames = map[Kind]string{
	Generic:        "GENERIC",
	BadParameters:  "BAD_PARAMETERS",
	NotSupported:   "NOT_SUPPORTED",
	OutOfMemory:    "OUT_OF_MEMORY",
	BadState:       "BAD_STATE",
	ShortBuffer:    "SHORT_BUFFER",
	Security:       "SECURITY",
	NotImplemented: "NOT_IMPLEMENTED",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

//code返回与此类对应的TEE_Result值。
func (k Kind) Code() uint32 {
	switch k {
	case BadParameters:
		return 0xFFFF0006
	case BadState:
		return 0xFFFF0007
	case NotImplemented:
		return 0xFFFF0009
	case NotSupported:
		return 0xFFFF000A
	case OutOfMemory:
		return 0xFFFF000C
	case Security:
		return 0xFFF0000F
	case ShortBuffer:
		return 0xFFFF0010
	default:
		return 0xFFFF0000
	}
}

//error是提供程序返回的错误类型。
type Error struct {
	Kind     Kind
	ErrorMsg string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.ErrorMsg, e.Cause)
	}
	return e.ErrorMsg
}

//unwrap返回基础原因。
func (e *Error) Unwrap() error {
	return e.Cause
}

//NewError创建一个给定类型的新错误。
func NewError(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind:     kind,
		ErrorMsg: fmt.Sprintf(format, args...),
	}
}

//WrapError用类型和消息包装原因。
func WrapError(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{
		Kind:     kind,
		ErrorMsg: fmt.Sprintf(format, args...),
		Cause:    cause,
	}
}

//KindOf返回错误链中第一个*Error的类型。
//不是由提供程序产生的非nil错误被视为Generic。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Generic
}

//IsKind报告err是否是给定类型的提供程序错误。
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
