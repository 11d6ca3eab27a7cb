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


//包xorblock对任意偏移的切片执行异或。
//templexxx/xor的SSE2路径要求第二个操作数按16字节对齐，
//因此该操作数总是先复制到对齐的暂存区。
package xorblock

import (
	"sync"
	"unsafe"

	"github.com/templexxx/xor"
)

const (
	alignment = 16
	chunkSize = 256
)

type scratch struct {
	buf []byte
}

func newScratch() interface{} {
	raw := make([]byte, chunkSize+alignment)
	off := int(-uintptr(unsafe.Pointer(&raw[0])) & (alignment - 1))
	return &scratch{buf: raw[off : off+chunkSize]}
}

var pool = sync.Pool{New: newScratch}

//Bytes计算dst = a ^ b，三个切片长度必须相同。
//dst可以与a或b完全重叠。
func Bytes(dst, a, b []byte) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic("xorblock: length mismatch")
	}
	if len(dst) == 0 {
		return
	}

	s := pool.Get().(*scratch)
	used := len(dst)
	if used > chunkSize {
		used = chunkSize
	}
	for len(dst) > 0 {
		n := len(dst)
		if n > chunkSize {
			n = chunkSize
		}
		copy(s.buf[:n], b[:n])
		xor.BytesSameLen(dst[:n], a[:n], s.buf[:n])
		dst, a, b = dst[n:], a[n:], b[n:]
	}
	//暂存区可能保存密钥流
	for i := range s.buf[:used] {
		s.buf[i] = 0
	}
	pool.Put(s)
}
