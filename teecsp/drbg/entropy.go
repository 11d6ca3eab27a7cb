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


package drbg

import (
	"crypto/rand"
	"io"
)

//SystemEntropy返回操作系统的熵源。
func SystemEntropy() io.Reader {
	return rand.Reader
}

//pseudoEntropy是线性同余生成器。它在密码学上毫无价值，
//只用于需要可重复输出的测试。
type pseudoEntropy struct {
	next uint32
}

//NewPseudoEntropy返回以seed为种子的确定性字节源。
func NewPseudoEntropy(seed uint32) io.Reader {
	return &pseudoEntropy{next: seed}
}

func (p *pseudoEntropy) Read(b []byte) (int, error) {
	for i := range b {
		p.next = p.next*1103515245 + 12345
		b[i] = byte((p.next / 65536) % 32768)
	}
	return len(b), nil
}
