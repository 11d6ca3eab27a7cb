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


package acipher

import (
	"github.com/hyperledger/fabric-teecsp/teecsp"
)

//Bignum是后端大数的不透明句柄。
//没有后端时AllocateBignum总是返回nil，因此只有在调用者忽略了
//分配失败时才能到达需要有效句柄的方法；这些方法会panic。
type Bignum struct{}

//AllocateBignum分配能保存sizeBits位的大数。没有后端时返回nil。
func AllocateBignum(sizeBits int) *Bignum {
	return nil
}

func cantHappen() {
	panic("acipher: bignum operation without a backend")
}

//SetBytes从大端字节加载b。
func (b *Bignum) SetBytes(from []byte) error {
	return teecsp.NewError(teecsp.NotImplemented, "bignum conversion not implemented")
}

func (b *Bignum) NumBytes() int { return 0 }
func (b *Bignum) NumBits() int  { return 0 }

//Bytes将b以大端方式写入to。
func (b *Bignum) Bytes(to []byte) { cantHappen() }

func (b *Bignum) CopyFrom(from *Bignum) { cantHappen() }

func (b *Bignum) Clear() { cantHappen() }

//Compare在b<o时返回-1，相等时返回0，b>o时返回+1。
func (b *Bignum) Compare(o *Bignum) int {
	cantHappen()
	return -1
}

//Free释放b。释放nil是允许的。
func (b *Bignum) Free() {
	if b != nil {
		cantHappen()
	}
}
