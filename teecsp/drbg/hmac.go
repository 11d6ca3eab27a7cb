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
	"crypto/hmac"
	"crypto/sha256"
)

const hmacOutLen = sha256.Size

//hmacDRBG是使用SHA-256的HMAC_DRBG
type hmacDRBG struct {
	key [hmacOutLen]byte
	v   [hmacOutLen]byte
	ok  bool
}

func (d *hmacDRBG) mac(parts ...[]byte) []byte {
	m := hmac.New(sha256.New, d.key[:])
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

func (d *hmacDRBG) update(provided ...[]byte) {
	parts := append([][]byte{d.v[:], {0x00}}, provided...)
	copy(d.key[:], d.mac(parts...))
	copy(d.v[:], d.mac(d.v[:]))

	empty := true
	for _, p := range provided {
		if len(p) > 0 {
			empty = false
		}
	}
	if empty {
		return
	}

	parts = append([][]byte{d.v[:], {0x01}}, provided...)
	copy(d.key[:], d.mac(parts...))
	copy(d.v[:], d.mac(d.v[:]))
}

func (d *hmacDRBG) instantiate(entropy, nonce, personalization []byte) error {
	for i := range d.key {
		d.key[i] = 0x00
		d.v[i] = 0x01
	}
	d.update(entropy, nonce, personalization)
	d.ok = true
	return nil
}

func (d *hmacDRBG) reseed(entropy, additional []byte) error {
	d.update(entropy, additional)
	return nil
}

func (d *hmacDRBG) generate(out, additional []byte) error {
	if !d.ok {
		return errNotInstantiated
	}
	if len(additional) > 0 {
		d.update(additional)
	}
	for len(out) > 0 {
		copy(d.v[:], d.mac(d.v[:]))
		n := copy(out, d.v[:])
		out = out[n:]
	}
	d.update(additional)
	return nil
}

func (d *hmacDRBG) wipe() {
	*d = hmacDRBG{}
}
