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
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/hyperledger/fabric-teecsp/teecsp/internal/xorblock"
	"github.com/pkg/errors"
)

const (
	ctrKeyLen   = 32
	ctrBlockLen = aes.BlockSize
	ctrSeedLen  = ctrKeyLen + ctrBlockLen
)

//ctrDRBG是使用AES-256和Block_Cipher_df的CTR_DRBG
type ctrDRBG struct {
	key   [ctrKeyLen]byte
	v     [ctrBlockLen]byte
	block cipher.Block
}

func (d *ctrDRBG) setKey(key []byte) error {
	copy(d.key[:], key)
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		return errors.Wrap(err, "failed keying AES")
	}
	d.block = block
	return nil
}

func (d *ctrDRBG) incV() {
	lo := binary.BigEndian.Uint64(d.v[8:])
	lo++
	binary.BigEndian.PutUint64(d.v[8:], lo)
	if lo == 0 {
		hi := binary.BigEndian.Uint64(d.v[:8])
		binary.BigEndian.PutUint64(d.v[:8], hi+1)
	}
}

//update是CTR_DRBG_Update；provided必须为seedLen字节
func (d *ctrDRBG) update(provided []byte) error {
	var temp [ctrSeedLen]byte
	for i := 0; i < ctrSeedLen; i += ctrBlockLen {
		d.incV()
		d.block.Encrypt(temp[i:i+ctrBlockLen], d.v[:])
	}
	xorblock.Bytes(temp[:], temp[:], provided)
	copy(d.v[:], temp[ctrKeyLen:])
	return d.setKey(temp[:ctrKeyLen])
}

func (d *ctrDRBG) instantiate(entropy, nonce, personalization []byte) error {
	material := make([]byte, 0, len(entropy)+len(nonce)+len(personalization))
	material = append(material, entropy...)
	material = append(material, nonce...)
	material = append(material, personalization...)
	seed, err := blockCipherDF(material, ctrSeedLen)
	if err != nil {
		return err
	}

	d.key = [ctrKeyLen]byte{}
	d.v = [ctrBlockLen]byte{}
	if err := d.setKey(d.key[:]); err != nil {
		return err
	}
	return d.update(seed)
}

func (d *ctrDRBG) reseed(entropy, additional []byte) error {
	material := make([]byte, 0, len(entropy)+len(additional))
	material = append(material, entropy...)
	material = append(material, additional...)
	seed, err := blockCipherDF(material, ctrSeedLen)
	if err != nil {
		return err
	}
	return d.update(seed)
}

func (d *ctrDRBG) generate(out, additional []byte) error {
	if d.block == nil {
		return errNotInstantiated
	}

	provided := make([]byte, ctrSeedLen)
	if len(additional) > 0 {
		var err error
		if provided, err = blockCipherDF(additional, ctrSeedLen); err != nil {
			return err
		}
		if err := d.update(provided); err != nil {
			return err
		}
	}

	var tmp [ctrBlockLen]byte
	for len(out) > 0 {
		d.incV()
		d.block.Encrypt(tmp[:], d.v[:])
		n := copy(out, tmp[:])
		out = out[n:]
	}
	return d.update(provided)
}

func (d *ctrDRBG) wipe() {
	*d = ctrDRBG{}
}

//blockCipherDF是SP 800-90A第10.3.2节的Block_Cipher_df
func blockCipherDF(input []byte, outLen int) ([]byte, error) {
	s := make([]byte, 8, 8+len(input)+1+ctrBlockLen)
	binary.BigEndian.PutUint32(s[0:4], uint32(len(input)))
	binary.BigEndian.PutUint32(s[4:8], uint32(outLen))
	s = append(s, input...)
	s = append(s, 0x80)
	for len(s)%ctrBlockLen != 0 {
		s = append(s, 0)
	}

	var k [ctrKeyLen]byte
	for i := range k {
		k[i] = byte(i)
	}
	block, err := aes.NewCipher(k[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed keying derivation function")
	}

	temp := make([]byte, 0, ctrSeedLen)
	var iv [ctrBlockLen]byte
	for i := uint32(0); len(temp) < ctrSeedLen; i++ {
		binary.BigEndian.PutUint32(iv[:4], i)
		temp = append(temp, bcc(block, iv[:], s)...)
	}

	block, err = aes.NewCipher(temp[:ctrKeyLen])
	if err != nil {
		return nil, errors.Wrap(err, "failed keying derivation function")
	}
	x := make([]byte, ctrBlockLen)
	copy(x, temp[ctrKeyLen:ctrSeedLen])

	out := make([]byte, 0, outLen+ctrBlockLen)
	for len(out) < outLen {
		block.Encrypt(x, x)
		out = append(out, x...)
	}
	return out[:outLen], nil
}

//bcc对iv||data计算CBC-MAC，初始链接值为零
func bcc(block cipher.Block, iv, data []byte) []byte {
	chain := make([]byte, ctrBlockLen)
	xorblock.Bytes(chain, chain, iv)
	block.Encrypt(chain, chain)
	for i := 0; i < len(data); i += ctrBlockLen {
		xorblock.Bytes(chain, chain, data[i:i+ctrBlockLen])
		block.Encrypt(chain, chain)
	}
	return chain
}
