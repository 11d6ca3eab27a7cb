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


package sw

import (
	"crypto/cipher"
	"unsafe"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/internal/xorblock"
	"github.com/hyperledger/fabric-teecsp/teecsp/registry"
	"github.com/pkg/errors"
)

const maxBlockSize = 16

//cipherState是通用分组密码后端上下文。
//它拥有自己的链接状态，因此可以按值克隆。
type cipherState struct {
	desc   *registry.CipherDescriptor
	block  cipher.Block
	op     teecsp.OperationMode
	iv     [maxBlockSize]byte
	stream [maxBlockSize]byte
	used   int
	cmac   *cmacState
}

var cipherStateSize = int(unsafe.Sizeof(cipherState{}) + unsafe.Sizeof(cmacState{}))

func (s *cipherState) setup(desc *registry.CipherDescriptor) error {
	if desc == nil {
		return errors.New("cipher descriptor must not be nil")
	}
	*s = cipherState{desc: desc, used: desc.BlockSize}
	return nil
}

//setupInfo将状态重新绑定到同一密码和模式的另一个密钥大小
func (s *cipherState) setupInfo(desc *registry.CipherDescriptor) error {
	if s.desc == nil {
		return errors.New("cipher state not set up")
	}
	if desc == nil {
		return errors.New("cipher descriptor must not be nil")
	}
	if desc.Cipher != s.desc.Cipher || desc.Mode != s.desc.Mode {
		return errors.Errorf("cannot rebind %s to %s", s.desc.Name, desc.Name)
	}
	s.desc = desc
	s.block = nil
	return nil
}

func (s *cipherState) setKey(key []byte, op teecsp.OperationMode) error {
	if len(key)*8 != s.desc.KeyBits {
		return errors.Errorf("invalid key length [%d] for %s", len(key), s.desc.Name)
	}
	block, err := s.desc.NewBlock(key)
	if err != nil {
		return errors.Wrapf(err, "failed setting key for %s", s.desc.Name)
	}
	s.block = block
	s.op = op
	return nil
}

func (s *cipherState) setIV(iv []byte) error {
	if s.desc.IVSize == 0 {
		return nil
	}
	if len(iv) < s.desc.IVSize {
		return errors.Errorf("invalid IV length [%d] for %s", len(iv), s.desc.Name)
	}
	copy(s.iv[:], iv[:s.desc.IVSize])
	return nil
}

func (s *cipherState) reset() {
	for i := range s.stream {
		s.stream[i] = 0
	}
	s.used = s.desc.BlockSize
}

func (s *cipherState) update(src, dst []byte) error {
	if s.block == nil {
		return errors.New("key not set")
	}
	bs := s.desc.BlockSize

	switch s.desc.Mode {
	case registry.ModeECB:
		if len(src) != bs {
			return errors.Errorf("ECB processes exactly one block, got [%d] bytes", len(src))
		}
		if s.op == teecsp.ModeEncrypt {
			s.block.Encrypt(dst, src)
		} else {
			s.block.Decrypt(dst, src)
		}

	case registry.ModeCBC:
		if len(src)%bs != 0 {
			return errors.Errorf("CBC input length [%d] not a multiple of the block size", len(src))
		}
		iv := s.iv[:bs]
		var saved [maxBlockSize]byte
		for i := 0; i < len(src); i += bs {
			in, out := src[i:i+bs], dst[i:i+bs]
			if s.op == teecsp.ModeEncrypt {
				xorblock.Bytes(iv, iv, in)
				s.block.Encrypt(out, iv)
				copy(iv, out)
			} else {
				copy(saved[:bs], in)
				s.block.Decrypt(out, in)
				xorblock.Bytes(out, out, iv)
				copy(iv, saved[:bs])
			}
		}

	case registry.ModeCTR:
		for len(src) > 0 {
			if s.used == bs {
				s.block.Encrypt(s.stream[:bs], s.iv[:bs])
				incCounter(s.iv[:bs])
				s.used = 0
			}
			n := bs - s.used
			if n > len(src) {
				n = len(src)
			}
			xorblock.Bytes(dst[:n], src[:n], s.stream[s.used:s.used+n])
			s.used += n
			src, dst = src[n:], dst[n:]
		}

	default:
		return errors.Errorf("unsupported mode %s", s.desc.Mode)
	}
	return nil
}

//encryptBlock使用原始前向密码加密单个块，与模式无关
func (s *cipherState) encryptBlock(dst, src []byte) {
	s.block.Encrypt(dst, src)
}

func (s *cipherState) clone() *cipherState {
	c := *s
	if s.cmac != nil {
		m := *s.cmac
		c.cmac = &m
	}
	return &c
}

func (s *cipherState) free() {
	if s.cmac != nil {
		s.cmac.wipe()
	}
	*s = cipherState{}
}

//incCounter将整个块作为大端整数加一
func incCounter(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
