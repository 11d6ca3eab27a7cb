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


package registry

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"hash"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

//feature是构建时启用开关之一。被禁用的系列解析为NotSupported，
//并且从不分配。
type Feature string

const (
	FeatureMD5    Feature = "MD5"
	FeatureSHA1   Feature = "SHA1"
	FeatureSHA224 Feature = "SHA224"
	FeatureSHA256 Feature = "SHA256"
	FeatureSHA384 Feature = "SHA384"
	FeatureSHA512 Feature = "SHA512"
	FeatureSHA3   Feature = "SHA3"
	FeatureAES    Feature = "AES"
	FeatureDES    Feature = "DES"
	FeatureECB    Feature = "ECB"
	FeatureCBC    Feature = "CBC"
	FeatureCTR    Feature = "CTR"
	FeatureCTS    Feature = "CTS"
	FeatureXTS    Feature = "XTS"
	FeatureHMAC   Feature = "HMAC"
	FeatureCMAC   Feature = "CMAC"
	FeatureCBCMAC Feature = "CBC_MAC"
	FeatureCCM    Feature = "CCM"
	FeatureGCM    Feature = "GCM"
)

var knownFeatures = []Feature{
	FeatureMD5, FeatureSHA1, FeatureSHA224, FeatureSHA256, FeatureSHA384, FeatureSHA512, FeatureSHA3,
	FeatureAES, FeatureDES,
	FeatureECB, FeatureCBC, FeatureCTR, FeatureCTS, FeatureXTS,
	FeatureHMAC, FeatureCMAC, FeatureCBCMAC,
	FeatureCCM, FeatureGCM,
}

//allfeatures返回每个已知的功能开关。
func AllFeatures() []Feature {
	return append([]Feature(nil), knownFeatures...)
}

//parsefeature按名称（不区分大小写）查找功能。
func ParseFeature(name string) (Feature, error) {
	for _, f := range knownFeatures {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown feature [%s]", name)
}

//cipherkind标识分组密码系列。
type CipherKind int

const (
	CipherAES CipherKind = iota
	CipherDES
	CipherDES3
)

func (k CipherKind) String() string {
	switch k {
	case CipherAES:
		return "AES"
	case CipherDES:
		return "DES"
	case CipherDES3:
		return "DES3"
	}
	return "UNKNOWN"
}

//ciphermode是后端链接模式。
type CipherMode int

const (
	ModeECB CipherMode = iota
	ModeCBC
	ModeCTR
)

func (m CipherMode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	case ModeCTR:
		return "CTR"
	}
	return "UNKNOWN"
}

//hashdescriptor描述具体的摘要实现。
type HashDescriptor struct {
	Name      string
	Algorithm teecsp.Algorithm
	Size      int
	BlockSize int
//StateSize是序列化摘要状态的长度。
	StateSize int
	New       func() hash.Hash
}

//cipherdescriptor描述分组密码、密钥大小和模式的一种组合。
type CipherDescriptor struct {
	Name      string
	Cipher    CipherKind
	Mode      CipherMode
	KeyBits   int
	BlockSize int
	IVSize    int
	NewBlock  func(key []byte) (cipher.Block, error)
}

//registry是从算法标识符到后端描述符的不可变映射。
//它在构造后不会更改，可以由多个goroutine并发使用。
type Registry struct {
	enabled map[Feature]bool
	hashes  map[uint32]*HashDescriptor
	ciphers map[cipherKey]*CipherDescriptor
}

type cipherKey struct {
	kind    CipherKind
	mode    CipherMode
	keyBits int
}

//new用给定的功能集构造一个注册表。
func New(features ...Feature) (*Registry, error) {
	r := &Registry{
		enabled: map[Feature]bool{},
		hashes:  map[uint32]*HashDescriptor{},
		ciphers: map[cipherKey]*CipherDescriptor{},
	}
	for _, f := range features {
		canonical, err := ParseFeature(string(f))
		if err != nil {
			return nil, err
		}
		r.enabled[canonical] = true
	}

	for _, d := range hashTable() {
		if !r.enabled[hashFeature(d.Algorithm.MainAlgorithm())] {
			continue
		}
		m, ok := d.New().(encoding.BinaryMarshaler)
		if !ok {
			return nil, errors.Errorf("state of %s cannot be serialized", d.Name)
		}
		state, err := m.MarshalBinary()
		if err != nil {
			return nil, errors.Wrapf(err, "failed sizing state of %s", d.Name)
		}
		d.StateSize = len(state)
		r.hashes[d.Algorithm.MainAlgorithm()] = d
	}

	for _, d := range cipherTable() {
		if d.Cipher == CipherAES && !r.enabled[FeatureAES] {
			continue
		}
		if d.Cipher != CipherAES && !r.enabled[FeatureDES] {
			continue
		}
		r.ciphers[cipherKey{d.Cipher, d.Mode, d.KeyBits}] = d
	}

	return r, nil
}

//enabled报告功能是否已打开。
func (r *Registry) Enabled(f Feature) bool {
	return r.enabled[f]
}

//features返回已启用功能的排序列表。
func (r *Registry) Features() []Feature {
	var fs []Feature
	for f, on := range r.enabled {
		if on {
			fs = append(fs, f)
		}
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}

//hashinfo将摘要、HMAC、RSA签名/OAEP或DSA标识符映射到其摘要描述符。
//不识别或被禁用的标识符返回nil。
func (r *Registry) HashInfo(algo teecsp.Algorithm) *HashDescriptor {
	var main uint32
	switch algo.Class() {
	case teecsp.ClassDigest:
		main = algo.MainAlgorithm()
	case teecsp.ClassMAC:
		if algo.ChainMode() != 0 || algo.MainAlgorithm() >= teecsp.MainAES {
			return nil
		}
		main = algo.MainAlgorithm()
	case teecsp.ClassAsymmetricSignature, teecsp.ClassAsymmetricCipher:
		switch algo.MainAlgorithm() {
		case teecsp.MainRSA, teecsp.MainDSA:
			main = algo.DigestHash()
		default:
			return nil
		}
		if main == 0 || main > teecsp.MainSHA512 {
			return nil
		}
	default:
		return nil
	}
	return r.hashes[main]
}

//hashbyname按名称返回摘要描述符，例如“SHA256”或“SHA3_256”。
func (r *Registry) HashByName(name string) *HashDescriptor {
	for _, d := range r.hashes {
		if strings.EqualFold(d.Name, name) {
			return d
		}
	}
	return nil
}

//cipherinfo将密码或MAC标识符与以位为单位的密钥长度一起映射到
//其后端描述符。CTS、XTS、CCM、GCM和CBC-MAC标识符没有描述符。
func (r *Registry) CipherInfo(algo teecsp.Algorithm, keyBits int) *CipherDescriptor {
	var mode CipherMode
	switch algo {
	case teecsp.AESECBNoPad, teecsp.DESECBNoPad, teecsp.DES3ECBNoPad:
		mode = ModeECB
	case teecsp.AESCBCNoPad, teecsp.DESCBCNoPad, teecsp.DES3CBCNoPad:
		mode = ModeCBC
	case teecsp.AESCTR:
		mode = ModeCTR
	default:
		return nil
	}

	var kind CipherKind
	switch algo.MainAlgorithm() {
	case teecsp.MainAES:
		kind = CipherAES
	case teecsp.MainDES:
		kind = CipherDES
	case teecsp.MainDES3:
		kind = CipherDES3
	default:
		return nil
	}

	return r.ciphers[cipherKey{kind, mode, keyBits}]
}

func hashFeature(main uint32) Feature {
	switch main {
	case teecsp.MainMD5:
		return FeatureMD5
	case teecsp.MainSHA1:
		return FeatureSHA1
	case teecsp.MainSHA224:
		return FeatureSHA224
	case teecsp.MainSHA256:
		return FeatureSHA256
	case teecsp.MainSHA384:
		return FeatureSHA384
	case teecsp.MainSHA512:
		return FeatureSHA512
	case teecsp.MainSHA3_224, teecsp.MainSHA3_256, teecsp.MainSHA3_384, teecsp.MainSHA3_512:
		return FeatureSHA3
	}
	return ""
}

func hashTable() []*HashDescriptor {
	return []*HashDescriptor{
		{Name: "MD5", Algorithm: teecsp.MD5, Size: md5.Size, BlockSize: md5.BlockSize, New: md5.New},
		{Name: "SHA1", Algorithm: teecsp.SHA1, Size: sha1.Size, BlockSize: sha1.BlockSize, New: sha1.New},
		{Name: "SHA224", Algorithm: teecsp.SHA224, Size: sha256.Size224, BlockSize: sha256.BlockSize, New: sha256.New224},
		{Name: "SHA256", Algorithm: teecsp.SHA256, Size: sha256.Size, BlockSize: sha256.BlockSize, New: sha256.New},
		{Name: "SHA384", Algorithm: teecsp.SHA384, Size: sha512.Size384, BlockSize: sha512.BlockSize, New: sha512.New384},
		{Name: "SHA512", Algorithm: teecsp.SHA512, Size: sha512.Size, BlockSize: sha512.BlockSize, New: sha512.New},
		{Name: "SHA3_224", Algorithm: teecsp.SHA3_224, Size: 28, BlockSize: 144, New: sha3.New224},
		{Name: "SHA3_256", Algorithm: teecsp.SHA3_256, Size: 32, BlockSize: 136, New: sha3.New256},
		{Name: "SHA3_384", Algorithm: teecsp.SHA3_384, Size: 48, BlockSize: 104, New: sha3.New384},
		{Name: "SHA3_512", Algorithm: teecsp.SHA3_512, Size: 64, BlockSize: 72, New: sha3.New512},
	}
}

func newDES3Block(key []byte) (cipher.Block, error) {
//两密钥三重DES（EDE）展开为k1k2k1
	if len(key) == 16 {
		k := make([]byte, 24)
		copy(k, key)
		copy(k[16:], key[:8])
		return des.NewTripleDESCipher(k)
	}
	return des.NewTripleDESCipher(key)
}

func cipherTable() []*CipherDescriptor {
	var table []*CipherDescriptor
	for _, bits := range []int{128, 192, 256} {
		table = append(table,
			&CipherDescriptor{Cipher: CipherAES, Mode: ModeECB, KeyBits: bits, BlockSize: aes.BlockSize, IVSize: 0, NewBlock: aes.NewCipher},
			&CipherDescriptor{Cipher: CipherAES, Mode: ModeCBC, KeyBits: bits, BlockSize: aes.BlockSize, IVSize: aes.BlockSize, NewBlock: aes.NewCipher},
			&CipherDescriptor{Cipher: CipherAES, Mode: ModeCTR, KeyBits: bits, BlockSize: aes.BlockSize, IVSize: aes.BlockSize, NewBlock: aes.NewCipher},
		)
	}
	table = append(table,
		&CipherDescriptor{Cipher: CipherDES, Mode: ModeECB, KeyBits: 64, BlockSize: des.BlockSize, IVSize: 0, NewBlock: des.NewCipher},
		&CipherDescriptor{Cipher: CipherDES, Mode: ModeCBC, KeyBits: 64, BlockSize: des.BlockSize, IVSize: des.BlockSize, NewBlock: des.NewCipher},
	)
	for _, bits := range []int{128, 192} {
		table = append(table,
			&CipherDescriptor{Cipher: CipherDES3, Mode: ModeECB, KeyBits: bits, BlockSize: des.BlockSize, IVSize: 0, NewBlock: newDES3Block},
			&CipherDescriptor{Cipher: CipherDES3, Mode: ModeCBC, KeyBits: bits, BlockSize: des.BlockSize, IVSize: des.BlockSize, NewBlock: newDES3Block},
		)
	}
	for _, d := range table {
		d.Name = d.Cipher.String() + "-" + strconv.Itoa(d.KeyBits) + "-" + d.Mode.String()
	}
	return table
}
