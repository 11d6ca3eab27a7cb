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
	"sort"
)

//algorithm是GlobalPlatform编号空间中的32位算法标识符。
//值在整个系统中保持稳定，永远不会重新编号。
//
//编码：
//位28-31  操作类别（密码、MAC、AE、摘要……）
//位20-23  MGF1使用的摘要（PSS、OAEP）
//位12-15  签名使用的摘要，OAEP为0
//位8-11   链接模式
//位0-7    主算法
type Algorithm uint32

//class是算法标识符中编码的操作类别。
type Class uint32

const (
	ClassCipher              Class = 0x1
	ClassMAC                 Class = 0x3
	ClassAE                  Class = 0x4
	ClassDigest              Class = 0x5
	ClassAsymmetricCipher    Class = 0x6
	ClassAsymmetricSignature Class = 0x7
	ClassKeyDerivation       Class = 0x8
)

//主算法
const (
	MainMD5      uint32 = 0x01
	MainSHA1     uint32 = 0x02
	MainSHA224   uint32 = 0x03
	MainSHA256   uint32 = 0x04
	MainSHA384   uint32 = 0x05
	MainSHA512   uint32 = 0x06
	MainSHA3_224 uint32 = 0x08
	MainSHA3_256 uint32 = 0x09
	MainSHA3_384 uint32 = 0x0A
	MainSHA3_512 uint32 = 0x0B
	MainAES      uint32 = 0x10
	MainDES      uint32 = 0x11
	MainDES3     uint32 = 0x13
	MainRSA      uint32 = 0x30
	MainDSA      uint32 = 0x31
	MainDH       uint32 = 0x32
	MainECDSA    uint32 = 0x41
	MainECDH     uint32 = 0x42
)

//链接模式
const (
	ChainECBNoPad    uint32 = 0x0
	ChainCBCNoPad    uint32 = 0x1
	ChainCTR         uint32 = 0x2
	ChainCTS         uint32 = 0x3
	ChainXTS         uint32 = 0x4
	ChainCBCMACPKCS5 uint32 = 0x5
	ChainCMAC        uint32 = 0x6
	ChainCCM         uint32 = 0x7
	ChainGCM         uint32 = 0x8
)

const (
//对称密码
	AESECBNoPad  Algorithm = 0x10000010
	AESCBCNoPad  Algorithm = 0x10000110
	AESCTR       Algorithm = 0x10000210
	AESCTS       Algorithm = 0x10000310
	AESXTS       Algorithm = 0x10000410
	DESECBNoPad  Algorithm = 0x10000011
	DESCBCNoPad  Algorithm = 0x10000111
	DES3ECBNoPad Algorithm = 0x10000013
	DES3CBCNoPad Algorithm = 0x10000113

//基于分组密码的MAC
	AESCBCMACNoPad  Algorithm = 0x30000110
	AESCBCMACPKCS5  Algorithm = 0x30000510
	AESCMAC         Algorithm = 0x30000610
	DESCBCMACNoPad  Algorithm = 0x30000111
	DESCBCMACPKCS5  Algorithm = 0x30000511
	DES3CBCMACNoPad Algorithm = 0x30000113
	DES3CBCMACPKCS5 Algorithm = 0x30000513

//认证加密
	AESCCM Algorithm = 0x40000710
	AESGCM Algorithm = 0x40000810

//摘要
	MD5      Algorithm = 0x50000001
	SHA1     Algorithm = 0x50000002
	SHA224   Algorithm = 0x50000003
	SHA256   Algorithm = 0x50000004
	SHA384   Algorithm = 0x50000005
	SHA512   Algorithm = 0x50000006
	SHA3_224 Algorithm = 0x50000008
	SHA3_256 Algorithm = 0x50000009
	SHA3_384 Algorithm = 0x5000000A
	SHA3_512 Algorithm = 0x5000000B

//HMAC
	HMACMD5      Algorithm = 0x30000001
	HMACSHA1     Algorithm = 0x30000002
	HMACSHA224   Algorithm = 0x30000003
	HMACSHA256   Algorithm = 0x30000004
	HMACSHA384   Algorithm = 0x30000005
	HMACSHA512   Algorithm = 0x30000006
	HMACSHA3_224 Algorithm = 0x30000008
	HMACSHA3_256 Algorithm = 0x30000009
	HMACSHA3_384 Algorithm = 0x3000000A
	HMACSHA3_512 Algorithm = 0x3000000B

//RSA签名
	RSASSAPKCS1V15MD5         Algorithm = 0x70001830
	RSASSAPKCS1V15SHA1        Algorithm = 0x70002830
	RSASSAPKCS1V15SHA224      Algorithm = 0x70003830
	RSASSAPKCS1V15SHA256      Algorithm = 0x70004830
	RSASSAPKCS1V15SHA384      Algorithm = 0x70005830
	RSASSAPKCS1V15SHA512      Algorithm = 0x70006830
	RSASSAPKCS1PSSMGF1SHA1    Algorithm = 0x70212930
	RSASSAPKCS1PSSMGF1SHA224  Algorithm = 0x70313930
	RSASSAPKCS1PSSMGF1SHA256  Algorithm = 0x70414930
	RSASSAPKCS1PSSMGF1SHA384  Algorithm = 0x70515930
	RSASSAPKCS1PSSMGF1SHA512  Algorithm = 0x70616930

//RSA加密
	RSAESPKCS1V15            Algorithm = 0x60000130
	RSAESPKCS1OAEPMGF1SHA1   Algorithm = 0x60210230
	RSAESPKCS1OAEPMGF1SHA224 Algorithm = 0x60310230
	RSAESPKCS1OAEPMGF1SHA256 Algorithm = 0x60410230
	RSAESPKCS1OAEPMGF1SHA384 Algorithm = 0x60510230
	RSAESPKCS1OAEPMGF1SHA512 Algorithm = 0x60610230
	RSANoPad                 Algorithm = 0x60000030

//DSA、DH、ECC
	DSASHA1              Algorithm = 0x70002131
	DSASHA224            Algorithm = 0x70003131
	DSASHA256            Algorithm = 0x70004131
	DHDeriveSharedSecret Algorithm = 0x80000032
	ECDSAP192            Algorithm = 0x70001041
	ECDSAP224            Algorithm = 0x70002041
	ECDSAP256            Algorithm = 0x70003041
	ECDSAP384            Algorithm = 0x70004041
	ECDSAP521            Algorithm = 0x70005041
	ECDHP192             Algorithm = 0x80001042
	ECDHP224             Algorithm = 0x80002042
	ECDHP256             Algorithm = 0x80003042
	ECDHP384             Algorithm = 0x80004042
	ECDHP521             Algorithm = 0x80005042
)

//MaxHashSize是哈希引擎支持的最大摘要长度（字节）。
const MaxHashSize = 64

//class返回操作类别。
func (a Algorithm) Class() Class {
	return Class(uint32(a) >> 28)
}

//mainalgorithm返回主算法（位0-7）。
func (a Algorithm) MainAlgorithm() uint32 {
	return uint32(a) & 0xff
}

//chainmode返回链接模式（位8-11）。
func (a Algorithm) ChainMode() uint32 {
	return (uint32(a) >> 8) & 0xf
}

//digesthash返回签名或OAEP标识符中编码的摘要的主算法，
//如果没有编码摘要，则返回0。
func (a Algorithm) DigestHash() uint32 {
	if d := (uint32(a) >> 12) & 0xf; d != 0 {
		return d
	}
	//OAEP只在MGF1字段中携带摘要
	return (uint32(a) >> 20) & 0xf
}

var digestSizes = map[uint32]int{
	MainMD5:      16,
	MainSHA1:     20,
	MainSHA224:   28,
	MainSHA256:   32,
	MainSHA384:   48,
	MainSHA512:   64,
	MainSHA3_224: 28,
	MainSHA3_256: 32,
	MainSHA3_384: 48,
	MainSHA3_512: 64,
}

//outputsize返回摘要或MAC算法的完整输出长度，其他算法返回0。
func (a Algorithm) OutputSize() int {
	switch a.Class() {
	case ClassDigest:
		return digestSizes[a.MainAlgorithm()]
	case ClassMAC:
		switch a.MainAlgorithm() {
		case MainAES:
			return 16
		case MainDES, MainDES3:
			return 8
		}
		return digestSizes[a.MainAlgorithm()]
	}
	return 0
}

var algorithmNames = map[Algorithm]string{
	AESECBNoPad:              "TEE_ALG_AES_ECB_NOPAD",
	AESCBCNoPad:              "TEE_ALG_AES_CBC_NOPAD",
	AESCTR:                   "TEE_ALG_AES_CTR",
	AESCTS:                   "TEE_ALG_AES_CTS",
	AESXTS:                   "TEE_ALG_AES_XTS",
	DESECBNoPad:              "TEE_ALG_DES_ECB_NOPAD",
	DESCBCNoPad:              "TEE_ALG_DES_CBC_NOPAD",
	DES3ECBNoPad:             "TEE_ALG_DES3_ECB_NOPAD",
	DES3CBCNoPad:             "TEE_ALG_DES3_CBC_NOPAD",
	AESCBCMACNoPad:           "TEE_ALG_AES_CBC_MAC_NOPAD",
	AESCBCMACPKCS5:           "TEE_ALG_AES_CBC_MAC_PKCS5",
	AESCMAC:                  "TEE_ALG_AES_CMAC",
	DESCBCMACNoPad:           "TEE_ALG_DES_CBC_MAC_NOPAD",
	DESCBCMACPKCS5:           "TEE_ALG_DES_CBC_MAC_PKCS5",
	DES3CBCMACNoPad:          "TEE_ALG_DES3_CBC_MAC_NOPAD",
	DES3CBCMACPKCS5:          "TEE_ALG_DES3_CBC_MAC_PKCS5",
	AESCCM:                   "TEE_ALG_AES_CCM",
	AESGCM:                   "TEE_ALG_AES_GCM",
	MD5:                      "TEE_ALG_MD5",
	SHA1:                     "TEE_ALG_SHA1",
	SHA224:                   "TEE_ALG_SHA224",
	SHA256:                   "TEE_ALG_SHA256",
	SHA384:                   "TEE_ALG_SHA384",
	SHA512:                   "TEE_ALG_SHA512",
	SHA3_224:                 "TEE_ALG_SHA3_224",
	SHA3_256:                 "TEE_ALG_SHA3_256",
	SHA3_384:                 "TEE_ALG_SHA3_384",
	SHA3_512:                 "TEE_ALG_SHA3_512",
	HMACMD5:                  "TEE_ALG_HMAC_MD5",
	HMACSHA1:                 "TEE_ALG_HMAC_SHA1",
	HMACSHA224:               "TEE_ALG_HMAC_SHA224",
	HMACSHA256:               "TEE_ALG_HMAC_SHA256",
	HMACSHA384:               "TEE_ALG_HMAC_SHA384",
	HMACSHA512:               "TEE_ALG_HMAC_SHA512",
	HMACSHA3_224:             "TEE_ALG_HMAC_SHA3_224",
	HMACSHA3_256:             "TEE_ALG_HMAC_SHA3_256",
	HMACSHA3_384:             "TEE_ALG_HMAC_SHA3_384",
	HMACSHA3_512:             "TEE_ALG_HMAC_SHA3_512",
	RSASSAPKCS1V15MD5:        "TEE_ALG_RSASSA_PKCS1_V1_5_MD5",
	RSASSAPKCS1V15SHA1:       "TEE_ALG_RSASSA_PKCS1_V1_5_SHA1",
	RSASSAPKCS1V15SHA224:     "TEE_ALG_RSASSA_PKCS1_V1_5_SHA224",
	RSASSAPKCS1V15SHA256:     "TEE_ALG_RSASSA_PKCS1_V1_5_SHA256",
	RSASSAPKCS1V15SHA384:     "TEE_ALG_RSASSA_PKCS1_V1_5_SHA384",
	RSASSAPKCS1V15SHA512:     "TEE_ALG_RSASSA_PKCS1_V1_5_SHA512",
	RSASSAPKCS1PSSMGF1SHA1:   "TEE_ALG_RSASSA_PKCS1_PSS_MGF1_SHA1",
	RSASSAPKCS1PSSMGF1SHA224: "TEE_ALG_RSASSA_PKCS1_PSS_MGF1_SHA224",
	RSASSAPKCS1PSSMGF1SHA256: "TEE_ALG_RSASSA_PKCS1_PSS_MGF1_SHA256",
	RSASSAPKCS1PSSMGF1SHA384: "TEE_ALG_RSASSA_PKCS1_PSS_MGF1_SHA384",
	RSASSAPKCS1PSSMGF1SHA512: "TEE_ALG_RSASSA_PKCS1_PSS_MGF1_SHA512",
	RSAESPKCS1V15:            "TEE_ALG_RSAES_PKCS1_V1_5",
	RSAESPKCS1OAEPMGF1SHA1:   "TEE_ALG_RSAES_PKCS1_OAEP_MGF1_SHA1",
	RSAESPKCS1OAEPMGF1SHA224: "TEE_ALG_RSAES_PKCS1_OAEP_MGF1_SHA224",
	RSAESPKCS1OAEPMGF1SHA256: "TEE_ALG_RSAES_PKCS1_OAEP_MGF1_SHA256",
	RSAESPKCS1OAEPMGF1SHA384: "TEE_ALG_RSAES_PKCS1_OAEP_MGF1_SHA384",
	RSAESPKCS1OAEPMGF1SHA512: "TEE_ALG_RSAES_PKCS1_OAEP_MGF1_SHA512",
	RSANoPad:                 "TEE_ALG_RSA_NOPAD",
	DSASHA1:                  "TEE_ALG_DSA_SHA1",
	DSASHA224:                "TEE_ALG_DSA_SHA224",
	DSASHA256:                "TEE_ALG_DSA_SHA256",
	DHDeriveSharedSecret:     "TEE_ALG_DH_DERIVE_SHARED_SECRET",
	ECDSAP192:                "TEE_ALG_ECDSA_P192",
	ECDSAP224:                "TEE_ALG_ECDSA_P224",
	ECDSAP256:                "TEE_ALG_ECDSA_P256",
	ECDSAP384:                "TEE_ALG_ECDSA_P384",
	ECDSAP521:                "TEE_ALG_ECDSA_P521",
	ECDHP192:                 "TEE_ALG_ECDH_P192",
	ECDHP224:                 "TEE_ALG_ECDH_P224",
	ECDHP256:                 "TEE_ALG_ECDH_P256",
	ECDHP384:                 "TEE_ALG_ECDH_P384",
	ECDHP521:                 "TEE_ALG_ECDH_P521",
}

var algorithmsByName map[string]Algorithm

func init() {
	algorithmsByName = make(map[string]Algorithm, len(algorithmNames))
	for a, name := range algorithmNames {
		algorithmsByName[name] = a
	}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("TEE_ALG_UNKNOWN(0x%08x)", uint32(a))
}

//algorithmbyname返回具有给定名称的算法标识符。
//接受带或不带“TEE_ALG_”前缀的名称。
func AlgorithmByName(name string) (Algorithm, error) {
	if a, ok := algorithmsByName[name]; ok {
		return a, nil
	}
	if a, ok := algorithmsByName["TEE_ALG_"+name]; ok {
		return a, nil
	}
	return 0, NewError(NotSupported, "algorithm not recognized [%s]", name)
}

//algorithms按数值顺序返回所有已知的算法标识符。
func Algorithms() []Algorithm {
	list := make([]Algorithm, 0, len(algorithmNames))
	for a := range algorithmNames {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

//algorithmsofclass返回给定类别的已知算法标识符。
func AlgorithmsOfClass(c Class) []Algorithm {
	var list []Algorithm
	for _, a := range Algorithms() {
		if a.Class() == c {
			list = append(list, a)
		}
	}
	return list
}
