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


//acipher包定义非对称操作和大数的入口点。
//此提供程序没有公钥后端：所有操作都返回NotImplemented，
//大数分配总是失败。
package acipher

import (
	"github.com/hyperledger/fabric-teecsp/teecsp"
)

//RSAKeypair和其他密钥类型保存由后端分配的大数组件。
type RSAKeypair struct {
	E, D, N, P, Q, QP, DP, DQ *Bignum
}

type RSAPublicKey struct {
	E, N *Bignum
}

type DSAKeypair struct {
	G, P, Q, Y, X *Bignum
}

type DSAPublicKey struct {
	G, P, Q, Y *Bignum
}

type DHKeypair struct {
	G, P, Y, X, Q *Bignum
	XBits         int
}

type ECCKeypair struct {
	D, X, Y *Bignum
	Curve   uint32
}

type ECCPublicKey struct {
	X, Y  *Bignum
	Curve uint32
}

//Provider是非对称操作的入口点集合。
type Provider interface {
	AllocRSAKeypair(k *RSAKeypair, keyBits int) error
	AllocRSAPublicKey(k *RSAPublicKey, keyBits int) error
	FreeRSAPublicKey(k *RSAPublicKey)
	GenRSAKey(k *RSAKeypair, keyBits int) error
	RSANoPadDecrypt(k *RSAKeypair, src, dst []byte) (int, error)
	RSANoPadEncrypt(k *RSAPublicKey, src, dst []byte) (int, error)
	RSAESDecrypt(algo teecsp.Algorithm, k *RSAKeypair, label, src, dst []byte) (int, error)
	RSAESEncrypt(algo teecsp.Algorithm, k *RSAPublicKey, label, src, dst []byte) (int, error)
	RSASSASign(algo teecsp.Algorithm, k *RSAKeypair, saltLen int, msg, sig []byte) (int, error)
	RSASSAVerify(algo teecsp.Algorithm, k *RSAPublicKey, saltLen int, msg, sig []byte) error

	AllocDSAKeypair(k *DSAKeypair, keyBits int) error
	AllocDSAPublicKey(k *DSAPublicKey, keyBits int) error
	GenDSAKey(k *DSAKeypair, keyBits int) error
	DSASign(algo teecsp.Algorithm, k *DSAKeypair, msg, sig []byte) (int, error)
	DSAVerify(algo teecsp.Algorithm, k *DSAPublicKey, msg, sig []byte) error

	AllocDHKeypair(k *DHKeypair, keyBits int) error
	GenDHKey(k *DHKeypair, q *Bignum, xBits int) error
	DHSharedSecret(private *DHKeypair, public, secret *Bignum) error

	AllocECCKeypair(k *ECCKeypair, keyBits int) error
	AllocECCPublicKey(k *ECCPublicKey, keyBits int) error
	FreeECCPublicKey(k *ECCPublicKey)
	GenECCKey(k *ECCKeypair) error
	ECCSign(algo teecsp.Algorithm, k *ECCKeypair, msg, sig []byte) (int, error)
	ECCVerify(algo teecsp.Algorithm, k *ECCPublicKey, msg, sig []byte) error
	ECCSharedSecret(private *ECCKeypair, public *ECCPublicKey, secret []byte) (int, error)
}

//Unimplemented是没有公钥后端的Provider。
type Unimplemented struct{}

var _ Provider = Unimplemented{}

func notImplemented(op string) error {
	return teecsp.NewError(teecsp.NotImplemented, "%s not implemented", op)
}

func (Unimplemented) AllocRSAKeypair(*RSAKeypair, int) error {
	return notImplemented("RSA keypair allocation")
}

func (Unimplemented) AllocRSAPublicKey(*RSAPublicKey, int) error {
	return notImplemented("RSA public key allocation")
}

func (Unimplemented) FreeRSAPublicKey(*RSAPublicKey) {}

func (Unimplemented) GenRSAKey(*RSAKeypair, int) error {
	return notImplemented("RSA key generation")
}

func (Unimplemented) RSANoPadDecrypt(*RSAKeypair, []byte, []byte) (int, error) {
	return 0, notImplemented("RSA raw decryption")
}

func (Unimplemented) RSANoPadEncrypt(*RSAPublicKey, []byte, []byte) (int, error) {
	return 0, notImplemented("RSA raw encryption")
}

func (Unimplemented) RSAESDecrypt(teecsp.Algorithm, *RSAKeypair, []byte, []byte, []byte) (int, error) {
	return 0, notImplemented("RSAES decryption")
}

func (Unimplemented) RSAESEncrypt(teecsp.Algorithm, *RSAPublicKey, []byte, []byte, []byte) (int, error) {
	return 0, notImplemented("RSAES encryption")
}

func (Unimplemented) RSASSASign(teecsp.Algorithm, *RSAKeypair, int, []byte, []byte) (int, error) {
	return 0, notImplemented("RSASSA signing")
}

func (Unimplemented) RSASSAVerify(teecsp.Algorithm, *RSAPublicKey, int, []byte, []byte) error {
	return notImplemented("RSASSA verification")
}

func (Unimplemented) AllocDSAKeypair(*DSAKeypair, int) error {
	return notImplemented("DSA keypair allocation")
}

func (Unimplemented) AllocDSAPublicKey(*DSAPublicKey, int) error {
	return notImplemented("DSA public key allocation")
}

func (Unimplemented) GenDSAKey(*DSAKeypair, int) error {
	return notImplemented("DSA key generation")
}

func (Unimplemented) DSASign(teecsp.Algorithm, *DSAKeypair, []byte, []byte) (int, error) {
	return 0, notImplemented("DSA signing")
}

func (Unimplemented) DSAVerify(teecsp.Algorithm, *DSAPublicKey, []byte, []byte) error {
	return notImplemented("DSA verification")
}

func (Unimplemented) AllocDHKeypair(*DHKeypair, int) error {
	return notImplemented("DH keypair allocation")
}

func (Unimplemented) GenDHKey(*DHKeypair, *Bignum, int) error {
	return notImplemented("DH key generation")
}

func (Unimplemented) DHSharedSecret(*DHKeypair, *Bignum, *Bignum) error {
	return notImplemented("DH shared secret")
}

func (Unimplemented) AllocECCKeypair(*ECCKeypair, int) error {
	return notImplemented("ECC keypair allocation")
}

func (Unimplemented) AllocECCPublicKey(*ECCPublicKey, int) error {
	return notImplemented("ECC public key allocation")
}

func (Unimplemented) FreeECCPublicKey(*ECCPublicKey) {}

func (Unimplemented) GenECCKey(*ECCKeypair) error {
	return notImplemented("ECC key generation")
}

func (Unimplemented) ECCSign(teecsp.Algorithm, *ECCKeypair, []byte, []byte) (int, error) {
	return 0, notImplemented("ECDSA signing")
}

func (Unimplemented) ECCVerify(teecsp.Algorithm, *ECCPublicKey, []byte, []byte) error {
	return notImplemented("ECDSA verification")
}

func (Unimplemented) ECCSharedSecret(*ECCKeypair, *ECCPublicKey, []byte) (int, error) {
	return 0, notImplemented("ECDH shared secret")
}
