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


package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/hyperledger/fabric-teecsp/cmd/common"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/keysched"
	"github.com/pkg/errors"
)

//KnownAnswer是一个已知答案测试
type KnownAnswer struct {
	Name     string
	Run      func(csp teecsp.CSP) ([]byte, error)
	Expected string
}

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	fipsKey       = unhex("000102030405060708090a0b0c0d0e0f")
	fipsPlaintext = unhex("00112233445566778899aabbccddeeff")
)

//KnownAnswers返回selftest命令运行的测试
func KnownAnswers() []KnownAnswer {
	return []KnownAnswer{
		{
			Name: "SHA-256",
			Run: func(csp teecsp.CSP) ([]byte, error) {
				return Digest(csp, teecsp.SHA256, []byte("abc"))
			},
			Expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			Name: "SHA3-256",
			Run: func(csp teecsp.CSP) ([]byte, error) {
				return Digest(csp, teecsp.SHA3_256, []byte("abc"))
			},
			Expected: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		},
		{
			Name: "HMAC-SHA256",
			Run: func(csp teecsp.CSP) ([]byte, error) {
				return MAC(csp, teecsp.HMACSHA256, []byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
			},
			Expected: "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		},
		{
			Name: "AES-CMAC",
			Run: func(csp teecsp.CSP) ([]byte, error) {
				return MAC(csp, teecsp.AESCMAC, unhex("2b7e151628aed2a6abf7158809cf4f3c"), unhex("6bc1bee22e409f96e93d7e117393172a"))
			},
			Expected: "070a16b46b4d4144f79bdd9dd04a287c",
		},
		{
			Name:     "AES-128-ECB",
			Run:      aesECB,
			Expected: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			Name:     "AES key schedule",
			Run:      aesKeySchedule,
			Expected: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			Name:     "AES-GCM",
			Run:      aesGCM,
			Expected: "0388dace60b6a392f328c2b971b2fe78ab6e47d42cec13bdf53a67b21257bddf",
		},
	}
}

func aesECB(csp teecsp.CSP) ([]byte, error) {
	algo := teecsp.AESECBNoPad
	ctx, err := csp.CipherAllocCtx(algo)
	if err != nil {
		return nil, err
	}
	defer csp.CipherFreeCtx(ctx, algo)

	if err := csp.CipherInit(ctx, algo, teecsp.ModeEncrypt, fipsKey, nil, nil); err != nil {
		return nil, err
	}
	out := make([]byte, len(fipsPlaintext))
	if err := csp.CipherUpdate(ctx, algo, teecsp.ModeEncrypt, true, fipsPlaintext, out); err != nil {
		return nil, err
	}
	csp.CipherFinal(ctx, algo)
	return out, nil
}

func aesKeySchedule(csp teecsp.CSP) ([]byte, error) {
	encKey := make([]byte, keysched.StorageSize(14))
	rounds, err := csp.AESExpandEncKey(fipsKey, encKey)
	if err != nil {
		return nil, err
	}
	out := make([]byte, keysched.BlockSize)
	csp.AESEncBlock(encKey, rounds, fipsPlaintext, out)
	return out, nil
}

func aesGCM(csp teecsp.CSP) ([]byte, error) {
	algo := teecsp.AESGCM
	ctx, err := csp.AEADAllocCtx(algo)
	if err != nil {
		return nil, err
	}
	defer csp.AEADFreeCtx(ctx, algo)

	key := make([]byte, 16)
	nonce := make([]byte, 12)
	plaintext := make([]byte, 16)
	if err := csp.AEADInit(ctx, algo, teecsp.ModeEncrypt, key, nonce, 16, 0, len(plaintext)); err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext)+16)
	n, err := csp.AEADEncFinal(ctx, algo, plaintext, out[:len(plaintext)], out[len(plaintext):])
	if err != nil {
		return nil, err
	}
	return out[:len(plaintext)+n], nil
}

//NewSelftestCmd创建新的SelftestCmd
func NewSelftestCmd(provider CSPProvider, w io.Writer) *SelftestCmd {
	return &SelftestCmd{provider: provider, writer: w}
}

//SelftestCmd对已启用的算法运行已知答案测试，
//跳过配置中未启用的算法。
type SelftestCmd struct {
	provider CSPProvider
	writer   io.Writer
}

//执行执行命令
func (sc *SelftestCmd) Execute(conf common.Config) error {
	csp, err := newCSP(sc.provider, conf)
	if err != nil {
		return err
	}

	var result error
	for _, kat := range KnownAnswers() {
		got, err := kat.Run(csp)
		switch {
		case teecsp.IsKind(err, teecsp.NotSupported):
			fmt.Fprintf(sc.writer, "SKIP %s: %s\n", kat.Name, err)
		case err != nil:
			fmt.Fprintf(sc.writer, "FAIL %s: %s\n", kat.Name, err)
			result = multierror.Append(result, errors.Wrapf(err, "%s", kat.Name))
		case !bytes.Equal(got, unhex(kat.Expected)):
			fmt.Fprintf(sc.writer, "FAIL %s: got %x\n", kat.Name, got)
			result = multierror.Append(result, errors.Errorf("%s: unexpected output", kat.Name))
		default:
			fmt.Fprintf(sc.writer, "PASS %s\n", kat.Name)
		}
	}

	if err := checkRNG(csp); err != nil {
		fmt.Fprintf(sc.writer, "FAIL RNG: %s\n", err)
		result = multierror.Append(result, err)
	} else {
		fmt.Fprintln(sc.writer, "PASS RNG")
	}
	return result
}

func checkRNG(csp teecsp.CSP) error {
	a := make([]byte, 32)
	b := make([]byte, 32)
	if err := csp.RNGRead(a); err != nil {
		return err
	}
	if err := csp.RNGRead(b); err != nil {
		return err
	}
	if bytes.Equal(a, b) || bytes.Equal(a, make([]byte, 32)) {
		return errors.New("RNG output repeated")
	}
	return nil
}
