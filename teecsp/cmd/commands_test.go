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
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperledger/fabric-teecsp/cmd/common"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/factory"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() common.Config {
	opts := factory.GetDefaultOpts()
	opts.SwOpts.RNG.Entropy = factory.EntropyPseudo
	opts.SwOpts.RNG.Seed = 1
	return common.Config{Version: 1, CSP: *opts}
}

func strptr(s string) *string {
	return &s
}

//corruptCSP翻转摘要的第一个字节
type corruptCSP struct {
	teecsp.CSP
}

func (c *corruptCSP) HashFinal(ctx teecsp.HashContext, algo teecsp.Algorithm, digest []byte) error {
	if err := c.CSP.HashFinal(ctx, algo, digest); err != nil {
		return err
	}
	digest[0] ^= 0xff
	return nil
}

func TestDigestCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	require.NoError(t, ioutil.WriteFile(input, []byte("abc"), 0600))

	buff := &bytes.Buffer{}
	dc := NewDigestCmd(factory.GetCSPFromOpts, buff)
	dc.SetAlgorithm(strptr("SHA256"))
	dc.SetInput(strptr(input))
	require.NoError(t, dc.Execute(testConfig()))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", buff.String())

	t.Run("stdin", func(t *testing.T) {
		saved := inputReader
		defer func() { inputReader = saved }()
		inputReader = strings.NewReader("abc")
		buff.Reset()
		dc.SetAlgorithm(strptr("TEE_ALG_SHA1"))
		dc.SetInput(nil)
		require.NoError(t, dc.Execute(testConfig()))
		assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d\n", buff.String())
	})

	t.Run("bad arguments", func(t *testing.T) {
		dc.SetAlgorithm(strptr("AES_GCM"))
		assert.EqualError(t, dc.Execute(testConfig()), "algorithm [TEE_ALG_AES_GCM] cannot be used here")

		dc.SetAlgorithm(strptr("ROT13"))
		assert.True(t, teecsp.IsKind(dc.Execute(testConfig()), teecsp.NotSupported))

		dc.SetAlgorithm(nil)
		assert.EqualError(t, dc.Execute(testConfig()), "no algorithm specified")

		dc.SetAlgorithm(strptr("SHA256"))
		dc.SetInput(strptr(filepath.Join(dir, "missing")))
		err := dc.Execute(testConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed reading input")
	})

	t.Run("disabled digest", func(t *testing.T) {
		conf := testConfig()
		conf.CSP.SwOpts.Hashes = []string{"SHA1"}
		dc.SetAlgorithm(strptr("SHA256"))
		dc.SetInput(strptr(input))
		assert.True(t, teecsp.IsKind(dc.Execute(conf), teecsp.NotSupported))
	})
}

func TestMACCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	require.NoError(t, ioutil.WriteFile(input, []byte("The quick brown fox jumps over the lazy dog"), 0600))

	buff := &bytes.Buffer{}
	mc := NewMACCmd(factory.GetCSPFromOpts, buff)
	mc.SetAlgorithm(strptr("HMAC_SHA256"))
	mc.SetKey(strptr("6b6579"))
	mc.SetInput(strptr(input))
	require.NoError(t, mc.Execute(testConfig()))
	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8\n", buff.String())

	cmacInput := filepath.Join(dir, "cmac")
	require.NoError(t, ioutil.WriteFile(cmacInput, unhex("6bc1bee22e409f96e93d7e117393172a"), 0600))
	buff.Reset()
	mc.SetAlgorithm(strptr("AES_CMAC"))
	mc.SetKey(strptr("2b7e151628aed2a6abf7158809cf4f3c"))
	mc.SetInput(strptr(cmacInput))
	require.NoError(t, mc.Execute(testConfig()))
	assert.Equal(t, "070a16b46b4d4144f79bdd9dd04a287c\n", buff.String())

	mc.SetKey(strptr("zz"))
	err := mc.Execute(testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key is not hex encoded")

	mc.SetKey(nil)
	assert.EqualError(t, mc.Execute(testConfig()), "no key specified")

	mc.SetAlgorithm(strptr("SHA256"))
	assert.EqualError(t, mc.Execute(testConfig()), "algorithm [TEE_ALG_SHA256] cannot be used here")

	conf := testConfig()
	conf.CSP.SwOpts.MACs = []string{"CMAC"}
	mc.SetAlgorithm(strptr("HMAC_SHA256"))
	mc.SetKey(strptr("6b6579"))
	mc.SetInput(strptr(input))
	assert.True(t, teecsp.IsKind(mc.Execute(conf), teecsp.NotSupported))
}

func TestRandomCmd(t *testing.T) {
	buff := &bytes.Buffer{}
	rc := NewRandomCmd(factory.GetCSPFromOpts, buff)
	n := 16
	rc.SetLength(&n)
	require.NoError(t, rc.Execute(testConfig()))
	first := buff.String()
	assert.Len(t, first, 33)

	//相同的伪熵种子产生相同的输出
	buff.Reset()
	require.NoError(t, rc.Execute(testConfig()))
	assert.Equal(t, first, buff.String())

	for _, bad := range []int{0, -1, maxRandomBytes + 1} {
		rc.SetLength(&bad)
		assert.Error(t, rc.Execute(testConfig()))
	}

	rc.SetLength(nil)
	buff.Reset()
	require.NoError(t, rc.Execute(testConfig()))
	assert.Len(t, buff.String(), 65)
}

func TestSelftestCmd(t *testing.T) {
	buff := &bytes.Buffer{}
	sc := NewSelftestCmd(factory.GetCSPFromOpts, buff)
	require.NoError(t, sc.Execute(testConfig()))
	assert.Equal(t, len(KnownAnswers())+1, strings.Count(buff.String(), "PASS "))
	assert.NotContains(t, buff.String(), "FAIL")

	t.Run("disabled algorithms are skipped", func(t *testing.T) {
		buff.Reset()
		conf := testConfig()
		conf.CSP.SwOpts.Hashes = []string{"SHA256"}
		conf.CSP.SwOpts.AEADs = nil
		require.NoError(t, sc.Execute(conf))
		assert.Contains(t, buff.String(), "SKIP SHA3-256")
		assert.Contains(t, buff.String(), "SKIP AES-GCM")
		assert.Contains(t, buff.String(), "PASS SHA-256")
	})

	t.Run("wrong answers fail", func(t *testing.T) {
		buff.Reset()
		corrupt := NewSelftestCmd(func(opts *factory.FactoryOpts) (teecsp.CSP, error) {
			csp, err := factory.GetCSPFromOpts(opts)
			return &corruptCSP{CSP: csp}, err
		}, buff)
		err := corrupt.Execute(testConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SHA-256: unexpected output")
		assert.Contains(t, err.Error(), "SHA3-256: unexpected output")
		assert.Contains(t, buff.String(), "FAIL SHA-256: got 45")
		assert.Contains(t, buff.String(), "PASS HMAC-SHA256")
	})

	t.Run("provider failure", func(t *testing.T) {
		failing := NewSelftestCmd(func(*factory.FactoryOpts) (teecsp.CSP, error) {
			return nil, errors.New("no provider")
		}, buff)
		assert.EqualError(t, failing.Execute(testConfig()), "no provider")

		assert.EqualError(t, NewSelftestCmd(nil, buff).Execute(testConfig()), "no CSP provider")
	})
}

func TestInfoCmd(t *testing.T) {
	buff := &bytes.Buffer{}
	ic := NewInfoCmd(factory.GetCSPFromOpts, buff)

	conf := testConfig()
	conf.CSP.SwOpts.Ciphers = []string{"AES"}
	conf.CSP.SwOpts.MACs = []string{"HMAC"}
	require.NoError(t, ic.Execute(conf))

	var info Info
	require.NoError(t, json.Unmarshal(buff.Bytes(), &info))
	assert.Equal(t, "SW", info.Provider)
	assert.Equal(t, "CTR", info.DRBG)
	assert.Equal(t, []string{"TEE_ALG_AES_CCM", "TEE_ALG_AES_GCM"}, info.Algorithms["ae"])
	assert.Len(t, info.Algorithms["digest"], 10)
	assert.Contains(t, info.Algorithms["mac"], "TEE_ALG_HMAC_SHA256")
	assert.NotContains(t, info.Algorithms["mac"], "TEE_ALG_AES_CMAC")
	assert.Contains(t, info.Algorithms["cipher"], "TEE_ALG_AES_CTR")
	assert.NotContains(t, info.Algorithms["cipher"], "TEE_ALG_DES_CBC_NOPAD")
	assert.Equal(t, map[string]string{
		"rsa": "NOT_IMPLEMENTED",
		"dsa": "NOT_IMPLEMENTED",
		"dh":  "NOT_IMPLEMENTED",
		"ecc": "NOT_IMPLEMENTED",
	}, info.Asymmetric)
}
