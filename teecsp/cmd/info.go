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
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperledger/fabric-teecsp/cmd/common"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/hyperledger/fabric-teecsp/teecsp/acipher"
	"github.com/hyperledger/fabric-teecsp/teecsp/keysched"
)

//Info描述提供程序及其启用的算法
type Info struct {
	Provider    string              `json:"provider"`
	HardwareAES bool                `json:"hardware_aes"`
	DRBG        string              `json:"drbg,omitempty"`
	Algorithms  map[string][]string `json:"algorithms"`
	Asymmetric  map[string]string   `json:"asymmetric"`
}

var classNames = map[teecsp.Class]string{
	teecsp.ClassDigest: "digest",
	teecsp.ClassCipher: "cipher",
	teecsp.ClassMAC:    "mac",
	teecsp.ClassAE:     "ae",
}

//NewInfoCmd创建新的InfoCmd
func NewInfoCmd(provider CSPProvider, w io.Writer) *InfoCmd {
	return &InfoCmd{provider: provider, writer: w, asym: acipher.Unimplemented{}}
}

//InfoCmd以JSON打印Info
type InfoCmd struct {
	provider CSPProvider
	writer   io.Writer
	asym     acipher.Provider
}

//执行执行命令
func (ic *InfoCmd) Execute(conf common.Config) error {
	csp, err := newCSP(ic.provider, conf)
	if err != nil {
		return err
	}

	info := Info{
		Provider:    conf.CSP.ProviderName,
		HardwareAES: keysched.HardwareAccelerated(),
		Algorithms:  map[string][]string{},
		Asymmetric:  asymmetricStatus(ic.asym),
	}
	if conf.CSP.SwOpts != nil && conf.CSP.SwOpts.RNG != nil {
		info.DRBG = conf.CSP.SwOpts.RNG.DRBG
	}
	for class, name := range classNames {
		for _, algo := range teecsp.AlgorithmsOfClass(class) {
			if Enabled(csp, algo) {
				info.Algorithms[name] = append(info.Algorithms[name], algo.String())
			}
		}
	}

	b, _ := json.MarshalIndent(info, "", "\t")
	fmt.Fprintln(ic.writer, string(b))
	return nil
}

//Enabled报告CSP是否可以为algo分配上下文。
func Enabled(csp teecsp.CSP, algo teecsp.Algorithm) bool {
	var err error
	switch algo.Class() {
	case teecsp.ClassDigest:
		_, err = csp.HashCtxSize(algo)
	case teecsp.ClassCipher:
		_, err = csp.CipherCtxSize(algo)
	case teecsp.ClassMAC:
		_, err = csp.MACCtxSize(algo)
	case teecsp.ClassAE:
		var ctx teecsp.AEADContext
		if ctx, err = csp.AEADAllocCtx(algo); err == nil {
			csp.AEADFreeCtx(ctx, algo)
		}
	default:
		return false
	}
	return err == nil
}

func asymmetricStatus(p acipher.Provider) map[string]string {
	status := func(err error) string {
		if err == nil {
			return "OK"
		}
		return teecsp.KindOf(err).String()
	}
	return map[string]string{
		"rsa": status(p.GenRSAKey(&acipher.RSAKeypair{}, 2048)),
		"dsa": status(p.GenDSAKey(&acipher.DSAKeypair{}, 2048)),
		"dh":  status(p.GenDHKey(&acipher.DHKeypair{}, nil, 2048)),
		"ecc": status(p.GenECCKey(&acipher.ECCKeypair{})),
	}
}
