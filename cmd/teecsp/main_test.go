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


package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	. "github.com/onsi/gomega/gexec"
)

func TestCommands(t *testing.T) {
	gt := NewGomegaWithT(t)
	teecsp, err := Build("github.com/hyperledger/fabric-teecsp/cmd/teecsp")
	gt.Expect(err).NotTo(HaveOccurred())
	defer CleanupBuildArtifacts()

	cmd := exec.Command(teecsp, "selftest", "--entropy", "pseudo")
	process, err := Start(cmd, nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(process, "30s").Should(Exit(0))
	gt.Expect(process.Out).To(gbytes.Say("PASS SHA-256"))
	gt.Expect(process.Out).To(gbytes.Say("PASS RNG"))

	cmd = exec.Command(teecsp, "mac", "--algorithm", "HMAC_SHA256")
	process, err = Start(cmd, nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(process, "30s").Should(Exit(1))
	gt.Expect(process.Err).To(gbytes.Say("required flag --key not provided"))

	//配置文件中的算法列表无效
	conf := filepath.Join(t.TempDir(), "conf.yaml")
	cmd = exec.Command(teecsp, "--configFile", conf, "--hash", "SHA1024", "saveConfig")
	process, err = Start(cmd, nil, nil)
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Eventually(process, "30s").Should(Exit(1))
	gt.Expect(process.Err).To(gbytes.Say("unknown feature \\[SHA1024\\]"))
}
