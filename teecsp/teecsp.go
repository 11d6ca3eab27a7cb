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

//operationmode是密码和AE上下文的操作方向。
//它在init时固定，之后不可更改。
type OperationMode int

const (
	ModeEncrypt OperationMode = iota
	ModeDecrypt
)

func (m OperationMode) String() string {
	if m == ModeDecrypt {
		return "DECRYPT"
	}
	return "ENCRYPT"
}

//hashcontext是摘要操作的不透明上下文。
//生命周期：分配->init->update*->final，然后可以重新init，或free。
type HashContext interface {
//algorithm返回分配上下文时使用的算法。
	Algorithm() Algorithm

//init将上下文重置为所选摘要的初始状态。
	Init() error

//update吸收data。
	Update(data []byte) error

//final将摘要写入digest。如果digest短于摘要大小，
//则写入前len(digest)个字节。
	Final(digest []byte) error

//copyfrom用src的状态覆盖此上下文。两者必须具有相同的算法。
	CopyFrom(src HashContext) error

//free清除并释放上下文。free之后的所有调用都返回BadState。
	Free()
}

//ciphercontext是对称分组密码操作的不透明上下文。
type CipherContext interface {
	Algorithm() Algorithm

//init绑定密钥和方向。key2仅由XTS使用，此处忽略。
//iv为nil时保留先前的IV。
	Init(mode OperationMode, key1, key2, iv []byte) error

//update处理src并将结果写入dst。
//ECB需要整块输入，CBC需要块对齐的输入，CTR是流式的。
	Update(mode OperationMode, lastBlock bool, src, dst []byte) error

//final不执行任何操作；所有输出都在update期间产生。
	Final()

	CopyFrom(src CipherContext) error
	Free()
}

//maccontext是消息认证码的不透明上下文。
type MACContext interface {
	Algorithm() Algorithm
	Init(key []byte) error

//对于空数据，update始终成功并且不执行任何操作。
	Update(data []byte) error

//final将MAC写入mac。如果mac短于MAC大小，则返回ShortBuffer。
	Final(mac []byte) error

	CopyFrom(src MACContext) error
	Free()
}

//aeadcontext是认证加密的不透明上下文。
//所有AAD必须在第一个有效载荷字节之前提供。
type AEADContext interface {
	Algorithm() Algorithm

//init绑定密钥、nonce、标签长度以及声明的AAD和有效载荷长度。
	Init(mode OperationMode, key, nonce []byte, tagLen, aadLen, payloadLen int) error

	UpdateAAD(data []byte) error
	UpdatePayload(mode OperationMode, src, dst []byte) error

//encfinal处理最后的有效载荷片段并写入标签，返回标签长度。
	EncFinal(src, dst, tag []byte) (int, error)

//decfinal处理最后的有效载荷片段并以恒定时间验证标签。
//不匹配时返回Security，并清除此调用写入dst的输出。
	DecFinal(src, dst, tag []byte) error

//final清除工作状态。
	Final()

	CopyFrom(src AEADContext) error
	Free()
}

//csp是可信执行环境内核使用的加密服务提供程序门面。
//每个操作都带有算法标识符，与上下文的算法不匹配时返回BadParameters。
type CSP interface {
	HashCtxSize(algo Algorithm) (int, error)
	HashAllocCtx(algo Algorithm) (HashContext, error)
	HashFreeCtx(ctx HashContext, algo Algorithm)
	HashCopyState(dst, src HashContext, algo Algorithm) error
	HashInit(ctx HashContext, algo Algorithm) error
	HashUpdate(ctx HashContext, algo Algorithm, data []byte) error
	HashFinal(ctx HashContext, algo Algorithm, digest []byte) error
//HashSHA256Check以恒定时间将data的SHA-256与digest进行比较。
	HashSHA256Check(digest, data []byte) error

	CipherCtxSize(algo Algorithm) (int, error)
	CipherAllocCtx(algo Algorithm) (CipherContext, error)
	CipherFreeCtx(ctx CipherContext, algo Algorithm)
	CipherCopyState(dst, src CipherContext, algo Algorithm) error
	CipherInit(ctx CipherContext, algo Algorithm, mode OperationMode, key1, key2, iv []byte) error
	CipherUpdate(ctx CipherContext, algo Algorithm, mode OperationMode, lastBlock bool, src, dst []byte) error
	CipherFinal(ctx CipherContext, algo Algorithm)
	CipherBlockSize(algo Algorithm) (int, error)

	MACCtxSize(algo Algorithm) (int, error)
	MACAllocCtx(algo Algorithm) (MACContext, error)
	MACFreeCtx(ctx MACContext, algo Algorithm)
	MACCopyState(dst, src MACContext, algo Algorithm) error
	MACInit(ctx MACContext, algo Algorithm, key []byte) error
	MACUpdate(ctx MACContext, algo Algorithm, data []byte) error
	MACFinal(ctx MACContext, algo Algorithm, mac []byte) error

	AEADAllocCtx(algo Algorithm) (AEADContext, error)
	AEADFreeCtx(ctx AEADContext, algo Algorithm)
	AEADCopyState(dst, src AEADContext, algo Algorithm) error
	AEADInit(ctx AEADContext, algo Algorithm, mode OperationMode, key, nonce []byte, tagLen, aadLen, payloadLen int) error
	AEADUpdateAAD(ctx AEADContext, algo Algorithm, data []byte) error
	AEADUpdatePayload(ctx AEADContext, algo Algorithm, mode OperationMode, src, dst []byte) error
	AEADEncFinal(ctx AEADContext, algo Algorithm, src, dst, tag []byte) (int, error)
	AEADDecFinal(ctx AEADContext, algo Algorithm, src, dst, tag []byte) error
	AEADFinal(ctx AEADContext, algo Algorithm)

//RNGRead用确定性随机位生成器的输出填充buf。
	RNGRead(buf []byte) error
//RNGAddEntropy将调用者提供的熵混合到下一次重新播种中。
	RNGAddEntropy(data []byte) error

//AESExpandEncKey展开AES加密密钥计划，返回轮数。
	AESExpandEncKey(key, encKey []byte) (int, error)
//AESEncBlock使用展开的密钥计划加密单个块。
	AESEncBlock(encKey []byte, rounds int, src, dst []byte)
}
