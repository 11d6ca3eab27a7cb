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


//drbg包实现确定性随机位生成器（NIST SP 800-90A），
//为提供程序的rng_read和rng_add_entropy提供后备。
package drbg

import (
	"crypto/sha256"
	"hash"
	"io"
	"sync"

	"github.com/hyperledger/fabric-teecsp/common/flogging"
	"github.com/hyperledger/fabric-teecsp/teecsp"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("teecsp.drbg")

var errNotInstantiated = errors.New("DRBG not instantiated")

const (
	//MaxRequest是单个generate调用产生的最大字节数；更大的读取会被分块。
	MaxRequest = 1024

	//DefaultReseedInterval是两次重新播种之间允许的generate调用次数。
	DefaultReseedInterval = 1 << 16

	entropyLen = 32
	nonceLen   = 16
)

//Config配置生成器。
type Config struct {
	Mechanism       Mechanism
	Entropy         io.Reader
	ReseedInterval  uint64
	Personalization []byte
}

//Generator是持久播种的DRBG。首次读取时从熵源实例化，
//此后每ReseedInterval次generate调用重新播种一次，
//在调用AddEntropy之后的下一次读取之前也会重新播种。
//Generator可以被多个goroutine同时使用。
type Generator struct {
	mu              sync.Mutex
	mech            mechanism
	mechanism       Mechanism
	entropy         io.Reader
	reseedInterval  uint64
	personalization []byte

	instantiated  bool
	reseedCounter uint64
	pool          hash.Hash
	poolPending   bool
}

//New返回一个尚未实例化的生成器。
func New(c Config) (*Generator, error) {
	mech, err := newMechanism(c.Mechanism)
	if err != nil {
		return nil, err
	}
	if c.Entropy == nil {
		return nil, errors.New("entropy source must not be nil")
	}
	interval := c.ReseedInterval
	if interval == 0 {
		interval = DefaultReseedInterval
	}

	return &Generator{
		mech:            mech,
		mechanism:       c.Mechanism,
		entropy:         c.Entropy,
		reseedInterval:  interval,
		personalization: append([]byte(nil), c.Personalization...),
		pool:            sha256.New(),
	}, nil
}

//Mechanism返回生成器使用的构造。
func (g *Generator) Mechanism() Mechanism {
	return g.mechanism
}

func (g *Generator) readEntropy(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return nil, teecsp.WrapError(teecsp.Security, err, "Failed reading entropy")
	}
	return buf, nil
}

func (g *Generator) instantiate() error {
	seed, err := g.readEntropy(entropyLen + nonceLen)
	if err != nil {
		return err
	}
	if err := g.mech.instantiate(seed[:entropyLen], seed[entropyLen:], g.personalization); err != nil {
		return teecsp.WrapError(teecsp.Security, err, "Failed seeding %s DRBG", g.mechanism)
	}
	wipe(seed)
	g.instantiated = true
	g.reseedCounter = 1
	logger.Debugf("%s DRBG instantiated", g.mechanism)
	return nil
}

//reseed将新的熵和累积的调用者熵混入状态
func (g *Generator) reseed() error {
	entropy, err := g.readEntropy(entropyLen)
	if err != nil {
		return err
	}
	var additional []byte
	if g.poolPending {
		additional = g.pool.Sum(nil)
		g.pool.Reset()
		g.poolPending = false
	}
	if err := g.mech.reseed(entropy, additional); err != nil {
		return teecsp.WrapError(teecsp.Security, err, "Failed reseeding %s DRBG", g.mechanism)
	}
	wipe(entropy)
	g.reseedCounter = 1
	logger.Debugf("%s DRBG reseeded", g.mechanism)
	return nil
}

//Read用随机字节填充p。熵源失败返回Security。
func (g *Generator) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.instantiated {
		if err := g.instantiate(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(p) {
		if g.reseedCounter > g.reseedInterval || g.poolPending {
			if err := g.reseed(); err != nil {
				return n, err
			}
		}
		end := n + MaxRequest
		if end > len(p) {
			end = len(p)
		}
		if err := g.mech.generate(p[n:end], nil); err != nil {
			return n, teecsp.WrapError(teecsp.BadState, err, "Failed generating random bytes")
		}
		g.reseedCounter++
		n = end
	}
	return n, nil
}

//AddEntropy将data累积到熵池中。池在下一次读取之前被混入。
func (g *Generator) AddEntropy(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pool.Write(data)
	g.poolPending = true
	return nil
}

//Reseed强制立即重新播种。
func (g *Generator) Reseed() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.instantiated {
		return g.instantiate()
	}
	return g.reseed()
}

//Close清除内部状态。之后的读取会重新实例化。
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.mech.wipe()
	g.pool.Reset()
	g.poolPending = false
	g.instantiated = false
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
