package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// tokenPrefix 案件 Token 固定前缀（区别于会话 Token）
const tokenPrefix = "SYL"

// TokenIssuer 案件 Token 发号器
// 无全局计数器、无协调：时间尾数 + 随机数做到概率唯一，
// 数据库唯一约束兜底，冲突由调用方重试
type TokenIssuer interface {
	Issue() string
}

type tokenIssuer struct{}

// NewTokenIssuer 创建案件 Token 发号器
func NewTokenIssuer() TokenIssuer {
	return &tokenIssuer{}
}

// Issue 生成 SYL-dddddd-ddd 形式的案件 Token
// 前 6 位取毫秒时间戳尾数，后 3 位为加密随机数
func (tokenIssuer) Issue() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	suffix := millis[len(millis)-6:]

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// crypto/rand 不可用时退化为时间派生值，唯一性仍由数据库约束保证
		n = big.NewInt(time.Now().UnixNano() % 1000)
	}

	return fmt.Sprintf("%s-%s-%03d", tokenPrefix, suffix, n.Int64())
}
