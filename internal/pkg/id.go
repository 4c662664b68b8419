package pkg

import (
	cryptoRand "crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandBase36 生成 n 位随机 base36 字符串
func RandBase36(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, max)
		if err != nil {
			// crypto/rand 读不出来说明环境已经坏了，退化用时间补位
			b.WriteByte(base36[time.Now().UnixNano()%36])
			continue
		}
		b.WriteByte(base36[x.Int64()])
	}
	return b.String()
}

// GenerateID 投稿 ID：毫秒时间戳 + 6 位随机后缀。
// 时间戳保证大体有序，随机后缀防同毫秒碰撞，实际冲突概率可以忽略。
func GenerateID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), RandBase36(6))
}
