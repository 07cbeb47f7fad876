package random

import (
	"math/rand/v2"
)

const rsLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// AlphaNumeric 指定した文字数のランダム英数字文字列を生成します
// この関数はmath/randが生成する擬似乱数を使用します
func AlphaNumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = rsLetters[rand.IntN(len(rsLetters))]
	}
	return string(b)
}
