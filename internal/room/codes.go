package room

import (
	"math/rand"
	"strings"
)

const codeLength = 6

var codeAlphabet = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateCode creates a random 6-character base-36 uppercase room code,
// retrying until it finds one not already in use.
func GenerateCode(existing map[string]bool) string {
	for {
		code := randomCode()
		if !existing[code] {
			return code
		}
	}
}

// NormalizeCode maps user-supplied codes onto the canonical uppercase form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func randomCode() string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
