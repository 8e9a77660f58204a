package credentials

import (
	"crypto/rand"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*"

	// PasswordLength is the length of every generated password.
	PasswordLength = 10
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("credentials: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

type Generator struct {
	src Source
}

// NewGenerator returns a Generator reading from src, or from crypto/rand when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{src: src}
}

// Password returns a PasswordLength string with at least one upper-case
// letter, one lower-case letter and one digit.
func (g *Generator) Password() string {
	all := upperChars + lowerChars + digitChars + specialChars

	buf := make([]byte, 0, PasswordLength)
	buf = append(buf, upperChars[g.src.IntN(len(upperChars))])
	buf = append(buf, lowerChars[g.src.IntN(len(lowerChars))])
	buf = append(buf, digitChars[g.src.IntN(len(digitChars))])
	for len(buf) < PasswordLength {
		buf = append(buf, all[g.src.IntN(len(all))])
	}

	for i := len(buf) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

var ErrMismatch = errors.New("password does not match")

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword returns ErrMismatch when plain does not match hash.
func CheckPassword(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
