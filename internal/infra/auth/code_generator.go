package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"taskman/internal/domain/service"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator of uniformly random six-digit codes.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate confirmation code")
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
