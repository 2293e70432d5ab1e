package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

// BizNumberGenerator draws candidate business numbers for new cards
type BizNumberGenerator interface {
	Next() (int, error)
}

// RandomBizNumberGenerator draws uniformly from [0, constants.BizNumberUpperBound)
type RandomBizNumberGenerator struct{}

// NewBizNumberGenerator returns the crypto/rand backed generator
func NewBizNumberGenerator() *RandomBizNumberGenerator {
	return &RandomBizNumberGenerator{}
}

// Next returns a random business number
func (g *RandomBizNumberGenerator) Next() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(constants.BizNumberUpperBound))
	if err != nil {
		return 0, fmt.Errorf("failed to generate business number: %w", err)
	}
	return int(n.Int64()), nil
}
