package interfaces

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShare_String(t *testing.T) {
	assert.Equal(t, "(6,39)", NewShare(6, 39).String())

	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	assert.Equal(t, "(-2,-123456789012345678901234567890)", Share{X: big.NewInt(-2), Y: huge}.String())
}
