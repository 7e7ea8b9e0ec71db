package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRedemptionCode_Length(t *testing.T) {
	for _, length := range []int{10, 12, 16} {
		code, err := generateRedemptionCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerateRedemptionCode_Alphabet(t *testing.T) {
	code, err := generateRedemptionCode(64)
	require.NoError(t, err)
	for _, c := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateRedemptionCode_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		code, err := generateRedemptionCode(12)
		require.NoError(t, err)
		require.False(t, seen[code], "duplicate code generated: %s", code)
		seen[code] = true
	}
}
