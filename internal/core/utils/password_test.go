package utils_test

import (
	"testing"

	"github.com/MikeRez0/techxchange/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, utils.ComparePassword("s3cret-pass", hash))
	assert.Error(t, utils.ComparePassword("wrong", hash))
}
