//go:build unit

package main

import (
	"bytes"
	"strings"
	"testing"

	"lounge-pos/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("password from argument", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, hashPassword([]string{"lounge-admin"}, strings.NewReader(""), &out))

		hash := strings.TrimSpace(out.String())
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
		assert.NoError(t, password.ComparePassword(hash, "lounge-admin"))
	})

	t.Run("password from stdin", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, hashPassword(nil, strings.NewReader("from-stdin\n"), &out))
		assert.NoError(t, password.ComparePassword(strings.TrimSpace(out.String()), "from-stdin"))
	})

	t.Run("empty password", func(t *testing.T) {
		var out bytes.Buffer
		err := hashPassword(nil, strings.NewReader("\n"), &out)
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
		assert.Empty(t, out.String())
	})
}
