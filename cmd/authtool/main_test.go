package main

import (
	"bytes"
	"strings"
	"testing"

	"cardcost/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestRun_Hash(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"hash", "-password", "s3cret"}, &out))

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestRun_Token(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"token", "-subject", "ops", "-secret", testSecret, "-ttl", "1h"}, &out))

	claims, err := utils.ParseToken([]byte(testSecret), strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"rotate"}},
		{"hash without password", []string{"hash"}},
		{"token without subject", []string{"token", "-secret", testSecret}},
		{"token without secret", []string{"token", "-subject", "ops", "-secret", ""}},
		{"bad flag", []string{"token", "-ttl", "forever"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(tt.args, &out))
			assert.Empty(t, out.String())
		})
	}
}
