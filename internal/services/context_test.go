package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenContext(t *testing.T) {
	assert.Empty(t, SessionToken(context.Background()))

	ctx := WithSessionToken(context.Background(), "abc")
	assert.Equal(t, "abc", SessionToken(ctx))

	ctx = WithSessionToken(ctx, "")
	assert.Empty(t, SessionToken(ctx))
}
