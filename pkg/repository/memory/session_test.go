package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model/auth"
	"github.com/a11y-lab/statements/pkg/repository/memory"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	token := auth.NewToken("oid-123", "andy.jones@example.com", "Andy Jones")

	t.Run("put and get", func(t *testing.T) {
		gt.NoError(t, store.PutToken(ctx, token)).Required()

		got, err := store.GetToken(ctx, token.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Email).Equal("andy.jones@example.com")
		gt.Value(t, got.Secret).Equal(token.Secret)
	})

	t.Run("get unknown token", func(t *testing.T) {
		_, err := store.GetToken(ctx, auth.TokenID("no-such-token"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrTokenNotFound)).True()
	})

	t.Run("get with empty token ID", func(t *testing.T) {
		_, err := store.GetToken(ctx, "")
		gt.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		gt.NoError(t, store.DeleteToken(ctx, token.ID)).Required()

		_, err := store.GetToken(ctx, token.ID)
		gt.Error(t, err)
	})

	t.Run("delete unknown token", func(t *testing.T) {
		err := store.DeleteToken(ctx, auth.TokenID("no-such-token"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrTokenNotFound)).True()
	})

	t.Run("invalid token rejected on put", func(t *testing.T) {
		bad := &auth.Token{ID: "id-only"}
		gt.Error(t, store.PutToken(ctx, bad))
	})
}
