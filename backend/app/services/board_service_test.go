package services

import (
	"board-guard/backend/app/dto"
	"board-guard/backend/app/models"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBoardCreateSetsOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "")

	b, err := f.boards.Create(context.Background(), dto.CreateBoardRequest{Title: " hello ", Content: "first"}, alice.ID)
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "hello", b.Title)
	assert.Equal(t, alice.ID, b.UserID)
	assert.Equal(t, "alice", b.User.Username)
}

func TestBoardCreateRequiresTitle(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "")

	_, err := f.boards.Create(context.Background(), dto.CreateBoardRequest{Content: "x"}, alice.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.boards.Create(context.Background(), dto.CreateBoardRequest{Title: strings.Repeat("a", 256)}, alice.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBoardTitleLimitCountsCharacters(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice", "")

	b, err := f.boards.Create(context.Background(), dto.CreateBoardRequest{Title: strings.Repeat("게", 255)}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("게", 255), b.Title)

	_, err = f.boards.Create(context.Background(), dto.CreateBoardRequest{Title: strings.Repeat("게", 256)}, alice.ID)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "title longer than 255 characters", err.Error())
}

func TestBoardReadsAreUnfiltered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice", "")
	bob := f.user(t, "bob", "")

	a, err := f.boards.Create(ctx, dto.CreateBoardRequest{Title: "a"}, alice.ID)
	require.NoError(t, err)
	_, err = f.boards.Create(ctx, dto.CreateBoardRequest{Title: "b"}, bob.ID)
	require.NoError(t, err)

	all, err := f.boards.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].User.Username)
	assert.Equal(t, "bob", all[1].User.Username)

	got, err := f.boards.FindOne(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)

	_, err = f.boards.FindOne(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardUpdateOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice", "")
	bob := f.user(t, "bob", models.RoleAdmin)

	b, err := f.boards.Create(ctx, dto.CreateBoardRequest{Title: "draft", Content: "v1"}, alice.ID)
	require.NoError(t, err)

	_, err = f.boards.Update(ctx, b.ID, dto.UpdateBoardRequest{Content: strPtr("hijacked")}, bob.ID)
	require.ErrorIs(t, err, ErrPermissionDenied)
	unchanged, err := f.boards.FindOne(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", unchanged.Content)

	updated, err := f.boards.Update(ctx, b.ID, dto.UpdateBoardRequest{Content: strPtr("v2")}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", updated.Title)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, alice.ID, updated.UserID)

	_, err = f.boards.Update(ctx, b.ID, dto.UpdateBoardRequest{Title: strPtr("")}, alice.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	same, err := f.boards.Update(ctx, b.ID, dto.UpdateBoardRequest{}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", same.Content)

	_, err = f.boards.Update(ctx, 999, dto.UpdateBoardRequest{Content: strPtr("x")}, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardRemoveOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice", models.RoleAdmin)
	bob := f.user(t, "bob", models.RoleAdmin)

	b, err := f.boards.Create(ctx, dto.CreateBoardRequest{Title: "mine"}, alice.ID)
	require.NoError(t, err)

	err = f.boards.Remove(ctx, b.ID, bob.ID)
	require.ErrorIs(t, err, ErrPermissionDenied)
	_, err = f.boards.FindOne(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, f.boards.Remove(ctx, b.ID, alice.ID))
	_, err = f.boards.FindOne(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.boards.Remove(ctx, b.ID, alice.ID), ErrNotFound)
}

func TestPermissionDeniedMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice", "")
	bob := f.user(t, "bob", "")

	b, err := f.boards.Create(ctx, dto.CreateBoardRequest{Title: "t"}, alice.ID)
	require.NoError(t, err)

	_, err = f.boards.Update(ctx, b.ID, dto.UpdateBoardRequest{Title: strPtr("x")}, bob.ID)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "only the author can update this board", se.Error())
	assert.Equal(t, ErrPermissionDenied, se.Kind)
}
