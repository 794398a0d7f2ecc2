package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/entity_audit_app/internal/apperrors"
	"github.com/SscSPs/entity_audit_app/internal/audit"
	"github.com/SscSPs/entity_audit_app/internal/core/domain"
	"github.com/SscSPs/entity_audit_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is an advanceable clock so timestamp ordering is deterministic.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newAuditedRepo(clock *testClock) *memory.UserRepository {
	return memory.NewUserRepository(audit.NewTimestampListener(clock.Now))
}

func TestSaveUser_AssignsIDAndEqualTimestamps(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	repo := newAuditedRepo(clock)

	user, err := domain.NewUser("Rashidi Zin", "rashidi.zin")
	require.NoError(t, err)

	saved, err := repo.SaveUser(ctx, *user)
	require.NoError(t, err)

	assert.NotEmpty(t, saved.UserID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.ModifiedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.ModifiedAt)
}

func TestUpdateUser_AdvancesModifiedOnlyAndKeepsCreated(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	repo := newAuditedRepo(clock)

	user, err := domain.NewUser("Rashidi Zin", "rashidi.zin")
	require.NoError(t, err)
	saved, err := repo.SaveUser(ctx, *user)
	require.NoError(t, err)
	originalCreated := saved.CreatedAt
	originalModified := saved.ModifiedAt

	clock.Advance(time.Second)

	changed := *saved
	_, err = changed.SetUsername("rashidi")
	require.NoError(t, err)
	_, err = repo.UpdateUser(ctx, changed)
	require.NoError(t, err)

	// Reload by id and verify the audit contract.
	reloaded, err := repo.FindUserByID(ctx, saved.UserID)
	require.NoError(t, err)
	assert.Equal(t, "rashidi", reloaded.Username)
	assert.Equal(t, originalCreated, reloaded.CreatedAt)
	assert.True(t, reloaded.ModifiedAt.After(originalModified))
}

func TestUpdateUser_StoredCreatedWinsOverTamperedValue(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	repo := newAuditedRepo(clock)

	user, err := domain.NewUser("Rashidi Zin", "rashidi.zin")
	require.NoError(t, err)
	saved, err := repo.SaveUser(ctx, *user)
	require.NoError(t, err)

	clock.Advance(time.Minute)

	tampered := *saved
	tampered.CreatedAt = tampered.CreatedAt.Add(-24 * time.Hour)
	_, err = tampered.SetName("Someone Else")
	require.NoError(t, err)
	_, err = repo.UpdateUser(ctx, tampered)
	require.NoError(t, err)

	reloaded, err := repo.FindUserByID(ctx, saved.UserID)
	require.NoError(t, err)
	assert.Equal(t, saved.CreatedAt, reloaded.CreatedAt)
}

func TestSaveUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := newAuditedRepo(newTestClock())

	first, err := domain.NewUser("Rashidi Zin", "rashidi.zin")
	require.NoError(t, err)
	_, err = repo.SaveUser(ctx, *first)
	require.NoError(t, err)

	second, err := domain.NewUser("Another Person", "rashidi.zin")
	require.NoError(t, err)
	_, err = repo.SaveUser(ctx, *second)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFindUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newAuditedRepo(newTestClock())

	_, err := repo.FindUserByID(ctx, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newAuditedRepo(newTestClock())

	ghost := domain.User{UserID: "missing", Name: "Ghost", Username: "ghost"}
	_, err := repo.UpdateUser(ctx, ghost)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindUsers_PaginatesNewestFirst(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock()
	repo := newAuditedRepo(clock)

	for _, username := range []string{"first", "second", "third"} {
		u, err := domain.NewUser("User "+username, username)
		require.NoError(t, err)
		_, err = repo.SaveUser(ctx, *u)
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	page, err := repo.FindUsers(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Username)
	assert.Equal(t, "second", page[1].Username)

	rest, err := repo.FindUsers(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "first", rest[0].Username)

	empty, err := repo.FindUsers(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAuditingDisabled_NoTimestampsAssigned(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(audit.ForConfig(false))

	user, err := domain.NewUser("Rashidi Zin", "rashidi.zin")
	require.NoError(t, err)

	saved, err := repo.SaveUser(ctx, *user)
	require.NoError(t, err)
	assert.True(t, saved.CreatedAt.IsZero())
	assert.True(t, saved.ModifiedAt.IsZero())
}
