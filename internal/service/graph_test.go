package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitterlike/backend/internal/models"
)

func usernames(users []models.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

func TestFollowAndQueries(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	edge, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.NotZero(t, edge.ID)

	followers, err := svc.Followers(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(followers))

	following, err := svc.Following(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames(following))

	// The other directions stay empty.
	followers, err = svc.Followers(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	following, err = svc.Following(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowIsNotDuplicated(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.Follow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	followers, err := svc.Followers(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(followers), "follower appears exactly once")
}

func TestSelfFollowNeverMutates(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")

	_, err := svc.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowUnknownUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")

	_, err := svc.Follow(alice.ID, 999)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestUnfollowRestoresPreFollowState(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Unfollow(alice.ID, bob.ID))

	followers, err := svc.Followers(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	following, err := svc.Following(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	db := openTestDB(t)
	svc := NewGraphService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	err := svc.Unfollow(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
}
