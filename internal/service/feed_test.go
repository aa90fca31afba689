package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitterlike/backend/internal/models"
	"github.com/twitterlike/backend/internal/repositories"
)

func TestTimelineOrdering(t *testing.T) {
	db := openTestDB(t)
	graph := NewGraphService(db)
	feed := NewFeedService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	_, err := graph.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		createPost(t, db, bob.ID, fmt.Sprintf("post %d", i))
	}

	items, err := feed.TimelineFor(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.Post.ID
		assert.Equal(t, "bob", item.Author)
	}
	assert.Equal(t, []uint{5, 4, 3, 2, 1}, ids, "newest first")
}

func TestTimelineEmptyIsNotAnError(t *testing.T) {
	db := openTestDB(t)
	feed := NewFeedService(db)
	alice := createUser(t, db, "alice", "abc12!")

	// Follows no one.
	items, err := feed.TimelineFor(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Follows someone without posts.
	bob := createUser(t, db, "bob", "xyz45#")
	_, err = NewGraphService(db).Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	items, err = feed.TimelineFor(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTimelineExcludesOwnAndUnfollowedPosts(t *testing.T) {
	db := openTestDB(t)
	graph := NewGraphService(db)
	feed := NewFeedService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")
	carol := createUser(t, db, "carol", "def67!")

	_, err := graph.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	createPost(t, db, alice.ID, "mine")
	followed := createPost(t, db, bob.ID, "followed")
	createPost(t, db, carol.ID, "stranger")

	items, err := feed.TimelineFor(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, followed.ID, items[0].Post.ID)
}

func TestProfileFor(t *testing.T) {
	db := openTestDB(t)
	feed := NewFeedService(db)
	engagement := NewEngagementService(db)
	alice := createUser(t, db, "alice", "abc12!")
	bob := createUser(t, db, "bob", "xyz45#")

	first := createPost(t, db, alice.ID, "first")
	second := createPost(t, db, alice.ID, "second")
	createPost(t, db, bob.ID, "not alice's")

	_, err := engagement.ToggleLike(bob.ID, first.ID)
	require.NoError(t, err)

	items, err := feed.ProfileFor(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].Post.ID)
	assert.Equal(t, first.ID, items[1].Post.ID)
	assert.Equal(t, int64(0), items[0].LikeCount)
	assert.Equal(t, int64(1), items[1].LikeCount)

	_, err = feed.ProfileFor(999)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

// End-to-end walk through the registration, graph, posting and engagement
// surface against one database.
func TestSocialScenario(t *testing.T) {
	db := openTestDB(t)
	var slept []time.Duration
	auth := newTestAuthService(db, &slept)
	graph := NewGraphService(db)
	engagement := NewEngagementService(db)
	feed := NewFeedService(db)
	posts := NewPostService(repositories.NewPostgresPostRepository(db))

	a, err := auth.Register(models.RegisterRequest{Username: "A", Password: "abc12!"})
	require.NoError(t, err)
	b, err := auth.Register(models.RegisterRequest{Username: "B", Password: "xyz45#"})
	require.NoError(t, err)

	_, err = graph.Follow(a.ID, b.ID)
	require.NoError(t, err)

	followers, err := graph.Followers(b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, usernames(followers))

	post, err := posts.CreatePost(b.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)

	items, err := feed.TimelineFor(a.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Author)
	assert.Equal(t, post.ID, items[0].Post.ID)
	assert.Equal(t, int64(0), items[0].LikeCount)

	liked, err := engagement.ToggleLike(a.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := engagement.LikeCount(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err = engagement.ToggleLike(a.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = engagement.LikeCount(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
