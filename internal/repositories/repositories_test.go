package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/sajeeb10/pixelgram/internal/models"
	"github.com/sajeeb10/pixelgram/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Like{},
		&models.SavedPost{},
		&models.Comment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "x", FullName: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Type: models.PostTypeImage, URL: "/uploads/x.jpg"}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestToggleLikeAlternates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGormLikeRepository(db)
	user := seedUser(t, db, "alice")
	post := seedPost(t, db, user.ID)

	liked, err := repo.ToggleLike(user.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	count, err := repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	liked, err = repo.ToggleLike(user.ID, post.ID)
	require.NoError(t, err)
	require.False(t, liked)

	count, err = repo.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	// The edge set holds exactly one row even after repeated toggling
	liked, err = repo.ToggleLike(user.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)
	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}

func TestToggleFollowAlternates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGormFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	following, err := repo.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, following)

	isFollowing, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, isFollowing)

	// The reverse edge does not exist
	isFollowing, err = repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	require.False(t, isFollowing)

	following, err = repo.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, following)

	count, err := repo.GetFollowersCount(bob.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestDeletePostCascadeRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	postRepo := repositories.NewGormPostRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, alice.ID)
	other := seedPost(t, db, alice.ID)

	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.SavedPost{UserID: bob.ID, PostID: post.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{UserID: bob.ID, PostID: post.ID, Content: "nice"}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, PostID: other.ID}).Error)

	require.NoError(t, postRepo.DeletePostCascade(post.ID))

	for _, model := range []interface{}{&models.Like{}, &models.SavedPost{}, &models.Comment{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("post_id = ?", post.ID).Count(&count).Error)
		require.Zero(t, count)
	}

	// Rows of other posts are untouched
	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", other.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	_, err := postRepo.GetPostByID(post.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetSuggestionsExcludesSelfAndFollowed(t *testing.T) {
	db := newTestDB(t)
	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedUser(t, db, "carol")

	_, err := followRepo.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)

	suggestions, err := userRepo.GetSuggestions(alice.ID, 5)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	require.Equal(t, "carol", suggestions[0].Username)
}

func TestSearchUsersIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGormUserRepository(db)
	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "x", FullName: "Alice A"}).Error)
	require.NoError(t, db.Create(&models.User{Username: "bob", Password: "x", FullName: "Bob Alicesson"}).Error)

	for _, query := range []string{"alice", "ALICE", "aLiCe"} {
		users, err := repo.SearchUsers(query, 20)
		require.NoError(t, err)
		require.Len(t, users, 2, "query %q", query)
	}

	users, err := repo.SearchUsers("zzz", 20)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestFeedCountsMatchEdgeSets(t *testing.T) {
	db := newTestDB(t)
	likeRepo := repositories.NewGormLikeRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	first := seedPost(t, db, alice.ID)
	second := seedPost(t, db, alice.ID)

	require.NoError(t, db.Create(&models.Like{UserID: alice.ID, PostID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: bob.ID, PostID: first.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{UserID: bob.ID, PostID: second.ID, Content: "hey"}).Error)

	likeCounts, err := likeRepo.GetLikeCounts([]uint{first.ID, second.ID})
	require.NoError(t, err)
	require.EqualValues(t, 2, likeCounts[first.ID])
	require.EqualValues(t, 0, likeCounts[second.ID])

	commentCounts, err := commentRepo.GetCommentCounts([]uint{first.ID, second.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, commentCounts[second.ID])

	likedMap, err := likeRepo.GetLikedPostIDs(bob.ID, []uint{first.ID, second.ID})
	require.NoError(t, err)
	require.True(t, likedMap[first.ID])
	require.False(t, likedMap[second.ID])
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGormCommentRepository(db)
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice.ID)

	for _, content := range []string{"one", "two", "three"} {
		require.NoError(t, repo.CreateComment(&models.Comment{UserID: alice.ID, PostID: post.ID, Content: content}))
	}

	comments, err := repo.GetCommentsByPostID(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "one", comments[0].Content)
	require.Equal(t, "three", comments[2].Content)
	require.Equal(t, "alice", comments[0].Username)
}
