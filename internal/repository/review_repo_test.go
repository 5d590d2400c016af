package repository

import (
	"context"
	"testing"

	"beautysalon/internal/database"
	"beautysalon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared and writes
	// serialized.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedMaster(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	m := masterModel{Name: name, Specialization: "Hair stylist"}
	require.NoError(t, db.Create(&m).Error)
	return m.ID
}

func seedUser(t *testing.T, db *gorm.DB, email string) int64 {
	t.Helper()
	u := userModel{Email: email, PasswordHash: "x", Name: "User " + email}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func cachedRating(t *testing.T, db *gorm.DB, masterID int64) float64 {
	t.Helper()
	var m masterModel
	require.NoError(t, db.First(&m, masterID).Error)
	return m.Rating
}

func TestReviewRepository_RatingFollowsReviews(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	masterID := seedMaster(t, db, "Anna")
	u1 := seedUser(t, db, "u1@test.local")
	u2 := seedUser(t, db, "u2@test.local")

	// No reviews yet: cached rating is 0.
	assert.Equal(t, 0.0, cachedRating(t, db, masterID))

	rv1 := &domain.Review{UserID: u1, MasterID: masterID, Text: "great", Rating: 4}
	require.NoError(t, repo.CreateWithRating(ctx, rv1))
	assert.Equal(t, 4.0, cachedRating(t, db, masterID))

	rv2 := &domain.Review{UserID: u2, MasterID: masterID, Text: "meh", Rating: 2}
	require.NoError(t, repo.CreateWithRating(ctx, rv2))
	assert.Equal(t, 3.0, cachedRating(t, db, masterID))

	require.NoError(t, repo.DeleteByOwnerWithRating(ctx, rv1.ID, u1))
	assert.Equal(t, 2.0, cachedRating(t, db, masterID))

	require.NoError(t, repo.DeleteByOwnerWithRating(ctx, rv2.ID, u2))
	assert.Equal(t, 0.0, cachedRating(t, db, masterID))
}

func TestReviewRepository_CachedRatingMatchesAggregate(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	masterID := seedMaster(t, db, "Maria")
	ratings := []int{5, 3, 4, 1}
	for i, rating := range ratings {
		uid := seedUser(t, db, string(rune('a'+i))+"@test.local")
		rv := &domain.Review{UserID: uid, MasterID: masterID, Text: "r", Rating: rating}
		require.NoError(t, repo.CreateWithRating(ctx, rv))

		agg, err := repo.GetMasterRating(ctx, masterID)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), agg.ReviewCount)
		assert.InDelta(t, agg.AverageRating, cachedRating(t, db, masterID), 1e-9)
	}
}

func TestReviewRepository_DuplicatePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	masterID := seedMaster(t, db, "Elena")
	uid := seedUser(t, db, "dup@test.local")

	first := &domain.Review{UserID: uid, MasterID: masterID, Text: "one", Rating: 5}
	require.NoError(t, repo.CreateWithRating(ctx, first))

	second := &domain.Review{UserID: uid, MasterID: masterID, Text: "two", Rating: 1}
	err := repo.CreateWithRating(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicate)

	// The losing insert must not have touched the cached rating.
	assert.Equal(t, 5.0, cachedRating(t, db, masterID))
}

func TestReviewRepository_ServiceScopedPairIsSeparate(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	masterID := seedMaster(t, db, "Olga")
	uid := seedUser(t, db, "scoped@test.local")
	serviceID := int64(7)

	whole := &domain.Review{UserID: uid, MasterID: masterID, Text: "master", Rating: 4}
	require.NoError(t, repo.CreateWithRating(ctx, whole))

	scoped := &domain.Review{UserID: uid, MasterID: masterID, ServiceID: &serviceID, Text: "svc", Rating: 2}
	require.NoError(t, repo.CreateWithRating(ctx, scoped))

	// Same (user, master, service) target again is the conflict.
	again := &domain.Review{UserID: uid, MasterID: masterID, ServiceID: &serviceID, Text: "svc2", Rating: 3}
	assert.ErrorIs(t, repo.CreateWithRating(ctx, again), ErrDuplicate)

	assert.Equal(t, 3.0, cachedRating(t, db, masterID))
}

func TestReviewRepository_UpdateByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	masterID := seedMaster(t, db, "Anna")
	owner := seedUser(t, db, "owner@test.local")
	stranger := seedUser(t, db, "stranger@test.local")

	rv := &domain.Review{UserID: owner, MasterID: masterID, Text: "ok", Rating: 2}
	require.NoError(t, repo.CreateWithRating(ctx, rv))

	// Someone else's attempt is indistinguishable from a missing review.
	_, err := repo.UpdateByOwnerWithRating(ctx, rv.ID, stranger, "hijack", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	updated, err := repo.UpdateByOwnerWithRating(ctx, rv.ID, owner, "better", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "better", updated.Text)
	assert.Equal(t, 5.0, cachedRating(t, db, masterID))
}

func TestReviewRepository_ListWithNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	m1 := seedMaster(t, db, "Anna")
	m2 := seedMaster(t, db, "Maria")
	uid := seedUser(t, db, "lister@test.local")

	require.NoError(t, repo.CreateWithRating(ctx, &domain.Review{UserID: uid, MasterID: m1, Text: "a", Rating: 4}))
	require.NoError(t, repo.CreateWithRating(ctx, &domain.Review{UserID: uid, MasterID: m2, Text: "b", Rating: 5}))

	all, err := repo.ListWithNames(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "User lister@test.local", all[0].UserName)

	scoped, err := repo.ListWithNames(ctx, m1)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Anna", scoped[0].MasterName)
}
