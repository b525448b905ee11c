package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

func seedUser(t *testing.T, svc *AuthService) uint {
	t.Helper()
	user, err := svc.Register("Progress Tester", "progress@example.com", "s3cret", 170, 70)
	require.NoError(t, err)
	return user.ID
}

func TestUpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	date := time.Now()
	require.NoError(t, svc.Upsert(userID, date, 1000, 2, 15))
	require.NoError(t, svc.Upsert(userID, date, 8000, 6, 45))

	var rows []models.ProgressEntry
	require.NoError(t, db.Where("user_id = ?", userID).Find(&rows).Error)
	require.Len(t, rows, 1)

	assert.Equal(t, 8000, rows[0].Steps)
	assert.Equal(t, 6, rows[0].Water)
	assert.Equal(t, 45, rows[0].Workout)
}

func TestUpsertZeroOverwrites(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	date := time.Now()
	require.NoError(t, svc.Upsert(userID, date, 1000, 2, 15))
	require.NoError(t, svc.Upsert(userID, date, 0, 0, 0))

	summary, err := svc.TodaySummary(userID)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}

func TestTodaySummary(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	summary, err := svc.TodaySummary(userID)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)

	require.NoError(t, svc.Upsert(userID, time.Now(), 5000, 4, 30))
	require.NoError(t, svc.Upsert(userID, time.Now().AddDate(0, 0, -1), 9999, 9, 99))

	summary, err = svc.TodaySummary(userID)
	require.NoError(t, err)
	assert.Equal(t, Summary{Steps: 5000, Water: 4, Workout: 30}, summary)
}

func TestRecentSeriesSkipsMissingDays(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	now := time.Now()
	require.NoError(t, svc.Upsert(userID, now, 5000, 4, 30))
	require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -3), 3000, 2, 10))
	require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -10), 7000, 5, 60)) // outside window

	series, err := svc.RecentSeries(userID, 7)
	require.NoError(t, err)

	// gap days are absent, not zero-filled
	require.Equal(t, []string{
		utils.DayStart(now.AddDate(0, 0, -3)).Format("2006-01-02"),
		utils.DayStart(now).Format("2006-01-02"),
	}, series.Labels)
	assert.Equal(t, []int{3000, 5000}, series.Steps)
	assert.Equal(t, []int{2, 4}, series.Water)
	assert.Equal(t, []int{10, 30}, series.Workout)
}

func TestRecentSeriesJSONKeepsSevenMostRecent(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	now := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -i), 1000*(i+1), i, 10*i))
	}

	series, err := svc.RecentSeriesJSON(userID, 14)
	require.NoError(t, err)
	require.Len(t, series.Labels, 7)

	expected := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		expected = append(expected, utils.DayStart(now.AddDate(0, 0, -i)).Format("2006-01-02"))
	}
	assert.Equal(t, expected, series.Labels)

	// aligned with ascending labels: oldest kept day first
	assert.Equal(t, 7000, series.Steps[0])
	assert.Equal(t, 1000, series.Steps[6])
}

func TestSeriesDivergeOnSparseData(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	// ten entries, one every other day over twenty days
	now := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -2*i), 100*(i+1), i, i))
	}

	windowed, err := svc.RecentSeries(userID, 7)
	require.NoError(t, err)
	truncated, err := svc.RecentSeriesJSON(userID, 14)
	require.NoError(t, err)

	// the windowed query sees 4 days, the truncate-then-trim query 7
	assert.Len(t, windowed.Labels, 4)
	assert.Len(t, truncated.Labels, 7)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, NewAuthService(db))
	svc := NewProgressService(db)

	now := time.Now()
	require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -2), 1, 1, 1))
	require.NoError(t, svc.Upsert(userID, now, 3, 3, 3))
	require.NoError(t, svc.Upsert(userID, now.AddDate(0, 0, -1), 2, 2, 2))

	rows, err := svc.History(userID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0].Steps)
	assert.Equal(t, 2, rows[1].Steps)
	assert.Equal(t, 1, rows[2].Steps)
}
