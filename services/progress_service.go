package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

const dateLayout = "2006-01-02"

// Summary is one day's recorded activity, zeros when nothing was logged.
type Summary struct {
	Steps   int `json:"steps"`
	Water   int `json:"water"`
	Workout int `json:"workout"`
}

// Series holds chart data; the metric slices are positionally aligned with
// Labels. Days without an entry are absent, not zero-filled.
type Series struct {
	Labels  []string `json:"labels"`
	Steps   []int    `json:"steps"`
	Water   []int    `json:"water"`
	Workout []int    `json:"workout"`
}

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Upsert writes one day's metrics, overwriting any prior entry for the same
// (user, date). Last write wins on concurrent submits.
func (s *ProgressService) Upsert(userID uint, date time.Time, steps, water, workout int) error {
	start := utils.DayStart(date)

	entry := models.ProgressEntry{
		UserID:  userID,
		Date:    start,
		Steps:   steps,
		Water:   water,
		Workout: workout,
	}

	return s.db.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(map[string]interface{}{
			"steps":   steps,
			"water":   water,
			"workout": workout,
		}).
		FirstOrCreate(&entry).Error
}

// TodaySummary returns the entry for the current local day, zeros if none.
func (s *ProgressService) TodaySummary(userID uint) (Summary, error) {
	start := utils.DayStart(time.Now())

	var entry models.ProgressEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, start).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Summary{}, nil
		}
		return Summary{}, err
	}
	return Summary{Steps: entry.Steps, Water: entry.Water, Workout: entry.Workout}, nil
}

// RecentSeries returns entries from the trailing window of windowDays calendar
// days including today, ascending by date.
func (s *ProgressService) RecentSeries(userID uint, windowDays int) (Series, error) {
	from := utils.DayStart(time.Now()).AddDate(0, 0, -(windowDays - 1))

	var rows []models.ProgressEntry
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return Series{}, err
	}

	series := emptySeries(len(rows))
	for _, r := range rows {
		series.Labels = append(series.Labels, r.Date.Format(dateLayout))
		series.Steps = append(series.Steps, r.Steps)
		series.Water = append(series.Water, r.Water)
		series.Workout = append(series.Workout, r.Workout)
	}
	return series, nil
}

// RecentSeriesJSON feeds the /progress_data endpoint: it takes the most
// recent `limit` rows, dedupes by date keeping the first-seen (most recent)
// value, sorts the distinct dates ascending and keeps the last 7. On sparse
// data this diverges from RecentSeries; both behaviors are kept as-is for
// compatibility with existing chart clients.
func (s *ProgressService) RecentSeriesJSON(userID uint, limit int) (Series, error) {
	var rows []models.ProgressEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return Series{}, err
	}

	byDate := make(map[string]models.ProgressEntry, len(rows))
	for _, r := range rows {
		key := r.Date.Format(dateLayout)
		if _, seen := byDate[key]; !seen {
			byDate[key] = r
		}
	}

	labels := make([]string, 0, len(byDate))
	for d := range byDate {
		labels = append(labels, d)
	}
	sort.Strings(labels)
	if len(labels) > 7 {
		labels = labels[len(labels)-7:]
	}

	series := emptySeries(len(labels))
	series.Labels = labels
	for _, d := range labels {
		r := byDate[d]
		series.Steps = append(series.Steps, r.Steps)
		series.Water = append(series.Water, r.Water)
		series.Workout = append(series.Workout, r.Workout)
	}
	return series, nil
}

// History returns every entry for the user, most recent first.
func (s *ProgressService) History(userID uint) ([]models.ProgressEntry, error) {
	var rows []models.ProgressEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func emptySeries(capacity int) Series {
	return Series{
		Labels:  make([]string, 0, capacity),
		Steps:   make([]int, 0, capacity),
		Water:   make([]int, 0, capacity),
		Workout: make([]int, 0, capacity),
	}
}
