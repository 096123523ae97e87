package services

import (
	"errors"
	"time"

	"github.com/Someya222/yoga-backend/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PoseInput mirrors one pose exactly as clients send and receive it.
type PoseInput struct {
	Title        string `json:"title"`
	Image        string `json:"image"`
	Instructions string `json:"instructions"`
	Benefits     string `json:"benefits"`
	Done         bool   `json:"done"`
}

type TrackerService struct {
	db *gorm.DB
}

func NewTrackerService(db *gorm.DB) *TrackerService {
	return &TrackerService{db: db}
}

// SaveDaily upserts the (user, date) record, overwriting done and streak only.
// The streak value is stored exactly as the client sent it: it is an advisory
// cache, the authoritative count always comes from ComputeStreak.
func (s *TrackerService) SaveDaily(userID uint, date string, done bool, streak int) error {
	var rec models.DailyRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.DailyRecord{UserID: userID, Date: date, Done: done, Streak: streak}
		return s.db.Create(&rec).Error
	}
	if err != nil {
		return err
	}

	rec.Done = done
	rec.Streak = streak
	return s.db.Save(&rec).Error
}

// SetRoutine replaces the routine and goal for (user, date) wholesale and
// derives done as the AND over the new poses. An empty routine derives true.
func (s *TrackerService) SetRoutine(userID uint, date string, poses []PoseInput, goal string) (bool, error) {
	done := true
	for _, p := range poses {
		if !p.Done {
			done = false
			break
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := findOrCreateRecord(tx, userID, date)
		if err != nil {
			return err
		}

		// replaced poses carry no history, drop them for real
		if err := tx.Unscoped().Where("daily_record_id = ?", rec.ID).Delete(&models.RoutinePose{}).Error; err != nil {
			return err
		}
		for i, p := range poses {
			rp := models.RoutinePose{
				DailyRecordID: rec.ID,
				Position:      i,
				Title:         p.Title,
				Image:         p.Image,
				Instructions:  p.Instructions,
				Benefits:      p.Benefits,
				Done:          p.Done,
			}
			if err := tx.Create(&rp).Error; err != nil {
				return err
			}
		}

		rec.Goal = goal
		rec.Done = done
		return tx.Save(rec).Error
	})
	if err != nil {
		return false, err
	}
	return done, nil
}

// SetDailyPose stores or replaces the record's featured pose. It never touches
// the routine or the done flag.
func (s *TrackerService) SetDailyPose(userID uint, date string, pose PoseInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := findOrCreateRecord(tx, userID, date)
		if err != nil {
			return err
		}

		var dp models.DailyPose
		err = tx.Where("daily_record_id = ?", rec.ID).First(&dp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dp = models.DailyPose{DailyRecordID: rec.ID}
		} else if err != nil {
			return err
		}

		dp.Title = pose.Title
		dp.Image = pose.Image
		dp.Instructions = pose.Instructions
		dp.Benefits = pose.Benefits
		dp.Done = pose.Done
		return tx.Save(&dp).Error
	})
}

// GetRoutine returns the stored routine in order plus the goal. A missing
// record is not an error: it yields an empty routine and an empty goal.
func (s *TrackerService) GetRoutine(userID uint, date string) ([]PoseInput, string, error) {
	var rec models.DailyRecord
	err := s.db.
		Preload("Routine", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("user_id = ? AND date = ?", userID, date).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []PoseInput{}, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	poses := make([]PoseInput, 0, len(rec.Routine))
	for _, rp := range rec.Routine {
		poses = append(poses, PoseInput{
			Title:        rp.Title,
			Image:        rp.Image,
			Instructions: rp.Instructions,
			Benefits:     rp.Benefits,
			Done:         rp.Done,
		})
	}
	return poses, rec.Goal, nil
}

// GetDailyPose returns the stored featured pose, or nil when no record or no
// pose exists for that date.
func (s *TrackerService) GetDailyPose(userID uint, date string) (*PoseInput, error) {
	var rec models.DailyRecord
	err := s.db.
		Preload("DailyPose").
		Where("user_id = ? AND date = ?", userID, date).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.DailyPose == nil {
		return nil, nil
	}

	return &PoseInput{
		Title:        rec.DailyPose.Title,
		Image:        rec.DailyPose.Image,
		Instructions: rec.DailyPose.Instructions,
		Benefits:     rec.DailyPose.Benefits,
		Done:         rec.DailyPose.Done,
	}, nil
}

// ComputeStreak walks back one day at a time from today and counts days whose
// record exists and is done. The first missing or not-done day stops the scan;
// gaps are never skipped.
func (s *TrackerService) ComputeStreak(userID uint, today time.Time) (int, error) {
	var recs []models.DailyRecord
	if err := s.db.Where("user_id = ?", userID).Order("date desc").Find(&recs).Error; err != nil {
		return 0, err
	}

	byDate := make(map[string]bool, len(recs))
	for _, r := range recs {
		byDate[r.Date] = r.Done
	}

	streak := 0
	expected := today
	for {
		done, ok := byDate[expected.Format(dateLayout)]
		if !ok || !done {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak, nil
}

// History is the rolling form: the current month plus months-1 before it,
// merged into one map. Keys from different months never collide, so the merge
// is a plain union.
func (s *TrackerService) History(userID uint, now time.Time, months int) (map[string]bool, error) {
	if months < 1 {
		months = 1
	}

	out := make(map[string]bool)
	for i := 0; i < months; i++ {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		m, err := s.MonthHistory(userID, first.Year(), first.Month())
		if err != nil {
			return nil, err
		}
		for k, v := range m {
			out[k] = v
		}
	}
	return out, nil
}

// MonthHistory is the explicit form: one calendar month as a gap-free map from
// YYYY-MM-DD to done. Days with no record are filled with false.
func (s *TrackerService) MonthHistory(userID uint, year int, month time.Month) (map[string]bool, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var recs []models.DailyRecord
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, first.Format(dateLayout), next.Format(dateLayout)).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]bool, len(recs))
	for _, r := range recs {
		byDate[r.Date] = r.Done
	}

	out := make(map[string]bool)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		out[key] = byDate[key]
	}
	return out, nil
}

func findOrCreateRecord(tx *gorm.DB, userID uint, date string) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	err := tx.Where("user_id = ? AND date = ?", userID, date).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.DailyRecord{UserID: userID, Date: date}
		if err := tx.Create(&rec).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
