package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Someya222/yoga-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DailyRecord{},
		&models.RoutinePose{},
		&models.DailyPose{},
	))
	return db
}

func TestSetRoutineDerivesDone(t *testing.T) {
	tests := []struct {
		name  string
		poses []PoseInput
		want  bool
	}{
		{
			name: "all poses done",
			poses: []PoseInput{
				{Title: "Downward Dog", Done: true},
				{Title: "Warrior II", Done: true},
			},
			want: true,
		},
		{
			name: "one pose not done",
			poses: []PoseInput{
				{Title: "Downward Dog", Done: true},
				{Title: "Warrior II", Done: false},
				{Title: "Tree Pose", Done: true},
			},
			want: false,
		},
		{
			name:  "empty routine",
			poses: []PoseInput{},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTrackerService(newTestDB(t))

			done, err := svc.SetRoutine(1, "2024-03-10", tt.poses, "morning flow")
			require.NoError(t, err)
			require.Equal(t, tt.want, done)

			// the derived flag must also be what got persisted
			history, err := svc.MonthHistory(1, 2024, time.March)
			require.NoError(t, err)
			require.Equal(t, tt.want, history["2024-03-10"])
		})
	}
}

func TestSetRoutineThenGetRoutineRoundTrip(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	poses := []PoseInput{
		{Title: "Cat-Cow", Image: "catcow.png", Instructions: "alternate arch and round", Benefits: "spine mobility", Done: true},
		{Title: "Child's Pose", Image: "child.png", Instructions: "fold forward, arms extended", Benefits: "relaxation", Done: false},
		{Title: "Cobra", Image: "cobra.png", Instructions: "press up through the palms", Benefits: "back strength", Done: true},
	}

	_, err := svc.SetRoutine(7, "2024-03-12", poses, "back care")
	require.NoError(t, err)

	got, goal, err := svc.GetRoutine(7, "2024-03-12")
	require.NoError(t, err)
	require.Equal(t, "back care", goal)
	require.Equal(t, poses, got)
}

func TestSetRoutineReplacesWholesale(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	_, err := svc.SetRoutine(1, "2024-03-12", []PoseInput{
		{Title: "A", Done: true},
		{Title: "B", Done: true},
		{Title: "C", Done: true},
	}, "first")
	require.NoError(t, err)

	_, err = svc.SetRoutine(1, "2024-03-12", []PoseInput{
		{Title: "D", Done: false},
	}, "second")
	require.NoError(t, err)

	got, goal, err := svc.GetRoutine(1, "2024-03-12")
	require.NoError(t, err)
	require.Equal(t, "second", goal)
	require.Len(t, got, 1)
	require.Equal(t, "D", got[0].Title)
}

func TestGetRoutineMissingRecord(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	routine, goal, err := svc.GetRoutine(1, "2024-01-01")
	require.NoError(t, err)
	require.Empty(t, routine)
	require.Equal(t, "", goal)
}

func TestSaveDailyLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewTrackerService(db)

	require.NoError(t, svc.SaveDaily(3, "2024-03-01", true, 5))
	require.NoError(t, svc.SaveDaily(3, "2024-03-01", false, 2))

	var recs []models.DailyRecord
	require.NoError(t, db.Where("user_id = ? AND date = ?", 3, "2024-03-01").Find(&recs).Error)
	require.Len(t, recs, 1)
	require.False(t, recs[0].Done)
	require.Equal(t, 2, recs[0].Streak)
}

func TestSaveDailyStoresStreakVerbatim(t *testing.T) {
	db := newTestDB(t)
	svc := NewTrackerService(db)

	// the stored streak is a client-supplied cache and is never validated
	require.NoError(t, svc.SaveDaily(3, "2024-03-01", true, 999))

	var rec models.DailyRecord
	require.NoError(t, db.Where("user_id = ? AND date = ?", 3, "2024-03-01").First(&rec).Error)
	require.Equal(t, 999, rec.Streak)
}

func TestComputeStreak(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		seed map[string]bool // date -> done
		want int
	}{
		{
			name: "no records",
			seed: map[string]bool{},
			want: 0,
		},
		{
			name: "two done then a miss",
			seed: map[string]bool{
				"2024-03-15": true,
				"2024-03-14": true,
				"2024-03-13": false,
			},
			want: 2,
		},
		{
			name: "gap stops the count",
			seed: map[string]bool{
				"2024-03-15": true,
				"2024-03-13": true, // 03-14 missing
			},
			want: 1,
		},
		{
			name: "today missing breaks the chain",
			seed: map[string]bool{
				"2024-03-14": true,
				"2024-03-13": true,
			},
			want: 0,
		},
		{
			name: "unbroken chain across a month boundary",
			seed: map[string]bool{
				"2024-03-15": true,
				"2024-03-14": true,
				"2024-03-13": true,
				"2024-03-12": true,
				"2024-03-11": true,
				"2024-03-10": true,
				"2024-03-09": true,
				"2024-03-08": true,
				"2024-03-07": true,
				"2024-03-06": true,
				"2024-03-05": true,
				"2024-03-04": true,
				"2024-03-03": true,
				"2024-03-02": true,
				"2024-03-01": true,
				"2024-02-29": true, // leap day
				"2024-02-28": true,
			},
			want: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTrackerService(newTestDB(t))
			for date, done := range tt.seed {
				require.NoError(t, svc.SaveDaily(1, date, done, 0))
			}

			streak, err := svc.ComputeStreak(1, today)
			require.NoError(t, err)
			require.Equal(t, tt.want, streak)
		})
	}
}

func TestMonthHistoryFillsEveryDay(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	require.NoError(t, svc.SaveDaily(1, "2024-02-10", true, 0))
	require.NoError(t, svc.SaveDaily(1, "2024-02-11", false, 0))

	history, err := svc.MonthHistory(1, 2024, time.February)
	require.NoError(t, err)

	// leap-year February
	require.Len(t, history, 29)

	trueDays := 0
	for date, done := range history {
		require.True(t, strings.HasPrefix(date, "2024-02-"))
		if done {
			trueDays++
			require.Equal(t, "2024-02-10", date)
		}
	}
	require.Equal(t, 1, trueDays)
}

func TestMonthHistoryIgnoresOtherUsers(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	require.NoError(t, svc.SaveDaily(1, "2024-02-10", true, 0))
	require.NoError(t, svc.SaveDaily(2, "2024-02-12", true, 0))

	history, err := svc.MonthHistory(1, 2024, time.February)
	require.NoError(t, err)
	require.True(t, history["2024-02-10"])
	require.False(t, history["2024-02-12"])
}

func TestHistoryRollingUnion(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

	require.NoError(t, svc.SaveDaily(1, "2024-03-05", true, 0))
	require.NoError(t, svc.SaveDaily(1, "2024-02-20", true, 0))
	require.NoError(t, svc.SaveDaily(1, "2024-01-31", true, 0)) // outside the window

	history, err := svc.History(1, now, 2)
	require.NoError(t, err)

	// March (31) + leap February (29), no key collisions possible
	require.Len(t, history, 60)
	require.True(t, history["2024-03-05"])
	require.True(t, history["2024-02-20"])
	require.False(t, history["2024-03-01"])
	_, ok := history["2024-01-31"]
	require.False(t, ok)
}

func TestHistoryDefaultsToOneMonth(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))
	now := time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC)

	history, err := svc.History(1, now, 0)
	require.NoError(t, err)
	require.Len(t, history, 30)
}

func TestSetDailyPoseRoundTrip(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	pose := PoseInput{
		Title:        "Mountain Pose",
		Image:        "mountain.png",
		Instructions: "stand tall, ground through the feet",
		Benefits:     "posture",
		Done:         true,
	}
	require.NoError(t, svc.SetDailyPose(4, "2024-03-20", pose))

	got, err := svc.GetDailyPose(4, "2024-03-20")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, pose, *got)

	// replacing swaps it wholesale
	pose.Title = "Eagle Pose"
	require.NoError(t, svc.SetDailyPose(4, "2024-03-20", pose))

	got, err = svc.GetDailyPose(4, "2024-03-20")
	require.NoError(t, err)
	require.Equal(t, "Eagle Pose", got.Title)
}

func TestGetDailyPoseAbsent(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	// no record at all
	got, err := svc.GetDailyPose(4, "2024-03-20")
	require.NoError(t, err)
	require.Nil(t, got)

	// record exists but carries no daily pose
	require.NoError(t, svc.SaveDaily(4, "2024-03-20", true, 1))
	got, err = svc.GetDailyPose(4, "2024-03-20")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSetDailyPoseLeavesRoutineAlone(t *testing.T) {
	svc := NewTrackerService(newTestDB(t))

	done, err := svc.SetRoutine(1, "2024-03-21", []PoseInput{{Title: "A", Done: false}}, "goal")
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, svc.SetDailyPose(1, "2024-03-21", PoseInput{Title: "Featured", Done: true}))

	routine, goal, err := svc.GetRoutine(1, "2024-03-21")
	require.NoError(t, err)
	require.Equal(t, "goal", goal)
	require.Len(t, routine, 1)

	history, err := svc.MonthHistory(1, 2024, time.March)
	require.NoError(t, err)
	require.False(t, history["2024-03-21"])
}
