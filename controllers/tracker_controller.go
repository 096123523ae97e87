package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Someya222/yoga-backend/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	tracker *services.TrackerService
}

func NewTrackerController(tracker *services.TrackerService) *TrackerController {
	return &TrackerController{tracker: tracker}
}

type SaveDailyInput struct {
	Date   string `json:"date" binding:"required"`
	Done   bool   `json:"done"`
	Streak int    `json:"streak"`
}

// SaveDaily stores the client's done flag and streak snapshot for one day.
// The streak is deliberately not re-derived here; GET /streak is authoritative.
func (tc *TrackerController) SaveDaily(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SaveDailyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tc.tracker.SaveDaily(userID, input.Date, input.Done, input.Streak); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type RoutineStatusInput struct {
	Date    string               `json:"date" binding:"required"`
	Routine []services.PoseInput `json:"routine"`
	Goal    string               `json:"goal"`
}

func (tc *TrackerController) SetRoutineStatus(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input RoutineStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	done, err := tc.tracker.SetRoutine(userID, input.Date, input.Routine, input.Goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "routine updated", "done": done})
}

func (tc *TrackerController) GetRoutine(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	routine, goal, err := tc.tracker.GetRoutine(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"routine": routine, "goal": goal})
}

type DailyPoseInput struct {
	Date string             `json:"date" binding:"required"`
	Pose services.PoseInput `json:"pose" binding:"required"`
}

func (tc *TrackerController) SaveDailyPose(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input DailyPoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tc.tracker.SetDailyPose(userID, input.Date, input.Pose); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (tc *TrackerController) GetDailyPose(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	pose, err := tc.tracker.GetDailyPose(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// pose is nil when nothing is stored; that renders as JSON null
	c.JSON(http.StatusOK, pose)
}

func (tc *TrackerController) GetStreak(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	streak, err := tc.tracker.ComputeStreak(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

// GetHistory supports both observed calling conventions behind one handler:
// ?year=YYYY&month=M for a single explicit month, ?months=N for N months back
// from now (default 1).
func (tc *TrackerController) GetHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'year' query param"})
			return
		}
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'month' query param"})
			return
		}

		history, err := tc.tracker.MonthHistory(userID, year, time.Month(month))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, history)
		return
	}

	months := 1
	if monthsStr := c.Query("months"); monthsStr != "" {
		n, err := strconv.Atoi(monthsStr)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'months' query param"})
			return
		}
		months = n
	}

	history, err := tc.tracker.History(userID, time.Now(), months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
