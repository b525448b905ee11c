package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (pc *ProgressController) AddProgressPage(c *gin.Context) {
	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "add_progress.html", gin.H{
		"Today":       time.Now().Format("2006-01-02"),
		"Notice":      notice,
		"NoticeClass": class,
	})
}

// AddProgress upserts one day's metrics. The date defaults to today and all
// numeric fields are coerced, never rejected.
func (pc *ProgressController) AddProgress(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	date, _ := utils.ParseDateField(c.PostForm("date"), time.Now())
	steps, _ := utils.ParseIntField(c.PostForm("steps"))
	water, _ := utils.ParseIntField(c.PostForm("water"))
	workout, _ := utils.ParseIntField(c.PostForm("workout"))

	if err := pc.progress.Upsert(user.ID, date, steps, water, workout); err != nil {
		log.Warnf("upsert progress for user %d: %s", user.ID, err)
		setNotice(c, "Could not save progress", "danger")
	} else {
		setNotice(c, "Progress saved", "success")
	}
	c.Redirect(http.StatusFound, "/progress")
}

func (pc *ProgressController) ProgressPage(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	rows, err := pc.progress.History(user.ID)
	if err != nil {
		log.Warnf("progress history for user %d: %s", user.ID, err)
	}

	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "progress.html", gin.H{
		"Rows":        rows,
		"Notice":      notice,
		"NoticeClass": class,
	})
}

// ProgressData returns the chart payload consumed by the dashboard scripts.
func (pc *ProgressController) ProgressData(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	series, err := pc.progress.RecentSeriesJSON(user.ID, 14)
	if err != nil {
		log.Warnf("progress data for user %d: %s", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress"})
		return
	}
	c.JSON(http.StatusOK, series)
}
