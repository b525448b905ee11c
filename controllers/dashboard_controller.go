package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
)

type DashboardController struct {
	users    *services.UserService
	progress *services.ProgressService
	plans    *services.PlanService
}

func NewDashboardController(users *services.UserService, progress *services.ProgressService, plans *services.PlanService) *DashboardController {
	return &DashboardController{users: users, progress: progress, plans: plans}
}

func (dc *DashboardController) Dashboard(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	summary, err := dc.progress.TodaySummary(user.ID)
	if err != nil {
		log.Warnf("today summary for user %d: %s", user.ID, err)
	}
	series, err := dc.progress.RecentSeries(user.ID, 7)
	if err != nil {
		log.Warnf("recent series for user %d: %s", user.ID, err)
	}

	bmi := ""
	goal := ""
	if account, err := dc.users.GetByID(user.ID); err == nil {
		bmi = optFloat(account.BMI)
		goal = account.Goal
	}

	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Name":        user.Name,
		"BMI":         bmi,
		"Goal":        goal,
		"Summary":     summary,
		"Series":      series,
		"Quote":       dc.plans.QuoteOfDay(time.Now()),
		"Notice":      notice,
		"NoticeClass": class,
	})
}
