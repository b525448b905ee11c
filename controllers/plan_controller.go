package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
)

type PlanController struct {
	users *services.UserService
	plans *services.PlanService
}

func NewPlanController(users *services.UserService, plans *services.PlanService) *PlanController {
	return &PlanController{users: users, plans: plans}
}

// Diet serves both GET and POST: a POST carries an optional goal override
// which is persisted and reflected in the rendered plan immediately.
func (pc *PlanController) Diet(c *gin.Context) {
	goal, notice, class := pc.resolveGoal(c)
	c.HTML(http.StatusOK, "diet.html", gin.H{
		"Plan":        pc.plans.DietPlan(goal),
		"CurrentGoal": goal,
		"Notice":      notice,
		"NoticeClass": class,
	})
}

// Workout mirrors Diet with the workout plan tables.
func (pc *PlanController) Workout(c *gin.Context) {
	goal, notice, class := pc.resolveGoal(c)
	c.HTML(http.StatusOK, "workout.html", gin.H{
		"Plan":        pc.plans.WorkoutPlan(goal),
		"CurrentGoal": goal,
		"Notice":      notice,
		"NoticeClass": class,
	})
}

func (pc *PlanController) resolveGoal(c *gin.Context) (goal, notice, class string) {
	user := middlewares.CurrentUser(c)
	goal = pc.users.GoalFor(user.ID)
	notice, class = popNotice(c)

	if c.Request.Method == http.MethodPost {
		if newGoal := c.PostForm("goal"); newGoal != "" {
			if err := pc.users.UpdateGoal(user.ID, newGoal); err != nil {
				log.Warnf("update goal for user %d: %s", user.ID, err)
			} else {
				goal = newGoal
				notice, class = "Goal updated", "success"
			}
		}
	}
	return goal, notice, class
}
