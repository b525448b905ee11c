package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

type ProfileController struct {
	users  *services.UserService
	secret []byte
}

func NewProfileController(users *services.UserService, secret []byte) *ProfileController {
	return &ProfileController{users: users, secret: secret}
}

// Profile serves both GET and POST. A POST replaces name, height and weight;
// BMI and goal are recomputed and the session is re-minted so the display
// name stays current.
func (pc *ProfileController) Profile(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	notice, class := popNotice(c)

	if c.Request.Method == http.MethodPost {
		name := strings.TrimSpace(c.PostForm("name"))
		height, _ := utils.ParseFloatField(c.PostForm("height_cm"))
		weight, _ := utils.ParseFloatField(c.PostForm("weight_kg"))

		updated, err := pc.users.UpdateProfile(user.ID, name, height, weight)
		if err != nil {
			log.Warnf("update profile for user %d: %s", user.ID, err)
			notice, class = "Could not update profile", "danger"
		} else {
			pc.refreshSession(c, updated.ID, updated.Name)
			user.Name = updated.Name
			notice, class = "Profile updated", "success"
		}
	}

	account, err := pc.users.GetByID(user.ID)
	if err != nil {
		log.Warnf("load profile for user %d: %s", user.ID, err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Name":        account.Name,
		"Email":       account.Email,
		"HeightCm":    optFloat(account.HeightCm),
		"WeightKg":    optFloat(account.WeightKg),
		"BMI":         optFloat(account.BMI),
		"Goal":        account.Goal,
		"Notice":      notice,
		"NoticeClass": class,
	})
}

func (pc *ProfileController) refreshSession(c *gin.Context, userID uint, name string) {
	token, err := utils.GenerateSessionToken(userID, name, pc.secret)
	if err != nil {
		log.Errorf("refresh session token for user %d: %s", userID, err)
		return
	}
	c.SetCookie(middlewares.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}
