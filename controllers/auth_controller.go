package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/middlewares"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/services"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

const sessionMaxAge = 72 * 60 * 60 // seconds, matches the token TTL

type AuthController struct {
	auth   *services.AuthService
	secret []byte
}

func NewAuthController(auth *services.AuthService, secret []byte) *AuthController {
	return &AuthController{auth: auth, secret: secret}
}

func (ac *AuthController) RegisterPage(c *gin.Context) {
	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Notice":      notice,
		"NoticeClass": class,
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := c.PostForm("email")
	password := c.PostForm("password")
	height, _ := utils.ParseFloatField(c.PostForm("height_cm"))
	weight, _ := utils.ParseFloatField(c.PostForm("weight_kg"))

	user, err := ac.auth.Register(name, email, password, height, weight)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			setNotice(c, "Email already registered", "danger")
		} else {
			log.Warnf("register failed for %q: %s", services.NormalizeEmail(email), err)
			setNotice(c, "Registration failed", "danger")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// auto-login
	ac.startSession(c, user.ID, user.Name)
	setNotice(c, "Registration successful", "success")
	c.Redirect(http.StatusFound, "/dashboard")
}

func (ac *AuthController) LoginPage(c *gin.Context) {
	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Notice":      notice,
		"NoticeClass": class,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	user, err := ac.auth.Authenticate(c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		// deliberately the same notice for unknown email and wrong password
		setNotice(c, "Invalid credentials", "danger")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ac.startSession(c, user.ID, user.Name)
	setNotice(c, "Login successful", "success")
	c.Redirect(http.StatusFound, "/dashboard")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	setNotice(c, "Logged out", "info")
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) startSession(c *gin.Context, userID uint, name string) {
	token, err := utils.GenerateSessionToken(userID, name, ac.secret)
	if err != nil {
		log.Errorf("mint session token for user %d: %s", userID, err)
		return
	}
	c.SetCookie(middlewares.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}
