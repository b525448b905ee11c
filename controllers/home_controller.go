package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (hc *HomeController) Home(c *gin.Context) {
	notice, class := popNotice(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Notice":      notice,
		"NoticeClass": class,
	})
}
