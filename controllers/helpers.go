package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	noticeCookie      = "notice"
	noticeClassCookie = "notice_class"
)

// setNotice stores a one-shot notice for the next page render, the way the
// UI shows transient success/info/warning/danger banners.
func setNotice(c *gin.Context, message, class string) {
	c.SetCookie(noticeCookie, message, 60, "/", "", false, false)
	c.SetCookie(noticeClassCookie, class, 60, "/", "", false, false)
}

// popNotice reads and clears the pending notice, if any.
func popNotice(c *gin.Context) (string, string) {
	message, err := c.Cookie(noticeCookie)
	if err != nil || message == "" {
		return "", ""
	}
	class, _ := c.Cookie(noticeClassCookie)
	if class == "" {
		class = "info"
	}
	c.SetCookie(noticeCookie, "", -1, "/", "", false, false)
	c.SetCookie(noticeClassCookie, "", -1, "/", "", false, false)
	return message, class
}

// optFloat renders an optional measurement for templates, empty when absent.
func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
