package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName 匿名会话 Cookie
	SessionCookieName = "wellness_session"
	sessionKeyCtx     = "sessionKey"
	sessionMaxAge     = 7 * 24 * 3600
	anonPrefix        = "anon:"
)

// Session 为每个请求确定会话键，用于隔离历史记录
// 携带有效 JWT 时使用 user:<id>，否则使用匿名 Cookie anon:<uuid>
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			claims, err := ParseToken(tokenString)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"code":    401,
					"message": "token 无效或已过期",
				})
				c.Abort()
				return
			}
			c.Set("userID", claims.UserID)
			c.Set("username", claims.Username)
			c.Set(sessionKeyCtx, UserSessionKey(claims.UserID))
			c.Next()
			return
		}

		key, ok := AnonymousSessionKey(c)
		if !ok {
			sid := uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, sid, sessionMaxAge, "/", "", secure, true)
			key = anonPrefix + sid
		}
		c.Set(sessionKeyCtx, key)
		c.Next()
	}
}

// AnonymousSessionKey 从 Cookie 读取匿名会话键，不签发新 Cookie
func AnonymousSessionKey(c *gin.Context) (string, bool) {
	sid, err := c.Cookie(SessionCookieName)
	if err != nil || uuid.Validate(sid) != nil {
		return "", false
	}
	return anonPrefix + sid, true
}

// GetSessionKey 获取当前会话键
func GetSessionKey(c *gin.Context) string {
	return c.GetString(sessionKeyCtx)
}

// UserSessionKey 登录用户的会话键
func UserSessionKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}
