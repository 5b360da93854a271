package api

import (
	"log"
	"time"

	"wellness/config"
	"wellness/database"
	"wellness/history"
	"wellness/middleware"
	"wellness/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 账号处理器，登录后评估历史改为按账号保存
type AuthHandler struct {
	cfg   *config.Config
	store *history.Store
	now   func() time.Time
}

// NewAuthHandler 创建账号处理器
func NewAuthHandler(cfg *config.Config, store *history.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: store, now: time.Now}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email" example:"test@example.com"`
}

// LoginRequest 登录请求（支持用户名或邮箱）
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"testuser"` // 可为用户名或邮箱
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token        string      `json:"token"`
	ExpiresAt    time.Time   `json:"expires_at"`
	UserInfo     models.User `json:"user_info"`
	HistoryCount int         `json:"history_count" example:"3"` // 并入匿名会话后账号下的分析记录数
}

// ProfileResponse 当前用户信息及评估历史概况
type ProfileResponse struct {
	User         models.User `json:"user"`
	HistoryCount int         `json:"history_count" example:"3"`
	LatestDate   string      `json:"latest_date,omitempty" example:"2024-01-15"`
	LatestScore  *int        `json:"latest_score,omitempty" example:"72"`
	EmailEnabled bool        `json:"email_enabled"` // 是否可接收汇总邮件
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号。登录后分析历史按账号保存，填写邮箱可接收评估汇总邮件。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=models.User} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var existingUser models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		BadRequest(c, "用户名已存在")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		Status:   models.UserStatusActive,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}

	log.Printf("新用户注册: id=%d username=%s", user.ID, user.Username)
	SuccessWithMessage(c, "注册成功，登录后分析记录将按账号保存", user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户名或邮箱登录获取 JWT token。请求携带匿名会话 Cookie 时，该会话已有的分析记录并入账号历史
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Failure 403 {object} Response "账号已锁定"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if !user.CanLogin() {
		Forbidden(c, "账号已锁定")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	userKey := middleware.UserSessionKey(user.ID)
	count := len(h.store.Entries(userKey))
	if anonKey, ok := middleware.AnonymousSessionKey(c); ok {
		count = h.store.Merge(anonKey, userKey)
	}

	Success(c, LoginResponse{
		Token:        token,
		ExpiresAt:    h.now().Add(h.cfg.JWT.ExpireTime),
		UserInfo:     user,
		HistoryCount: count,
	})
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的账号信息、评估记录数和最近一次健康分
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ProfileResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	entries := h.store.Entries(middleware.UserSessionKey(user.ID))
	resp := ProfileResponse{
		User:         user,
		HistoryCount: len(entries),
		EmailEnabled: user.Email != "" && h.cfg.Email.Enabled,
	}
	if n := len(entries); n > 0 {
		latest := entries[n-1]
		resp.LatestDate = latest.Date
		resp.LatestScore = &latest.Score
	}
	Success(c, resp)
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldpassword123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"newpassword123"`
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Description 修改当前用户密码，已签发的 token 在过期前仍然有效
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "密码信息"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "原密码错误"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "原密码错误")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, "更新密码失败")
		return
	}

	SuccessWithMessage(c, "密码修改成功", nil)
}
