package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 用户登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "邮箱或密码错误")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, "账号已被停用")
		default:
			response.InternalError(c)
		}
		return
	}

	// 与前端既有约定保持一致：token 与 user 平铺在顶层
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "登录成功",
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
		"user":       result.User,
	})
}

// Logout 用户登出（当前 Token 加入黑名单）
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	expiresAt, _ := c.Get("token_expires_at")
	exp, _ := expiresAt.(time.Time)

	if err := h.authSvc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.InternalError(c)
		return
	}
	response.OKMessage(c, "已登出", nil)
}

// GetCurrentUser 查询当前登录用户
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ChangePassword 修改自己的密码
// PUT /api/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			response.BadRequest(c, "原密码错误")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OKMessage(c, "密码修改成功", nil)
}
