package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// UserHandler 用户管理模块 HTTP 处理器（管理员）
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 列出非管理员用户
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.userSvc.ListNonAdmin(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateUser 创建用户
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			response.Conflict(c, "邮箱已被注册")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "非法的用户角色")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, "用户创建成功", result)
}

// UpdateUser 更新用户
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		case errors.Is(err, service.ErrEmailExists):
			response.Conflict(c, "邮箱已被注册")
		case errors.Is(err, service.ErrInvalidRole):
			response.BadRequest(c, "非法的用户角色")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OKMessage(c, "用户更新成功", result)
}

// DeleteUser 删除用户
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "用户不存在")
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, "不能删除自己")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OKMessage(c, "用户已删除", nil)
}
