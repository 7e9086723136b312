package handler

import (
	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	return s, true
}

// MustGetActor 从 Gin 上下文中提取执行操作的服务端身份。
// 登记人/处理人信息只来源于会话 Token，绝不信任客户端传入。
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	name, _ := c.Get("user_name")
	nameStr, _ := name.(string)
	return service.Actor{UserID: userID, Name: nameStr}, true
}
