package dto

// ── 用户模块 DTO ──

// UserResponse 用户信息响应（脱敏，不含密码哈希）
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateUserRequest 创建用户请求（管理员）
// Role 缺省为 receptionist；写入前统一归一化
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest 更新用户请求（管理员，仅更新非 nil 字段）
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"    binding:"omitempty,email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}
