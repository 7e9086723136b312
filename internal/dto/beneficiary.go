package dto

// ── 受助人模块 DTO ──

// RegisterBeneficiaryRequest 登记受助人请求（前台）
// 登记人信息取自服务端身份，绝不接受客户端传入
type RegisterBeneficiaryRequest struct {
	Name    string `json:"name"    binding:"required"`
	CNIC    string `json:"cnic"    binding:"required"`
	Phone   string `json:"phone"   binding:"required"`
	Address string `json:"address" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}

// BeneficiaryResponse 受助人信息响应
type BeneficiaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CNIC         string `json:"cnic"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Purpose      string `json:"purpose"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks"`
	TokenID      string `json:"token_id"`
	IsReturning  bool   `json:"is_returning"`
	RegisteredBy string `json:"registered_by"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// RegisterBeneficiaryResponse 登记成功响应
type RegisterBeneficiaryResponse struct {
	Beneficiary BeneficiaryResponse `json:"beneficiary"`
	TokenID     string              `json:"token_id"`
}

// UpdateStatusRequest 案件状态更新请求（部门员工 / 管理员）
type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

// EditBeneficiaryRequest 整单编辑请求（管理员，仅更新非 nil 字段）
type EditBeneficiaryRequest struct {
	Name        *string `json:"name"`
	CNIC        *string `json:"cnic"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Purpose     *string `json:"purpose"`
	Status      *string `json:"status"`
	Remarks     *string `json:"remarks"`
	IsReturning *bool   `json:"is_returning"`
}

// SearchRequest 搜索请求
// type ∈ {cnic, name, phone, all}，缺省 all
type SearchRequest struct {
	Query string `form:"q"`
	Type  string `form:"type"`
}

// SearchResponse 搜索响应
type SearchResponse struct {
	Count int                   `json:"count"`
	List  []BeneficiaryResponse `json:"list"`
}

// StatusHistoryEntry 状态流转历史条目
type StatusHistoryEntry struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Remarks   string `json:"remarks"`
	ChangedBy string `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
}

// CaseTokenResponse 案件 Token 查询响应
// 受助人记录的只读投影：状态权威字段在受助人上，此处仅派生展示
type CaseTokenResponse struct {
	TokenID     string               `json:"token_id"`
	Department  string               `json:"department"`
	Status      string               `json:"status"`
	Remarks     string               `json:"remarks"`
	Beneficiary BeneficiaryResponse  `json:"beneficiary"`
	History     []StatusHistoryEntry `json:"history"`
}
