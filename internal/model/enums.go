package model

import "strings"

// ── 角色 ──

// Role 用户角色（封闭集合）
// 数据库与 Token 中只存储规范形式；比较一律先经过 NormalizeRole
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleReceptionist    Role = "receptionist"
	RoleDepartmentStaff Role = "department_staff"
)

// NormalizeRole 将外部输入的角色归一化为规范形式
// 兼容历史数据中的 "Admin" / "Department Staff" / "department-staff" 等写法
func NormalizeRole(s string) (Role, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch Role(normalized) {
	case RoleAdmin, RoleReceptionist, RoleDepartmentStaff:
		return Role(normalized), true
	}
	return "", false
}

// ── 受助目的 ──

// Purpose 求助目的（封闭集合，来自登记表单）
type Purpose string

const (
	PurposeMedical   Purpose = "Medical Assistance"
	PurposeEducation Purpose = "Education Support"
	PurposeFood      Purpose = "Food Distribution"
	PurposeClothing  Purpose = "Clothing Distribution"
	PurposeFinancial Purpose = "Financial Aid"
	PurposeOther     Purpose = "Other"
)

// ── 部门 ──

// Department 处理部门，登记时由 Purpose 一次性推导
type Department string

const (
	DepartmentMedical   Department = "Medical"
	DepartmentEducation Department = "Education"
	DepartmentFood      Department = "Food"
	DepartmentClothing  Department = "Clothing"
	DepartmentFinancial Department = "Financial"
	DepartmentGeneral   Department = "General"
)

var purposeDepartments = map[Purpose]Department{
	PurposeMedical:   DepartmentMedical,
	PurposeEducation: DepartmentEducation,
	PurposeFood:      DepartmentFood,
	PurposeClothing:  DepartmentClothing,
	PurposeFinancial: DepartmentFinancial,
	PurposeOther:     DepartmentGeneral,
}

// DeriveDepartment 由求助目的推导处理部门
// 全函数：未知目的落到 General，不报错
func DeriveDepartment(purpose Purpose) Department {
	if d, ok := purposeDepartments[purpose]; ok {
		return d
	}
	return DepartmentGeneral
}

// ValidDepartment 判断是否为已知部门（用于仪表盘过滤参数校验）
func ValidDepartment(s string) bool {
	switch Department(s) {
	case DepartmentMedical, DepartmentEducation, DepartmentFood,
		DepartmentClothing, DepartmentFinancial, DepartmentGeneral:
		return true
	}
	return false
}

// ── 处理状态 ──

// Status 案件处理状态，唯一权威字段在 Beneficiary 上
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// NormalizeStatus 将外部输入的状态归一化为规范形式
// 兼容 "Pending" / "In Progress" / "in-progress" 等历史写法
func NormalizeStatus(s string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch Status(normalized) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(normalized), true
	}
	return "", false
}
