package dto

// ── 仪表盘模块 DTO ──

// DashboardRequest 统计过滤参数
// 日期格式 2006-01-02；endDate 按当日末尾计
type DashboardRequest struct {
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Department string `form:"department"`
}

// DashboardOverview 总览统计
type DashboardOverview struct {
	TotalBeneficiaries     int64 `json:"total_beneficiaries"`
	NewBeneficiaries       int64 `json:"new_beneficiaries"`
	ReturningBeneficiaries int64 `json:"returning_beneficiaries"`
}

// DepartmentStat 按部门统计条目
type DepartmentStat struct {
	Department     string `json:"department"`
	Count          int64  `json:"count"`
	NewCount       int64  `json:"new_count"`
	ReturningCount int64  `json:"returning_count"`
}

// StatusStat 按状态统计条目
type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardResponse 仪表盘统计响应
// 空结果集返回全零计数与空列表，不报错
type DashboardResponse struct {
	Overview        DashboardOverview `json:"overview"`
	DepartmentStats []DepartmentStat  `json:"department_stats"`
	StatusStats     []StatusStat      `json:"status_stats"`
}
