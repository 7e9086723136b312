package model

import "time"

// StatusHistory 状态流转历史 — 对应 beneficiary_status_history
// 只追加：每次状态更新记录一条，旧状态与备注不再被覆盖丢失
type StatusHistory struct {
	HistoryID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"history_id"`
	BeneficiaryID   string    `gorm:"type:uuid;not null"                             json:"beneficiary_id"`
	TokenID         string    `gorm:"type:varchar(20);not null"                      json:"token_id"`
	OldStatus       Status    `gorm:"type:varchar(20);not null;default:''"           json:"old_status"`
	NewStatus       Status    `gorm:"type:varchar(20);not null"                      json:"new_status"`
	Remarks         string    `gorm:"type:text;not null;default:''"                  json:"remarks"`
	ChangedBy       string    `gorm:"type:varchar(100);not null"                     json:"changed_by"`
	ChangedByUserID string    `gorm:"type:uuid;not null"                             json:"changed_by_user_id"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (StatusHistory) TableName() string { return "beneficiary_status_history" }
