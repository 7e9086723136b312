package model

// Beneficiary 受助人表 — 对应 beneficiaries
// 状态的唯一权威字段；原先独立的 Token 实体已合并为本记录的只读投影
// RegisteredBy 为登记人姓名的冗余快照，登记人账号删除后仍保留
type Beneficiary struct {
	BeneficiaryID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"beneficiary_id"`
	Name               string     `gorm:"type:varchar(100);not null"                     json:"name"`
	CNIC               string     `gorm:"column:cnic;type:varchar(20);not null"          json:"cnic"`
	Phone              string     `gorm:"type:varchar(20);not null"                      json:"phone"`
	Address            string     `gorm:"type:text;not null"                             json:"address"`
	Purpose            Purpose    `gorm:"type:varchar(50);not null"                      json:"purpose"`
	Department         Department `gorm:"type:varchar(20);not null"                      json:"department"`
	Status             Status     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	Remarks            string     `gorm:"type:text;not null;default:''"                  json:"remarks"`
	TokenID            string     `gorm:"type:varchar(20);not null"                      json:"token_id"`
	IsReturning        bool       `gorm:"not null;default:false"                         json:"is_returning"`
	RegisteredBy       string     `gorm:"type:varchar(100);not null"                     json:"registered_by"`
	RegisteredByUserID string     `gorm:"type:uuid;not null"                             json:"registered_by_user_id"`
	BaseModel
}

// TableName 指定表名
func (Beneficiary) TableName() string { return "beneficiaries" }
