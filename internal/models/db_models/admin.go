package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminActivity is the audit trail of back-office mutations.
type AdminActivity struct {
	BaseModel
	AccountID     uuid.UUID      `gorm:"type:uuid;index" json:"account_id"`
	Action        string         `gorm:"size:20;not null" json:"action"`
	ModelAffected string         `gorm:"size:50;index" json:"model_affected"`
	ObjectID      string         `gorm:"size:64" json:"object_id"`
	Details       datatypes.JSON `json:"details"`
	IPAddress     string         `gorm:"size:45" json:"ip_address"`
}

type AdminNotification struct {
	BaseModel
	Title   string         `gorm:"size:200;not null" json:"title"`
	Message string         `gorm:"type:text" json:"message"`
	IsRead  bool           `gorm:"index" json:"is_read"`
	Payload datatypes.JSON `json:"payload,omitempty"`
}
