package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64          `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// AllModels lists every table in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Account{},
		&Profile{},
		&Category{},
		&Product{},
		&ProductReview{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Plan{},
		&PlanFeature{},
		&PlanSubscription{},
		&GymClass{},
		&ClassSchedule{},
		&ClassBooking{},
		&Workout{},
		&TeamMember{},
		&BlogPost{},
		&Newsletter{},
		&ContactMessage{},
		&AdminActivity{},
		&AdminNotification{},
	}
}

func (b BaseModel) GetID() uuid.UUID {
	return b.ID
}
