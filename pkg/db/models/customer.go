package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is reference data; a customer with no group has no resolvable
// price list.
type Customer struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string         `gorm:"column:name;not null"`
	GroupID   *uuid.UUID     `gorm:"column:group_id;type:uuid"`
	Group     *CustomerGroup `gorm:"foreignKey:GroupID"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
