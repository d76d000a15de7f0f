package model

import "time"

// BaseModel 基础模型，自增主键，与既有 MySQL 表结构对齐
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
