package models

import "time"

// StorageSlot holds the JSON snapshot of one store under a string key.
type StorageSlot struct {
	Key       string    `gorm:"column:slot_key;primarykey;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
