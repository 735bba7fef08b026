package models

// Genre is keyed by the provider-assigned id. The name is set on first
// encounter and not overwritten by later payloads.
type Genre struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id" example:"28"`
	Name string `gorm:"index" json:"name" example:"Action"`
}

func (Genre) TableName() string {
	return "genres"
}
