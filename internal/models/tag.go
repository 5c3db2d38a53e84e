package models

type Tag struct {
	BaseModel

	Name string `gorm:"uniqueIndex;not null"`
}
