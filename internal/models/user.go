package models

type User struct {
	BaseModel

	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	Bio          string `gorm:"default:''"`
	Image        string `gorm:"default:''"`
	PasswordHash string `gorm:"not null"`

	// Relationships
	Articles  []Article  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments  []Comment  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
