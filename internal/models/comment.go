package models

type Comment struct {
	BaseModel

	Body      string `gorm:"not null"`
	ArticleID uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`

	// Relationships
	Article Article `gorm:"foreignKey:ArticleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author  User    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
