package models

import "time"

// Favorite is the user_favorites join row. The pair is the primary key, so
// favoriting the same article twice cannot create a second row.
type Favorite struct {
	UserID    uint      `gorm:"primaryKey"`
	ArticleID uint      `gorm:"primaryKey;index"`
	CreatedAt time.Time

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Article Article `gorm:"foreignKey:ArticleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
