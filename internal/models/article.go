package models

type Article struct {
	BaseModel

	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string
	Body        string
	// Tags are stored as a single comma-joined column; the tag filter in the
	// article listing does a LIKE match against it.
	TagList        string
	FavoritesCount int  `gorm:"not null;default:0"`
	AuthorID       uint `gorm:"not null;index"`

	// Relationships
	Author    User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments  []Comment  `gorm:"foreignKey:ArticleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites []Favorite `gorm:"foreignKey:ArticleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
