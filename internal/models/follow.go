package models

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	BaseModel

	FollowerID  uint `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	FollowingID uint `gorm:"not null;index;uniqueIndex:idx_follower_following"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
