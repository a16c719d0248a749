package models

import "time"

// Like 点赞记录
// 唯一键: user_id + post_type + post_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1;index:idx_user_id" json:"user_id"`
	PostType  string    `gorm:"column:post_type;type:enum('k_buzz','tips');not null;uniqueIndex:uk_user_post,priority:2;index:idx_post,priority:1" json:"post_type"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_user_post,priority:3;index:idx_post,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostRef
}

func (Like) TableName() string { return "likes" }

// Scrap 收藏记录，同时维护帖子的 scrap_count
type Scrap struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1;index:idx_user_id" json:"user_id"`
	PostType  string    `gorm:"column:post_type;type:enum('k_buzz','tips');not null;uniqueIndex:uk_user_post,priority:2;index:idx_post,priority:1" json:"post_type"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_user_post,priority:3;index:idx_post,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostRef
}

func (Scrap) TableName() string { return "scraps" }

// Bookmark 地点书签
type Bookmark struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_place,priority:1;index:idx_user_id" json:"user_id"`
	PlaceID   uint64    `gorm:"column:place_id;not null;uniqueIndex:uk_user_place,priority:2;index:idx_place_id" json:"place_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Place *Place `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"place,omitempty"`
}

func (Bookmark) TableName() string { return "bookmarks" }

// All 需要 AutoMigrate 的模型
func All() []any {
	return []any{
		&User{}, &Place{}, &KBuzz{}, &Tip{},
		&Comment{}, &Like{}, &Scrap{}, &Bookmark{},
	}
}
