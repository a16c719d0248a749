package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostType  string    `gorm:"column:post_type;type:enum('k_buzz','tips');not null;index:idx_post,priority:1" json:"post_type"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post,priority:2" json:"post_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	PostRef
}

func (Comment) TableName() string {
	return "comments"
}
