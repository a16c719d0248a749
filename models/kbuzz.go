package models

import "time"

const (
	KBuzzTrend     = "trend"
	KBuzzCommunity = "community"
)

// KBuzz 帖子：trend 由管理员发布，community 由普通用户发布
type KBuzz struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:longtext;not null" json:"content"`
	PostType   string    `gorm:"column:post_type;type:enum('trend','community');not null;index:idx_post_type" json:"post_type"`
	Category   *string   `gorm:"column:category;type:enum('travel_tip','food_review','cafe_review');index:idx_category" json:"category"`
	TrendWeek  *int      `gorm:"column:trend_week;index:idx_trend_week_rank,priority:1" json:"trend_week"`
	TrendRank  *int      `gorm:"column:trend_rank;index:idx_trend_week_rank,priority:2" json:"trend_rank"`
	ViewCount  int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ScrapCount int64     `gorm:"column:scrap_count;not null;default:0" json:"scrap_count"`
	AuthorID   uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KBuzz) TableName() string {
	return "k_buzz"
}
