package models

import "time"

const (
	TipBusGuide       = "bus_guide"
	TipSubwayGuide    = "subway_guide"
	TipRestaurantBook = "restaurant_book"
)

func IsTipType(t string) bool {
	return t == TipBusGuide || t == TipSubwayGuide || t == TipRestaurantBook
}

// Tip 管理员维护的指南
type Tip struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:longtext;not null" json:"content"`
	TipType    string    `gorm:"column:tip_type;type:enum('bus_guide','subway_guide','restaurant_book');not null;index:idx_tip_type" json:"tip_type"`
	ViewCount  int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ScrapCount int64     `gorm:"column:scrap_count;not null;default:0" json:"scrap_count"`
	IsPinned   bool      `gorm:"column:is_pinned;not null;default:false" json:"is_pinned"`
	AuthorID   uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Tip) TableName() string {
	return "tips"
}
