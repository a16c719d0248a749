package models

// 评论、点赞、收藏通过 post_type + post_id 关联到 k_buzz 或 tips
const (
	PostTypeKBuzz = "k_buzz"
	PostTypeTips  = "tips"
)

func IsPostType(t string) bool {
	return t == PostTypeKBuzz || t == PostTypeTips
}

// PostRef 多态帖子引用，查询时按需填充
type PostRef struct {
	KBuzzPost *KBuzz `gorm:"-" json:"k_buzz_post,omitempty"`
	TipPost   *Tip   `gorm:"-" json:"tip_post,omitempty"`
}
