package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户，通过 google_sub 与 Google 账号关联
type User struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email         string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Name          string    `gorm:"column:name;type:varchar(255);not null;default:''" json:"name"`
	AvatarURL     *string   `gorm:"column:avatar_url;type:varchar(512)" json:"avatar_url"`
	GoogleSub     string    `gorm:"column:google_sub;type:varchar(255);uniqueIndex;not null" json:"-"`
	EmailVerified bool      `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	Role          string    `gorm:"column:role;type:enum('user','admin');not null;default:'user'" json:"role"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
