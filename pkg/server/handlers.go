package server

import (
	"KMate/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Place    *handler.Place
	KBuzz    *handler.KBuzz
	Tip      *handler.Tip
	Comment  *handler.Comment
	Like     *handler.Like
	Scrap    *handler.Scrap
	Bookmark *handler.Bookmark
}
