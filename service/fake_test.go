package service

import (
	"KMate/dao"
	"KMate/models"
	"KMate/pkg/geo"
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// 内存版 store，只实现测试需要的语义

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]models.User
	// 模拟外键：仍被引用的用户删除失败
	referenced map[uint64]bool
	lastUpdate map[string]any
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[uint64]models.User{}, referenced: map[uint64]bool{}}
}

func (f *fakeUsers) FindById(_ context.Context, id uint64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByGoogleSub(_ context.Context, sub string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.GoogleSub == sub {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == user.Email || u.GoogleSub == user.GoogleSub {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.rows[user.ID] = *user
	return nil
}

func (f *fakeUsers) UpdateById(_ context.Context, id uint64, data map[string]any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = data
	u, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&u, data)
	f.rows[id] = u
	return 1, nil
}

func (f *fakeUsers) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*models.User, 0, len(f.rows))
	for _, u := range f.rows {
		u := u
		all = append(all, &u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, offset, limit), int64(len(all)), nil
}

func (f *fakeUsers) DeleteById(_ context.Context, id uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.referenced[id] {
		return 0, gorm.ErrForeignKeyViolated
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

// applyColumns 按 gorm column 标签把 data 写进 dst，模拟 Updates(map)
func applyColumns(dst any, data map[string]any) {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		col := gormColumn(t.Field(i).Tag.Get("gorm"))
		val, ok := data[col]
		if col == "" || !ok {
			continue
		}
		field := v.Field(i)
		rv := reflect.ValueOf(val)
		if field.Kind() == reflect.Pointer {
			p := reflect.New(field.Type().Elem())
			p.Elem().Set(rv.Convert(field.Type().Elem()))
			field.Set(p)
			continue
		}
		field.Set(rv.Convert(field.Type()))
	}
}

func gormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if name, ok := strings.CutPrefix(part, "column:"); ok {
			return name
		}
	}
	return ""
}

func page[T any](items []*T, offset, limit int) []*T {
	if offset >= len(items) {
		return []*T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

type fakePlaces struct {
	nextID uint64
	rows   map[uint64]models.Place
	// 记录最近一次 Nearby 参数
	nearbyArgs []float64
	nearbyLim  int
}

func newFakePlaces() *fakePlaces {
	return &fakePlaces{rows: map[uint64]models.Place{}}
}

func (f *fakePlaces) FindById(_ context.Context, id uint64) (*models.Place, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakePlaces) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakePlaces) Create(_ context.Context, place *models.Place) error {
	f.nextID++
	place.ID = f.nextID
	f.rows[place.ID] = *place
	return nil
}

func (f *fakePlaces) UpdateById(_ context.Context, id uint64, data map[string]any) (int64, error) {
	p, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&p, data)
	f.rows[id] = p
	return 1, nil
}

func (f *fakePlaces) DeleteById(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakePlaces) List(_ context.Context, q dao.PlaceQuery) ([]*models.Place, int64, error) {
	all := make([]*models.Place, 0)
	for _, p := range f.rows {
		p := p
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if q.Search != "" && !strings.Contains(p.Name, q.Search) {
			continue
		}
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, q.Offset, q.Limit), int64(len(all)), nil
}

func (f *fakePlaces) ListByType(ctx context.Context, placeType string, limit int) ([]*models.Place, error) {
	items, _, err := f.List(ctx, dao.PlaceQuery{Type: placeType, Limit: limit})
	return items, err
}

func (f *fakePlaces) Nearby(_ context.Context, lat, lng, radiusKm float64, limit int) ([]*models.Place, error) {
	f.nearbyArgs = []float64{lat, lng, radiusKm}
	f.nearbyLim = limit
	out := make([]*models.Place, 0)
	for _, p := range f.rows {
		if geo.Distance(lat, lng, p.Lat, p.Lng) <= radiusKm {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return geo.Distance(lat, lng, out[i].Lat, out[i].Lng) < geo.Distance(lat, lng, out[j].Lat, out[j].Lng)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeKBuzz struct {
	nextID     uint64
	rows       map[uint64]models.KBuzz
	lastUpdate map[string]any
}

func newFakeKBuzz() *fakeKBuzz {
	return &fakeKBuzz{rows: map[uint64]models.KBuzz{}}
}

func (f *fakeKBuzz) FindWithAuthor(_ context.Context, id uint64) (*models.KBuzz, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeKBuzz) FindByIds(_ context.Context, ids []uint64) ([]*models.KBuzz, error) {
	out := make([]*models.KBuzz, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.rows[id]; ok {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (f *fakeKBuzz) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeKBuzz) Create(_ context.Context, post *models.KBuzz) error {
	f.nextID++
	post.ID = f.nextID
	f.rows[post.ID] = *post
	return nil
}

func (f *fakeKBuzz) UpdateById(_ context.Context, id uint64, data map[string]any) (int64, error) {
	f.lastUpdate = data
	p, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&p, data)
	f.rows[id] = p
	return 1, nil
}

func (f *fakeKBuzz) DeleteById(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeKBuzz) IncrColumn(_ context.Context, id uint64, column string, delta int64) error {
	p, ok := f.rows[id]
	if !ok {
		return nil
	}
	switch column {
	case columnViewCount:
		p.ViewCount = max(p.ViewCount+delta, 0)
	case dao.ColumnScrapCount:
		p.ScrapCount = max(p.ScrapCount+delta, 0)
	}
	f.rows[id] = p
	return nil
}

func (f *fakeKBuzz) List(_ context.Context, q dao.KBuzzQuery) ([]*models.KBuzz, error) {
	out := make([]*models.KBuzz, 0)
	for _, p := range f.rows {
		p := p
		if q.PostType != "" && p.PostType != q.PostType {
			continue
		}
		if q.Category != "" && (p.Category == nil || *p.Category != q.Category) {
			continue
		}
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeTips struct {
	nextID uint64
	rows   map[uint64]models.Tip
}

func newFakeTips() *fakeTips {
	return &fakeTips{rows: map[uint64]models.Tip{}}
}

func (f *fakeTips) FindWithAuthor(_ context.Context, id uint64) (*models.Tip, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeTips) FindByIds(_ context.Context, ids []uint64) ([]*models.Tip, error) {
	out := make([]*models.Tip, 0, len(ids))
	for _, id := range ids {
		if t, ok := f.rows[id]; ok {
			out = append(out, &t)
		}
	}
	return out, nil
}

func (f *fakeTips) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeTips) Create(_ context.Context, tip *models.Tip) error {
	f.nextID++
	tip.ID = f.nextID
	f.rows[tip.ID] = *tip
	return nil
}

func (f *fakeTips) UpdateById(_ context.Context, id uint64, data map[string]any) (int64, error) {
	t, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&t, data)
	f.rows[id] = t
	return 1, nil
}

func (f *fakeTips) TogglePin(_ context.Context, id uint64) (int64, error) {
	t, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	t.IsPinned = !t.IsPinned
	f.rows[id] = t
	return 1, nil
}

func (f *fakeTips) DeleteById(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeTips) IncrColumn(_ context.Context, id uint64, column string, delta int64) error {
	t, ok := f.rows[id]
	if !ok {
		return nil
	}
	switch column {
	case columnViewCount:
		t.ViewCount = max(t.ViewCount+delta, 0)
	case dao.ColumnScrapCount:
		t.ScrapCount = max(t.ScrapCount+delta, 0)
	}
	f.rows[id] = t
	return nil
}

func (f *fakeTips) List(_ context.Context, tipType string) ([]*models.Tip, error) {
	out := make([]*models.Tip, 0)
	for _, t := range f.rows {
		t := t
		if tipType != "" && t.TipType != tipType {
			continue
		}
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeComments struct {
	nextID uint64
	rows   map[uint64]models.Comment
}

func newFakeComments() *fakeComments {
	return &fakeComments{rows: map[uint64]models.Comment{}}
}

func (f *fakeComments) Create(_ context.Context, c *models.Comment) error {
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeComments) UpdateById(_ context.Context, id uint64, data map[string]any) (int64, error) {
	c, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	applyColumns(&c, data)
	f.rows[id] = c
	return 1, nil
}

func (f *fakeComments) DeleteById(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeComments) FindWithAuthor(_ context.Context, id uint64) (*models.Comment, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeComments) FindByIdAndAuthor(_ context.Context, id, authorID uint64) (*models.Comment, error) {
	c, ok := f.rows[id]
	if !ok || c.AuthorID != authorID {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeComments) ListByPost(_ context.Context, postType string, postID uint64) ([]*models.Comment, error) {
	out := make([]*models.Comment, 0)
	for _, c := range f.rows {
		c := c
		if c.PostType == postType && c.PostID == postID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeComments) ListByAuthor(_ context.Context, authorID uint64, offset, limit int) ([]*models.Comment, int64, error) {
	out := make([]*models.Comment, 0)
	for _, c := range f.rows {
		c := c
		if c.AuthorID == authorID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, offset, limit), int64(len(out)), nil
}

type reactionKey struct {
	userID   uint64
	postType string
	postID   uint64
}

type fakeLikes struct {
	nextID uint64
	rows   map[reactionKey]models.Like
}

func newFakeLikes() *fakeLikes {
	return &fakeLikes{rows: map[reactionKey]models.Like{}}
}

func (f *fakeLikes) Find(_ context.Context, userID uint64, postType string, postID uint64) (*models.Like, error) {
	l, ok := f.rows[reactionKey{userID, postType, postID}]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeLikes) Create(_ context.Context, like *models.Like) error {
	key := reactionKey{like.UserID, like.PostType, like.PostID}
	if _, ok := f.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	like.ID = f.nextID
	f.rows[key] = *like
	return nil
}

func (f *fakeLikes) DeleteById(_ context.Context, id uint64) (int64, error) {
	for k, l := range f.rows {
		if l.ID == id {
			delete(f.rows, k)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeLikes) ListByUser(_ context.Context, userID uint64) ([]*models.Like, error) {
	out := make([]*models.Like, 0)
	for _, l := range f.rows {
		l := l
		if l.UserID == userID {
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeLikes) ListByPost(_ context.Context, postType string, postID uint64) ([]*models.Like, error) {
	out := make([]*models.Like, 0)
	for _, l := range f.rows {
		l := l
		if l.PostType == postType && l.PostID == postID {
			out = append(out, &l)
		}
	}
	return out, nil
}

// fakeScraps 的 Add / Remove 与计数同进同退，模拟事务
type fakeScraps struct {
	nextID uint64
	rows   map[reactionKey]models.Scrap
	posts  *PostResolver
	// 计数更新失败时整个写入回滚
	countErr error
}

func newFakeScraps(posts *PostResolver) *fakeScraps {
	return &fakeScraps{rows: map[reactionKey]models.Scrap{}, posts: posts}
}

func (f *fakeScraps) adjust(ctx context.Context, postType string, postID uint64, delta int64) error {
	if f.countErr != nil {
		return f.countErr
	}
	if postType == models.PostTypeKBuzz {
		return f.posts.KBuzz.IncrColumn(ctx, postID, dao.ColumnScrapCount, delta)
	}
	return f.posts.Tips.IncrColumn(ctx, postID, dao.ColumnScrapCount, delta)
}

func (f *fakeScraps) Find(_ context.Context, userID uint64, postType string, postID uint64) (*models.Scrap, error) {
	s, ok := f.rows[reactionKey{userID, postType, postID}]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeScraps) Add(ctx context.Context, scrap *models.Scrap) error {
	key := reactionKey{scrap.UserID, scrap.PostType, scrap.PostID}
	if _, ok := f.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if err := f.adjust(ctx, scrap.PostType, scrap.PostID, 1); err != nil {
		return err
	}
	f.nextID++
	scrap.ID = f.nextID
	f.rows[key] = *scrap
	return nil
}

func (f *fakeScraps) Remove(ctx context.Context, scrap *models.Scrap) (int64, error) {
	for k, s := range f.rows {
		if s.ID == scrap.ID {
			if err := f.adjust(ctx, s.PostType, s.PostID, -1); err != nil {
				return 0, err
			}
			delete(f.rows, k)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeScraps) ListByUser(_ context.Context, userID uint64) ([]*models.Scrap, error) {
	out := make([]*models.Scrap, 0)
	for _, s := range f.rows {
		s := s
		if s.UserID == userID {
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeScraps) ListByPost(_ context.Context, postType string, postID uint64) ([]*models.Scrap, error) {
	out := make([]*models.Scrap, 0)
	for _, s := range f.rows {
		s := s
		if s.PostType == postType && s.PostID == postID {
			out = append(out, &s)
		}
	}
	return out, nil
}

type bookmarkKey struct {
	userID  uint64
	placeID uint64
}

type fakeBookmarks struct {
	nextID uint64
	rows   map[bookmarkKey]models.Bookmark
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{rows: map[bookmarkKey]models.Bookmark{}}
}

func (f *fakeBookmarks) Find(_ context.Context, userID, placeID uint64) (*models.Bookmark, error) {
	b, ok := f.rows[bookmarkKey{userID, placeID}]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBookmarks) Create(_ context.Context, b *models.Bookmark) error {
	key := bookmarkKey{b.UserID, b.PlaceID}
	if _, ok := f.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	b.ID = f.nextID
	f.rows[key] = *b
	return nil
}

func (f *fakeBookmarks) DeleteById(_ context.Context, id uint64) (int64, error) {
	for k, b := range f.rows {
		if b.ID == id {
			delete(f.rows, k)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBookmarks) ListByUser(_ context.Context, userID uint64, offset, limit int) ([]*models.Bookmark, int64, error) {
	out := make([]*models.Bookmark, 0)
	for _, b := range f.rows {
		b := b
		if b.UserID == userID {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return page(out, offset, limit), int64(len(out)), nil
}

type fakeStates struct {
	states map[string]bool
}

func newFakeStates() *fakeStates {
	return &fakeStates{states: map[string]bool{}}
}

func (f *fakeStates) Save(_ context.Context, state string) error {
	f.states[state] = true
	return nil
}

func (f *fakeStates) Consume(_ context.Context, state string) (bool, error) {
	if !f.states[state] {
		return false, nil
	}
	delete(f.states, state)
	return true, nil
}

type fakeGoogle struct {
	profile *GoogleProfile
	err     error
	state   string
}

func (f *fakeGoogle) AuthCodeURL(state string) string {
	f.state = state
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogle) Exchange(_ context.Context, _ string) (*GoogleProfile, error) {
	return f.profile, f.err
}
