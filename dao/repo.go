package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 通用单表操作，各 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Model 以 T 为模型的查询
func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Omit(clause.Associations).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByIds(ctx context.Context, ids []uint64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

// UpdateById 只更新 data 中的列，key 为列名
func (r *Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	res := r.Model(ctx).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id uint64) (int64, error) {
	res := r.Db.WithContext(ctx).Delete(new(T), id)
	return res.RowsAffected, res.Error
}

// IncrColumn 原子自增，结果不小于 0；column 只能传内部常量
func (r *Repo[T]) IncrColumn(ctx context.Context, id uint64, column string, delta int64) error {
	return incrColumn(r.Model(ctx), id, column, delta)
}

func incrColumn(db *gorm.DB, id uint64, column string, delta int64) error {
	return db.Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(fmt.Sprintf("GREATEST(%s + ?, 0)", column), delta)).Error
}
