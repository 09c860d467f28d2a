package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/repositories"
)

// base carries the connection every sub-repository falls back to when no tx is given.
type base struct {
	db *gorm.DB
}

func (b base) getDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return b.db.WithContext(ctx)
}

// paginate orders by id and applies the normalized offset window.
func paginate(query *gorm.DB, page repositories.Page) *gorm.DB {
	page = page.Normalize()
	return query.Order("id ASC").Offset(page.Skip).Limit(page.Limit)
}

func exists(db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deleteByID removes one row and reports gorm.ErrRecordNotFound when nothing matched.
func deleteByID(db *gorm.DB, model any, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// updateByID applies a partial update and reports gorm.ErrRecordNotFound when nothing matched.
func updateByID(db *gorm.DB, model any, id uint, updates map[string]any) error {
	found, err := exists(db.Session(&gorm.Session{NewDB: true}), model, id)
	if err != nil {
		return err
	}
	if !found {
		return gorm.ErrRecordNotFound
	}
	if len(updates) == 0 {
		return nil
	}
	return db.Model(model).Where("id = ?", id).Updates(updates).Error
}
