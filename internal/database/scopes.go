package database

import "gorm.io/gorm"

// Paginate applies a page window to a GORM query. Non-positive values leave
// the query unbounded.
func Paginate(page, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || limit < 1 {
			return db
		}
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
