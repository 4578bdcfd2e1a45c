package repository

import "gorm.io/gorm"

// 单页上限，防止一次拉取整表
const maxPageSize = 200

// applyPagination 统一分页：page 从 1 起，pageSize <= 0 表示不分页
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
