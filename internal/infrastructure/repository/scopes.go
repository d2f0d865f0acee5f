package repository

import (
	"strings"

	domainRepo "github.com/branchdesk/customer-intake/internal/domain/repository"
	"gorm.io/gorm"
)

// SearchScope matches term as a case-insensitive substring of any searchable column.
// LOWER/LIKE is used instead of ILIKE so the same query runs on Postgres and SQLite.
// Both sides are folded by the database so they always fold the same way.
func SearchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}

		pattern := "%" + escapeLike(term) + "%"
		clauses := make([]string, 0, len(domainRepo.SearchableColumns))
		args := make([]interface{}, 0, len(domainRepo.SearchableColumns))
		for _, col := range domainRepo.SearchableColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE LOWER(?) ESCAPE '\\'")
			args = append(args, pattern)
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// OrderScope applies the sort order of a customer query
func OrderScope(order domainRepo.CustomerOrder) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch order {
		case domainRepo.OrderOldestID:
			return db.Order("id ASC")
		default:
			return db.Order("created_at DESC").Order("id DESC")
		}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
