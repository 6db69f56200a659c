package project

import (
	"strconv"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

// slugify lowercases the title and replaces runs of non-alphanumeric
// characters with single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// uniqueSlug derives a slug from the title and appends a numeric suffix
// until it does not collide with another project.
func uniqueSlug(db *gorm.DB, title string, selfID uint64) (string, error) {
	base := slugify(title)
	if base == "" {
		base = "project"
	}

	// The first collision yields base-2, not base-1.
	slug := base
	for i := 2; ; i++ {
		var count int64
		query := db.Model(&models.Project{}).Where("slug = ?", slug)
		if selfID != 0 {
			query = query.Where("id <> ?", selfID)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}

		slug = base + "-" + strconv.Itoa(i)
	}
}
