package usecase

import (
	"movie-reviews/internal/data/entity"
)

// SeedMovies are always offered, whatever the store holds.
var SeedMovies = []string{"Titanic", "Vettai", "Inception", "Avatar"}

// Catalog merges the seed titles, titles found in the store and titles
// added during a session. Titles compare by exact string equality.
type Catalog struct {
	seed []string
}

func NewCatalog(seed []string) *Catalog {
	return &Catalog{seed: append([]string(nil), seed...)}
}

// Sync walks the store's Movie column in order and appends each title that
// is neither a seed title nor already in added. Rows without a title are
// skipped. It returns the new added list; added itself is not modified.
func (c *Catalog) Sync(added []string, rows []entity.Review) []string {
	out := append([]string(nil), added...)
	for _, row := range rows {
		if row.Movie == "" || contains(c.seed, row.Movie) || contains(out, row.Movie) {
			continue
		}
		out = append(out, row.Movie)
	}
	return out
}

// Known lists the seed titles followed by added.
func (c *Catalog) Known(added []string) []string {
	out := make([]string, 0, len(c.seed)+len(added))
	out = append(out, c.seed...)
	return append(out, added...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
