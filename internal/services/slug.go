package services

import (
	"math/rand"
	"strconv"

	"github.com/gosimple/slug"
)

// slugSuffixSpace is 36^6; the suffix is between one and six base36 digits,
// shorter for small draws. Slugs are best-effort unique: the database's
// unique index is what actually rejects a collision.
const slugSuffixSpace = 2176782336

func makeSlug(title string) string {
	suffix := strconv.FormatInt(rand.Int63n(slugSuffixSpace), 36)
	return slug.Make(title) + "-" + suffix
}
