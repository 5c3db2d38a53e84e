package types

import "strings"

const ContextUserKey = "user"

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// BuildAllowedOrigins appends the configured comma-separated origins to the
// development defaults. The caller passes the value after configuration has
// been loaded; nothing here reads the environment.
func BuildAllowedOrigins(configured string) []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	for _, origin := range strings.Split(configured, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
