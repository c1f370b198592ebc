package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"career-coach/internal/domain/ranking"
)

// JobsCache is the slice of the cache the job search needs. A nil JobsCache
// disables caching.
type JobsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type jobsFetchCacheKeyInput struct {
	Skills     []string `json:"skills"`
	Location   string   `json:"location"`
	Experience string   `json:"experience"`
	MinSalary  int      `json:"min_salary"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsFetchCacheKey(skills []string, f ranking.Filters) string {
	norm := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		norm = append(norm, s)
	}

	in := jobsFetchCacheKeyInput{
		Skills:     norm,
		Location:   normalizeSearchValue(f.Location),
		Experience: normalizeSearchValue(f.Experience),
		MinSalary:  f.MinSalary,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:fetch:" + hex.EncodeToString(sum[:])
}
