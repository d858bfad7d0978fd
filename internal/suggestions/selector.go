package suggestions

import (
	"math/rand"
	"sync"
	"time"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Bounds every selection honors regardless of platform policy.
const (
	minSuggestions = 3
	maxSuggestions = 6
)

// Selector picks a bounded random subset of a platform's catalog, sized by
// that platform's distress policy.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector with a time-seeded source.
func NewSelector() *Selector {
	return &Selector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSelectorWithSeed creates a deterministic selector for tests.
func NewSelectorWithSeed(seed int64) *Selector {
	return &Selector{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Select returns between 3 and 6 distinct suggestions for the platform.
// Lower mood, higher stress or reported anxiety widen the selection on the
// platforms whose policy reacts to distress; Facebook and YouTube instead
// grow their candidate pool with a targeted extra tip.
func (s *Selector) Select(platform types.Platform, m types.CanonicalMetrics) []types.Suggestion {
	pool := CatalogFor(platform)
	count := minSuggestions

	switch platform {
	case types.PlatformInstagram:
		if m.Mood <= 2 || m.Stress >= 4 {
			count = 5
		}
	case types.PlatformTwitter:
		if m.Stress >= 4 {
			count = 5
		}
	case types.PlatformFacebook:
		count = 4
		if m.Anxiety {
			pool = append(append([]types.Suggestion{}, pool...), facebookAnxietyExtra)
		}
	case types.PlatformYouTube:
		count = 4
		if m.Sleep != nil && *m.Sleep <= 2 {
			pool = append(append([]types.Suggestion{}, pool...), youtubeSleepExtra)
		}
	case types.PlatformSnapchat:
		count = 4
	default:
		if m.Mood <= 2 || m.Stress >= 4 || m.Anxiety {
			count = 5
		}
	}

	if count > maxSuggestions {
		count = maxSuggestions
	}
	if count > len(pool) {
		count = len(pool)
	}

	return s.sample(pool, count)
}

// sample draws n entries without replacement via a partial Fisher-Yates
// shuffle of an index slice, leaving the catalog itself untouched.
func (s *Selector) sample(pool []types.Suggestion, n int) []types.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}

	picked := make([]types.Suggestion, 0, n)
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		picked = append(picked, pool[indices[i]])
	}

	return picked
}
