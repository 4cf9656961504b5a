package ports

import "github.com/randomtoy/setdaily/internal/domain"

// SourceFactory builds deterministic random sources from seed strings.
type SourceFactory interface {
	NewSource(seed string) domain.Source
}
