package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"easynote/config"
	"easynote/pkg/log"
	"easynote/pkg/scope"
)

// verifiedTokenCacheSize bounds the token verification cache.
const verifiedTokenCacheSize = 1024

// verifiedTokenTTL caps how long a verified token is trusted without
// re-verification.
const verifiedTokenTTL = 5 * time.Minute

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config

	tokenCache *expirable.LRU[string, scope.Payload]

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) *Middleware {
	return &Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		tokenCache: expirable.NewLRU[string, scope.Payload](verifiedTokenCacheSize, nil, verifiedTokenTTL),
		limiters:   make(map[string]*rate.Limiter),
	}
}
