package store

import (
	"langart/internal/types"

	"github.com/sirupsen/logrus"
)

// NewStore creates a Store based on the configuration: Redis when a DSN is
// configured, the in-process memory store otherwise.
func NewStore(configManager types.ConfigManager) (Store, error) {
	redisDSN := configManager.GetRedisDSN()
	if redisDSN == "" {
		logrus.Debug("Using in-memory cache store")
		return NewMemoryStore(), nil
	}

	redisStore, err := NewRedisStore(redisDSN)
	if err != nil {
		return nil, err
	}
	logrus.Debug("Using Redis cache store")
	return redisStore, nil
}
