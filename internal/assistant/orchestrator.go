// Package assistant issues completion requests to the generative-language API
// with failover across credentials and model identifiers, and parses the
// structured replies coming back.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopmate/internal/domain"
	applog "shopmate/internal/log"
)

var (
	ErrNoCredentials     = errors.New("no valid credentials configured")
	ErrAllAttemptsFailed = errors.New("all credentials failed")
)

// Client issues a single completion attempt against one model. Implementations
// are bound to exactly one credential.
type Client interface {
	Generate(ctx context.Context, model string, transcript []domain.Message) (string, error)
}

// ClientFactory builds a client for one credential. A factory error abandons
// that key's remaining models and advances to the next key.
type ClientFactory func(ctx context.Context, key string) (Client, error)

// Orchestrator walks the fixed key x model matrix in order until one attempt
// returns a non-empty text. It never mutates the pool, never backs off, and
// restarts the full matrix on every call.
type Orchestrator struct {
	keys    []string
	models  []string
	factory ClientFactory
}

func New(keys, models []string, factory ClientFactory) *Orchestrator {
	return &Orchestrator{keys: keys, models: models, factory: factory}
}

// Complete returns the raw textual payload of the first successful attempt,
// or the last observed error once every (key, model) pair has failed.
func (o *Orchestrator) Complete(ctx context.Context, transcript []domain.Message) (string, error) {
	if len(o.keys) == 0 {
		return "", ErrNoCredentials
	}

	var lastErr error
	for _, key := range o.keys {
		client, err := o.factory(ctx, key)
		if err != nil {
			// Client-level failure: skip this key's models entirely.
			lastErr = err
			applog.Warn("assistant.key.failed", err, map[string]any{"key": maskKey(key)})
			continue
		}

		for _, model := range o.models {
			text, err := client.Generate(ctx, model, transcript)
			if err != nil {
				lastErr = err
				if IsQuota(err) {
					// Quota is assumed model-scoped, not key-scoped: keep the
					// key and try the next model.
					applog.Warn("assistant.attempt.quota", err, map[string]any{"key": maskKey(key), "model": model})
				} else {
					applog.Warn("assistant.attempt.failed", err, map[string]any{"key": maskKey(key), "model": model})
				}
				continue
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", ErrAllAttemptsFailed, lastErr)
	}
	return "", ErrAllAttemptsFailed
}

// IsQuota reports whether an attempt error looks like rate limiting or quota
// exhaustion ("429", "Quota"/"quota", "RESOURCE_EXHAUSTED").
func IsQuota(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota")
}

// maskKey keeps only the credential tail for log lines.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "..."
	}
	return "..." + key[len(key)-4:]
}
