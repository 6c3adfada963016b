package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeySubmissionsAll returns the key caching the full submission list
func (kb *KeyBuilder) KeySubmissionsAll() string {
	return kb.BuildKey(KeySubmissionsAll)
}

// KeySubmissionByID returns the key caching a single submission
func (kb *KeyBuilder) KeySubmissionByID(id string) string {
	return kb.BuildKey(fmt.Sprintf(KeySubmissionByID, id))
}
