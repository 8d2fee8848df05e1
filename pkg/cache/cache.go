// Package cache stores rendered artifacts between CLI runs.
//
// Raster and PDF output is deterministic for a given configuration, display
// and set of sink options, so a repeated render can be answered from disk.
// Keys come from a [Keyer]; values are [Artifact]s.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 30 * 24 * time.Hour

// Artifact is one rendered output file.
type Artifact struct {
	Format    string    `json:"format"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// Age returns how long ago the artifact was rendered.
func (a Artifact) Age() time.Duration { return time.Since(a.CreatedAt) }

// Cache is an artifact store with per-entry expiry.
type Cache interface {
	// Get returns the artifact for key and whether it was found.
	Get(ctx context.Context, key string) (Artifact, bool, error)
	// Put stores a under key. A ttl of zero never expires. A zero
	// CreatedAt is set to the current time.
	Put(ctx context.Context, key string, a Artifact, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the inputs that determine a rendered artifact.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Fragment  string  `json:"fragment"`
	DPR       float64 `json:"dpr"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Scale     float64 `json:"scale,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<format>:<sha256 of opts>".
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	data, _ := json.Marshal(opts)
	return "artifact:" + opts.Format + ":" + sha256Hex(data)
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
