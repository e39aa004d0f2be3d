package planner

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces instance ids for placed pedals. Ids must never collide
// for the lifetime of a session, even across repeated placements of the same
// catalog pedal.
type IDGenerator interface {
	NewInstanceID(pedalID string) string
}

// timestampIDGenerator mixes the pedal id, a millisecond timestamp and a
// random suffix, matching the id shape the storefront always used.
type timestampIDGenerator struct{}

// NewIDGenerator returns the production id generator.
func NewIDGenerator() IDGenerator {
	return timestampIDGenerator{}
}

func (timestampIDGenerator) NewInstanceID(pedalID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", pedalID, time.Now().UnixMilli(), suffix)
}

// SequenceIDGenerator hands out ids from a monotonic counter. Deterministic,
// intended for tests.
type SequenceIDGenerator struct {
	n atomic.Int64
}

func (g *SequenceIDGenerator) NewInstanceID(pedalID string) string {
	return fmt.Sprintf("%s-%d", pedalID, g.n.Add(1))
}
