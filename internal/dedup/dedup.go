// Package dedup decides whether newly normalized content duplicates
// previously seen items, using an exact SHA-256 tier and an approximate
// MinHash tier over the items' salient text.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/domain"
	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/logger"
)

// DefaultThreshold is the similarity above which an item counts as a
// near-duplicate.
const DefaultThreshold = 0.8

// Result reports the outcome of a duplicate check.
type Result struct {
	IsDuplicate bool    `json:"isDuplicate"`
	Similarity  float64 `json:"similarity"`
	MatchedID   string  `json:"matchedId,omitempty"`
}

// Deduplicator maintains the exact-hash and MinHash-signature indices
// across all previously seen items. It is explicitly constructed and
// injected into the pipeline; Remove and Clear are the only mutations
// besides insertion, and the indices grow until cleared.
//
// Check-then-insert is not atomic: two near-identical items checked
// concurrently in the same batch chunk can both be inserted before either
// sees the other. This same-batch false-negative window is a documented
// property of the design, kept in preference to serializing the whole
// check and losing the batch concurrency.
type Deduplicator struct {
	mu         sync.RWMutex
	hashes     map[string]string   // salient-text SHA-256 -> content id
	signatures map[string][]uint64 // content id -> MinHash signature
	hashByID   map[string]string   // content id -> salient-text SHA-256
	threshold  float64
	log        logger.Logger
}

// New creates a deduplicator with the given similarity threshold.
// Thresholds outside (0, 1] fall back to the default.
func New(threshold float64, log logger.Logger) *Deduplicator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Deduplicator{
		hashes:     make(map[string]string),
		signatures: make(map[string][]uint64),
		hashByID:   make(map[string]string),
		threshold:  threshold,
		log:        log,
	}
}

// CheckAndStore reports whether the content duplicates a previously seen
// item and, when it does not, indexes it.
func (d *Deduplicator) CheckAndStore(content domain.NormalizedContent) Result {
	id := content.Common().ID
	canonical := strings.ToLower(strings.TrimSpace(content.SalientText()))
	sum := sha256.Sum256([]byte(canonical))
	exactHash := hex.EncodeToString(sum[:])

	// Exact tier: byte-identical salient text short-circuits without
	// invoking MinHash.
	d.mu.RLock()
	matchedID, exact := d.hashes[exactHash]
	d.mu.RUnlock()
	if exact {
		d.log.Debug("exact duplicate detected",
			logger.String("content_id", id),
			logger.String("matched_id", matchedID),
		)
		return Result{IsDuplicate: true, Similarity: 1.0, MatchedID: matchedID}
	}

	// Near-duplicate tier: linear scan over stored signatures. O(n*128)
	// per check; a banding (LSH) index would bound this for large corpora
	// but is out of scope for the required behavior.
	signature := minhashSignature(canonical)

	d.mu.RLock()
	bestID, bestSimilarity := "", 0.0
	for storedID, stored := range d.signatures {
		if similarity := estimateSimilarity(signature, stored); similarity > bestSimilarity {
			bestID, bestSimilarity = storedID, similarity
		}
	}
	d.mu.RUnlock()

	if bestSimilarity >= d.threshold {
		d.log.Debug("near duplicate detected",
			logger.String("content_id", id),
			logger.String("matched_id", bestID),
			logger.Float64("similarity", bestSimilarity),
		)
		return Result{IsDuplicate: true, Similarity: bestSimilarity, MatchedID: bestID}
	}

	d.mu.Lock()
	d.hashes[exactHash] = id
	d.hashByID[id] = exactHash
	d.signatures[id] = signature
	d.mu.Unlock()

	return Result{IsDuplicate: false, Similarity: bestSimilarity}
}

// Remove deletes the entry with the given id from both indices. Content
// re-inserted after removal is not flagged as a duplicate of itself.
func (d *Deduplicator) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if hash, ok := d.hashByID[id]; ok {
		delete(d.hashes, hash)
		delete(d.hashByID, id)
	}
	delete(d.signatures, id)
}

// Clear resets all state. This is the only way to bound the otherwise
// unbounded growth of the indices.
func (d *Deduplicator) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hashes = make(map[string]string)
	d.signatures = make(map[string][]uint64)
	d.hashByID = make(map[string]string)
}

// Size returns the number of indexed items.
func (d *Deduplicator) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.signatures)
}
