// Package analysis mines recurring move sequences from solution paths.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// NGram is a move sequence that occurs more than once.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence locates one occurrence of an n-gram.
type NGramOccurrence struct {
	Path       int `json:"path"`
	StartIndex int `json:"start_index"`
}

// NGramReport holds the most frequent n-grams keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// Token encodes m as its index in types.AllMoves.
func Token(m types.Move) uint8 {
	for i, am := range types.AllMoves {
		if am == m {
			return uint8(i)
		}
	}
	return uint8(len(types.AllMoves))
}

// MoveFromToken decodes a Token.
func MoveFromToken(t uint8) types.Move {
	if int(t) < len(types.AllMoves) {
		return types.AllMoves[t]
	}
	return types.Move{}
}

// RollingHash is a Rabin-Karp hash over a fixed-size token window.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll appends token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint8
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the topK most frequent n-grams of every length in
// [minN, maxN] across paths. Windows never span two paths.
func MineNGrams(paths [][]types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 {
		minN = 1
	}

	tokenized := make([][]uint8, len(paths))
	for i, p := range paths {
		tokenized[i] = make([]uint8, len(p))
		for j, m := range p {
			tokenized[i][j] = Token(m)
		}
	}

	for n := minN; n <= maxN; n++ {
		if ngrams := mineNGramsForN(tokenized, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineNGramsForN(paths [][]uint8, n, topK int) []NGram {
	// Buckets hold every distinct window sharing a hash.
	counts := make(map[uint64][]*ngramEntry)

	for pi, tokens := range paths {
		rh := NewRollingHash(n)
		for i, token := range tokens {
			rh.Roll(token)
			if !rh.Ready() {
				continue
			}

			occ := NGramOccurrence{Path: pi, StartIndex: i - n + 1}
			window := rh.Window()
			var entry *ngramEntry
			for _, e := range counts[rh.Hash()] {
				if slicesEqual(e.tokens, window) {
					entry = e
					break
				}
			}
			if entry == nil {
				entry = &ngramEntry{tokens: window}
				counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			}
			entry.count++
			if len(entry.occurrences) < maxOccurrences {
				entry.occurrences = append(entry.occurrences, occ)
			}
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, e := range bucket {
			if e.count >= 2 {
				entries = append(entries, e)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return ngramKey(entries[i].tokens) < ngramKey(entries[j].tokens)
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		sequence := make([]string, len(e.tokens))
		for j, token := range e.tokens {
			sequence[j] = MoveFromToken(token).Notation()
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Tokens:      e.tokens,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ngramKey makes a printable sort key for a token sequence.
func ngramKey(tokens []uint8) string {
	result := make([]byte, len(tokens))
	for i, t := range tokens {
		result[i] = t + 'A'
	}
	return string(result)
}
