/*
	rank package orders scored candidate pairs into a deterministic ranked
	list.
*/

package rank

import (
	"sort"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/similarity"
)

// RankedList is an immutable sequence of score records ordered by score
// descending; records with equal scores are ordered by pair ascending.
type RankedList struct {
	records []similarity.ScoreRecord
}

// Rank returns a RankedList for the provided scores. The input slice is
// not modified.
func Rank(scores []similarity.ScoreRecord) RankedList {
	records := make([]similarity.ScoreRecord, len(scores))
	copy(records, scores)

	sort.SliceStable(records, func(i, j int) bool {
		return before(records[i], records[j])
	})

	return RankedList{records: records}
}

// before is the strict total order used for ranking.
func before(a, b similarity.ScoreRecord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	return a.Pair.Less(b.Pair)
}

// Len returns the number of ranked records.
func (l RankedList) Len() int { return len(l.records) }

// At returns the record at position i. It panics if i is out of range.
func (l RankedList) At(i int) similarity.ScoreRecord { return l.records[i] }

// Top returns the first k records, or all of them if the list holds fewer
// than k.
func (l RankedList) Top(k int) []similarity.ScoreRecord {
	if k > len(l.records) {
		k = len(l.records)
	}
	if k < 0 {
		k = 0
	}

	top := make([]similarity.ScoreRecord, k)
	copy(top, l.records[:k])

	return top
}

// Records returns a copy of every ranked record.
func (l RankedList) Records() []similarity.ScoreRecord {
	return l.Top(len(l.records))
}
