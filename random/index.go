package random

// Index deals out every position in [0, count) exactly once per cycle,
// in random order, then starts a fresh cycle.
type Index struct {
	Count        int
	MaxPos       int
	CurrentCount int
	Pos          int
	Indexes      []int
}

func NewIndex(count int) *Index {
	var indexes = make([]int, count)
	for i := 0; i < count; i++ {
		indexes[i] = i
	}
	return &Index{
		Count:        count,
		MaxPos:       count - 1,
		CurrentCount: count,
		Pos:          count - 1,
		Indexes:      indexes,
	}
}

func (idx *Index) Next(rng *Random) int {
	if idx.CurrentCount == 0 {
		idx.CurrentCount = idx.Count
		idx.Pos = idx.MaxPos
	}
	var next = int(rng.Uint32() % uint32(idx.CurrentCount))
	var value = idx.Indexes[next]
	if next != idx.Pos {
		idx.Indexes[idx.Pos], idx.Indexes[next] = idx.Indexes[next], idx.Indexes[idx.Pos]
	}
	idx.Pos -= 1
	idx.CurrentCount -= 1
	return value
}

func (idx *Index) Reset() {
	idx.CurrentCount = idx.Count
	idx.Pos = idx.MaxPos
}

// RemovePositions drops the given values from the rotation and resets
// the cycle.
func (idx *Index) RemovePositions(positions ...int) {
	var newIndexes = make([]int, 0, idx.Count)
	var match bool
	for _, value := range idx.Indexes {
		match = false
		for _, position := range positions {
			if value == position {
				match = true
				break
			}
		}
		if !match {
			newIndexes = append(newIndexes, value)
		}
	}
	idx.Indexes = newIndexes
	idx.Count = len(newIndexes)
	idx.MaxPos = idx.Count - 1
	idx.Reset()
}
