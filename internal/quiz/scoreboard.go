package quiz

// ScoreBoard tallies votes per category. The zero value is an empty board.
type ScoreBoard struct {
	counts [numCategories]int
}

// Add records one vote for c. Invalid categories are ignored; Session
// rejects them before they get here.
func (b *ScoreBoard) Add(c Category) {
	if !c.Valid() {
		return
	}
	b.counts[c]++
}

// Count returns the number of votes for c.
func (b ScoreBoard) Count(c Category) int {
	if !c.Valid() {
		return 0
	}
	return b.counts[c]
}

// Total returns the sum of all counts.
func (b ScoreBoard) Total() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// Leader returns the category with the highest count. On ties the
// first-declared category wins, so an empty board yields Cat.
func (b ScoreBoard) Leader() Category {
	best := Category(0)
	for i := 1; i < numCategories; i++ {
		if b.counts[i] > b.counts[best] {
			best = Category(i)
		}
	}
	return best
}

// Map returns the counts keyed by category, one entry per category.
func (b ScoreBoard) Map() map[Category]int {
	m := make(map[Category]int, numCategories)
	for i, n := range b.counts {
		m[Category(i)] = n
	}
	return m
}
