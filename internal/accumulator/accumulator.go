// =============================================================================
// Beer Review Extractor - Dedup Accumulators
// =============================================================================
//
// Three in-memory tables are filled during the single parse pass:
//
//   BeerTable : beer name -> formatted row, first occurrence wins
//   UserSet   : distinct usernames
//   ReviewLog : every review row, in file order, never deduplicated
//
// All three keep first-seen order so output is deterministic. They are owned
// by one pass and need no locking.
//
// =============================================================================

package accumulator

// =============================================================================
// BEER TABLE
// =============================================================================

// BeerTable maps beer names to their formatted rows.
type BeerTable struct {
	rows  map[string]string
	order []string
}

// NewBeerTable creates an empty BeerTable.
func NewBeerTable() *BeerTable {
	return &BeerTable{rows: make(map[string]string)}
}

// Insert stores row under name unless name is already present. It reports
// whether the row was stored. A later row for the same name is dropped
// silently, even if its attributes differ.
func (b *BeerTable) Insert(name, row string) bool {
	if _, ok := b.rows[name]; ok {
		return false
	}
	b.rows[name] = row
	b.order = append(b.order, name)
	return true
}

// Len returns the number of distinct beers.
func (b *BeerTable) Len() int {
	return len(b.order)
}

// Rows returns the stored rows in first-seen order.
func (b *BeerTable) Rows() []string {
	rows := make([]string, len(b.order))
	for i, name := range b.order {
		rows[i] = b.rows[name]
	}
	return rows
}

// =============================================================================
// USER SET
// =============================================================================

// UserSet is a set of usernames.
type UserSet struct {
	seen  map[string]struct{}
	order []string
}

// NewUserSet creates an empty UserSet.
func NewUserSet() *UserSet {
	return &UserSet{seen: make(map[string]struct{})}
}

// Add inserts name and reports whether it was new.
func (u *UserSet) Add(name string) bool {
	if _, ok := u.seen[name]; ok {
		return false
	}
	u.seen[name] = struct{}{}
	u.order = append(u.order, name)
	return true
}

// Len returns the number of distinct users.
func (u *UserSet) Len() int {
	return len(u.order)
}

// Names returns the usernames in first-seen order.
func (u *UserSet) Names() []string {
	return append([]string(nil), u.order...)
}

// =============================================================================
// REVIEW LOG
// =============================================================================

// ReviewLog is an append-only list of formatted review rows.
type ReviewLog struct {
	rows []string
}

// NewReviewLog creates an empty ReviewLog.
func NewReviewLog() *ReviewLog {
	return &ReviewLog{}
}

// Append adds a review row.
func (r *ReviewLog) Append(row string) {
	r.rows = append(r.rows, row)
}

// Len returns the number of reviews.
func (r *ReviewLog) Len() int {
	return len(r.rows)
}

// Rows returns the review rows in append order.
func (r *ReviewLog) Rows() []string {
	return append([]string(nil), r.rows...)
}
