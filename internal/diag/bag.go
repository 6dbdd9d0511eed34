package diag

import (
	"sort"
)

// Bag accumulates diagnostics. A positive max caps how many it accepts;
// max <= 0 means unbounded, the default for library validation so every
// violation is reported.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the configured limit; 0 or less means unbounded.
func (b *Bag) Cap() int {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if b.max > 0 {
		if newTotal := len(b.items) + len(other.items); newTotal > b.max {
			b.max = newTotal
		}
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: track, time, difficulty, severity (desc),
// code (asc) для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Track != dj.Track {
			return di.Track < dj.Track
		}
		if di.Time != dj.Time {
			return di.Time < dj.Time
		}
		if di.Difficulty != dj.Difficulty {
			return di.Difficulty < dj.Difficulty
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops exact repeats (code + track + difficulty + time + message),
// keeping the first occurrence in insertion order.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := dedupKey{
			code:  d.Code,
			sev:   d.Severity,
			track: d.Track,
			diff:  d.Difficulty,
			time:  d.Time,
			msg:   d.Message,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		newitems = append(newitems, d)
	}
	b.items = newitems
}
