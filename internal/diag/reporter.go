package diag

// Reporter — минимальный контракт получения диагностик от правил.
// Реализации: BagReporter (кладёт в Bag), DedupReporter (фильтр повторов).
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// LimitReporter forwards at most max diagnostics to the next reporter and
// counts the overflow, so a caller-imposed cap never drops findings
// silently. max <= 0 disables the limit.
type LimitReporter struct {
	next      Reporter
	max       int
	forwarded int
	dropped   int
}

func NewLimitReporter(next Reporter, max int) *LimitReporter {
	return &LimitReporter{next: next, max: max}
}

func (r *LimitReporter) Report(d Diagnostic) {
	if r.max > 0 && r.forwarded >= r.max {
		r.dropped++
		return
	}
	r.forwarded++
	if r.next != nil {
		r.next.Report(d)
	}
}

// Dropped returns how many diagnostics the limit suppressed.
func (r *LimitReporter) Dropped() int {
	return r.dropped
}
