package diag

import "sort"

// Bag collects diagnostics up to a limit. It implements Issuer. A Bag
// belongs to a single compilation unit and is not safe for concurrent use.
type Bag struct {
	items         []Diagnostic
	max           uint16
	dropped       int
	droppedErrors int
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	if max > int(^uint16(0)) {
		max = int(^uint16(0))
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   uint16(max),
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		if d.Severity >= SevError {
			b.droppedErrors++
		}
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Issue implements Issuer.
func (b *Bag) Issue(d Diagnostic) {
	b.Add(d)
}

// Dropped returns how many diagnostics were refused because the bag was full.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error,
// включая отброшенные по лимиту.
func (b *Bag) HasErrors() bool {
	if b.droppedErrors > 0 {
		return true
	}
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

// Sort orders diagnostics by file, offset, severity (desc) and code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Pos.File != dj.Pos.File {
			return di.Pos.File < dj.Pos.File
		}
		if di.Pos.Off != dj.Pos.Off {
			return di.Pos.Off < dj.Pos.Off
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
