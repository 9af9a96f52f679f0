package cart

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/hamza-kay/smashbros/internal/money"
)

// Store persists ledger contents. Saves are fire-and-forget: a failed save
// is logged and never fails the mutation that triggered it.
type Store interface {
	SaveCart(ctx context.Context, cartID string, lines []Line) error
	LoadCart(ctx context.Context, cartID string) ([]Line, bool, error)
}

// Snapshot is an immutable copy of ledger state handed to observers and
// the order assembler.
type Snapshot struct {
	CartID string `json:"cartId"`
	Lines  []Line `json:"cartItems"`
}

// Ledger is the authoritative ordered collection of cart lines for one
// cart. Mutations are serialized: merge matching is read-then-write and is
// not safe under concurrent writers.
type Ledger struct {
	mu       sync.Mutex
	cartID   string
	lines    []Line
	store    Store
	watchers []func(Snapshot)
}

func NewLedger(cartID string, store Store) *Ledger {
	return &Ledger{cartID: cartID, store: store}
}

// NewLedgerWithLines restores a ledger from persisted state.
func NewLedgerWithLines(cartID string, lines []Line, store Store) *Ledger {
	return &Ledger{cartID: cartID, lines: lines, store: store}
}

func (l *Ledger) CartID() string { return l.cartID }

// OnChange registers an observer called after every mutation.
func (l *Ledger) OnChange(fn func(Snapshot)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watchers = append(l.watchers, fn)
}

// AddLine appends a line, or merges into an existing standalone line with
// the same configuration by bumping its quantity. Bundle lines always
// append.
func (l *Ledger) AddLine(line Line) Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	if line.CartLineID == "" {
		line.CartLineID = uuid.New().String()
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	if line.mergeable() {
		key := line.mergeKey()
		for i := range l.lines {
			if l.lines[i].mergeable() && l.lines[i].mergeKey() == key {
				l.lines[i].Quantity += line.Quantity
				l.lines[i].TotalPrice = l.lines[i].Price.Mul(l.lines[i].Quantity)
				merged := l.lines[i]
				l.changed()
				return merged
			}
		}
	}

	l.lines = append(l.lines, line)
	l.changed()
	return line
}

// AddBundle appends a parent and its children as one atomic batch. Bundles
// never merge, even when an identical configuration is already in the cart:
// each purchase instance is independent.
func (l *Ledger) AddBundle(parent Line, children []Line) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, parent)
	l.lines = append(l.lines, children...)
	l.changed()
}

// RemoveLine removes exactly one line by identity. Removing a bundle parent
// this way orphans its children; callers wanting the whole group gone use
// RemoveBundle.
func (l *Ledger) RemoveLine(cartLineID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.lines[:0]
	removed := false
	for _, line := range l.lines {
		if line.CartLineID == cartLineID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	l.lines = kept

	if removed {
		l.changed()
	}
	return removed
}

// RemoveBundle atomically removes every line in a bundle group. Matching on
// the line id as well covers legacy single-line deals that grouped under
// their own menu id.
func (l *Ledger) RemoveBundle(groupKey string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.lines[:0]
	removed := 0
	for _, line := range l.lines {
		if line.ParentDealID == groupKey || line.ID == groupKey {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	l.lines = kept

	if removed > 0 {
		l.changed()
	}
	return removed
}

func (l *Ledger) IncreaseQuantity(cartLineID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].CartLineID == cartLineID {
			l.lines[i].Quantity++
			l.lines[i].TotalPrice = l.lines[i].Price.Mul(l.lines[i].Quantity)
			l.changed()
			return
		}
	}
}

// DecreaseQuantity drops a line's quantity by one. At quantity 1 the line
// is removed outright; a zero-quantity line never persists. Unknown ids are
// ignored.
func (l *Ledger) DecreaseQuantity(cartLineID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].CartLineID != cartLineID {
			continue
		}
		if l.lines[i].Quantity <= 1 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		} else {
			l.lines[i].Quantity--
			l.lines[i].TotalPrice = l.lines[i].Price.Mul(l.lines[i].Quantity)
		}
		l.changed()
		return
	}
}

// Clear empties the ledger. Invoked when the payment collaborator confirms
// completion.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.lines) == 0 {
		return
	}
	l.lines = nil
	l.changed()
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// TotalItemCount sums every line's quantity.
func (l *Ledger) TotalItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// GroupedCount counts purchase units as the shopper sees them: a bundle is
// one unit no matter how many child lines it carries.
func (l *Ledger) GroupedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(l.lines))
	for _, line := range l.lines {
		seen[line.purchaseKey()] = struct{}{}
	}
	return len(seen)
}

// Subtotal sums unit price times quantity across all lines. A bundle
// parent's price already carries the base plus its customizations; children
// contribute their own deltas at quantity 1.
func (l *Ledger) Subtotal() money.Pence {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total money.Pence
	for _, line := range l.lines {
		total += line.Price.Mul(line.Quantity)
	}
	return total
}

// changed persists and notifies. Callers hold the mutex.
func (l *Ledger) changed() {
	snap := l.snapshotLocked()

	if l.store != nil {
		if err := l.store.SaveCart(context.Background(), l.cartID, snap.Lines); err != nil {
			log.Printf("cart %s: persist failed: %v", l.cartID, err)
		}
	}
	for _, fn := range l.watchers {
		fn(snap)
	}
}

func (l *Ledger) snapshotLocked() Snapshot {
	return Snapshot{
		CartID: l.cartID,
		Lines:  append([]Line(nil), l.lines...),
	}
}
