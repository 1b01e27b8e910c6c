package rewards

import (
	"errors"
	"sync"
	"time"

	"neighborwatch-be/models"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrVoucherNotFound    = errors.New("voucher not found")
)

// PointSource is the read side of the issue store the ledger derives
// totals from. The ledger never mutates issues.
type PointSource interface {
	List() []models.Issue
}

// Ledger derives point totals from reported issues and gates voucher
// redemption. Redemption history is session-local: kept per actor in
// memory and cleared on logout.
type Ledger struct {
	mu      sync.Mutex
	source  PointSource
	catalog []models.Voucher
	history map[string][]models.Redemption
	now     func() time.Time
}

func NewLedger(source PointSource) *Ledger {
	return &Ledger{
		source:  source,
		catalog: models.Vouchers,
		history: make(map[string][]models.Redemption),
		now:     time.Now,
	}
}

// Catalog returns the voucher catalog in declaration order.
func (l *Ledger) Catalog() []models.Voucher {
	out := make([]models.Voucher, len(l.catalog))
	copy(out, l.catalog)
	return out
}

// TotalPoints sums the points of every issue the actor reported,
// regardless of status. Redemptions do not reduce the total: the ledger
// is a record of contributions, not a spendable balance.
func (l *Ledger) TotalPoints(actor string) int {
	total := 0
	for _, issue := range l.source.List() {
		if issue.ReportedBy == actor {
			total += issue.Points
		}
	}
	return total
}

// Redeem exchanges a voucher for the actor's accumulated points. Fails
// with ErrInsufficientPoints when the actor's total is below the voucher
// cost; on success the redemption is appended to the actor's history.
func (l *Ledger) Redeem(actor, voucherID string) (models.Redemption, error) {
	var voucher *models.Voucher
	for i := range l.catalog {
		if l.catalog[i].ID == voucherID {
			voucher = &l.catalog[i]
			break
		}
	}
	if voucher == nil {
		return models.Redemption{}, ErrVoucherNotFound
	}

	if l.TotalPoints(actor) < voucher.Points {
		return models.Redemption{}, ErrInsufficientPoints
	}

	redemption := models.Redemption{Voucher: *voucher, RedeemedAt: l.now()}
	l.mu.Lock()
	l.history[actor] = append(l.history[actor], redemption)
	l.mu.Unlock()
	return redemption, nil
}

// History returns the actor's redemptions for the current session.
func (l *Ledger) History(actor string) []models.Redemption {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Redemption, len(l.history[actor]))
	copy(out, l.history[actor])
	return out
}

// ClearHistory discards the actor's session history, called on logout.
func (l *Ledger) ClearHistory(actor string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.history, actor)
}
