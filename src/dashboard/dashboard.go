package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"QuickTech-Backend/src/models"
)

var (
	ErrInFlight      = errors.New("mark-as-viewed already in progress")
	ErrAlreadyViewed = errors.New("submission already viewed")
	ErrUnknownCard   = errors.New("submission not in the current list")
)

// Dashboard holds the last fetched list. The list only changes by refetching;
// a successful mark-as-viewed is never applied locally.
type Dashboard struct {
	api API
	log *zap.Logger
	now func() time.Time

	mu       sync.Mutex
	list     []models.Submission
	inFlight map[int64]bool
	tab      Tab
}

func New(api API, log *zap.Logger) *Dashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dashboard{
		api:      api,
		log:      log,
		now:      time.Now,
		inFlight: make(map[int64]bool),
		tab:      TabAll,
	}
}

// Load fetches the full list and replaces the current one.
func (d *Dashboard) Load(ctx context.Context) error {
	list, err := d.api.ListSubmissions(ctx)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.list = list
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) SetTab(t Tab) {
	d.mu.Lock()
	d.tab = t
	d.mu.Unlock()
}

func (d *Dashboard) Counts() models.SubmissionStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return models.Summarize(d.list)
}

// Cards renders the active tab.
func (d *Dashboard) Cards() []Card {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	visible := Filter(d.list, d.tab)
	cards := make([]Card, 0, len(visible))
	for _, s := range visible {
		c := CardOf(s, now)
		c.Pending = d.inFlight[s.ID]
		cards = append(cards, c)
	}
	return cards
}

// MarkViewed acknowledges one unread submission and refetches the list.
// A second call for the same id while the first is pending returns ErrInFlight.
func (d *Dashboard) MarkViewed(ctx context.Context, id int64) error {
	d.mu.Lock()
	sub, ok := d.find(id)
	switch {
	case !ok:
		d.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownCard, id)
	case sub.Viewed:
		d.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrAlreadyViewed, id)
	case d.inFlight[id]:
		d.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrInFlight, id)
	}
	d.inFlight[id] = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.inFlight, id)
		d.mu.Unlock()
	}()

	if err := d.api.MarkViewed(ctx, id); err != nil {
		d.log.Warn("mark viewed failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return d.Load(ctx)
}

// find looks id up in the current list. Caller holds mu.
func (d *Dashboard) find(id int64) (models.Submission, bool) {
	for _, s := range d.list {
		if s.ID == id {
			return s, true
		}
	}
	return models.Submission{}, false
}
