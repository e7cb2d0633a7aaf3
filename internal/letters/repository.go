package letters

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dearfuture/letters/internal/common"
	"github.com/dearfuture/letters/internal/logging"
	"github.com/dearfuture/letters/internal/storage"
)

// Repository is the sole authority over the letter collection. It keeps the
// collection in memory, derives delivery state from the wall clock on every
// read, and persists the whole collection to the storage collaborator after
// each mutation.
//
// A failed save never rolls back the in-memory change: the letter stays
// visible for the session, the error is returned to the caller and retained
// for LastError. Saves are not retried.
type Repository struct {
	mu      sync.RWMutex
	storage storage.Storage
	logger  logging.Logger
	letters []Letter
	lastErr error

	// now is the clock; tests substitute it for deterministic time travel.
	now func() time.Time
}

func NewRepository(st storage.Storage, logger logging.Logger) *Repository {
	return &Repository{
		storage: st,
		logger:  logger.With("component", "letters"),
		letters: []Letter{},
		now:     time.Now,
	}
}

// Hydrate loads the collection from storage. A backend with no prior state
// leaves the collection empty. Call once at startup, before any other use.
func (r *Repository) Hydrate(ctx context.Context) error {
	blob, err := r.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLoadFailed, err)
	}
	if blob == nil {
		r.logger.Info(ctx, "no prior state, starting empty")
		return nil
	}

	ls, err := DecodeCollection(blob)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLoadFailed, err)
	}

	r.mu.Lock()
	r.letters = ls
	r.mu.Unlock()

	r.logger.Info(ctx, "state hydrated", "letters", len(ls))
	return nil
}

// Add creates a letter from the draft: assigns a fresh unique id, stamps
// CreatedAt, and derives the initial delivery state and progress. The new id
// is returned even when persisting fails (the letter is in memory either
// way; the error reports the failed save).
func (r *Repository) Add(ctx context.Context, d Draft) (string, error) {
	if !ValidMood(d.Mood) {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownMood, d.Mood)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = nil

	now := r.now()
	l := Letter{
		ID:            uuid.NewString(),
		Title:         d.Title,
		Content:       d.Content,
		Mood:          d.Mood,
		ScheduledDate: d.ScheduledDate,
		CreatedAt:     now,
		IsDelivered:   !now.Before(d.ScheduledDate),
		UserID:        d.UserID,
		Image:         d.Image,
		Caption:       d.Caption,
	}
	l.Progress = l.ProgressAt(now)

	r.letters = append(r.letters, l)

	return l.ID, r.persist(ctx)
}

// Update merges the non-nil fields of u into the letter with the given id
// and recomputes the derived fields. Returns common.ErrNotFound when no
// such letter exists.
func (r *Repository) Update(ctx context.Context, id string, u Update) error {
	if u.Mood != nil && !ValidMood(*u.Mood) {
		return fmt.Errorf("%w: %q", common.ErrUnknownMood, *u.Mood)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = nil

	idx := r.indexOf(id)
	if idx < 0 {
		return common.ErrNotFound
	}

	l := &r.letters[idx]
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Content != nil {
		l.Content = *u.Content
	}
	if u.Mood != nil {
		l.Mood = *u.Mood
	}
	if u.ScheduledDate != nil {
		l.ScheduledDate = *u.ScheduledDate
	}
	if u.IsDelivered != nil {
		l.IsDelivered = *u.IsDelivered
	}
	if u.UserID != nil {
		l.UserID = *u.UserID
	}
	if u.Image != nil {
		l.Image = *u.Image
	}
	if u.Caption != nil {
		l.Caption = *u.Caption
	}
	l.refreshDerived(r.now())

	return r.persist(ctx)
}

// Delete removes the letter with the given id. Deleting an absent id is a
// no-op: nothing changes and nothing is persisted.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = nil

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}

	r.letters = append(r.letters[:idx], r.letters[idx+1:]...)

	return r.persist(ctx)
}

// GetByID returns a copy of the letter with derived fields refreshed as of
// now, or common.ErrNotFound.
func (r *Repository) GetByID(id string) (Letter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Letter{}, common.ErrNotFound
	}

	l := r.letters[idx]
	l.refreshDerived(r.now())
	return l, nil
}

// ListByUser returns the user's letters in insertion order.
func (r *Repository) ListByUser(userID string) []Letter {
	return r.filter(func(l *Letter, now time.Time) bool {
		return l.UserID == userID
	})
}

// ListDelivered returns the user's letters that are readable now.
func (r *Repository) ListDelivered(userID string) []Letter {
	return r.filter(func(l *Letter, now time.Time) bool {
		return l.UserID == userID && l.DeliveredAt(now)
	})
}

// ListUpcoming returns the user's letters still waiting for their delivery
// date.
func (r *Repository) ListUpcoming(userID string) []Letter {
	return r.filter(func(l *Letter, now time.Time) bool {
		return l.UserID == userID && !l.DeliveredAt(now)
	})
}

// ListLocked is ListUpcoming under the name the reading UI uses: a locked
// letter and an upcoming letter are the same thing.
func (r *Repository) ListLocked(userID string) []Letter {
	return r.ListUpcoming(userID)
}

// Search returns the user's letters whose title, content or caption
// contains query, case-insensitively.
func (r *Repository) Search(userID, query string) []Letter {
	q := strings.ToLower(query)
	return r.filter(func(l *Letter, now time.Time) bool {
		if l.UserID != userID {
			return false
		}
		return strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.Content), q) ||
			(l.Caption != "" && strings.Contains(strings.ToLower(l.Caption), q))
	})
}

// ListByMood returns the user's letters with exactly the given mood.
func (r *Repository) ListByMood(userID string, mood Mood) []Letter {
	return r.filter(func(l *Letter, now time.Time) bool {
		return l.UserID == userID && l.Mood == mood
	})
}

// ListByDateRange returns the user's letters whose scheduled date falls
// within [start, end] inclusive.
func (r *Repository) ListByDateRange(userID string, start, end time.Time) []Letter {
	return r.filter(func(l *Letter, now time.Time) bool {
		return l.UserID == userID &&
			!l.ScheduledDate.Before(start) && !l.ScheduledDate.After(end)
	})
}

// Stats aggregates the user's collection as of now.
func (r *Repository) Stats(userID string) Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	s := Stats{ByMood: map[Mood]int{}}

	for i := range r.letters {
		l := &r.letters[i]
		if l.UserID != userID {
			continue
		}
		s.Total++
		if l.DeliveredAt(now) {
			s.Delivered++
		} else {
			s.Upcoming++
			s.Locked++
		}
		s.ByMood[l.Mood]++
	}

	return s
}

// Clear removes every letter for every user and persists the empty
// collection.
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = nil

	n := len(r.letters)
	r.letters = []Letter{}
	r.logger.Warn(ctx, "collection cleared", "removed", n)

	return r.persist(ctx)
}

// Export returns a copy of the user's letters suitable for Import.
func (r *Repository) Export(userID string) []Letter {
	return r.ListByUser(userID)
}

// Import bulk-appends previously exported letters. Entries missing any of
// id, title, content or userId are skipped, as are ids already present in
// the collection. Returns how many letters were imported.
func (r *Repository) Import(ctx context.Context, ls []Letter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = nil

	seen := make(map[string]struct{}, len(r.letters))
	for i := range r.letters {
		seen[r.letters[i].ID] = struct{}{}
	}

	imported := 0
	for _, l := range ls {
		if l.ID == "" || l.Title == "" || l.Content == "" || l.UserID == "" {
			continue
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		r.letters = append(r.letters, l)
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	return imported, r.persist(ctx)
}

// LastError returns the error recorded by the most recent mutating
// operation, or nil. It is cleared at the start of each mutation.
func (r *Repository) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Len returns the total number of letters across all users.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.letters)
}

// indexOf must be called with the lock held.
func (r *Repository) indexOf(id string) int {
	for i := range r.letters {
		if r.letters[i].ID == id {
			return i
		}
	}
	return -1
}

// filter returns copies, in insertion order, of the letters matching pred,
// with derived fields refreshed as of a single now for the whole pass.
func (r *Repository) filter(pred func(l *Letter, now time.Time) bool) []Letter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()
	out := []Letter{}
	for i := range r.letters {
		if pred(&r.letters[i], now) {
			l := r.letters[i]
			l.refreshDerived(now)
			out = append(out, l)
		}
	}
	return out
}

// persist must be called with the write lock held.
func (r *Repository) persist(ctx context.Context) error {
	blob, err := EncodeCollection(r.letters)
	if err == nil {
		err = r.storage.Save(ctx, blob)
	}
	if err != nil {
		r.lastErr = fmt.Errorf("%w: %v", common.ErrSaveFailed, err)
		r.logger.Error(ctx, "persist failed, in-memory state kept", "err", err)
		return r.lastErr
	}
	return nil
}
