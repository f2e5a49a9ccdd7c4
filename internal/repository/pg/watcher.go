package pg

import (
	"database/sql"
	"sync"
	"time"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

// watchHub fans reward-state snapshots out to per-student subscribers.
// Each subscriber channel holds at most one snapshot: a newer one replaces
// an undelivered older one, so a slow consumer always sees the latest
// state rather than a backlog.
type watchHub struct {
	mu     sync.Mutex
	nextID int64
	subs   map[string]map[int64]chan model.RewardState
}

func newWatchHub() *watchHub {
	return &watchHub{
		subs: make(map[string]map[int64]chan model.RewardState),
	}
}

func (h *watchHub) subscribe(studentID string) (<-chan model.RewardState, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	ch := make(chan model.RewardState, 1)
	if h.subs[studentID] == nil {
		h.subs[studentID] = make(map[int64]chan model.RewardState)
	}
	h.subs[studentID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subs, ok := h.subs[studentID]; ok {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.subs, studentID)
			}
		}
	}

	return ch, cancel
}

func (h *watchHub) publish(state model.RewardState) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[state.StudentID] {
		// drop the stale snapshot, keep the latest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

func (h *watchHub) empty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs) == 0
}

// Subscribe attaches to the reward-state stream for one student. The
// returned cancel func must be called to release the subscription.
func (r *Repository) Subscribe(studentID string) (<-chan model.RewardState, func()) {
	return r.watchHub.subscribe(studentID)
}

type changedUser struct {
	studentID string
	updatedAt time.Time
}

// RunRewardStateWatcher polls for user documents whose updated_at moved
// past the last observed instant and pushes full snapshots to subscribers.
// Delivery order relative to in-flight writes is not guaranteed; each
// snapshot is the authoritative state at read time.
func (r *Repository) RunRewardStateWatcher(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		lastSeen := time.Now()

		for {
			select {
			case <-ticker.C:
				if r.watchHub.empty() {
					continue
				}

				changed, err := r.getUsersUpdatedSince(lastSeen)
				if err != nil {
					r.lg.Errorf("reward state watcher: %v", err)
					continue
				}

				for _, user := range changed {
					state, err := r.GetRewardState(user.studentID)
					if err != nil {
						r.lg.Errorf("reward state watcher snapshot for %s: %v", user.studentID, err)
						continue
					}

					r.watchHub.publish(*state)

					if user.updatedAt.After(lastSeen) {
						lastSeen = user.updatedAt
					}
				}
			case <-r.stopWatchChan:
				ticker.Stop()
				return
			}
		}
	}()
}

func (r *Repository) StopRewardStateWatcher() {
	if r.stopWatchChan != nil {
		close(r.stopWatchChan)
		r.stopWatchChan = nil
	}
}

func (r *Repository) getUsersUpdatedSince(since time.Time) ([]changedUser, error) {
	result := make([]changedUser, 0)

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		rows, err := db.Query(`SELECT student_id, updated_at FROM users WHERE updated_at > $1 ORDER BY updated_at ASC`, since)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var user changedUser
			if err := rows.Scan(&user.studentID, &user.updatedAt); err != nil {
				return err
			}

			result = append(result, user)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
