package prefs

import "fmt"

// Add records a user-item preference, allocating dense ids for either
// identifier on first sight. Re-adding an existing (user, item) pair is a
// no-op that does not inflate Size().
// Stage 1 (Validate): neither identifier may be empty.
// Stage 2 (Execute): resolve or allocate dense ids, then extend and update
// both adjacency sets together so the mirror invariant never drifts.
// Thread-safe: acquires a write lock.
// Complexity: amortized O(1).
func (idx *Index) Add(user, item string) error {
	if user == "" || item == "" {
		return fmt.Errorf("Add(%q,%q): %w", user, item, ErrEmptyID)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	u := idx.internUser(user)
	i := idx.internItem(item)

	if _, exists := idx.userItems[u][i]; exists {
		return nil
	}
	idx.userItems[u][i] = struct{}{}
	idx.itemUsers[i][u] = struct{}{}
	idx.numObservations++

	return nil
}

// internUser resolves user to its dense id, allocating one (and growing
// userItems) if user has not been seen before. Caller must hold idx.mu.
func (idx *Index) internUser(user string) int {
	if id, ok := idx.userToID[user]; ok {
		return id
	}
	id := len(idx.idToUser)
	idx.userToID[user] = id
	idx.idToUser = append(idx.idToUser, user)
	idx.userItems = append(idx.userItems, make(map[int]struct{}))

	return id
}

// internItem resolves item to its dense id, allocating one (and growing
// itemUsers) if item has not been seen before. Caller must hold idx.mu.
func (idx *Index) internItem(item string) int {
	if id, ok := idx.itemToID[item]; ok {
		return id
	}
	id := len(idx.idToItem)
	idx.itemToID[item] = id
	idx.idToItem = append(idx.idToItem, item)
	idx.itemUsers = append(idx.itemUsers, make(map[int]struct{}))

	return id
}

// Users returns every known user identifier, in first-seen (dense id) order.
func (idx *Index) Users() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]string, len(idx.idToUser))
	copy(out, idx.idToUser)

	return out
}

// Items returns every known item identifier, in first-seen (dense id) order.
func (idx *Index) Items() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]string, len(idx.idToItem))
	copy(out, idx.idToItem)

	return out
}

// UserItems returns the items a user likes, or nil if the user is unknown.
func (idx *Index) UserItems(user string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	u, ok := idx.userToID[user]
	if !ok {
		return nil
	}

	return idx.itemStringsOf(idx.userItems[u])
}

// ItemUsers returns the users who like an item, or nil if the item is unknown.
func (idx *Index) ItemUsers(item string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	i, ok := idx.itemToID[item]
	if !ok {
		return nil
	}

	return idx.userStringsOf(idx.itemUsers[i])
}

func (idx *Index) itemStringsOf(ids map[int]struct{}) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, idx.idToItem[id])
	}

	return out
}

func (idx *Index) userStringsOf(ids map[int]struct{}) []string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, idx.idToUser[id])
	}

	return out
}

// ContainsUser reports whether user has been seen.
func (idx *Index) ContainsUser(user string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.userToID[user]

	return ok
}

// ContainsItem reports whether item has been seen.
func (idx *Index) ContainsItem(item string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.itemToID[item]

	return ok
}

// ExistsPreference reports whether (user, item) was recorded by Add.
func (idx *Index) ExistsPreference(user, item string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	u, ok := idx.userToID[user]
	if !ok {
		return false
	}
	i, ok := idx.itemToID[item]
	if !ok {
		return false
	}
	_, exists := idx.userItems[u][i]

	return exists
}

// UserID returns user's dense id, or NotID if unknown.
func (idx *Index) UserID(user string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if id, ok := idx.userToID[user]; ok {
		return id
	}

	return NotID
}

// ItemID returns item's dense id, or NotID if unknown.
func (idx *Index) ItemID(item string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if id, ok := idx.itemToID[item]; ok {
		return id
	}

	return NotID
}

// User returns the string identifier for a dense user id.
func (idx *Index) User(id int) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if id < 0 || id >= len(idx.idToUser) {
		return "", false
	}

	return idx.idToUser[id], true
}

// Item returns the string identifier for a dense item id.
func (idx *Index) Item(id int) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if id < 0 || id >= len(idx.idToItem) {
		return "", false
	}

	return idx.idToItem[id], true
}

// MaxUserID returns the highest allocated user dense id, or NotID if no
// user has been added.
func (idx *Index) MaxUserID() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if len(idx.idToUser) == 0 {
		return NotID
	}

	return len(idx.idToUser) - 1
}

// MaxItemID returns the highest allocated item dense id, or NotID if no
// item has been added.
func (idx *Index) MaxItemID() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if len(idx.idToItem) == 0 {
		return NotID
	}

	return len(idx.idToItem) - 1
}

// UserCount returns the number of distinct users seen.
func (idx *Index) UserCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.idToUser)
}

// ItemCount returns the number of distinct items seen.
func (idx *Index) ItemCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.idToItem)
}

// Size returns the total number of recorded (user, item) preferences.
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.numObservations
}

// UserItemIDs returns the dense item ids a dense user id likes. The
// returned map must not be mutated by the caller; it is the engine's own
// adjacency storage, read-only during training.
func (idx *Index) UserItemIDs(u int) map[int]struct{} {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if u < 0 || u >= len(idx.userItems) {
		return nil
	}

	return idx.userItems[u]
}

// ItemUserIDs returns the dense user ids that like a dense item id. See
// UserItemIDs for the read-only-during-training caveat.
func (idx *Index) ItemUserIDs(i int) map[int]struct{} {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if i < 0 || i >= len(idx.itemUsers) {
		return nil
	}

	return idx.itemUsers[i]
}

// Merge unions other's adjacency into idx, extending idx's id space as
// needed. Identifiers known to both indexes keep idx's existing dense id;
// identifiers new to idx are appended.
// Complexity: O(other.Size()).
func (idx *Index) Merge(other PreferenceData) error {
	for _, u := range other.Users() {
		for _, i := range other.UserItems(u) {
			if err := idx.Add(u, i); err != nil {
				return fmt.Errorf("Merge: %w", err)
			}
		}
	}

	return nil
}
