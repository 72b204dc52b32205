// Package prefs implements PreferenceIndex: a bijection between opaque
// user/item identifier strings and dense zero-based integer ids, plus the
// user->items and item->users adjacency sets the training engine reads
// during each phase.
//
// Index satisfies the PreferenceData interface (users, items, userItems,
// itemUsers, containsUser/Item, existsPreference, userID, itemID, user,
// item, maxUserID, maxItemID, size) and adds Merge, which takes any
// PreferenceData as its source.
//
// Index is a thread-safe adjacency-list structure generalized to two
// disjoint user/item namespaces instead of a single vertex namespace,
// trading arbitrary edge metadata for the dense integer ids the trainers
// index matrix rows with.
package prefs
