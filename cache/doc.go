// Package cache provides bounded memoization for encoded URL strings.
//
// It provides a Cache interface with a FIFO memory implementation, a sharded
// variant for contended hosts, a Policy that decides which keys are worth
// keeping, and a Memoizer that ties them together.
//
// Eviction is first-in first-out: a hit never moves an entry, so the oldest
// inserted key is always the next to go. It is not an LRU.
package cache
