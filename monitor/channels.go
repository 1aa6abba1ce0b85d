package monitor

import (
	"sort"
	"strings"
	"sync"
)

// ChannelSet is the mutable set of channel references the worker polls.
// It is safe for concurrent use; the UI side can change the subscription
// while a poll is in flight.
type ChannelSet struct {
	mu   sync.RWMutex
	refs map[string]bool
}

// NewChannelSet creates a ChannelSet seeded with the given references.
func NewChannelSet(refs ...string) *ChannelSet {
	cs := &ChannelSet{refs: make(map[string]bool)}
	cs.Set(refs)
	return cs
}

// Set replaces the subscription with the given references.
func (c *ChannelSet) Set(refs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs = make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref = strings.TrimSpace(ref); ref != "" {
			c.refs[ref] = true
		}
	}
}

// Add subscribes one channel reference.
func (c *ChannelSet) Add(ref string) {
	if ref = strings.TrimSpace(ref); ref == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs[ref] = true
}

// Remove unsubscribes one channel reference.
func (c *ChannelSet) Remove(ref string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.refs, strings.TrimSpace(ref))
}

// Refs returns the subscribed references, sorted.
func (c *ChannelSet) Refs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	refs := make([]string, 0, len(c.refs))
	for ref := range c.refs {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// Len returns the number of subscribed channels.
func (c *ChannelSet) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.refs)
}
