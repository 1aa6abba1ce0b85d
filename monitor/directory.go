package monitor

import (
	"fmt"
	"sync"

	"github.com/skillsenselab/radiowatch/broadcastify"
)

// Directory maps channel references to human-readable labels. Lookups for
// unknown references produce a "Channel <ref>" fallback so records are always
// labeled.
type Directory struct {
	mu     sync.RWMutex
	labels map[string]string
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{labels: make(map[string]string)}
}

// Put records a label for a channel reference.
func (d *Directory) Put(ref, label string) {
	if ref == "" || label == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.labels[ref] = label
}

// Merge records labels from discovered groups.
func (d *Directory) Merge(groups []broadcastify.Group) {
	for _, g := range groups {
		d.Put(g.ID, g.Description)
	}
}

// Label returns the label for a channel reference, falling back to
// "Channel <ref>" when unknown.
func (d *Directory) Label(ref string) string {
	d.mu.RLock()
	label, ok := d.labels[ref]
	d.mu.RUnlock()
	if ok {
		return label
	}
	return fmt.Sprintf("Channel %s", ref)
}

// Len returns the number of known labels.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.labels)
}
