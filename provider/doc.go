// Package provider implements the generic provider registry used for
// pluggable backends. A Registry stores named factories, a Manager holds
// initialized instances, and a Selector picks the active instance. For
// transcription this is a PrioritySelector over the configured preference
// order.
package provider
