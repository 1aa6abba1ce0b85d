// Package keyword implements alert keyword scanning of call transcripts.
//
// Matching is case-insensitive substring containment, not word-boundary
// matching: "ice" matches inside "police". This broad-recall behavior is
// intentional and relied on by operators; do not tighten it to token
// matching without a config switch.
package keyword
