// Package broadcastify implements the client for the upstream radio-dispatch
// calls API: signed application tokens, user session authentication, cursor
// based incremental call polling, and channel (talkgroup) discovery.
//
// Every authenticated request carries a freshly minted HMAC-signed token; the
// user session is cached until the upstream rejects it, then re-established
// transparently on the next poll.
package broadcastify
