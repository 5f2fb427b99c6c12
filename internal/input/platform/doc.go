// Package platform translates raw platform input into the normalized event
// union.
//
// Two sources are provided: a tcell-backed terminal translator for local
// sessions, and a websocket source that decodes JSON-framed events from a
// remote producer. Both emit the same event types, so the router never sees
// where an event came from.
package platform
