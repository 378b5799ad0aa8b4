// Package session tracks the client-side identity of the current chat: the
// active agent, the active conversation and an opaque client uuid.
//
// # Overview
//
// These identifiers are small named values kept in a store.Store so they
// survive restarts. The active conversation id "-" means "no conversation
// yet": the next message sent starts a new one.
//
// # Reset
//
// Resetting the conversation:
//   - stores a fresh client uuid with a store.Forever expiry
//   - sets the active conversation back to "-"
//   - invalidates the cached "/conversation/-" entry so the transcript
//     re-renders empty
//
// The UI guards Reset behind a confirmation modal because it cannot be undone.
package session
