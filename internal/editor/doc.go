// Package editor implements the client-side editing session for a memo:
// the state machine behind the viewer modal. A session holds a transient,
// disposable draft of a memo's editable fields while the user edits, and
// calls out to a repository on save and delete. All transitions happen on
// discrete user events; nothing runs in the background.
package editor
