// Package ui contains the Bubble Tea program that renders the narrow search
// filter menu: a closed button showing the active search heading, and the
// popover listing search types and saved searches.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards key presses to the active form (rename prompt or delete
//     confirmation). Otherwise the message is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - navigation.go opens and closes the popover, manages the overflow level
//     of a saved search and runs item commands. input.go edits the filter
//     line. view.go and render.go build frames clipped to the terminal.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering, cursor and viewport.
//   - Saved searches and the active query are held by internal/state stores
//     and kept current by the dispatcher. Every change reassembles the menu
//     through search.Assemble.
//   - Item commands run asynchronously through the internal/ui/command bus and
//     answer with menu.ActionResult or a prompt message.
//
// Backend interactions:
//   - A backend.Watcher streams store snapshots; results.go waits for them,
//     records failures in the status and hands data to the dispatcher.
//     Results asking for a refresh kick the watcher so edits show up without
//     waiting for the next poll.
package ui
