// Package ui contains the Bubble Tea program that powers the function
// browser. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own input handling and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key presses are
//     matched against the keymap in input.go and apply at most one selection
//     transition; window-size messages adjust the viewport; everything else
//     is dropped without a transition.
//   - Model.View projects the current catalog and cursor through the pure
//     render functions in view.go (header, list, detail, footer). Rendering
//     never mutates state, so identical inputs always produce identical
//     frames.
//
// State ownership:
//   - The selection cursor lives in internal/ui/state.Selection, which keeps
//     the cursor inside the catalog bounds for every transition, including
//     over an empty catalog.
//   - The catalog itself is retrieved before the program starts and never
//     changes; the model only ever reads it.
//   - Styling is supplied as a theme.Styles value at construction time rather
//     than ambient package state, so the render functions stay testable.
package ui
