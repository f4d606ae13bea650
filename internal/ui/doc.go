// Package ui implements the profile widget and its interactive terminal host using bubbletea's Elm architecture.
//
// The widget draws two tables side by side:
//  1. the profile table: one column per ranking, headed by its voter count, one row per rank position
//  2. the margin table (optional): candidate names on both axes, pairwise margins inside
//
// Cells of the profile table are highlighted by [CellHighlight] in priority order:
// pinned primary (c1), pinned secondary (c2), then the hovered candidate.
//
// Hover is a small [HoverState] record changed only by pure transitions ([HoverState.EnterProfile],
// [HoverState.EnterMargin], [HoverState.Leave]). The [Model] converts mouse motion into exactly one
// transition per event by hit-testing the widget's [Layout], the same geometry used to draw it.
// Hovering a margin cell marks its row candidate in both tables.
package ui
