// Package tui implements the floor dashboard using Bubble Tea.
//
// App owns the cursor, the reset confirmation and the inputs backing the
// modal overlays. Table state lives in floor.Store and overlay phase lives in
// modal.Controller; Update is the only place either is mutated.
//
// Journal writes never block the UI. Each mutation hands back a command:
//
//	recordCmd()       → recordedMsg
//	loadHistoryCmd()  → historyMsg
//	clearJournalCmd() → journalClearedMsg
//
// Failures from any of them arrive as errMsg and land in the status line.
package tui
