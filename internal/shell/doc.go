// Package shell is a thin interactive front end for the strength engine.
//
// It reads a password (hidden by default, visible after "show"), submits it
// to an evaluator.Session and renders the latest Result: category in its
// display colour, the character-class checklist, the length and the
// estimated time to crack. "gen" substitutes a generated password and runs
// it through the same pipeline.
//
// The shell holds the only mutable reference to the current password; all
// derived state comes from the Session.
package shell
