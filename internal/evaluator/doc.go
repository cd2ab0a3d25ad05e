// Package evaluator is the entry point of the strength engine.
//
// Evaluator.Evaluate runs a password through the classifier, scorer, oracle
// and estimator and returns an immutable Result. Session wraps an Evaluator
// for interactive callers that submit a new password on every keystroke:
// each submission gets a sequence number and a result is published only if
// no newer submission has been made since, so a slow breach lookup can never
// overwrite the state of a newer password.
package evaluator
