package evaluator

import (
	"context"
	"unicode/utf8"

	"github.com/dmitrijs2005/passcheck/internal/estimator"
	"github.com/dmitrijs2005/passcheck/internal/generator"
	"github.com/dmitrijs2005/passcheck/internal/logging"
	"github.com/dmitrijs2005/passcheck/internal/oracle"
	"github.com/dmitrijs2005/passcheck/internal/strength"
)

// Evaluator wires one oracle strategy and one estimator strategy together.
// It holds no per-password state and is safe for concurrent use as long as
// its collaborators are.
type Evaluator struct {
	oracle    oracle.Oracle
	estimator estimator.Estimator
	generator *generator.Generator
	log       logging.Logger
}

// Option customises an Evaluator.
type Option func(*Evaluator)

// WithGenerator sets the generator used by Generate.
func WithGenerator(g *generator.Generator) Option {
	return func(e *Evaluator) { e.generator = g }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// New returns an Evaluator. A nil oracle never flags anything; a nil
// estimator means the analytic model at the default guess rate.
func New(o oracle.Oracle, est estimator.Estimator, opts ...Option) *Evaluator {
	if o == nil {
		o = oracle.Any{}
	}
	if est == nil {
		est = estimator.NewAnalytic(estimator.DefaultGuessesPerSecond)
	}
	e := &Evaluator{
		oracle:    o,
		estimator: est,
		generator: generator.New(generator.DefaultLength),
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the whole pipeline. An empty password returns Empty()
// without consulting the oracle or the estimator. The call blocks for as
// long as the oracle does.
func (e *Evaluator) Evaluate(ctx context.Context, password string) Result {
	if password == "" {
		return Empty()
	}
	r := e.local(password)
	return e.settle(ctx, password, r)
}

// Generate creates a password and evaluates it, so the returned Result
// always describes the returned password.
func (e *Evaluator) Generate(ctx context.Context) (string, Result, error) {
	pw, err := e.generator.Generate()
	if err != nil {
		e.log.Error(ctx, "password generation failed", "error", err)
		return "", Empty(), err
	}
	return pw, e.Evaluate(ctx, pw), nil
}

// local computes everything that does not need the oracle. The category
// assumes the password is not compromised.
func (e *Evaluator) local(password string) Result {
	classes := strength.Classify(password)
	length := utf8.RuneCountInString(password)
	score := strength.ScoreOf(classes, length)
	category := strength.Categorize(score, false)
	est := e.estimator.Estimate(password, classes)

	return Result{
		Category:  category,
		Color:     strength.ColorFor(category),
		CrackTime: est.Display,
		Estimate:  est,
		Classes:   classes,
		Length:    length,
		Score:     score,
	}
}

// settle consults the oracle and, on a hit, overrides category and estimate.
func (e *Evaluator) settle(ctx context.Context, password string, r Result) Result {
	r.Pending = false
	if !e.oracle.IsCompromised(ctx, password) {
		return r
	}

	est := estimator.Compromised()
	r.Compromised = true
	r.Category = strength.Categorize(r.Score, true)
	r.Color = strength.ColorFor(r.Category)
	r.Estimate = est
	r.CrackTime = est.Display
	e.log.Debug(ctx, "password flagged as compromised", "length", r.Length)
	return r
}
