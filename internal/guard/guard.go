package guard

import (
	"context"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
)

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	DecisionLoading Decision = iota
	DecisionAllow
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Guard gates protected views on the session state.
type Guard struct {
	sessions    model.SessionState
	navigator   model.Navigator
	logger      *logger.Logger
	placeholder func()
}

func New(sessions model.SessionState, navigator model.Navigator, logger *logger.Logger) *Guard {
	return &Guard{
		sessions:  sessions,
		navigator: navigator,
		logger:    logger,
	}
}

// SetPlaceholder sets the renderer shown while the session is initializing.
func (g *Guard) SetPlaceholder(fn func()) {
	g.placeholder = fn
}

// Evaluate decides without blocking. It never redirects while the
// session store is loading.
func (g *Guard) Evaluate() Decision {
	if g.sessions.Loading() {
		return DecisionLoading
	}
	if g.sessions.Current().IsAuthenticated() {
		return DecisionAllow
	}

	g.navigator.Navigate(model.ViewLogin)
	return DecisionRedirect
}

// Require waits for initialization and runs render when a session exists.
func (g *Guard) Require(ctx context.Context, view model.View, render func(ctx context.Context) error) error {
	decision := g.Evaluate()

	if decision == DecisionLoading {
		if g.placeholder != nil {
			g.placeholder()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.sessions.Ready():
		}
		decision = g.Evaluate()
	}

	if decision != DecisionAllow {
		g.logger.Info("Guard: access denied",
			"view", string(view))
		return model.ErrUnauthenticated
	}

	g.logger.Debug("Guard: access granted",
		"view", string(view))
	return render(ctx)
}
