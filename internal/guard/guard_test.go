package guard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pdfgenie-client/internal/mocks"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/testutil"
)

type fakeSessions struct {
	mu      sync.Mutex
	loading bool
	session model.Session
	ready   chan struct{}
}

func newFakeSessions(loading bool) *fakeSessions {
	f := &fakeSessions{loading: loading, ready: make(chan struct{})}
	if !loading {
		close(f.ready)
	}
	return f
}

func (f *fakeSessions) Current() model.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeSessions) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *fakeSessions) Ready() <-chan struct{} { return f.ready }

func (f *fakeSessions) settle(s model.Session) {
	f.mu.Lock()
	f.session = s
	f.loading = false
	f.mu.Unlock()
	close(f.ready)
}

var authenticated = model.Session{User: &model.User{Username: "ada"}, Token: "tok"}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		loading      bool
		session      model.Session
		want         Decision
		wantNavigate bool
	}{
		{name: "loading never redirects", loading: true, want: DecisionLoading},
		{name: "authenticated", session: authenticated, want: DecisionAllow},
		{name: "token without user", session: model.Session{Token: "tok"}, want: DecisionRedirect, wantNavigate: true},
		{name: "anonymous", want: DecisionRedirect, wantNavigate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newFakeSessions(tt.loading)
			sessions.session = tt.session
			nav := mocks.NewNavigator(t)
			if tt.wantNavigate {
				nav.On("Navigate", model.ViewLogin).Return().Once()
			}

			g := New(sessions, nav, testutil.MakeNoopLogger())

			assert.Equal(t, tt.want, g.Evaluate())
		})
	}
}

func TestGuard_Require_Allowed(t *testing.T) {
	sessions := newFakeSessions(false)
	sessions.session = authenticated
	g := New(sessions, mocks.NewNavigator(t), testutil.MakeNoopLogger())

	rendered := false
	err := g.Require(context.Background(), model.ViewMerge, func(context.Context) error {
		rendered = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, rendered)
}

func TestGuard_Require_RenderError(t *testing.T) {
	sessions := newFakeSessions(false)
	sessions.session = authenticated
	g := New(sessions, mocks.NewNavigator(t), testutil.MakeNoopLogger())

	boom := errors.New("boom")
	err := g.Require(context.Background(), model.ViewSplit, func(context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestGuard_Require_Denied(t *testing.T) {
	nav := mocks.NewNavigator(t)
	nav.On("Navigate", model.ViewLogin).Return().Once()
	g := New(newFakeSessions(false), nav, testutil.MakeNoopLogger())

	err := g.Require(context.Background(), model.ViewOCR, func(context.Context) error {
		t.Fatal("render must not run")
		return nil
	})

	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestGuard_Require_WaitsForSettle(t *testing.T) {
	sessions := newFakeSessions(true)
	placeholderShown := make(chan struct{})
	g := New(sessions, mocks.NewNavigator(t), testutil.MakeNoopLogger())
	g.SetPlaceholder(func() { close(placeholderShown) })

	go func() {
		<-placeholderShown
		sessions.settle(authenticated)
	}()

	rendered := false
	err := g.Require(context.Background(), model.ViewCompress, func(context.Context) error {
		rendered = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, rendered)
}

func TestGuard_Require_SettlesUnauthenticated(t *testing.T) {
	sessions := newFakeSessions(true)
	nav := mocks.NewNavigator(t)
	nav.On("Navigate", model.ViewLogin).Return().Once()
	g := New(sessions, nav, testutil.MakeNoopLogger())

	time.AfterFunc(10*time.Millisecond, func() { sessions.settle(model.Session{}) })

	err := g.Require(context.Background(), model.ViewConvert, func(context.Context) error { return nil })

	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestGuard_Require_CancelledWhileLoading(t *testing.T) {
	nav := mocks.NewNavigator(t)
	g := New(newFakeSessions(true), nav, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Require(ctx, model.ViewMerge, func(context.Context) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	nav.AssertNotCalled(t, "Navigate", model.ViewLogin)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "loading", DecisionLoading.String())
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "redirect", DecisionRedirect.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
