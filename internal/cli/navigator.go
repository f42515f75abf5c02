package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

var _ model.Navigator = (*Navigator)(nil)

// Navigator maps view changes onto command hints.
type Navigator struct {
	out io.Writer

	mu   sync.Mutex
	last model.View
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Navigate(view model.View) {
	n.mu.Lock()
	n.last = view
	n.mu.Unlock()

	switch view {
	case model.ViewLogin:
		fmt.Fprintln(n.out, `You are not logged in. Run "pdfgenie login" first.`)
	case model.ViewSignup:
		fmt.Fprintln(n.out, `Run "pdfgenie signup" to create an account.`)
	}
}

// Last returns the most recent view, or "" when none was requested.
func (n *Navigator) Last() model.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}
