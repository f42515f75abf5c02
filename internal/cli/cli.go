package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtroode/pdfgenie-client/internal/intake"
	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/present"
	"github.com/dtroode/pdfgenie-client/internal/workflow"
)

const passwordEnv = "PDFGENIE_PASSWORD"

// Sessions is the session store as seen by the commands.
type Sessions interface {
	model.SessionState
	Login(ctx context.Context, username, password string) (bool, error)
	Signup(ctx context.Context, username, email, password string) error
	Logout()
}

// Gate runs a view only for authenticated users.
type Gate interface {
	Require(ctx context.Context, view model.View, render func(ctx context.Context) error) error
	SetPlaceholder(fn func())
}

// Workflow executes tools.
type Workflow interface {
	Run(ctx context.Context, tool workflow.Tool, files []intake.File) (workflow.Result, error)
	OnPhase(fn func(workflow.Event))
	Forget()
}

// TextSaver writes OCR output.
type TextSaver interface {
	SaveText(ctx context.Context, text, name string) (model.SavedFile, error)
}

// Backend serves the informational endpoints.
type Backend interface {
	Documents(ctx context.Context) ([]model.Document, error)
	Health(ctx context.Context) (model.Health, error)
}

// BuildInfo is injected at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type Deps struct {
	Sessions  Sessions
	Guard     Gate
	Runner    Workflow
	Saver     TextSaver
	Backend   Backend
	Inspector model.TokenInspector
	Logger    *logger.Logger
	Build     BuildInfo

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App is the pdfgenie command tree.
type App struct {
	deps    Deps
	present *present.Presenter
	noColor bool
	root    *cobra.Command
}

func New(deps Deps) *App {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Err == nil {
		deps.Err = os.Stderr
	}

	a := &App{deps: deps}
	a.present = present.New(deps.Out, false)
	a.root = a.rootCommand()

	deps.Guard.SetPlaceholder(func() { a.present.Placeholder() })
	deps.Runner.OnPhase(func(e workflow.Event) { a.present.Progress(e) })
	return a
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdfgenie",
		Short:         "Merge, split, compress, convert and OCR PDFs with PDFGenie",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.present = present.New(a.deps.Out, a.noColor)
		},
	}
	root.SetIn(a.deps.In)
	root.SetOut(a.deps.Out)
	root.SetErr(a.deps.Err)
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.loginCommand(),
		a.signupCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.mergeCommand(),
		a.splitCommand(),
		a.compressCommand(),
		a.convertCommand(),
		a.ocrCommand(),
		a.searchableCommand(),
		a.documentsCommand(),
		a.healthCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the command line and renders any failure.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)
	if err != nil {
		a.present.Error(err)
	}
	return err
}

// waitReady blocks until the session store has settled.
func (a *App) waitReady(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-a.deps.Sessions.Ready():
		return nil
	}
}

func (a *App) password(cmd *cobra.Command, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(passwordEnv); env != "" {
		return env, nil
	}

	fmt.Fprint(a.deps.Err, "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", model.NewValidationError("password", "must not be empty")
	}
	return line, nil
}
