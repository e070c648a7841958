package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	authinadapter "worksphere/internal/modules/auth/adapter/in"
	authoutadapter "worksphere/internal/modules/auth/adapter/out"
	authservice "worksphere/internal/modules/auth/service"
	authusecase "worksphere/internal/modules/auth/usecase"
	dashboardinadapter "worksphere/internal/modules/dashboard/adapter/in"
	dashboardoutadapter "worksphere/internal/modules/dashboard/adapter/out"
	dashboardservice "worksphere/internal/modules/dashboard/service"
	dashboardusecase "worksphere/internal/modules/dashboard/usecase"
	sessioninadapter "worksphere/internal/modules/session/adapter/in"
	sessionoutadapter "worksphere/internal/modules/session/adapter/out"
	sessionservice "worksphere/internal/modules/session/service"
	sessionusecase "worksphere/internal/modules/session/usecase"
	"worksphere/internal/platform/browser"
	"worksphere/internal/platform/clock"
	"worksphere/internal/platform/config"
	"worksphere/internal/platform/id"
	"worksphere/internal/platform/logger"
	uiapp "worksphere/internal/ui/app"
)

// SignInHint is printed when the session is cleared outside the TUI.
const SignInHint = "Signed out. Run `worksphere login` to sign in again."

type App struct {
	SessionCLI   sessioninadapter.CLIHandler
	AuthCLI      authinadapter.CLIHandler
	AuthTUI      authinadapter.TUIHandler
	DashboardCLI dashboardinadapter.CLIHandler
	Log          *slog.Logger

	navigator *sessionoutadapter.FuncNavigator
	closers   []io.Closer
}

// New wires every module against cfg. hints receives the sign-in hint when
// the session is cleared outside the TUI.
func New(cfg config.Config, hints io.Writer) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	log, logFile, err := logger.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	store, err := sessionoutadapter.NewSQLiteKVStore(cfg.DBPath)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("new session store: %w", err)
	}
	navigator := sessionoutadapter.NewFuncNavigator(func(context.Context) error {
		_, err := fmt.Fprintln(hints, SignInHint)
		return err
	})
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(store, navigator, log.With("module", "session")))

	provider := authoutadapter.NewGoogleIdentityProvider(authoutadapter.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Issuer:       cfg.GoogleIssuer,
		Open:         browser.Open,
		IDs:          ids,
		Log:          log.With("module", "google"),
	})
	authLog := log.With("module", "auth")
	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(authoutadapter.NewHTTPGateway(cfg.APIBaseURL, cfg.HTTPTimeout, nil), sessionUC, clk, authLog),
		provider,
		authLog,
	)

	dashboardLog := log.With("module", "dashboard")
	dashboardUC := dashboardusecase.NewInteractor(
		dashboardservice.NewDashboardService(
			dashboardoutadapter.NewStaticJobCatalog(cfg.ApplyDelay),
			dashboardoutadapter.NewAuthPassportReader(authUC),
			dashboardoutadapter.NewMarkdownPassportExporter(),
			clk,
			ids,
			dashboardLog,
		),
		clk,
		dashboardLog,
	)

	return &App{
		SessionCLI:   sessioninadapter.NewCLIHandler(sessionUC),
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		AuthTUI:      authinadapter.NewTUIHandler(authUC),
		DashboardCLI: dashboardinadapter.NewCLIHandler(dashboardUC),
		Log:          log,
		navigator:    navigator,
		closers:      []io.Closer{store, logFile},
	}, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RunTUI starts the terminal UI. While it runs, clearing the session sends
// the program back to its entry screen instead of printing the hint.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.AuthTUI, app.DashboardCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	app.navigator.Set(func(context.Context) error {
		go program.Send(uiapp.SignedOutMsg{})
		return nil
	})
	_, err := program.Run()
	return err
}
