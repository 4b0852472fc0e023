// internal/app.go
package app

import (
	"fmt"
	"io"
	"log/slog"

	"atombank/internal/cli"
	"atombank/internal/config"
	"atombank/internal/repository"
	"atombank/internal/repository/memory"
	"atombank/internal/util"
)

// Application holds all the initialized components of the bank. Repositories
// are explicit instances created here and injected downwards; there is no
// package-level state, so tests can build isolated applications.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger

	// Repositories
	AccountRepository    repository.AccountRepository
	InvestmentRepository repository.InvestmentRepository

	// Interactive menu
	Menu *cli.Menu
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components, wiring the menu to the
// given input and output streams.
func (app *Application) Initialize(in io.Reader, out io.Writer) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(cfg.LogFormat, cfg.LogLevel)
	app.Logger = util.GetLogger()
	app.Logger.Debug("configuration loaded", "bank", cfg.BankName)

	// 3. Initialize Repositories. The ledger is volatile by design: all
	// state lives for the process lifetime and is lost on exit.
	accounts := memory.NewAccountRepository()
	app.AccountRepository = accounts
	app.InvestmentRepository = memory.NewInvestmentRepository(accounts)

	// 4. Initialize the menu loop
	app.Menu = cli.NewMenu(app.AccountRepository, app.InvestmentRepository, cfg.BankName, in, out, app.Logger)

	return nil
}

// Run executes the interactive menu until the user exits.
func (app *Application) Run() {
	app.Logger.Info("bank started", "bank", app.Config.BankName)
	app.Menu.Run()
	app.Logger.Info("bank stopped")
}
