package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/glavblock/glavblock/internal/colony"
	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/locale"
	"github.com/glavblock/glavblock/internal/persist"
	"github.com/glavblock/glavblock/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[31;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[31;1m  │\033[0m             GLAVBLOCK  v0.1.0             \033[31;1m│\033[0m")
	fmt.Println("\033[31;1m  │\033[0m       colony block turn simulator         \033[31;1m│\033[0m")
	fmt.Println("\033[31;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mColony:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - utf8.RuneCountInString(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - utf8.RuneCountInString(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/colony.toml"
	if p := os.Getenv("GLAVBLOCK_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	defaulted := false
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err, defaulted = config.Default(), nil, true
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	if defaulted {
		log.Info("no config file, using defaults", zap.String("path", cfgPath))
	}

	names, err := locale.NewNames(cfg.Display.Language)
	if err != nil {
		return err
	}

	printBanner(cfg.Colony.Name)

	// 3. Balance tables
	printSection("Data")
	catalog := data.DefaultCatalog()
	if cfg.Colony.Catalog != "" {
		if catalog, err = data.LoadCatalog(cfg.Colony.Catalog); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}
	printStat("Stationary kinds", len(data.Stationaries()))
	printStat("Resource kinds", len(data.Resources()))

	// 4. Found the colony
	engine := scripting.NewEngine(log)
	defer engine.Close()

	scenarioName, seed := "default", colony.LuaScenario(engine, "default", scripting.DefaultScenario())
	if cfg.Colony.Scenario != "" {
		scenarioName, seed = cfg.Colony.Scenario, colony.LuaScenarioFile(engine, cfg.Colony.Scenario)
	}

	col := colony.New(cfg.Colony.Name, catalog, cfg.Rules, log)
	if err := col.Bootstrap(seed); err != nil {
		return err
	}
	printStat("Rooms", len(col.Rooms()))
	printStat("Colonists", col.State().Headcount())
	printOK("Scenario " + scenarioName + " loaded")
	fmt.Println()

	// 5. Optional turn journal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var jr *journal
	if cfg.Journal.Enabled {
		printSection("Journal")
		jr, err = openJournal(ctx, cfg, col, scenarioName, log)
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
		defer jr.Close()
		printOK("PostgreSQL connected, migrations applied")
		fmt.Println()
	}

	// 6. Console
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	con := newConsole(col, names, os.Stdout, jr)
	printSection("Ready")
	printReady("type 'help' for commands")
	fmt.Println()

	for {
		con.prompt()
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := con.exec(ctx, line); quit {
				log.Info("colony closed", zap.Int("turn", col.Turn()))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()), zap.Int("turn", col.Turn()))
			return nil
		}
	}
}

func openJournal(ctx context.Context, cfg *config.Config, col *colony.Colony, scenario string, log *zap.Logger) (*journal, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(dialCtx, cfg.Journal, log)
	if err != nil {
		return nil, err
	}
	if err := persist.RunMigrations(dialCtx, db.Pool); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	repo := persist.NewJournalRepo(db, cfg.Journal.WriteTimeout)
	runID, err := repo.StartRun(dialCtx, col.Name(), scenario, col.Digest())
	if err != nil {
		db.Close()
		return nil, err
	}
	return &journal{db: db, repo: repo, run: runID, log: log}, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
