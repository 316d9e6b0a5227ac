package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"parley/cmd/parley/chat"
	"parley/internal/bugreport"
	"parley/internal/config"
	"parley/internal/logging"
	"parley/internal/notify"
	"parley/internal/procsig"
	"parley/internal/rawmode"
	"parley/internal/version"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "parley - interactive terminal chat assistant",
	Long: `parley is an interactive chat assistant for the terminal.

It provides a Bubble Tea chat surface with a fuzzy command palette,
desktop notification triggers, and hot-reloadable configuration.

Run without arguments to start the interactive chat interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat()
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the parley version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parley %s\n", version.Version)
	},
}

// bugReportCmd builds a prefilled GitHub issue URL from the command line,
// for crashes that take the TUI down with them.
var bugReportCmd = &cobra.Command{
	Use:   "bug-report [title]",
	Short: "Generate a prefilled GitHub issue URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := bugreport.New(strings.Join(args, " "), version.Version, os.Getenv("TERM"), nil)
		if cfg, err := config.Load(config.DefaultPath()); err == nil {
			report.Repo = cfg.BugReport.Repo
		}
		fmt.Println(report.URL())

		if !rawmode.IsTerminal(int(os.Stdin.Fd())) {
			return nil
		}
		fmt.Print("Press y to open in $BROWSER, any other key to exit: ")
		guard, err := rawmode.EnterStdin()
		if err != nil {
			return nil // Not fatal; the URL is already printed.
		}
		defer func() { _ = guard.Restore() }()

		b, err := bufio.NewReader(os.Stdin).ReadByte()
		_ = guard.Restore()
		fmt.Println()
		if err == nil && (b == 'y' || b == 'Y') {
			if browser := os.Getenv("BROWSER"); browser != "" {
				return openWith(browser, report.URL())
			}
			fmt.Println("$BROWSER is not set; copy the URL above.")
		}
		return nil
	},
}

func runInteractiveChat() error {
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logging.Initialize(filepath.Dir(cfgPath), cfg.Logging); err != nil {
		logger.Warn("file logging unavailable", zap.Error(err))
	}
	defer logging.Close()

	notifier := notify.New(os.Stdout, notify.Method(cfg.Notifications.Method), cfg.Notifications.Enabled)

	model := chat.New(cfg, cfgPath, notifier, chat.NewEchoResponder())
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	// SIGINT/SIGTERM quit the program; Bubble Tea restores the terminal on
	// its way out.
	ctx, watcher := procsig.Watch(context.Background(), logger, func(os.Signal) {
		program.Quit()
	})
	defer watcher.Stop()

	cfgWatcher, err := config.NewWatcher(cfgPath, logger)
	if err != nil {
		logger.Warn("config hot-reload unavailable", zap.Error(err))
	} else {
		if err := cfgWatcher.Start(ctx); err != nil {
			logger.Warn("config watcher failed to start", zap.Error(err))
		}
		defer cfgWatcher.Stop()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		// Cancel unblocks the reload forwarder when the UI exits.
		defer cancel()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		if cfgWatcher == nil {
			return nil
		}
		for {
			select {
			case <-runCtx.Done():
				return nil
			case newCfg, ok := <-cfgWatcher.Updates():
				if !ok {
					return nil
				}
				program.Send(chat.ConfigReloadedMsg{Cfg: newCfg})
			}
		}
	})

	logging.Get(logging.CategoryBoot).Info("parley %s started", version.Version)
	return g.Wait()
}

func openWith(browser, url string) error {
	// Hand off to the user's browser command without waiting on it.
	return startDetached(browser, url)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.parley/config.yaml)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bugReportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startDetached launches cmd with url as its argument and does not wait.
func startDetached(cmd, url string) error {
	c := exec.Command(cmd, url)
	if err := c.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", cmd, err)
	}
	// Reap in the background to avoid zombies.
	go func() { _ = c.Wait() }()
	return nil
}
