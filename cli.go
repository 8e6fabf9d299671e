package tabreap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Socket     string
	Once       bool
	NoWatchUI  bool
	Completion string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "tabreap",
	Short: "Close Neovim buffers whose files a git checkout deleted or renamed.",
	Long: `Attach to a running Neovim instance and, after events where a checkout
may have happened (focus regained, buffer written), close buffers whose
files are no longer tracked by the enclosing git repository.

Example: tabreap --socket /tmp/nvim.sock`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		host, err := NewNvimManager(cfg.Socket)
		if err != nil {
			return fmt.Errorf("failed to connect to nvim: %w", err)
		}
		defer host.Close()

		app := NewApp(&Config{
			Socket:    cfg.Socket,
			Once:      cfg.Once,
			NoWatchUI: cfg.NoWatchUI,
		}, host)

		if cfg.Once {
			s := app.ReconcileActive()
			if s.Empty() {
				fmt.Println("nothing to close")
				return nil
			}
			fmt.Print(FormatSummary(s))
			return nil
		}

		events, err := host.Subscribe()
		if err != nil {
			return fmt.Errorf("failed to subscribe to editor events: %w", err)
		}

		if cfg.NoWatchUI {
			return watchPlain(app, events)
		}
		return NewWatchUI(app, events).Run()
	},
}

func watchPlain(app *App, events <-chan string) error {
	for ev := range events {
		if ev == eventQuit {
			return nil
		}
		if s := app.ReconcileActive(); !s.Empty() {
			fmt.Print(FormatSummary(s))
		}
	}
	return nil
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.Socket, "socket", "s", "", "Nvim socket address (default $NVIM_LISTEN_ADDRESS)")
	rootCmd.Flags().BoolVar(&cfg.Once, "once", false, "Reconcile once and exit")
	rootCmd.Flags().BoolVar(&cfg.NoWatchUI, "no-watch-ui", false, "Watch without the full-screen UI")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
