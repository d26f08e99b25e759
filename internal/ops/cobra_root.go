package ops

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agnoctl/internal/config"
)

// buildRootCmd is a convenience for help-only fallbacks.
func buildRootCmd() *cobra.Command {
	return buildRootCmdWith(&Config{ServeAddr: ":8090", LogLvl: "info"})
}

// buildRootCmdWith constructs a Cobra command tree wired to the existing fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "agnoctl",
		Short:         "Operate the local Agno stack (compose, models, db, status)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("config", cfg.ConfigPath, "Path to a yaml/json/toml config file (defaults AGNOCTL_CONFIG)")
	root.PersistentFlags().String("log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults AGNOCTL_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("config"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.ConfigPath = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.LogLvl = v
			}
		}
		SetLogLevel(cfg.LogLvl)
	}

	loadStack := func() (config.Config, error) { return config.LoadOrEnv(cfg.ConfigPath) }

	// stack lifecycle
	var wait bool
	upCmd := &cobra.Command{Use: "up", Short: "Launch the stack, GPU profile when a device is present", Example: "  agnoctl up --wait", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnStackUp(context.Background(), stack, wait)
	}}
	upCmd.Flags().BoolVar(&wait, "wait", false, "Wait for the API to respond before returning")
	downCmd := &cobra.Command{Use: "down", Short: "Stop the stack", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnStackDown(context.Background(), stack)
	}}
	var restartWait bool
	restartCmd := &cobra.Command{Use: "restart", Short: "Down then up with the same GPU selection", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnStackRestart(context.Background(), stack, restartWait)
	}}
	restartCmd.Flags().BoolVar(&restartWait, "wait", false, "Wait for the API to respond before returning")
	root.AddCommand(upCmd, downCmd, restartCmd)

	// models group
	modelsCmd := &cobra.Command{Use: "models", Short: "Manage the inference engine's model cache", RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("models requires a subcommand: sync|list")
	}}
	modelsSyncCmd := &cobra.Command{Use: "sync", Short: "Pull every catalogue model not already cached", Example: "  agnoctl models sync", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnModelsSync(context.Background(), stack)
	}}
	modelsListCmd := &cobra.Command{Use: "list", Short: "List cached models with sizes", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnModelsList(context.Background(), stack)
	}}
	modelsCmd.AddCommand(modelsSyncCmd, modelsListCmd)
	root.AddCommand(modelsCmd)

	// db group
	dbCmd := &cobra.Command{Use: "db", Short: "Database shortcuts", RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("db requires a subcommand: init|shell")
	}}
	dbInitCmd := &cobra.Command{Use: "init", Short: "Create the stack tables (idempotent)", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnInitDB(context.Background(), stack)
	}}
	dbShellCmd := &cobra.Command{Use: "shell", Short: "Open psql inside the database container", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnDBShell(context.Background(), stack)
	}}
	dbCmd.AddCommand(dbInitCmd, dbShellCmd)
	root.AddCommand(dbCmd)

	// status / validate
	statusCmd := &cobra.Command{Use: "status", Short: "Print one pass/fail line per service", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnRunStatus(context.Background(), stack)
	}}
	validateCmd := &cobra.Command{Use: "validate", Short: "Exit non-zero when Ollama or the database is down", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnValidate(context.Background(), stack)
	}}
	root.AddCommand(statusCmd, validateCmd)

	// docs group
	docsCmd := &cobra.Command{Use: "docs", Short: "Regenerate operator documentation", RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("docs requires a subcommand: deploy-guide|baseline")
	}}
	docsGuideCmd := &cobra.Command{Use: "deploy-guide", Short: "Regenerate docs/DEPLOY_GUIDE.md", RunE: func(cmd *cobra.Command, args []string) error {
		return fnGenDeployGuide("docs")
	}}
	docsBaselineCmd := &cobra.Command{Use: "baseline", Short: "Regenerate docs/BASELINE_STATUS.md from a live snapshot", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnGenBaseline(context.Background(), stack, "docs")
	}}
	docsCmd.AddCommand(docsGuideCmd, docsBaselineCmd)
	root.AddCommand(docsCmd)

	// serve
	serveCmd := &cobra.Command{Use: "serve", Short: "Run the status daemon (/healthz, /status, /metrics)", RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return fnServe(context.Background(), stack, cfg.ServeAddr)
	}}
	serveCmd.Flags().StringVar(&cfg.ServeAddr, "addr", cfg.ServeAddr, "Listen address")
	root.AddCommand(serveCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
