package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/config"
	"github.com/abhisek/animalquiz/internal/logging"
	"github.com/abhisek/animalquiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "animalquiz",
	Short: "Which animal are you?",
	Long:  "Animal Quiz: answer five questions in the terminal and find out which animal you are most like.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides ANIMALQUIZ_CONFIG env var)")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config using --config flag (highest priority),
// then ANIMALQUIZ_CONFIG env var, then the default XDG path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	return config.Load(path)
}

// newLogger builds the file logger described by cfg.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// newSession starts a quiz over the built-in questions. A non-zero
// configured seed makes option order reproducible.
func newSession(cfg config.Config) (*quiz.Session, error) {
	var shuffler *quiz.Shuffler
	if cfg.Quiz.Seed != 0 {
		shuffler = quiz.NewSeededShuffler(cfg.Quiz.Seed)
	}
	session, err := quiz.NewSession(quiz.DefaultQuestions(), shuffler)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return session, nil
}
