package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/animalquiz/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the built-in questions and the animal each option votes for",
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().String("animal", "", "Only show options voting for this animal (cat, dog, fox, hamster, horse)")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	animal, _ := cmd.Flags().GetString("animal")

	filter := func(quiz.Option) bool { return true }
	if animal != "" {
		c, err := quiz.ParseCategory(animal)
		if err != nil {
			return err
		}
		filter = func(o quiz.Option) bool { return o.Category == c }
	}

	out := cmd.OutOrStdout()
	for i, q := range quiz.DefaultQuestions() {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
		for _, o := range q.Options {
			if filter(o) {
				fmt.Fprintf(out, "   - %-40s %s\n", o.Text, o.Category)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
