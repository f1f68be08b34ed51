package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/animalquiz/internal/config"
	"github.com/abhisek/animalquiz/internal/quiz"
	"github.com/abhisek/animalquiz/internal/share"
)

// errInputClosed is returned when input ends before the quiz is finished.
var errInputClosed = errors.New("input closed before the quiz finished")

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Take the quiz with line-based input (no full-screen UI)",
	Long: `Print each question with numbered options and read the chosen number
from standard input. Useful over dumb terminals and for scripting.`,
	RunE: runPlainCmd,
}

func init() {
	plainCmd.Flags().Bool("copy", false, "Also copy the share text to the clipboard")
}

func runPlainCmd(cmd *cobra.Command, args []string) error {
	copyFlag, _ := cmd.Flags().GetBool("copy")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	var clip share.Sharer
	if copyFlag {
		if !share.Available() {
			return fmt.Errorf("--copy: no clipboard utility found")
		}
		clip = share.NewClipboard()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return runPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), plainDeps{
		session: session,
		cfg:     cfg,
		clip:    clip,
		log:     log,
	})
}

type plainDeps struct {
	session *quiz.Session
	cfg     config.Config
	clip    share.Sharer // nil skips copying
	log     *zap.Logger
}

// runPlain drives one or more rounds of the quiz over line-based I/O.
func runPlain(ctx context.Context, in io.Reader, out io.Writer, d plainDeps) error {
	if d.log == nil {
		d.log = zap.NewNop()
	}
	log := d.log.With(zap.String("session_id", d.session.ID()), zap.String("mode", "plain"))
	scanner := bufio.NewScanner(in)

	for {
		log.Info("quiz started", zap.Int("questions", d.session.Questions()))
		if err := askAll(out, scanner, d.session, log); err != nil {
			return err
		}
		if err := printResult(ctx, out, d, log); err != nil {
			return err
		}

		fmt.Fprint(out, "\nTake the quiz again? [y/N]: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			log.Info("quiz retaken")
			d.session.Reset()
			fmt.Fprintln(out)
		default:
			return nil
		}
	}
}

// askAll presents every remaining question once and records the answers.
func askAll(out io.Writer, scanner *bufio.Scanner, session *quiz.Session, log *zap.Logger) error {
	for !session.Finished() {
		q, _ := session.Current()
		p := session.Progress()
		options := session.PresentOptions(q)

		fmt.Fprintf(out, "── Question %d/%d ──\n", p.Index+1, p.Total)
		fmt.Fprintln(out, q.Prompt)
		for i, o := range options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
		}

		opt, err := readChoice(out, scanner, options)
		if err != nil {
			return err
		}
		if err := session.Answer(opt.Category); err != nil {
			return fmt.Errorf("answer question %d: %w", p.Index+1, err)
		}
		log.Debug("answered",
			zap.Int("index", p.Index),
			zap.String("option", opt.Text),
			zap.Stringer("category", opt.Category))
		fmt.Fprintln(out)
	}
	return nil
}

// readChoice prompts until a valid option number is entered.
func readChoice(out io.Writer, scanner *bufio.Scanner, options []quiz.Option) (quiz.Option, error) {
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return quiz.Option{}, fmt.Errorf("read answer: %w", err)
			}
			return quiz.Option{}, errInputClosed
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[n-1], nil
	}
}

func printResult(ctx context.Context, out io.Writer, d plainDeps, log *zap.Logger) error {
	winner, err := d.session.Winner()
	if err != nil {
		return err
	}
	scores := d.session.Scores()
	fields := []zap.Field{zap.Stringer("winner", winner)}
	for _, c := range quiz.Categories() {
		fields = append(fields, zap.Int(c.String(), scores.Count(c)))
	}
	log.Info("quiz finished", fields...)

	fmt.Fprintf(out, "── %s ──\n", quiz.Headline(winner))
	fmt.Fprintln(out, d.cfg.ImageURL(winner))
	fmt.Fprintln(out)
	for _, c := range quiz.Categories() {
		fmt.Fprintf(out, "  %-8s %d/%d\n", c, scores.Count(c), d.session.Questions())
	}

	text := quiz.ShareText(winner, d.cfg.Site.URL)
	fmt.Fprint(out, "\nShare: ")
	if err := share.NewWriter(out).Share(ctx, text); err != nil {
		return err
	}
	if d.clip != nil {
		if err := d.clip.Share(ctx, text); err != nil {
			log.Warn("share failed", zap.Error(err))
			fmt.Fprintf(out, "Could not copy: %v\n", err)
		} else {
			fmt.Fprintln(out, "Copied to clipboard.")
		}
	}
	return nil
}
