package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/animalquiz/internal/config"
	"github.com/abhisek/animalquiz/internal/quiz"
)

const testSeed = 11

type fakeSharer struct {
	shared []string
	err    error
}

func (f *fakeSharer) Share(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.shared = append(f.shared, text)
	return nil
}

func testDeps(t *testing.T) plainDeps {
	t.Helper()
	session, err := quiz.NewSession(quiz.DefaultQuestions(), quiz.NewSeededShuffler(testSeed))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Site.URL = "https://quiz.example"
	return plainDeps{session: session, cfg: cfg}
}

// answersFor builds input lines choosing the option voting for each
// category, replaying the shuffles a seeded session performs.
func answersFor(t *testing.T, cats ...quiz.Category) string {
	t.Helper()
	shuffler := quiz.NewSeededShuffler(testSeed)
	qs := quiz.DefaultQuestions()
	require.Len(t, cats, len(qs))

	var b strings.Builder
	for i, q := range qs {
		idx := -1
		for j, o := range shuffler.Options(q.Options) {
			if o.Category == cats[i] {
				idx = j
			}
		}
		require.GreaterOrEqual(t, idx, 0)
		fmt.Fprintf(&b, "%d\n", idx+1)
	}
	return b.String()
}

func TestRunPlain_AllDog(t *testing.T) {
	d := testDeps(t)
	in := answersFor(t, quiz.Dog, quiz.Dog, quiz.Dog, quiz.Dog, quiz.Dog)
	var out bytes.Buffer

	require.NoError(t, runPlain(context.Background(), strings.NewReader(in), &out, d))

	s := out.String()
	assert.Contains(t, s, "── Question 1/5 ──")
	assert.Contains(t, s, "── Question 5/5 ──")
	assert.Contains(t, s, "You are most similar to a dog!")
	assert.Contains(t, s, "https://quiz.example/dog.png")
	assert.Contains(t, s, "Share: I am a dog! https://quiz.example\n")
	assert.Equal(t, 5, d.session.Scores().Count(quiz.Dog))
}

func TestRunPlain_RejectsInvalidInput(t *testing.T) {
	d := testDeps(t)
	in := "abc\n0\n9\n" + answersFor(t, quiz.Fox, quiz.Cat, quiz.Fox, quiz.Horse, quiz.Fox)
	var out bytes.Buffer

	require.NoError(t, runPlain(context.Background(), strings.NewReader(in), &out, d))

	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a number between 1 and 5."))
	assert.Contains(t, out.String(), "You are most similar to a fox!")
	assert.Equal(t, 5, d.session.Answered())
}

func TestRunPlain_InputClosedEarly(t *testing.T) {
	d := testDeps(t)
	var out bytes.Buffer

	err := runPlain(context.Background(), strings.NewReader("1\n2\n"), &out, d)
	require.ErrorIs(t, err, errInputClosed)
	assert.Equal(t, 2, d.session.Answered())
	assert.False(t, d.session.Finished())
}

func TestRunPlain_CopiesToClipboard(t *testing.T) {
	d := testDeps(t)
	clip := &fakeSharer{}
	d.clip = clip
	in := answersFor(t, quiz.Hamster, quiz.Hamster, quiz.Cat, quiz.Hamster, quiz.Dog)
	var out bytes.Buffer

	require.NoError(t, runPlain(context.Background(), strings.NewReader(in), &out, d))

	assert.Equal(t, []string{"I am a hamster! https://quiz.example"}, clip.shared)
	assert.Contains(t, out.String(), "Copied to clipboard.")
}

func TestRunPlain_CopyFailureIsNotFatal(t *testing.T) {
	d := testDeps(t)
	d.clip = &fakeSharer{err: errors.New("no xclip")}
	in := answersFor(t, quiz.Cat, quiz.Cat, quiz.Cat, quiz.Cat, quiz.Cat)
	var out bytes.Buffer

	require.NoError(t, runPlain(context.Background(), strings.NewReader(in), &out, d))
	assert.Contains(t, out.String(), "Could not copy: no xclip")
}

func TestRunPlain_Retake(t *testing.T) {
	session, err := quiz.NewSession([]quiz.Question{
		{Prompt: "Pick one", Options: []quiz.Option{{Text: "Meow", Category: quiz.Cat}}},
		{Prompt: "Pick again", Options: []quiz.Option{{Text: "Neigh", Category: quiz.Horse}}},
	}, nil)
	require.NoError(t, err)
	d := plainDeps{session: session, cfg: config.Default()}
	var out bytes.Buffer

	in := "1\n1\ny\n1\n1\nn\n"
	require.NoError(t, runPlain(context.Background(), strings.NewReader(in), &out, d))

	// Tie between cat and horse goes to cat, declared first.
	assert.Equal(t, 2, strings.Count(out.String(), "You are most similar to a cat!"))
	assert.True(t, session.Finished())
	assert.Equal(t, 1, session.Scores().Count(quiz.Horse))
}

func TestRunQuestions_FilterByAnimal(t *testing.T) {
	var out bytes.Buffer
	questionsCmd.SetOut(&out)
	require.NoError(t, questionsCmd.Flags().Set("animal", "Fox"))
	t.Cleanup(func() { _ = questionsCmd.Flags().Set("animal", "") })

	require.NoError(t, runQuestions(questionsCmd, nil))

	s := out.String()
	assert.Contains(t, s, "1. What is your favorite type of activity?")
	assert.Contains(t, s, "Exploring forests")
	assert.NotContains(t, s, "Playing fetch")
	assert.Equal(t, 5, strings.Count(s, " fox\n"))
}

func TestRunQuestions_UnknownAnimal(t *testing.T) {
	require.NoError(t, questionsCmd.Flags().Set("animal", "owl"))
	t.Cleanup(func() { _ = questionsCmd.Flags().Set("animal", "") })

	err := runQuestions(questionsCmd, nil)
	require.ErrorIs(t, err, quiz.ErrUnknownCategory)
}
