package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(DefaultQuestions(), NewSeededShuffler(1))
	require.NoError(t, err)
	return s
}

func answerAll(t *testing.T, s *Session, cats ...Category) {
	t.Helper()
	for _, c := range cats {
		require.NoError(t, s.Answer(c))
	}
}

func TestNewSession_StartsAtFirstQuestion(t *testing.T) {
	s := newTestSession(t)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "What is your favorite type of activity?", q.Prompt)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 5, s.Questions())
	assert.Equal(t, Progress{Total: 5}, s.Progress())
}

func TestNewSession_RejectsInvalidQuestions(t *testing.T) {
	_, err := NewSession(nil, nil)
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestAnswer_TallyMatchesAnsweredCount(t *testing.T) {
	// Every answer sequence of every length up to the question count.
	cats := Categories()
	n := len(DefaultQuestions())

	var walk func(s *Session, depth int)
	walk = func(s *Session, depth int) {
		p := s.Progress()
		require.Equal(t, depth, p.Scores.Total())
		require.Equal(t, depth, p.Answered)
		require.Equal(t, depth == n, p.Finished)
		if depth == n {
			return
		}
		for _, c := range cats {
			next := *s
			require.NoError(t, next.Answer(c))
			walk(&next, depth+1)
		}
	}
	walk(newTestSession(t), 0)
}

func TestAnswer_AllDog(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 5; i++ {
		assert.False(t, s.Finished(), "finished early after %d answers", i)
		require.NoError(t, s.Answer(Dog))
	}

	require.True(t, s.Finished())
	assert.Equal(t, map[Category]int{Cat: 0, Dog: 5, Fox: 0, Hamster: 0, Horse: 0}, s.Scores().Map())

	winner, err := s.Winner()
	require.NoError(t, err)
	assert.Equal(t, Dog, winner)
	assert.Equal(t, "I am a dog! https://example.com", ShareText(winner, "https://example.com"))
}

func TestAnswer_Mixed(t *testing.T) {
	s := newTestSession(t)
	answerAll(t, s, Cat, Cat, Dog, Fox, Cat)

	assert.Equal(t, map[Category]int{Cat: 3, Dog: 1, Fox: 1, Hamster: 0, Horse: 0}, s.Scores().Map())
	winner, err := s.Winner()
	require.NoError(t, err)
	assert.Equal(t, Cat, winner)
}

func TestAnswer_LastQuestionKeepsIndex(t *testing.T) {
	s := newTestSession(t)
	answerAll(t, s, Horse, Horse, Horse, Horse, Horse)

	p := s.Progress()
	assert.Equal(t, 4, p.Index)
	assert.Equal(t, 5, p.Answered)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestAnswer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *Session)
		answer  Category
		wantErr error
	}{
		{"unknown category", func(*Session) {}, Category(42), ErrUnknownCategory},
		{"negative category", func(*Session) {}, Category(-1), ErrUnknownCategory},
		{"after finish", func(s *Session) {
			for i := 0; i < 5; i++ {
				_ = s.Answer(Fox)
			}
		}, Fox, ErrFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t)
			tt.setup(s)
			before := s.Progress()

			err := s.Answer(tt.answer)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Progress(), "state must not change on error")
		})
	}
}

func TestAnswer_ForeignOption(t *testing.T) {
	qs := []Question{
		{Prompt: "Pick one", Options: []Option{{Text: "Purr", Category: Cat}, {Text: "Woof", Category: Dog}}},
	}
	s, err := NewSession(qs, nil)
	require.NoError(t, err)

	err = s.Answer(Horse)
	require.ErrorIs(t, err, ErrForeignOption)
	assert.Zero(t, s.Scores().Total())
}

func TestReset_MatchesFreshSession(t *testing.T) {
	s := newTestSession(t)
	fresh := s.Progress()

	answerAll(t, s, Cat, Dog)
	s.Reset()
	assert.Equal(t, fresh, s.Progress())

	answerAll(t, s, Cat, Dog, Fox, Hamster, Horse)
	require.True(t, s.Finished())
	s.Reset()
	assert.Equal(t, fresh, s.Progress())
	assert.False(t, s.Finished())

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, DefaultQuestions()[0].Prompt, q.Prompt)
}

func TestWinner_BeforeFinish(t *testing.T) {
	s := newTestSession(t)
	answerAll(t, s, Dog, Dog)

	_, err := s.Winner()
	require.ErrorIs(t, err, ErrNotFinished)
}

func TestWinner_TieGoesToFirstDeclared(t *testing.T) {
	qs := DefaultQuestions()[:2]
	s, err := NewSession(qs, nil)
	require.NoError(t, err)

	// Answer in reverse declaration order so a "prefer later" reduce
	// would pick dog.
	answerAll(t, s, Dog, Cat)

	assert.Equal(t, map[Category]int{Cat: 1, Dog: 1, Fox: 0, Hamster: 0, Horse: 0}, s.Scores().Map())
	winner, err := s.Winner()
	require.NoError(t, err)
	assert.Equal(t, Cat, winner)
}

func TestPresentOptions_DoesNotMutateQuestion(t *testing.T) {
	s := newTestSession(t)
	q, _ := s.Current()
	orig := append([]Option(nil), q.Options...)

	for i := 0; i < 20; i++ {
		got := s.PresentOptions(q)
		assert.ElementsMatch(t, orig, got)
	}
	assert.Equal(t, orig, q.Options)
}
