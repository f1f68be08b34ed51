package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_DeclarationOrder(t *testing.T) {
	var names []string
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"cat", "dog", "fox", "hamster", "horse"}, names)
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, Cat.Valid())
	assert.True(t, Horse.Valid())
	assert.False(t, Category(-1).Valid())
	assert.False(t, Category(5).Valid())
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"cat", Cat, false},
		{"Hamster", Hamster, false},
		{" horse ", Horse, false},
		{"unicorn", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "/fox.png", ImagePath(Fox))
	assert.Equal(t, "You are most similar to a hamster!", Headline(Hamster))
	assert.Equal(t, "I am a dog! https://quiz.example", ShareText(Dog, "https://quiz.example"))
}

func TestScoreBoard_Leader(t *testing.T) {
	tests := []struct {
		name  string
		votes []Category
		want  Category
	}{
		{"empty board", nil, Cat},
		{"cat dog tie", []Category{Dog, Cat}, Cat},
		{"fox horse tie", []Category{Horse, Fox, Horse, Fox}, Fox},
		{"clear winner", []Category{Hamster, Hamster, Cat}, Hamster},
		{"last declared", []Category{Horse}, Horse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ScoreBoard
			for _, c := range tt.votes {
				b.Add(c)
			}
			assert.Equal(t, tt.want, b.Leader())
			assert.Equal(t, len(tt.votes), b.Total())
		})
	}
}

func TestScoreBoard_IgnoresInvalid(t *testing.T) {
	var b ScoreBoard
	b.Add(Category(12))
	assert.Zero(t, b.Total())
	assert.Zero(t, b.Count(Category(12)))
	assert.Len(t, b.Map(), 5)
}
