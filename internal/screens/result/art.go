package result

import (
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/animalquiz/internal/quiz"
	"github.com/abhisek/animalquiz/internal/ui/theme"
)

// Terminal stand-ins for the per-animal result images.
var portraits = map[qz.Category]string{
	qz.Cat: ` /\_/\
( o.o )
 > ^ <`,
	qz.Dog: `  __
o-''|\_____/)
 \_/|_)     )
    \  __  /
    (_/ (_/`,
	qz.Fox: ` /\   /\
//\\_//\\
\_     _/
 / * * \
 \_\O/_/`,
	qz.Hamster: ` (\_/)
 (o.o)
(")_(")`,
	qz.Horse: `    ,--,
  _/ <\_
 (_  ,  )
   |/ \|
   "   "`,
}

// renderPortrait returns the ASCII portrait for c in its theme color.
func renderPortrait(c qz.Category) string {
	return lipgloss.NewStyle().
		Foreground(theme.CategoryColor(c.String())).
		Render(portraits[c])
}
