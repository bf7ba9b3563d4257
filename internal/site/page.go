package site

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
)

var pageTemplate = template.Must(template.New("daily").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>{{.Title}} Solution – {{.Display}}</title>
  <link rel="stylesheet" href="../style.css">
</head>
<body>
  <header>
    <div class="container">
      <a href="/" class="logo">LinkedIn <span>Games</span></a>
      <nav>
        <a href="/">Home</a>
        <a href="/today/">Today's Solutions</a>
        <a href="/about.html">About</a>
      </nav>
    </div>
  </header>

  <main class="container">
    <h1>{{.Title}} – {{.Display}}</h1>

    <img src="../images/{{.Game}}_{{.Code}}.jpeg" alt="{{.Title}} Solution" style="max-width: 60%;">

    <footer>
      <hr>
      <a href="../today/" class="nav">← Back to Today's Solutions</a>
    </footer>
  </main>
</body>
</html>
`))

// GeneratePage writes the daily solution page for a game and date. An
// existing page is authoritative and is never overwritten; generation is
// then a no-op returning false.
func (u *Updater) GeneratePage(game models.Game, date datecode.Date) (bool, error) {
	if !models.IsValidGame(game) {
		return false, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}

	rel := PagePath(game, date.Code())
	if _, err := os.Stat(u.abs(rel)); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	var sb strings.Builder
	err := pageTemplate.Execute(&sb, struct {
		Title   string
		Display string
		Game    string
		Code    string
	}{
		Title:   game.Title(),
		Display: date.Display(),
		Game:    string(game),
		Code:    date.Code(),
	})
	if err != nil {
		return false, err
	}

	if err := u.writeDocument(rel, sb.String()); err != nil {
		return false, err
	}
	return true, nil
}
