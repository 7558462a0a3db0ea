package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// huhConfirm asks through a huh form, falling back to the accessible line
// prompt when in is not a terminal.
func huhConfirm(in io.Reader, out io.Writer) func(string) (bool, error) {
	return func(title string) (bool, error) {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Affirmative("Delete").
					Negative("Cancel").
					Value(&confirmed),
			),
		).WithInput(in).WithOutput(out)
		if !isTerminal(in) {
			form = form.WithAccessible(true)
		}
		if err := form.Run(); err != nil {
			return false, err
		}
		return confirmed, nil
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
