package cli

import (
	"fmt"
	"io"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/report"
)

// termSurface shows progress and errors on stderr. The report itself is
// written from the returned submission.
type termSurface struct {
	errOut io.Writer
	target string
}

var _ app.Surface = (*termSurface)(nil)

func (s *termSurface) Notify(err error) {
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

func (s *termSurface) ResetReport() {}

func (s *termSurface) EnterBusy() {
	fmt.Fprintf(s.errOut, "Analyzing %s ...\n", s.target)
}

func (s *termSurface) ExitBusy() {}

func (s *termSurface) ShowReport(*report.View) {}
