package bias

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressReporter observes long vocabulary-wide loops. Implementations must
// tolerate Increment/Finish without a prior Start.
type ProgressReporter interface {
	Start(total int)
	Increment()
	Finish()
}

// BarReporter renders progress to stderr with a terminal progress bar.
type BarReporter struct {
	description string
	bar         *progressbar.ProgressBar
}

// NewBarReporter creates a stderr progress bar with the given description.
func NewBarReporter(description string) *BarReporter {
	return &BarReporter{description: description}
}

func (p *BarReporter) Start(total int) {
	if total <= 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(p.description),
		progressbar.OptionSetWidth(32),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (p *BarReporter) Increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

func (p *BarReporter) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}

// DefaultProgressEnabled reports whether stderr is a terminal, the default
// condition for showing progress bars.
func DefaultProgressEnabled() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
