package internal

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// Step names one phase of an optimization run.
type Step int

const (
	StepIdle Step = iota
	StepResolvingTranscript
	StepGeneratingTitles
	StepGeneratingDescription
	StepExtractingTags
	StepScoring
	StepComplete
)

// String returns the progress label for a step
func (s Step) String() string {
	switch s {
	case StepResolvingTranscript:
		return "resolving_transcript"
	case StepGeneratingTitles:
		return "generating_titles"
	case StepGeneratingDescription:
		return "generating_description"
	case StepExtractingTags:
		return "extracting_tags"
	case StepScoring:
		return "scoring"
	case StepComplete:
		return "complete"
	default:
		return "idle"
	}
}

// StepReporter receives progress events as the orchestrator advances. It keeps
// status display decoupled from the business logic that advances it; the
// orchestrator is the single writer.
type StepReporter interface {
	Step(step Step, detail string)
}

// SilentReporter discards all progress events (quiet and MCP modes).
type SilentReporter struct{}

func (SilentReporter) Step(Step, string) {}

// StepFunc adapts a function to the StepReporter interface, used by tests and
// by callers that want to forward events elsewhere.
type StepFunc func(step Step, detail string)

func (f StepFunc) Step(step Step, detail string) { f(step, detail) }

// UIManager handles all user interface concerns (progress, verbose output, prompts)
type UIManager interface {
	NewSpinner(description string) ProgressBar

	// StepReporter returns the reporter that renders orchestration progress
	StepReporter() StepReporter

	// Verbose output
	Verbose(format string, args ...interface{})

	// Status messages
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

// ProgressBar interface abstracts the status spinner operations
type ProgressBar interface {
	Advance()
	Describe(description string)
	Finish()
}

// StandardUIManager handles normal UI operations
type StandardUIManager struct {
	verbose bool
	quiet   bool
}

func NewUIManager(verbose, quiet bool) UIManager {
	return &StandardUIManager{
		verbose: verbose,
		quiet:   quiet,
	}
}

func (ui *StandardUIManager) NewSpinner(description string) ProgressBar {
	if ui.quiet {
		return &SilentProgressBar{bar: progressbar.DefaultSilent(-1)}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish())
	return &VisibleProgressBar{bar: bar}
}

// StepReporter returns a reporter backed by a status spinner
func (ui *StandardUIManager) StepReporter() StepReporter {
	if ui.quiet {
		return SilentReporter{}
	}
	return &spinnerReporter{ui: ui}
}

func (ui *StandardUIManager) Verbose(format string, args ...interface{}) {
	if ui.verbose {
		fmt.Printf(format, args...)
	}
}

func (ui *StandardUIManager) Printf(format string, args ...interface{}) {
	if !ui.quiet {
		fmt.Printf(format, args...)
	}
}

func (ui *StandardUIManager) Println(args ...interface{}) {
	if !ui.quiet {
		fmt.Println(args...)
	}
}

// spinnerReporter renders orchestration steps on a single status spinner. The
// spinner is created lazily on the first non-idle step and finished on
// StepComplete, leaving a clean line behind.
type spinnerReporter struct {
	ui      *StandardUIManager
	spinner ProgressBar
}

func (r *spinnerReporter) Step(step Step, detail string) {
	if step == StepComplete {
		if r.spinner != nil {
			r.spinner.Finish()
			r.spinner = nil
		}
		return
	}
	if step == StepIdle {
		return
	}

	label := detail
	if label == "" {
		label = step.String()
	}

	if r.spinner == nil {
		r.spinner = r.ui.NewSpinner(label)
		return
	}
	r.spinner.Describe(label)
	r.spinner.Advance()
}

// VisibleProgressBar wraps the actual progress bar
type VisibleProgressBar struct {
	bar *progressbar.ProgressBar
}

func (v *VisibleProgressBar) Advance() {
	v.bar.Add(1)
}

func (v *VisibleProgressBar) Describe(description string) {
	v.bar.Describe(description)
}

func (v *VisibleProgressBar) Finish() {
	v.bar.Finish()
}

// SilentProgressBar implements a silent progress bar
type SilentProgressBar struct {
	bar *progressbar.ProgressBar
}

func (s *SilentProgressBar) Advance() {
	s.bar.Add(1)
}

func (s *SilentProgressBar) Describe(description string) {
	// Do nothing for silent mode
}

func (s *SilentProgressBar) Finish() {
	s.bar.Finish()
}
