package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/i18n"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
)

// Out receives status output. The generated README is the only thing
// written to stdout.
var Out io.Writer = os.Stderr

var activeSpinner *SmartSpinner
var suspendedSpinner *SmartSpinner

// SmartSpinner wraps a terminal spinner. Only one spinner is active at a time
// so log output and prompts can pause it.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithWriter(Out),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

// Start starts the spinner and registers it as the globally active spinner.
func (s *SmartSpinner) Start() {
	activeSpinner = s
	s.spinner.Start()
}

// Stop stops the spinner and clears the active spinner record.
func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
	if activeSpinner == s {
		activeSpinner = nil
	}
	if suspendedSpinner == s {
		suspendedSpinner = nil
	}
}

// StopActiveSpinner stops the currently active spinner in the terminal session.
func StopActiveSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}

// SuspendActiveSpinner temporarily stops the active spinner without deleting its reference,
// allowing it to be resumed after user interaction.
func SuspendActiveSpinner() {
	if activeSpinner != nil {
		suspendedSpinner = activeSpinner
		activeSpinner.spinner.Stop()
		activeSpinner = nil
	}
}

// ResumeSuspendedSpinner resumes the previously suspended spinner.
func ResumeSuspendedSpinner() {
	if suspendedSpinner != nil {
		activeSpinner = suspendedSpinner
		activeSpinner.spinner.Start()
		suspendedSpinner = nil
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Lock()
	s.spinner.Suffix = " " + MateEmoji + " " + msg
	s.spinner.Unlock()
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(Out, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(Out, msg)
}

func (s *SmartSpinner) Warning(msg string) {
	s.Stop()
	PrintWarning(msg)
}

func (s *SmartSpinner) Log(msg string) {
	s.Stop()
	fmt.Fprintln(Out, msg)
	s.Start()
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(msg string) {
	fmt.Fprintf(Out, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Fprintf(Out, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

// PrintDuration reports a finished step with its elapsed time.
func PrintDuration(msg string, duration time.Duration) {
	fmt.Fprintf(Out, "%s %s %s\n", SuccessEmoji, Success.Sprint(msg), Dim.Sprintf("(%s)", duration.Round(10*time.Millisecond)))
}

// PrintErrorWithSuggestion prints a usage error followed by an example of a
// valid invocation.
func PrintErrorWithSuggestion(errMsg, suggestion string) {
	PrintError(Out, errMsg)
	if suggestion != "" {
		fmt.Fprintf(Out, "   %s\n", Info.Sprint(suggestion))
	}
}

// HandleAppError handles an application error and displays it in a friendly way.
// If translations is nil, it will use English defaults.
func HandleAppError(err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		errorColor := color.New(color.FgRed, color.Bold)
		suggestionColor := color.New(color.FgCyan)
		dimColor := color.New(color.FgHiBlack)

		fmt.Fprintln(Out)
		_, _ = errorColor.Fprintf(Out, "❌ %s: %s\n", appErr.Type, appErr.Message)

		if appErr.Err != nil {
			detailsPrefix := "Details"
			if t != nil {
				detailsPrefix = t.GetMessage("ui_error.details", 0, nil)
			}
			_, _ = dimColor.Fprintf(Out, "   %s: %v\n", detailsPrefix, appErr.Err)
		}

		if repo, ok := appErr.Context["repo"].(string); ok && repo != "" {
			_, _ = dimColor.Fprintf(Out, "   %s\n", repo)
		}

		if appErr.Suggestion != "" {
			fmt.Fprintln(Out)
			tryPrefix := "💡 Try: "
			if t != nil {
				tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
			}
			_, _ = suggestionColor.Fprintf(Out, "%s", tryPrefix)
			lines := strings.Split(appErr.Suggestion, "\n")
			for i, line := range lines {
				if i == 0 {
					fmt.Fprintln(Out, line)
				} else {
					fmt.Fprintf(Out, "       %s\n", line)
				}
			}
		}
		fmt.Fprintln(Out)

		return
	}

	PrintError(Out, err.Error())
}

func PrintKeyValue(key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	fmt.Fprintf(Out, "   %s %s\n", keyColored, valueColored)
}

func AskConfirmation(question string) bool {
	SuspendActiveSpinner()
	defer ResumeSuspendedSpinner()

	fmt.Fprintf(Out, "\n%s (y/n): ", Info.Sprint(question))
	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes" || response == "s" || response == "si"
}

// WithSpinnerAndDuration runs fn behind a spinner. On success done is printed
// with the elapsed time. On failure the spinner is cleared and the error is
// left to the caller.
func WithSpinnerAndDuration(message, done string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	start := time.Now()
	err := fn()
	s.Stop()
	if err != nil {
		return err
	}

	PrintDuration(done, time.Since(start))
	return nil
}
