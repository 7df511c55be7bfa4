package ui

import (
	"fmt"
	"strings"

	"apptest/internal/domain"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewer displays stored test results
type Viewer interface {
	View(results []domain.TestResult) error
}

// FailureViewer displays failed app tests in an interactive TUI
type FailureViewer struct {
	formatter *Formatter
}

// NewFailureViewer creates a new FailureViewer. The formatter is used when
// there is nothing to browse.
func NewFailureViewer(formatter *Formatter) *FailureViewer {
	return &FailureViewer{formatter: formatter}
}

// failureLayout holds the widgets of the viewer so they can be inspected
// without running a terminal application.
type failureLayout struct {
	root    *tview.Flex
	header  *tview.TextView
	list    *tview.List
	details *tview.TextView
	failed  []domain.TestResult
}

// View displays failures in an interactive TUI until the user quits
func (fv *FailureViewer) View(results []domain.TestResult) error {
	failed := domain.Failures(results)
	if len(failed) == 0 {
		fv.formatter.PrintFailures(color.Output, results)
		return nil
	}

	app := tview.NewApplication()
	layout := newFailureLayout(results)
	layout.bindKeys(app)

	if err := app.SetRoot(layout.root, true).SetFocus(layout.list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newFailureLayout(results []domain.TestResult) *failureLayout {
	l := &failureLayout{failed: domain.Failures(results)}

	l.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, r := range l.failed {
		l.list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(r.Name)), "", 0, nil)
	}
	l.list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	l.details = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	l.header = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	l.header.SetText(fmt.Sprintf(" App Test Failures (%d of %d failed) | ↑↓ navigate, → view details, ← back, Ctrl+C exit ", len(l.failed), len(results)))

	l.list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		l.showDetails(index)
	})
	l.showDetails(0)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(l.list, 0, 1, true).
		AddItem(l.details, 0, 2, false)

	l.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(l.header, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	return l
}

func (l *failureLayout) showDetails(index int) {
	if index < 0 || index >= len(l.failed) {
		l.details.SetText("")
		return
	}
	l.details.SetText(formatFailureDetails(l.failed[index]))
}

func (l *failureLayout) bindKeys(app *tview.Application) {
	l.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(l.details)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	l.details.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(l.list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
}

// formatFailureDetails formats a failure using tview color tags
func formatFailureDetails(r domain.TestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ App: %s[white]\n\n", tview.Escape(r.Name))

	diag := strings.TrimRight(r.Diagnostic, "\n")
	if diag == "" {
		b.WriteString("[gray](no diagnostic output)[white]\n")
		return b.String()
	}
	fmt.Fprintf(&b, "[yellow]Diagnostic:[white]\n%s\n", tview.Escape(diag))
	return b.String()
}
