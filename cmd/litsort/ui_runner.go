package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"litsort/internal/driver"
	"litsort/internal/source"
	"litsort/internal/ui"
)

type runOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runUI runs work in the background while a progress view consumes events.
// work's hooks must send to events; runUI closes it when work returns.
func runUI(ctx context.Context, title string, files []string, events chan ui.Event, work func() (*source.FileSet, []driver.FileResult, error), out io.Writer) (*source.FileSet, []driver.FileResult, error) {
	outcomeCh := make(chan runOutcome, 1)
	go func() {
		fs, results, err := work()
		close(events)
		outcomeCh <- runOutcome{fs: fs, results: results, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// view закрыт раньше времени, события больше никто не читает
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
