package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/search"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("aborted by user")

// RunAccessibleSearch is the screen-reader friendly search: a plain
// prompt loop instead of the full-window TUI. An empty answer ends the
// loop.
func RunAccessibleSearch(ctx context.Context, svc *search.Service, opts SearchOptions, w io.Writer) error {
	matcher := svc.Matcher()

	loadErr := spinner.New().
		Title("Loading records...").
		Accessible(true).
		Output(os.Stderr).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			svc.Load(ctx)
			return nil
		}).
		Run()
	if loadErr != nil {
		if errors.Is(loadErr, huh.ErrUserAborted) || errors.Is(loadErr, context.Canceled) {
			return ErrAborted
		}
		return loadErr
	}
	if err := svc.LoadErr(); err != nil {
		fmt.Fprintf(w, "Warning: could not load %s; every search will come back empty\n", opts.Source)
	}

	for {
		var query string
		input := huh.NewInput().
			Title(matcher.Label()).
			Description("Leave empty to exit").
			Value(&query)

		if err := runForm(true, huh.NewGroup(input)); err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(query) == "" {
			return nil
		}
		// Same boundary filter as the full-window input.
		query = matcher.Sanitize(query)
		if query == "" {
			fmt.Fprintln(w, "Only digits are accepted.")
			continue
		}

		res, err := svc.Search(ctx, query)
		if err != nil {
			return err
		}
		if err := WriteResult(w, res, opts.WithSchedule); err != nil {
			return err
		}
	}
}

// WriteResult prints a result as aligned "Label: value" lines, or the
// not-found message.
func WriteResult(w io.Writer, res search.Result, withSchedule bool) error {
	if !res.Found() {
		_, err := fmt.Fprintln(w, notFoundText(res))
		return err
	}
	return WriteStudent(w, *res.Student, withSchedule)
}

// WriteStudent prints one record as aligned "Label: value" lines.
func WriteStudent(w io.Writer, s domain.Student, withSchedule bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range s.Fields(withSchedule) {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	return tw.Flush()
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
