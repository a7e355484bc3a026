// SPDX-License-Identifier: MIT

// Package view renders arrays and law-check reports as terminal tables.
//
// Tables are built with tablewriter into a buffer and written in one call,
// so a failing writer leaves no half-drawn table. Colour is opt-in: callers
// decide with IsTTY.
package view

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvarray/barray"
	"github.com/katalvlaran/lvarray/lawcheck"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// Status labels of a report row.
const (
	StatusOK   = "ok"
	StatusFail = "FAIL"
)

// MaxWindowRows is the widest range WriteWindow prints.
const MaxWindowRows = 4096

// ErrWindowTooWide is returned by WriteWindow for ranges over MaxWindowRows.
var ErrWindowTooWide = errors.New("view: window too wide")

// fillerNote marks rows whose value is the filler.
const fillerNote = "filler"

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newTable returns a borderless table writing into buf.
func newTable(buf *bytes.Buffer, header []string, align []int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(align)

	return table
}

// WriteWindow prints the reads of a on [first, last], one row per index.
// Rows holding the filler are marked; the footer shows the support of a.
// Ranges of more than MaxWindowRows indices yield a wrapped ErrWindowTooWide
// and print nothing.
//
// Complexity: O(last-first+1).
func WriteWindow[T comparable](w io.Writer, a barray.Array[T], first, last int) error {
	if err := barray.ValidateRange(first, last); err != nil {
		return err
	}
	if n := (barray.Bounds{First: first, Last: last}).Len(); n > MaxWindowRows {
		return fmt.Errorf("[%d..%d] has %d rows, limit %d: %w", first, last, n, MaxWindowRows, ErrWindowTooWide)
	}

	var buf bytes.Buffer
	table := newTable(&buf,
		[]string{"Index", "Value", "Note"},
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for i, v := range a.All(first, last) {
		note := ""
		if v == a.Dummy() {
			note = fillerNote
		}
		table.Append([]string{strconv.Itoa(i), fmt.Sprint(v), note})
	}
	table.SetFooter([]string{"support", barray.Support(a).String(), ""})
	table.Render()

	_, err := w.Write(buf.Bytes())

	return err
}

// WriteReport prints one row per law followed by the first counterexample
// of every failed law and a summary line.
func WriteReport(w io.Writer, rep lawcheck.Report, color bool) error {
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}

		return s.Render(text)
	}

	var buf bytes.Buffer
	table := newTable(&buf,
		[]string{"Law", "Trials", "Failures", "Status"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, r := range rep.Results {
		status := paint(okStyle, StatusOK)
		if !r.OK() {
			status = paint(failStyle, StatusFail)
		}
		table.Append([]string{r.Name, strconv.Itoa(r.Trials), strconv.Itoa(r.Failures), status})
	}
	table.Render()

	for _, r := range rep.Failed() {
		fmt.Fprintf(&buf, "\n%s %s\n", paint(failStyle, r.Name+":"), r.Counterexample)
	}

	failed := len(rep.Failed())
	summary := fmt.Sprintf("seed %d: %d laws, %d trials, %d failed",
		rep.Seed, len(rep.Results), rep.TotalTrials(), failed)
	if failed == 0 {
		summary = paint(titleStyle, summary)
	} else {
		summary = paint(failStyle, summary)
	}
	fmt.Fprintf(&buf, "\n%s\n", summary)

	_, err := w.Write(buf.Bytes())

	return err
}

// Muted renders a secondary line, e.g. a hint under a table.
func Muted(text string, color bool) string {
	if !color {
		return text
	}

	return mutedStyle.Render(text)
}
