// Package cli provides the command-line interface for processing payment
// instructions.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/paylexhq/paylex/ledger"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"
	pendingSymbol = "⧖"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FFD787", Dark: "#FFD787"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printPending(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		pendingStyle.Render(pendingSymbol),
		message,
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptInstruction asks for an instruction interactively. Returns an
// empty string when stdin is not a terminal.
func promptInstruction() (string, error) {
	if !isTerminal() {
		return "", nil
	}

	var instruction string

	form := huh.NewInput().
		Title("Payment instruction").
		Placeholder("DEBIT 100 USD FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT B1").
		Value(&instruction)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read instruction: %w", err)
	}

	return instruction, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// loadAccounts reads a JSON array of accounts from a file, or from stdin
// when the path is "-".
func loadAccounts(path string) ([]ledger.Account, error) {
	var raw []byte
	var err error

	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read accounts from stdin: %w", err)
		}
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	var accounts []ledger.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("invalid accounts JSON: %w", err)
	}

	return accounts, nil
}
