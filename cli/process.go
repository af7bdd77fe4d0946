package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/paylexhq/paylex/ledger"
	"github.com/paylexhq/paylex/telemetry"
)

type ProcessCmd struct {
	Instruction string `help:"Payment instruction sentence (omit to be prompted)." arg:"" optional:""`
	Accounts    string `help:"JSON file with the account set (use '-' for stdin)." short:"a" required:""`
}

func (cmd *ProcessCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	instruction := cmd.Instruction
	if instruction == "" {
		prompted, err := promptInstruction()
		if err != nil {
			return err
		}
		instruction = prompted
	}
	if strings.TrimSpace(instruction) == "" {
		return fmt.Errorf("instruction is required")
	}

	accounts, err := loadAccounts(cmd.Accounts)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	l := ledger.New()
	resp, err := l.Process(runCtx, instruction, accounts)
	if err != nil {
		return err
	}

	printResponse(ctx.Stdout, resp)

	if resp.Status == ledger.StatusFailed {
		return NewCommandError(1)
	}

	return nil
}

// printResponse renders a processed transaction: a status line, the
// interpreted instruction fields, and the account movements.
func printResponse(w io.Writer, resp *ledger.Response) {
	reason := fmt.Sprintf("%s %s", resp.StatusReason, dimStyle.Render("["+resp.StatusCode+"]"))

	switch resp.Status {
	case ledger.StatusSuccessful:
		printSuccess(w, reason)
	case ledger.StatusPending:
		printPending(w, reason)
	default:
		printError(w, reason)
	}

	if resp.Type != nil {
		_, _ = fmt.Fprintf(w, "\n  %s %d %s from %s to %s\n",
			*resp.Type, *resp.Amount, *resp.Currency,
			pathStyle.Render(*resp.DebitAccount),
			pathStyle.Render(*resp.CreditAccount),
		)
		if resp.ExecuteBy != nil {
			_, _ = fmt.Fprintf(w, "  execute by %s\n", *resp.ExecuteBy)
		}
	}

	if len(resp.Accounts) > 0 {
		_, _ = fmt.Fprintln(w)
		printAccountTable(w, resp.Accounts)
	}
}

// printAccountTable writes the before/after balances as an aligned table.
// Column widths use display width, not byte length, so identifiers with
// wide runes still line up.
func printAccountTable(w io.Writer, accounts []ledger.AccountState) {
	headers := []string{"ACCOUNT", "BEFORE", "AFTER", "CURRENCY"}

	rows := make([][]string, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, []string{
			acc.ID,
			acc.BalanceBefore.String(),
			acc.Balance.String(),
			acc.Currency,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Render(runewidth.FillRight(cell, widths[i]))
		}
		_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  "))
	}

	writeRow(headers, dimStyle)
	for _, row := range rows {
		writeRow(row, lipgloss.NewStyle())
	}
}
