package cli

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/paylexhq/paylex/parser"
)

type CheckCmd struct {
	Instruction string `help:"Payment instruction sentence (omit to be prompted)." arg:"" optional:""`
}

// Run parses the instruction without validating or executing it, so
// syntax can be checked without an account set at hand.
func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	inst, err := parser.Parse(instruction)
	if err != nil {
		var coded parser.Error
		if stdErrors.As(err, &coded) {
			printError(ctx.Stderr, fmt.Sprintf("%s %s", coded.Error(), dimStyle.Render("["+coded.Code()+"]")))
			return NewCommandError(1)
		}
		return err
	}

	printSuccess(ctx.Stdout, "Instruction parsed")
	_, _ = fmt.Fprintf(ctx.Stdout, "\n  %s %d %s from %s to %s\n",
		inst.Type, inst.Amount, inst.Currency,
		pathStyle.Render(inst.DebitAccount),
		pathStyle.Render(inst.CreditAccount),
	)
	if inst.ExecuteBy != "" {
		_, _ = fmt.Fprintf(ctx.Stdout, "  execute by %s\n", inst.ExecuteBy)
	}

	return nil
}
