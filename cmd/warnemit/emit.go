package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Station-Manager/warnings"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	escalatedColor = color.New(color.FgRed, color.Bold)
	errorColor     = color.New(color.FgRed)
)

func newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit MESSAGE...",
		Short: "Emit one warning per MESSAGE",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEmit,
	}
	cmd.Flags().String("type", "", "warning category (default \"Warning\")")
	cmd.Flags().String("code", "", "stable warning code")
	cmd.Flags().String("detail", "", "extra text printed under the warning")
	return cmd
}

func runEmit(cmd *cobra.Command, args []string) error {
	sub, err := newSubsystem(cmd)
	if err != nil {
		return err
	}
	defer sub.Close()

	typ, _ := cmd.Flags().GetString("type")
	code, _ := cmd.Flags().GetString("code")
	detail, _ := cmd.Flags().GetString("detail")

	for _, msg := range args {
		if err := sub.Emit(msg, warnings.Options{Type: typ, Code: code, Detail: detail}); err != nil {
			return err
		}
	}
	return nil
}

func printError(err error) {
	var w *warnings.Warning
	if errors.As(err, &w) {
		_, _ = escalatedColor.Fprintf(os.Stderr, "escalated %s\n", w.String())
		if w.Code() != "" {
			_, _ = fmt.Fprintf(os.Stderr, "  code: %s\n", w.Code())
		}
		return
	}
	_, _ = errorColor.Fprintf(os.Stderr, "error: %v\n", err)
}
