package cmd

import (
	"fmt"

	"github.com/go-drift/pressable/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate and print a theme file",
		Long: `Validate a pressable theme file and print the resolved values.

Fields missing from the file keep their defaults. Without an argument the
default theme is printed.`,
		Usage: "pressreplay theme [FILE]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	t := theme.DefaultPressableTheme()
	if len(args) > 0 {
		loaded, err := theme.LoadPressableTheme(args[0])
		if err != nil {
			return err
		}
		t = loaded
	}

	fmt.Fprintf(stdout, "activeOpacity:            %.2f\n", t.ActiveOpacity)
	fmt.Fprintf(stdout, "pressInDuration:          %v\n", t.PressInDuration)
	fmt.Fprintf(stdout, "pressOutDuration:         %v\n", t.PressOutDuration)
	fmt.Fprintf(stdout, "underlayHideDelay:        %v\n", t.UnderlayHideDelay)
	if t.UnderlayColor != 0 {
		fmt.Fprintf(stdout, "underlayColor:            %s\n", t.UnderlayColor)
	} else {
		fmt.Fprintln(stdout, "underlayColor:            none")
	}
	fmt.Fprintf(stdout, "longPressDelay:           %v\n", t.LongPressDelay)
	fmt.Fprintf(stdout, "longPressAllowedMovement: %.1f\n", t.LongPressAllowedMovement)
	in := t.PressRegionInset
	fmt.Fprintf(stdout, "pressRegionInset:         top=%.0f left=%.0f right=%.0f bottom=%.0f\n",
		in.Top, in.Left, in.Right, in.Bottom)
	return nil
}
