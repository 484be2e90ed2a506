package build

import (
	cli "github.com/urfave/cli/v3"
)

// Flags returns flags understood by Run.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "reset", Aliases: []string{"r"}, Usage: "add reset stylesheet to the generated file"},
		&cli.BoolFlag{Name: "important", Usage: "mark every computed declaration !important"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write stylesheet to `FILE` instead of location from marker element"},
		&cli.BoolFlag{Name: "stdout", Usage: "print stylesheet instead of writing it"},
		&cli.StringFlag{Name: "charset", Usage: "force input document `ENCODING` (see IANA.org for character set names)"},
	}
}
