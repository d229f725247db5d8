package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints every flag of the current command for shell completion.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(cmd.Root().Writer, "-"+name)
			} else {
				_, _ = fmt.Fprintln(cmd.Root().Writer, "--"+name)
			}
		}
	}
}
