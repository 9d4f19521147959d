package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a roster file",
	Long:  `Load a roster file and report every problem found, one per line.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := settings.Config
	if len(args) == 1 {
		path = args[0]
	}

	file, err := config.Load(path)
	if err != nil {
		out := cmd.OutOrStdout()
		fields := errors.ValidationErrors(err)
		if len(fields) == 0 {
			return err
		}

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, msg := range fields[name] {
				fmt.Fprintf(out, "%s: %s\n", name, msg)
			}
		}
		return errors.InvalidArgumentf("%s has %d invalid fields", path, len(names))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d names, %d groups, %d name eggs, %d group eggs)\n",
		path,
		len(file.Roster(entities.KindPersonal)),
		len(file.Roster(entities.KindGroup)),
		len(file.EggCases),
		len(file.EggCasesGroup),
	)
	return nil
}
