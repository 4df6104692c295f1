package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/internal/store"
	"github.com/msto63/iadate/pkg/iatime"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Manage named IA instants",
	Long: `Stores named IA instants in a local SQLite database.

Examples:
  iadate mark add release 15-03-2024
  iadate mark list
  iadate mark rm release`,
}

var markAddCmd = &cobra.Command{
	Use:   "add <name> [instant]",
	Short: "Save an instant under a name",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runMarkAdd,
}

var markListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved instants",
	Args:    cobra.NoArgs,
	RunE:    runMarkList,
}

var markRmCmd = &cobra.Command{
	Use:     "rm <name|id>",
	Aliases: []string{"delete"},
	Short:   "Delete a saved instant",
	Args:    cobra.ExactArgs(1),
	RunE:    runMarkRm,
}

func init() {
	rootCmd.AddCommand(markCmd)
	markCmd.AddCommand(markAddCmd)
	markCmd.AddCommand(markListCmd)
	markCmd.AddCommand(markRmCmd)
}

func openMarks() (*store.SQLiteMarkStore, error) {
	return store.NewSQLiteMarkStore(store.Config{Path: appConfig.Store.Path})
}

func runMarkAdd(cmd *cobra.Command, args []string) error {
	inst, err := instantArg(args, 1)
	if err != nil {
		return err
	}
	s, err := openMarks()
	if err != nil {
		return err
	}
	defer s.Close()

	m, err := s.Save(context.Background(), args[0], inst)
	if err != nil {
		return err
	}
	appLogger.Debug("mark saved", mdwlog.Fields{"id": m.ID, "name": m.Name, "ticks": m.Ticks})
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", m.Name, m.Instant())
	return nil
}

func runMarkList(cmd *cobra.Command, args []string) error {
	s, err := openMarks()
	if err != nil {
		return err
	}
	defer s.Close()

	marks, err := s.List(context.Background())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(marks) == 0 {
		fmt.Fprintln(out, "no marks saved")
		return nil
	}

	rows := make([][]string, 0, len(marks))
	for _, m := range marks {
		date, err := renderer.Format(m.Instant(), "dd-MM-yyyy HH:mm")
		if err != nil {
			return err
		}
		rel, err := iatime.RelativeIATime(m.Ticks, iatime.FormatText)
		if err != nil {
			return err
		}
		rows = append(rows, []string{m.Name, fmt.Sprintf("%d", m.Ticks), date, rel, m.ID[:8]})
	}
	fmt.Fprintln(out, renderTable([]string{"NAME", "TICKS", "DATE", "RELATIVE", "ID"}, rows))
	return nil
}

func runMarkRm(cmd *cobra.Command, args []string) error {
	s, err := openMarks()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
