package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/skillmaker/internal/registry"
)

var (
	listMatch string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated skills",
	Long:  `List the skills under the output root, read from each skill's SKILL.md.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list skills whose name matches this glob")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := registry.Discover(cmd.Context(), settings.OutputDir)
	if err != nil {
		return fmt.Errorf("discovering skills: %w", err)
	}

	entries, err = registry.Filter(entries, listMatch)
	if err != nil {
		return err
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}

	if len(entries) == 0 {
		if listMatch != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No skills matching %q.\n", listMatch)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No skills generated yet.")
		}
		return nil
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []registry.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tTEMPLATE\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, orDash(e.Version), orDash(e.Template), orDash(e.Description))
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []registry.Entry) error {
	if entries == nil {
		entries = []registry.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
