package variants

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/padron/internal/app"
	"nathanbeddoewebdev/padron/internal/variant"

	"github.com/spf13/cobra"
)

// NewCommand returns the "variants" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the supported spreadsheet layouts",
		Long: `List the built-in variants. A variant fixes the column headers read
from the workbook, the lookup key and the default workbook file name.
The active one (from --variant or config) is marked with *.`,
		Args:         cobra.NoArgs,
		RunE:         runVariants,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

type variantJSON struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Key           string   `json:"key"`
	DefaultSource string   `json:"default_source"`
	Headers       []string `json:"headers"`
	Active        bool     `json:"active"`
}

func runVariants(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	active := variant.Default
	if settings, err := app.Resolve(cmd); err == nil {
		active = settings.Variant.Name
	}

	all := variant.All()
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "json":
		out := make([]variantJSON, 0, len(all))
		for _, v := range all {
			out = append(out, variantJSON{
				Name:          v.Name,
				Description:   v.Description,
				Key:           v.Matcher.Label(),
				DefaultSource: v.DefaultSource,
				Headers:       v.Columns.Headers(),
				Active:        v.Name == active,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "\tNAME\tKEY\tDEFAULT SOURCE\tHEADERS")
		for _, v := range all {
			mark := ""
			if v.Name == active {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				mark, v.Name, v.Matcher.Label(), v.DefaultSource, strings.Join(v.Columns.Headers(), ", "))
		}
		return w.Flush()

	default:
		return fmt.Errorf("invalid output format %q (must be table or json)", output)
	}
}
