package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openonion/connectonion-go/llm"
)

func modelsCmd() *cobra.Command {
	var (
		provider   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the built-in model catalog",
		Run: func(cmd *cobra.Command, args []string) {
			models := llm.ListModels(provider)

			if jsonOutput {
				data, _ := json.MarshalIndent(models, "", "  ")
				fmt.Println(string(data))
				return
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "PROVIDER\tMODEL\tCONTEXT\tTOOLS\tALIASES\n")
			for _, m := range models {
				toolSupport := "no"
				if m.SupportsTools {
					toolSupport = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
					m.Provider, m.ID, m.ContextWindow, toolSupport, strings.Join(m.Aliases, ", "))
			}
			tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "filter by provider")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
