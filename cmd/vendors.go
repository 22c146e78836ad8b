package cmd

import (
	"fmt"
	"strings"

	"vendor-rates/feature/rates/vendor"

	"github.com/spf13/cobra"
)

// vendorsCmd prints the vendor registry.
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported vendors",
	Long:  `Lists every vendor the service can process, with its sheets and keywords.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range vendor.All() {
			fmt.Printf("%s (%s)\n", d.DisplayName, d.Key)
			fmt.Printf("  sheets:   %s\n", strings.Join(d.Sheets, ", "))
			fmt.Printf("  keywords: %s\n", strings.Join(d.Keywords, ", "))
			if d.Shape == vendor.ShapeFiles {
				fmt.Printf("  files:    %d separate uploads\n", len(d.Sheets))
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(vendorsCmd)
}
