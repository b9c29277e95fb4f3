package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhkoning/go-gregorian-jd/diffcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the differential suite against the restricted legacy algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := diffcheck.Run()

		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")
		if from <= to {
			res.Merge(diffcheck.RunYears(from, to))
		}

		for _, f := range res.Failures {
			fmt.Fprintln(os.Stderr, f)
		}
		fmt.Printf("%d passed, %d failed\n", res.Pass, res.Fail)
		if res.Fail > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Int("from", -9, "first year of the day-by-day sweep")
	checkCmd.Flags().Int("to", 12, "last year of the day-by-day sweep")
	rootCmd.AddCommand(checkCmd)
}
