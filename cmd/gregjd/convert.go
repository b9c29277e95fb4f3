package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gregjd "github.com/jhkoning/go-gregorian-jd"
)

var cal2jdCmd = &cobra.Command{
	Use:   "cal2jd YEAR MONTH DAY [FRACTION]",
	Short: "Convert a proleptic Gregorian date to a Julian Date",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad year %q: %w", args[0], err)
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad month %q: %w", args[1], err)
		}
		day, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad day %q: %w", args[2], err)
		}
		frac := 0.0
		if len(args) == 4 {
			frac, err = strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("bad day fraction %q: %w", args[3], err)
			}
		}

		jd1, jd2, err := gregjd.CalToJD(year, month, day)
		if errors.Is(err, gregjd.ErrInvalidMonth) {
			return err
		}
		if err != nil {
			//advisory only: the value below is computed from the out-of-range input
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		fmt.Printf("%.*f\n", viper.GetInt("digits"), jd1+jd2+frac)
		return nil
	},
}

var jd2calCmd = &cobra.Command{
	Use:   "jd2cal JD1 [JD2]",
	Short: "Convert a Julian Date (one value, or the sum of two parts) to a calendar date",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jd1, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad Julian Date %q: %w", args[0], err)
		}
		jd2 := 0.0
		if len(args) == 2 {
			jd2, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("bad Julian Date part %q: %w", args[1], err)
			}
		}

		year, month, day, frac, err := gregjd.JDToCal(jd1, jd2)
		if err != nil {
			return err
		}
		fmt.Println(formatDate(year, month, day, frac))
		return nil
	},
}

// formatDate renders a converted date as YYYY-MM-DD plus the day fraction,
// e.g. "2024-01-01 +0.250000". Negative years keep their sign.
func formatDate(year, month, day int, frac float64) string {
	return fmt.Sprintf("%04d-%02d-%02d +%.*f", year, month, day, viper.GetInt("digits"), frac)
}

func init() {
	rootCmd.AddCommand(cal2jdCmd)
	rootCmd.AddCommand(jd2calCmd)
}
