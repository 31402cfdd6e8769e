package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/thali/menu"
)

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print one display line per thali",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			thalis, err := loadMenu()
			if err != nil {
				return err
			}

			lines := make([]string, len(thalis))
			for i, t := range thalis {
				lines[i] = menu.Describe(t)
			}

			return withOutput(cmd, func(w io.Writer) error {
				switch format {
				case "text":
					return writeLines(w, lines)
				case "csv":
					return writeColumnCSV(w, "description", lines)
				default:
					return writeJSON(w, lines, format)
				}
			})
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise counts, prices and names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			thalis, err := loadMenu()
			if err != nil {
				return err
			}

			stats := menu.ComputeStats(thalis)

			return withOutput(cmd, func(w io.Writer) error {
				switch format {
				case "text":
					return writeLines(w, statsLines(stats))
				case "csv":
					return writeStatsCSV(w, stats)
				default:
					return writeJSON(w, stats, format)
				}
			})
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "List thalis whose name or items contain QUERY (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thalis, err := loadMenu()
			if err != nil {
				return err
			}

			matches := menu.Search(thalis, args[0])

			return withOutput(cmd, func(w io.Writer) error {
				switch format {
				case "text":
					lines := make([]string, len(matches))
					for i, t := range matches {
						lines[i] = menu.Describe(t)
					}
					return writeLines(w, lines)
				case "csv":
					return writeRecordsCSV(w, matches)
				default:
					return writeJSON(w, matches, format)
				}
			})
		},
	}
}

func receiptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt CUSTOMER",
		Short: "Print a bill for CUSTOMER covering every thali in the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thalis, err := loadMenu()
			if err != nil {
				return err
			}

			receipt := menu.Receipt(args[0], thalis)

			return withOutput(cmd, func(w io.Writer) error {
				switch format {
				case "text":
					_, err := fmt.Fprintln(w, receipt)
					return err
				case "csv":
					return writeColumnCSV(w, "receipt", strings.Split(receipt, "\n"))
				default:
					return writeJSON(w, receipt, format)
				}
			})
		},
	}
}

// statsLines renders stats as a human-readable summary.
func statsLines(s *menu.Stats) []string {
	if s == nil {
		return []string{"No thalis."}
	}

	names := make([]string, len(s.Names))
	for i, n := range s.Names {
		names[i] = menu.ValueText(n)
	}

	return []string{
		fmt.Sprintf("Thalis: %d (%d veg, %d non-veg)", s.TotalThalis, s.VegCount, s.NonVegCount),
		fmt.Sprintf("Average price: Rs.%s", s.AvgPrice),
		fmt.Sprintf("Cheapest: Rs.%s", menu.ValueText(s.Cheapest)),
		fmt.Sprintf("Costliest: Rs.%s", menu.ValueText(s.Costliest)),
		fmt.Sprintf("Names: %s", strings.Join(names, ", ")),
	}
}
