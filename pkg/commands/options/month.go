package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/quest"
)

// MonthOptions
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month="2026-02", --month="2026/2" or --month=2.`)
}

// Resolve turns the flag into a YYYY-MM key. A bare month number is taken
// in year. An empty flag resolves to "".
func (o *MonthOptions) Resolve(year int) (string, error) {
	m := strings.TrimSpace(o.Month)
	if m == "" {
		return "", nil
	}
	if !strings.ContainsAny(m, datekey.Separators) {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			return "", fmt.Errorf("%w: month %q", quest.ErrMalformedDate, o.Month)
		}
		return datekey.MonthKey(year, n), nil
	}
	y, n, err := datekey.ParseMonthKey(strings.ReplaceAll(m, "/", "-"))
	if err != nil {
		return "", err
	}
	return datekey.MonthKey(y, n), nil
}
