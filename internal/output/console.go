package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// ConsoleFormatter renders the projection as a year-by-year table with a
// personal and a corporate section. Amounts are man-yen with one decimal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(data domain.CashFlowData) ([]byte, error) {
	buf := &bytes.Buffer{}
	years := data.Years()

	fmt.Fprintf(buf, "LIFE PLAN CASH FLOW PROJECTION\n")
	fmt.Fprintf(buf, "%d years, all amounts in units of 10,000 yen\n\n", len(years))

	fmt.Fprintf(buf, "PERSONAL\n")
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tAge\tIncome\tExpense\tBalance\tInvested\tAssets\tLiabilities\tNet\t")
	for _, year := range years {
		row := data[year]
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year, row.Age,
			row.TotalIncome.StringFixed(1),
			row.TotalExpense.StringFixed(1),
			row.Balance.StringFixed(1),
			row.InvestmentBalance.StringFixed(1),
			row.TotalAssets.StringFixed(1),
			row.LiabilityTotal.StringFixed(1),
			row.NetAssets.StringFixed(1))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintf(buf, "\nCORPORATE\n")
	w = tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tIncome\tExpense\tBalance\tInvested\tAssets\tLiabilities\tNet\t")
	for _, year := range years {
		row := data[year]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Year,
			row.CorporateTotalIncome.StringFixed(1),
			row.CorporateTotalExpense.StringFixed(1),
			row.CorporateBalance.StringFixed(1),
			row.CorporateInvestmentBalance.StringFixed(1),
			row.CorporateTotalAssets.StringFixed(1),
			row.CorporateLiabilityTotal.StringFixed(1),
			row.CorporateNetAssets.StringFixed(1))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
