package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// CSVFormatter exports the full ledger, one row per projected year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(data domain.CashFlowData) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "Age",
		"MainIncome", "SideIncome", "SpouseIncome", "PensionIncome", "SpousePensionIncome",
		"InvestmentIncome", "EventIncome", "TotalIncome",
		"LivingExpense", "HousingExpense", "EducationExpense", "OtherExpense",
		"LoanRepayment", "EventExpense", "TotalExpense",
		"Balance", "InvestmentContribution", "InvestmentBalance",
		"TotalAssets", "LiabilityTotal", "NetAssets",
		"CorporateIncome", "CorporateOtherIncome", "CorporateEventIncome", "CorporateTotalIncome",
		"CorporateBusinessExpense", "CorporateOfficeExpense", "CorporateLoanRepayment",
		"CorporateEventExpense", "CorporateTotalExpense",
		"CorporateBalance", "CorporateInvestmentContribution", "CorporateInvestmentBalance",
		"CorporateTotalAssets", "CorporateLiabilityTotal", "CorporateNetAssets",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, year := range data.Years() {
		row := data[year]
		record := []string{
			strconv.Itoa(row.Year), strconv.Itoa(row.Age),
			row.MainIncome.StringFixed(1), row.SideIncome.StringFixed(1),
			row.SpouseIncome.StringFixed(1), row.PensionIncome.StringFixed(1),
			row.SpousePensionIncome.StringFixed(1),
			row.InvestmentIncome.StringFixed(1), row.EventIncome.StringFixed(1),
			row.TotalIncome.StringFixed(1),
			row.LivingExpense.StringFixed(1), row.HousingExpense.StringFixed(1),
			row.EducationExpense.StringFixed(1), row.OtherExpense.StringFixed(1),
			row.LoanRepayment.StringFixed(1), row.EventExpense.StringFixed(1),
			row.TotalExpense.StringFixed(1),
			row.Balance.StringFixed(1), row.InvestmentContribution.StringFixed(1),
			row.InvestmentBalance.StringFixed(1),
			row.TotalAssets.StringFixed(1), row.LiabilityTotal.StringFixed(1),
			row.NetAssets.StringFixed(1),
			row.CorporateIncome.StringFixed(1), row.CorporateOtherIncome.StringFixed(1),
			row.CorporateEventIncome.StringFixed(1), row.CorporateTotalIncome.StringFixed(1),
			row.CorporateBusinessExpense.StringFixed(1), row.CorporateOfficeExpense.StringFixed(1),
			row.CorporateLoanRepayment.StringFixed(1),
			row.CorporateEventExpense.StringFixed(1), row.CorporateTotalExpense.StringFixed(1),
			row.CorporateBalance.StringFixed(1), row.CorporateInvestmentContribution.StringFixed(1),
			row.CorporateInvestmentBalance.StringFixed(1),
			row.CorporateTotalAssets.StringFixed(1), row.CorporateLiabilityTotal.StringFixed(1),
			row.CorporateNetAssets.StringFixed(1),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
