package payroll

import (
	"strings"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
)

// headerAliases maps every spreadsheet column label ever shipped in a payroll
// template to its canonical field. The table is append-only: historical
// sheets reference old labels, so existing aliases must never be renamed or
// removed. Several aliases intentionally map to the same field.
var headerAliases = map[string]payroll.Field{
	"성명": payroll.FieldUserName,
	"이름": payroll.FieldUserName,

	"부서":  payroll.FieldDeptName,
	"부서명": payroll.FieldDeptName,

	"직급": payroll.FieldPosition,
	"직위": payroll.FieldPosition,

	"기본급": payroll.FieldBaseSalary,
	"급여":  payroll.FieldBaseSalary,

	"비과세":  payroll.FieldNonTaxable,
	"비과세액": payroll.FieldNonTaxable,

	// Three generations of the fixed-overtime column label.
	"고정연장수당": payroll.FieldFixedOTPay,
	"고정OT수당": payroll.FieldFixedOTPay,
	"연장근로수당": payroll.FieldFixedOTPay,

	"연차수당": payroll.FieldAnnualLeavePay,

	"식대":   payroll.FieldMealAllowance,
	"식대보조": payroll.FieldMealAllowance,

	"차량유지비": payroll.FieldCarAllowance,
	"차량지원금": payroll.FieldCarAllowance,

	"연구수당":  payroll.FieldResearchAllowance,
	"연구개발비": payroll.FieldResearchAllowance,

	"상여":  payroll.FieldBonus,
	"상여금": payroll.FieldBonus,

	"수당":   payroll.FieldAllowance,
	"기타수당": payroll.FieldAllowance,

	"근무일수":   payroll.FieldBaseWorkDays,
	"소정근로일수": payroll.FieldBaseWorkDays,

	"결근일수": payroll.FieldAbsentDays,

	"소득세": payroll.FieldIncomeTax,

	"지방소득세": payroll.FieldLocalTax,
	"주민세":   payroll.FieldLocalTax,

	"국민연금": payroll.FieldNationalPension,

	"건강보험":  payroll.FieldHealthInsurance,
	"건강보험료": payroll.FieldHealthInsurance,

	"고용보험":  payroll.FieldEmploymentInsurance,
	"고용보험료": payroll.FieldEmploymentInsurance,

	"장기요양보험":  payroll.FieldLongtermCare,
	"장기요양보험료": payroll.FieldLongtermCare,

	"기타공제": payroll.FieldDeductionOther,
	"공제기타": payroll.FieldDeductionOther,

	"지급총액":  payroll.FieldTotalAmount,
	"지급합계":  payroll.FieldTotalAmount,
	"총지급액":  payroll.FieldTotalAmount,

	"공제총액":  payroll.FieldTotalDeduction,
	"공제합계":  payroll.FieldTotalDeduction,
	"총공제액":  payroll.FieldTotalDeduction,

	"실지급액":  payroll.FieldNetAmount,
	"차인지급액": payroll.FieldNetAmount,
	"실수령액":  payroll.FieldNetAmount,
}

// TranslateHeader resolves a surface-form column label to its canonical
// field. Matching is exact after trimming surrounding whitespace; there is no
// fuzzy or case-insensitive matching.
func TranslateHeader(label string) (payroll.Field, bool) {
	field, ok := headerAliases[strings.TrimSpace(label)]
	return field, ok
}
