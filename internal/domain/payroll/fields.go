package payroll

// Field identifies one canonical payroll column. Spreadsheet headers in any
// historical template revision translate into this closed set; everything
// downstream (filtering, persistence, reporting) keys off these identifiers.
type Field string

const (
	FieldUserName Field = "user_name"
	FieldDeptName Field = "dept_name"
	FieldPosition Field = "position"

	FieldBaseSalary        Field = "base_salary"
	FieldNonTaxable        Field = "non_taxable"
	FieldFixedOTPay        Field = "fixed_ot_pay"
	FieldAnnualLeavePay    Field = "annual_leave_pay"
	FieldMealAllowance     Field = "meal_allowance"
	FieldCarAllowance      Field = "car_allowance"
	FieldResearchAllowance Field = "research_allowance"
	FieldBonus             Field = "bonus"
	FieldAllowance         Field = "allowance"

	FieldBaseWorkDays Field = "base_work_days"
	FieldAbsentDays   Field = "absent_days"

	FieldIncomeTax           Field = "income_tax"
	FieldLocalTax            Field = "local_tax"
	FieldNationalPension     Field = "national_pension"
	FieldHealthInsurance     Field = "health_insurance"
	FieldEmploymentInsurance Field = "employment_insurance"
	FieldLongtermCare        Field = "longterm_care"
	FieldDeductionOther      Field = "deduction_other"

	FieldTotalAmount    Field = "total_amount"
	FieldTotalDeduction Field = "total_deduction"
	FieldNetAmount      Field = "net_amount"
)

// FieldKind enum
type FieldKind string

const (
	KindText    FieldKind = "text"
	KindNumeric FieldKind = "numeric"
)

var fieldKinds = map[Field]FieldKind{
	FieldUserName: KindText,
	FieldDeptName: KindText,
	FieldPosition: KindText,

	FieldBaseSalary:        KindNumeric,
	FieldNonTaxable:        KindNumeric,
	FieldFixedOTPay:        KindNumeric,
	FieldAnnualLeavePay:    KindNumeric,
	FieldMealAllowance:     KindNumeric,
	FieldCarAllowance:      KindNumeric,
	FieldResearchAllowance: KindNumeric,
	FieldBonus:             KindNumeric,
	FieldAllowance:         KindNumeric,
	FieldBaseWorkDays:      KindNumeric,
	FieldAbsentDays:        KindNumeric,

	FieldIncomeTax:           KindNumeric,
	FieldLocalTax:            KindNumeric,
	FieldNationalPension:     KindNumeric,
	FieldHealthInsurance:     KindNumeric,
	FieldEmploymentInsurance: KindNumeric,
	FieldLongtermCare:        KindNumeric,
	FieldDeductionOther:      KindNumeric,

	FieldTotalAmount:    KindNumeric,
	FieldTotalDeduction: KindNumeric,
	FieldNetAmount:      KindNumeric,
}

// Kind returns the declared value kind of the field.
func (f Field) Kind() FieldKind {
	if kind, ok := fieldKinds[f]; ok {
		return kind
	}
	return KindText
}

// Known reports whether f is part of the canonical field set.
func (f Field) Known() bool {
	_, ok := fieldKinds[f]
	return ok
}

// TemplateType enum. Template A carries the detailed allowance breakdown,
// template B the standard one.
type TemplateType string

const (
	TemplateDetailed TemplateType = "A"
	TemplateStandard TemplateType = "B"
)

func (t TemplateType) Valid() bool {
	return t == TemplateDetailed || t == TemplateStandard
}

// TemplateItems lists the allowance line items each payroll template expects.
// Both lists are fixed configuration; they are never mutated at runtime.
var TemplateItems = map[TemplateType][]Field{
	TemplateDetailed: {
		FieldFixedOTPay,
		FieldAnnualLeavePay,
		FieldMealAllowance,
		FieldCarAllowance,
		FieldResearchAllowance,
		FieldBonus,
	},
	TemplateStandard: {
		FieldFixedOTPay,
		FieldMealAllowance,
		FieldBonus,
	},
}
