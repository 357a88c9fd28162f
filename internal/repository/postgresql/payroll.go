package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/offisbridge/backoffice-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, company_id, pay_month, template_type,
	user_name, dept_name, position,
	base_salary, non_taxable, fixed_ot_pay, annual_leave_pay,
	meal_allowance, car_allowance, research_allowance, bonus, allowance,
	base_work_days, absent_days,
	income_tax, local_tax, national_pension, health_insurance,
	employment_insurance, longterm_care, deduction_other,
	total_amount, total_deduction, net_amount,
	created_at, updated_at
`

func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, company_id, pay_month, template_type,
			user_name, dept_name, position,
			base_salary, non_taxable, fixed_ot_pay, annual_leave_pay,
			meal_allowance, car_allowance, research_allowance, bonus, allowance,
			base_work_days, absent_days,
			income_tax, local_tax, national_pension, health_insurance,
			employment_insurance, longterm_care, deduction_other,
			total_amount, total_deduction, net_amount
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.CompanyID, record.PayMonth, string(record.TemplateType),
		record.UserName, record.DeptName, record.Position,
		record.BaseSalary, record.NonTaxable, record.FixedOTPay, record.AnnualLeavePay,
		record.MealAllowance, record.CarAllowance, record.ResearchAllowance, record.Bonus, record.Allowance,
		record.BaseWorkDays, record.AbsentDays,
		record.IncomeTax, record.LocalTax, record.NationalPension, record.HealthInsurance,
		record.EmploymentInsurance, record.LongtermCare, record.DeductionOther,
		record.TotalAmount, record.TotalDeduction, record.NetAmount,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// BulkInsert writes one upload batch with COPY; the whole batch lands or
// none of it does.
func (r *payrollRepository) BulkInsert(ctx context.Context, records []payroll.PayrollRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, 0, len(records))
	for _, record := range records {
		id := record.ID
		if id == "" {
			id = uuid.New().String()
		}
		rows = append(rows, []interface{}{
			id, record.CompanyID, record.PayMonth, string(record.TemplateType),
			record.UserName, record.DeptName, record.Position,
			record.BaseSalary, record.NonTaxable, record.FixedOTPay, record.AnnualLeavePay,
			record.MealAllowance, record.CarAllowance, record.ResearchAllowance, record.Bonus, record.Allowance,
			record.BaseWorkDays, record.AbsentDays,
			record.IncomeTax, record.LocalTax, record.NationalPension, record.HealthInsurance,
			record.EmploymentInsurance, record.LongtermCare, record.DeductionOther,
			record.TotalAmount, record.TotalDeduction, record.NetAmount,
		})
	}

	inserted, err := r.db.Pool.CopyFrom(ctx,
		pgx.Identifier{"payroll_records"},
		[]string{
			"id", "company_id", "pay_month", "template_type",
			"user_name", "dept_name", "position",
			"base_salary", "non_taxable", "fixed_ot_pay", "annual_leave_pay",
			"meal_allowance", "car_allowance", "research_allowance", "bonus", "allowance",
			"base_work_days", "absent_days",
			"income_tax", "local_tax", "national_pension", "health_insurance",
			"employment_insurance", "longterm_care", "deduction_other",
			"total_amount", "total_deduction", "net_amount",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert payroll records: %w", err)
	}

	return inserted, nil
}

func (r *payrollRepository) ListByMonth(ctx context.Context, companyID, payMonth string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records
		WHERE company_id = $1 AND pay_month = $2
		ORDER BY created_at, user_name
	`, payrollColumns)

	rows, err := q.Query(ctx, query, companyID, payMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		var templateType string
		err := rows.Scan(
			&rec.ID, &rec.CompanyID, &rec.PayMonth, &templateType,
			&rec.UserName, &rec.DeptName, &rec.Position,
			&rec.BaseSalary, &rec.NonTaxable, &rec.FixedOTPay, &rec.AnnualLeavePay,
			&rec.MealAllowance, &rec.CarAllowance, &rec.ResearchAllowance, &rec.Bonus, &rec.Allowance,
			&rec.BaseWorkDays, &rec.AbsentDays,
			&rec.IncomeTax, &rec.LocalTax, &rec.NationalPension, &rec.HealthInsurance,
			&rec.EmploymentInsurance, &rec.LongtermCare, &rec.DeductionOther,
			&rec.TotalAmount, &rec.TotalDeduction, &rec.NetAmount,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		rec.TemplateType = payroll.TemplateType(templateType)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) DeleteByMonth(ctx context.Context, companyID, payMonth string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM payroll_records WHERE company_id = $1 AND pay_month = $2`,
		companyID, payMonth,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payroll records: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *payrollRepository) GetMonthSummary(ctx context.Context, companyID, payMonth string) (payroll.MonthSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(total_amount), 0),
			   COALESCE(SUM(total_deduction), 0),
			   COALESCE(SUM(net_amount), 0)
		FROM payroll_records
		WHERE company_id = $1 AND pay_month = $2
	`

	summary := payroll.MonthSummary{PayMonth: payMonth}
	err := q.QueryRow(ctx, query, companyID, payMonth).Scan(
		&summary.HeadCount, &summary.TotalAmount, &summary.TotalDeduction, &summary.NetAmount,
	)
	if err != nil {
		return payroll.MonthSummary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
