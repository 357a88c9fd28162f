package payroll

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakePayrollRepo struct {
	records []payroll.PayrollRecord
}

func (f *fakePayrollRepo) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	record.ID = "fixed-id"
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakePayrollRepo) BulkInsert(ctx context.Context, records []payroll.PayrollRecord) (int64, error) {
	f.records = append(f.records, records...)
	return int64(len(records)), nil
}

func (f *fakePayrollRepo) ListByMonth(ctx context.Context, companyID, payMonth string) ([]payroll.PayrollRecord, error) {
	return f.records, nil
}

func (f *fakePayrollRepo) DeleteByMonth(ctx context.Context, companyID, payMonth string) (int64, error) {
	n := int64(len(f.records))
	f.records = nil
	return n, nil
}

func (f *fakePayrollRepo) GetMonthSummary(ctx context.Context, companyID, payMonth string) (payroll.MonthSummary, error) {
	return payroll.MonthSummary{PayMonth: payMonth, HeadCount: len(f.records)}, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"company_id": "company-1", "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// buildWorkbook writes a payroll template workbook: six boilerplate rows,
// headers on row 7, data rows below.
func buildWorkbook(t *testing.T, dataRows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "급여대장"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "2025년 12월"))

	headers := []interface{}{"성명", "부서", "기본급", "상여금", "소득세", "지급총액", "공제총액", "실지급액"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A7", &headers))

	for i, row := range dataRows {
		cell, err := excelize.CoordinatesToCellName(1, 8+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportSpreadsheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]interface{}{
		{"김철수", "경영지원팀", 3000000, 100000, 50000, 3150000, 295000, 2855000},
		{"이영희", "개발팀", 2800000, 0, 40000, 2900000, 260000, 2640000},
		{"부서합계", "", 5800000, 100000, 90000, 6050000, 555000, 5495000},
		{"2025-12-27"},
	})

	repo := &fakePayrollRepo{}
	svc := NewPayrollService(nil, repo)

	result, err := svc.ImportSpreadsheet(authedContext(t), "2025-12", payroll.TemplateStandard, data)
	require.NoError(t, err)

	assert.Equal(t, 4, result.RowsRead)
	assert.Equal(t, 2, result.RowsSkipped)
	assert.Equal(t, 2, result.Inserted)

	require.Len(t, repo.records, 2)

	// Sheet order is preserved.
	first := repo.records[0]
	assert.Equal(t, "김철수", first.UserName)
	assert.Equal(t, "경영지원팀", first.DeptName)
	assert.Equal(t, "company-1", first.CompanyID)
	assert.Equal(t, "2025-12", first.PayMonth)

	// Sheet totals are trusted verbatim, not re-derived.
	assert.Equal(t, int64(3150000), first.TotalAmount)
	assert.Equal(t, int64(295000), first.TotalDeduction)
	assert.Equal(t, int64(2855000), first.NetAmount)

	assert.Equal(t, "이영희", repo.records[1].UserName)
}

func TestImportSpreadsheet_OnlyFooterRows(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]interface{}{
		{"합계", "", 0, 0, 0, 0, 0, 0},
		{"2025-12-27"},
	})

	repo := &fakePayrollRepo{}
	svc := NewPayrollService(nil, repo)

	_, err := svc.ImportSpreadsheet(authedContext(t), "2025-12", payroll.TemplateStandard, data)
	assert.ErrorIs(t, err, payroll.ErrNoValidRows)
	assert.Empty(t, repo.records)
}

func TestImportSpreadsheet_MalformedFile(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(nil, &fakePayrollRepo{})

	_, err := svc.ImportSpreadsheet(authedContext(t), "2025-12", payroll.TemplateStandard, []byte("this is not a workbook"))
	assert.ErrorIs(t, err, payroll.ErrInvalidFileFormat)
}

func TestImportSpreadsheet_InvalidArguments(t *testing.T) {
	t.Parallel()

	svc := NewPayrollService(nil, &fakePayrollRepo{})

	_, err := svc.ImportSpreadsheet(authedContext(t), "2025-13", payroll.TemplateStandard, nil)
	assert.ErrorIs(t, err, payroll.ErrInvalidPayMonth)

	_, err = svc.ImportSpreadsheet(authedContext(t), "2025-12", payroll.TemplateType("C"), nil)
	assert.ErrorIs(t, err, payroll.ErrInvalidTemplateType)
}

func TestExtractRawRows_ShortSheet(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ExtractRawRows(nil))
	assert.Nil(t, ExtractRawRows([][]string{{"급여대장"}, {"2025년"}}))
}

func TestBuildRows_Idempotent(t *testing.T) {
	t.Parallel()

	raws := []payroll.RawRow{
		{"성명": payroll.TextCell("김철수"), "기본급": payroll.TextCell("3000000")},
		{"성명": payroll.TextCell("합계"), "기본급": payroll.TextCell("3000000")},
		{"성명": payroll.TextCell("이영희"), "기본급": payroll.TextCell("2,800,000")},
	}

	first, skippedFirst := BuildRows(raws)
	second, skippedSecond := BuildRows(raws)

	assert.Equal(t, first, second)
	assert.Equal(t, skippedFirst, skippedSecond)
	require.Len(t, first, 2)
	assert.Equal(t, "김철수", first[0][payroll.FieldUserName].String())
	assert.Equal(t, "이영희", first[1][payroll.FieldUserName].String())
}
