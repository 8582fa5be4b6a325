package orders

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

var testHeader = []string{"Status", "Customer Name", "Email", "Total"}

func classifyOne(t *testing.T, header []string, row []string) RowResult {
	t.Helper()
	c := NewClassifier(NewHeaderMap(header))
	return c.Classify(2, row)
}

func TestClassify_Create(t *testing.T) {
	res := classifyOne(t, testHeader, []string{"new", "Jane Doe", "jane@example.com", "120.00"})

	if res.Outcome != OutcomeCreate {
		t.Fatalf("outcome = %s, want CREATE", res.Outcome)
	}
	if res.Order == nil {
		t.Fatal("CREATE result carries no mock order")
	}
	if res.Order.ID != "row-2" {
		t.Errorf("mock order id = %q, want row-2", res.Order.ID)
	}
	if res.Order.Customer != "Jane Doe" {
		t.Errorf("customer = %q, want Jane Doe", res.Order.Customer)
	}
	if !res.Order.Total.Equal(decimal.RequireFromString("120.00")) {
		t.Errorf("total = %s, want 120.00", res.Order.Total)
	}
	if res.Order.SourceRow != 2 {
		t.Errorf("source row = %d, want 2", res.Order.SourceRow)
	}

	line := res.Line()
	if !strings.HasPrefix(line, "[CREATE] Row 2: created mock order row-2 → ") {
		t.Errorf("unexpected report line: %q", line)
	}
}

func TestClassify_ErrorCollectsFailedFields(t *testing.T) {
	res := classifyOne(t, testHeader, []string{"new", "", "bad@example", "0"})

	if res.Outcome != OutcomeError {
		t.Fatalf("outcome = %s, want ERROR", res.Outcome)
	}
	want := []string{"Customer_name", "Email_valid", "Total_positive"}
	if !reflect.DeepEqual(res.Failed, want) {
		t.Errorf("failed = %v, want %v", res.Failed, want)
	}
	if got := res.Line(); got != "[ERROR] Row 2: missing/invalid Customer_name, Email_valid, Total_positive" {
		t.Errorf("unexpected report line: %q", got)
	}
}

func TestClassify_Skip(t *testing.T) {
	res := classifyOne(t, testHeader, []string{"confirmed", "John", "john@example.com", "50"})

	if res.Outcome != OutcomeSkip {
		t.Fatalf("outcome = %s, want SKIP", res.Outcome)
	}
	if res.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", res.Status)
	}
	if got := res.Line(); got != "[SKIP] Row 2: status 'confirmed' is not 'new'." {
		t.Errorf("unexpected report line: %q", got)
	}
}

func TestClassify_StatusIsCaseSensitive(t *testing.T) {
	res := classifyOne(t, testHeader, []string{"New", "Jane", "jane@example.com", "10"})

	if res.Outcome != OutcomeSkip {
		t.Fatalf("outcome = %s, want SKIP for status \"New\"", res.Outcome)
	}
	if res.Status != "New" {
		t.Errorf("status = %q, want New", res.Status)
	}
}

func TestClassify_CurrencyHeaderAndThousands(t *testing.T) {
	header := []string{"Status", "Customer Name", "Email", "Total ($)"}
	res := classifyOne(t, header, []string{"new", "Jane", "jane@example.com", "1,250.50"})

	if res.Outcome != OutcomeCreate {
		t.Fatalf("outcome = %s, want CREATE", res.Outcome)
	}
	if !res.Order.Total.Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("total = %s, want 1250.50", res.Order.Total)
	}
}

func TestClassify_EmptyRowReportsEveryRule(t *testing.T) {
	res := classifyOne(t, testHeader, nil)

	if res.Outcome != OutcomeError {
		t.Fatalf("outcome = %s, want ERROR", res.Outcome)
	}
	// An empty total is both missing and unparseable, matching the report
	// format the intake team expects.
	want := []string{"Status", "Customer_name", "Email", "Total", "Total_parseable"}
	if !reflect.DeepEqual(res.Failed, want) {
		t.Errorf("failed = %v, want %v", res.Failed, want)
	}
}

func TestClassify_ShortRowTreatsTrailingCellsAsAbsent(t *testing.T) {
	res := classifyOne(t, testHeader, []string{"new", "Jane"})

	if res.Outcome != OutcomeError {
		t.Fatalf("outcome = %s, want ERROR", res.Outcome)
	}
	want := []string{"Email", "Total", "Total_parseable"}
	if !reflect.DeepEqual(res.Failed, want) {
		t.Errorf("failed = %v, want %v", res.Failed, want)
	}
}

func TestClassify_OrderIDColumnAndDuplicates(t *testing.T) {
	header := []string{"Order ID", "Status", "Customer Name", "Email", "Total"}
	c := NewClassifier(NewHeaderMap(header))

	first := c.Classify(2, []string{"ORD-1", "new", "Jane", "jane@example.com", "10"})
	if first.Outcome != OutcomeCreate {
		t.Fatalf("first outcome = %s, want CREATE", first.Outcome)
	}
	if first.Order.ID != "ORD-1" {
		t.Errorf("first order id = %q, want ORD-1", first.Order.ID)
	}

	second := c.Classify(3, []string{"ORD-1", "new", "John", "john@example.com", "20"})
	if second.Outcome != OutcomeSkip {
		t.Fatalf("second outcome = %s, want SKIP", second.Outcome)
	}
	if second.DupID != "ORD-1" {
		t.Errorf("dup id = %q, want ORD-1", second.DupID)
	}
	if got := second.Line(); got != "[SKIP] Row 3: order ORD-1 already created." {
		t.Errorf("unexpected report line: %q", got)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	row := []string{"new", "", "bad@example", "0"}

	a := classifyOne(t, testHeader, row)
	b := classifyOne(t, testHeader, row)

	if a.Outcome != b.Outcome || !reflect.DeepEqual(a.Failed, b.Failed) {
		t.Errorf("classification not stable: %v vs %v", a, b)
	}
}

func TestClassifyAll_SummaryInvariant(t *testing.T) {
	rows := [][]string{
		{"new", "Jane", "jane@example.com", "120.00"},
		{"confirmed", "John", "john@example.com", "50"},
		{"new", "", "bad@example", "0"},
		{"new", "Ana", "ana@example.com", "33.10"},
		{"", "", "", ""},
	}

	report := ClassifyAll(testHeader, rows)

	if report.Rows() != len(rows) {
		t.Fatalf("rows = %d, want %d", report.Rows(), len(rows))
	}
	if got := report.Created + report.Skipped + report.Errors; got != len(rows) {
		t.Errorf("created+skipped+errors = %d, want %d", got, len(rows))
	}
	if report.Created != 2 || report.Skipped != 1 || report.Errors != 2 {
		t.Errorf("counts = %d/%d/%d, want 2/1/2", report.Created, report.Skipped, report.Errors)
	}

	// Row numbering starts at 2: row 1 is the header.
	if report.Results[0].Row != 2 {
		t.Errorf("first data row numbered %d, want 2", report.Results[0].Row)
	}
}

func TestClassifyAll_EmptySheet(t *testing.T) {
	report := ClassifyAll(testHeader, nil)

	want := []string{
		"",
		"=== SUMMARY ===",
		"Mock orders created: 0",
		"Rows with errors: 0",
	}
	if !reflect.DeepEqual(report.SummaryLines(), want) {
		t.Errorf("summary = %v, want %v", report.SummaryLines(), want)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"j.doe+tag@mail.example.org",
		"UPPER@EXAMPLE.IO",
	}
	invalid := []string{
		"",
		"bad@example",
		"no-at-sign.com",
		"two words@example.com",
		"jane@example.c",
	}

	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}
