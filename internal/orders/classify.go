package orders

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// statusNew is the only status value that produces a CREATE. The comparison
// is case-sensitive: "New" or "NEW" are skips, not creates.
const statusNew = "new"

// Failure labels, reported in rule order. The suffixed forms distinguish a
// malformed value from a missing one.
const (
	labelStatus         = "Status"
	labelCustomer       = "Customer_name"
	labelEmail          = "Email"
	labelEmailValid     = "Email_valid"
	labelTotal          = "Total"
	labelTotalParseable = "Total_parseable"
	labelTotalPositive  = "Total_positive"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s looks like a two-label-or-more email address.
func ValidEmail(s string) bool {
	return s != "" && emailRe.MatchString(s)
}

// Outcome is the classification assigned to one data row.
type Outcome int

const (
	OutcomeCreate Outcome = iota
	OutcomeSkip
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreate:
		return "CREATE"
	case OutcomeSkip:
		return "SKIP"
	case OutcomeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MockOrder is the synthesized payload a CREATE row would have produced.
// It is never persisted anywhere; it only appears in the report line.
type MockOrder struct {
	ID        string
	Customer  string
	Email     string
	Product   string
	Total     decimal.Decimal
	SourceRow int
	CreatedAt time.Time
}

func (m *MockOrder) String() string {
	return fmt.Sprintf("{id: %s, customer: %s, email: %s, product: %s, total: %s, source_row: %d, created_at: %s}",
		m.ID, m.Customer, m.Email, m.Product, m.Total, m.SourceRow,
		m.CreatedAt.Format("2006-01-02T15:04:05"))
}

// RowResult is the classification of a single data row.
type RowResult struct {
	Row     int     // 1-indexed sheet row; the header occupies row 1
	Outcome Outcome
	Failed  []string   // ERROR: labels in fixed report order
	Status  string     // SKIP on status: the literal value found
	DupID   string     // SKIP on duplicate: the colliding order id
	Order   *MockOrder // CREATE only
}

// Line renders the unstyled report line for this row.
func (r RowResult) Line() string {
	switch r.Outcome {
	case OutcomeError:
		return fmt.Sprintf("[ERROR] Row %d: missing/invalid %s", r.Row, strings.Join(r.Failed, ", "))
	case OutcomeCreate:
		return fmt.Sprintf("[CREATE] Row %d: created mock order %s → %s", r.Row, r.Order.ID, r.Order)
	default:
		if r.DupID != "" {
			return fmt.Sprintf("[SKIP] Row %d: order %s already created.", r.Row, r.DupID)
		}
		return fmt.Sprintf("[SKIP] Row %d: status '%s' is not 'new'.", r.Row, r.Status)
	}
}

// Classifier classifies data rows against a header map built once per run.
// It remembers mock order ids issued during the run so a duplicate id
// degrades to a skip instead of a second create.
type Classifier struct {
	headers HeaderMap
	seen    map[string]struct{}
	now     func() time.Time
}

// NewClassifier returns a classifier for rows aligned with the given header
// map.
func NewClassifier(headers HeaderMap) *Classifier {
	return &Classifier{
		headers: headers,
		seen:    make(map[string]struct{}),
		now:     time.Now,
	}
}

// Classify evaluates one raw row. rowNum is the 1-indexed sheet row; data
// rows start at 2. Every row yields exactly one outcome. Rule failures are
// captured in the result, never returned as an error, and one row's failure
// never affects the next.
func (c *Classifier) Classify(rowNum int, row []string) RowResult {
	status := getField(c.headers, row, FieldStatus)
	customer := getField(c.headers, row, FieldCustomer)
	email := getField(c.headers, row, FieldEmail)
	totalStr := getField(c.headers, row, FieldTotal)

	var failed []string
	if status == "" {
		failed = append(failed, labelStatus)
	}
	if customer == "" {
		failed = append(failed, labelCustomer)
	}
	switch {
	case email == "":
		failed = append(failed, labelEmail)
	case !ValidEmail(email):
		failed = append(failed, labelEmailValid)
	}
	if totalStr == "" {
		failed = append(failed, labelTotal)
	}
	amount, ok := ParseAmount(totalStr)
	switch {
	case !ok:
		failed = append(failed, labelTotalParseable)
	case !amount.IsPositive():
		failed = append(failed, labelTotalPositive)
	}

	if len(failed) > 0 {
		return RowResult{Row: rowNum, Outcome: OutcomeError, Failed: failed}
	}

	if status != statusNew {
		return RowResult{Row: rowNum, Outcome: OutcomeSkip, Status: status}
	}

	order := c.buildOrder(rowNum, row, customer, email, amount)
	if _, dup := c.seen[order.ID]; dup {
		return RowResult{Row: rowNum, Outcome: OutcomeSkip, DupID: order.ID}
	}
	c.seen[order.ID] = struct{}{}
	return RowResult{Row: rowNum, Outcome: OutcomeCreate, Order: order}
}

func (c *Classifier) buildOrder(rowNum int, row []string, customer, email string, amount decimal.Decimal) *MockOrder {
	id := getField(c.headers, row, FieldOrderID)
	if id == "" {
		id = fmt.Sprintf("row-%d", rowNum)
	}
	return &MockOrder{
		ID:        id,
		Customer:  customer,
		Email:     email,
		Product:   getField(c.headers, row, FieldProduct),
		Total:     amount,
		SourceRow: rowNum,
		CreatedAt: c.now(),
	}
}
