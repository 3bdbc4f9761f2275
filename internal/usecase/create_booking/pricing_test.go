package create_booking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Products: []domain.Product{
			{ID: "custom", Name: "Custom Service", BasePrice: 0, IsDefault: true, IsActive: true},
			{ID: "tattoo-s", Name: "Small Tattoo", BasePrice: 200, IsActive: true},
			{ID: "piercing", Name: "Piercing", BasePrice: 150.5, IsActive: true},
		},
		Branches: []domain.Branch{
			{ID: "b1", Name: "Indiranagar"},
			{ID: "b2", Name: "Koramangala"},
		},
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		isNaN bool
	}{
		{name: "integer", input: "500", want: 500},
		{name: "decimal with spaces", input: " 12.75 ", want: 12.75},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-3", want: -3},
		{name: "empty", input: "", isNaN: true},
		{name: "blank", input: "   ", isNaN: true},
		{name: "garbage", input: "12abc", isNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLineTotal_DefaultProductAlwaysQuantityOne(t *testing.T) {
	catalog := testCatalog()

	for _, q := range []float64{0, 1, 3, 7.5, -2} {
		line := domain.LineDraft{ProductID: "custom", Quantity: q, UnitPrice: "500"}
		assert.Equal(t, 500.0, LineTotal(line, catalog), "quantity %v", q)
	}
}

func TestLineTotal_FixedProductIgnoresEnteredPrice(t *testing.T) {
	catalog := testCatalog()

	for _, entered := range []string{"", "1", "99999", "not a number"} {
		line := domain.LineDraft{ProductID: "tattoo-s", Quantity: 3, UnitPrice: entered}
		assert.Equal(t, 600.0, LineTotal(line, catalog), "entered %q", entered)
	}
}

func TestLineTotal_IntermediateStatesContributeZero(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		line domain.LineDraft
	}{
		{name: "unknown product", line: domain.LineDraft{ProductID: "ghost", Quantity: 1}},
		{name: "zero quantity", line: domain.LineDraft{ProductID: "tattoo-s", Quantity: 0}},
		{name: "NaN quantity", line: domain.LineDraft{ProductID: "tattoo-s", Quantity: math.NaN()}},
		{name: "custom without price", line: domain.LineDraft{ProductID: "custom", Quantity: 1}},
		{name: "custom with negative price", line: domain.LineDraft{ProductID: "custom", Quantity: 1, UnitPrice: "-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, LineTotal(tt.line, catalog))
		})
	}
}

func TestItemsTotal_Idempotent(t *testing.T) {
	catalog := testCatalog()
	draft := domain.BookingDraft{
		Items: []domain.LineDraft{
			{ProductID: "custom", Quantity: 4, UnitPrice: "333.33"},
			{ProductID: "piercing", Quantity: 2},
			{ProductID: "tattoo-s", Quantity: 1, UnitPrice: "1"},
		},
	}
	before := cloneDraft(draft)

	first := ItemsTotal(draft, catalog)
	second := ItemsTotal(draft, catalog)

	assert.Equal(t, first, second)
	assert.InDelta(t, 333.33+301+200, first, 1e-9)
	assert.Equal(t, before, draft)
}

func TestPaymentTotal_TreatsBlankAsZero(t *testing.T) {
	assert.Equal(t, 800.0, PaymentTotal(domain.BookingDraft{CashAmount: "800"}))
	assert.Equal(t, 0.0, PaymentTotal(domain.BookingDraft{CashAmount: "x", UPIAmount: ""}))
	assert.Equal(t, 1000.5, PaymentTotal(domain.BookingDraft{CashAmount: "400", UPIAmount: "600.5"}))
}

func TestIsReconciled(t *testing.T) {
	assert.True(t, IsReconciled(1000, 1000))
	assert.True(t, IsReconciled(1000.0005, 1000))
	assert.True(t, IsReconciled(999.999, 1000))
	assert.False(t, IsReconciled(999, 1000))
	assert.False(t, IsReconciled(1000.01, 1000))
}

// Продукт со свободной ценой: принудительно выставленное количество 3 сохраняется как 1
func TestSetQuantity_DefaultProductPinnedToOne(t *testing.T) {
	catalog := testCatalog()
	draft := domain.BookingDraft{
		Items: []domain.LineDraft{{ProductID: "custom", Quantity: 1, UnitPrice: "500"}},
	}

	updated := SetQuantity(draft, 0, 3, catalog)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1.0, updated.Items[0].Quantity)
	assert.Equal(t, 500.0, LineTotal(updated.Items[0], catalog))
}

func TestSetQuantity_FixedProduct(t *testing.T) {
	catalog := testCatalog()
	draft := domain.BookingDraft{
		Items: []domain.LineDraft{{ProductID: "tattoo-s", Quantity: 1}},
	}

	updated := SetQuantity(draft, 0, 4, catalog)
	assert.Equal(t, 4.0, updated.Items[0].Quantity)
	assert.Equal(t, 1.0, draft.Items[0].Quantity)

	assert.Equal(t, updated, SetQuantity(updated, 5, 10, catalog))
}

func TestNormalizeDraft(t *testing.T) {
	catalog := testCatalog()
	draft := domain.BookingDraft{
		Items: []domain.LineDraft{
			{ProductID: "custom", Quantity: 3, UnitPrice: "500"},
			{ProductID: "tattoo-s", Quantity: 3},
		},
	}

	normalized := NormalizeDraft(draft, catalog)
	assert.Equal(t, 1.0, normalized.Items[0].Quantity)
	assert.Equal(t, 3.0, normalized.Items[1].Quantity)
	assert.Equal(t, 3.0, draft.Items[0].Quantity)
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		FullName:   "Asha Rao",
		Phone:      "+919800000000",
		ArtistName: "Vikram",
		Birthday:   "1995-04-12",
		BranchID:   "b1",
		Items:      []domain.LineDraft{{ProductID: "tattoo-s", Quantity: 4}},
		CashAmount: "800",
		UPIAmount:  "0",
	}
}

var (
	adminSession = &domain.Session{UserID: "a1", Role: domain.RoleAdmin}
	staffSession = &domain.Session{UserID: "e1", Role: domain.RoleEmployee, BranchID: ptr.Ptr("b2")}
)

func TestValidateForSubmit_RuleOrder(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name    string
		session *domain.Session
		mutate  func(d *domain.BookingDraft)
		wantErr error
	}{
		{
			name:    "missing name wins over everything",
			session: adminSession,
			mutate: func(d *domain.BookingDraft) {
				d.FullName = " "
				d.BranchID = ""
				d.Items = nil
			},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "missing birthday",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.Birthday = "" },
			wantErr: ErrMissingRequiredFields,
		},
		{
			name:    "admin without branch",
			session: adminSession,
			mutate: func(d *domain.BookingDraft) {
				d.BranchID = ""
				d.Items = nil
			},
			wantErr: ErrBranchNotSelected,
		},
		{
			name:    "admin with unknown branch",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.BranchID = "b9" },
			wantErr: ErrBranchNotSelected,
		},
		{
			name:    "employee without assigned branch",
			session: &domain.Session{UserID: "e2", Role: domain.RoleEmployee},
			mutate:  func(d *domain.BookingDraft) {},
			wantErr: ErrBranchNotAssigned,
		},
		{
			name:    "no items",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.Items = nil },
			wantErr: ErrNoItems,
		},
		{
			name:    "unknown product",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.Items[0].ProductID = "ghost" },
			wantErr: ErrInvalidLineItem,
		},
		{
			name:    "fractional quantity",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.Items[0].Quantity = 1.5 },
			wantErr: ErrInvalidLineItem,
		},
		{
			name:    "zero quantity",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.Items[0].Quantity = 0 },
			wantErr: ErrInvalidLineItem,
		},
		{
			name:    "custom line with quantity above one",
			session: adminSession,
			mutate: func(d *domain.BookingDraft) {
				d.Items = []domain.LineDraft{{ProductID: "custom", Quantity: 2, UnitPrice: "400"}}
			},
			wantErr: ErrInvalidCustomItem,
		},
		{
			name:    "custom line with zero price",
			session: adminSession,
			mutate: func(d *domain.BookingDraft) {
				d.Items = []domain.LineDraft{{ProductID: "custom", Quantity: 1, UnitPrice: "0"}}
			},
			wantErr: ErrInvalidCustomItem,
		},
		{
			name:    "negative cash",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.CashAmount = "-1" },
			wantErr: ErrInvalidPaymentAmount,
		},
		{
			name:    "blank upi",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.UPIAmount = "" },
			wantErr: ErrInvalidPaymentAmount,
		},
		{
			name:    "no payment",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.CashAmount = "0" },
			wantErr: ErrNoPayment,
		},
		{
			name:    "payment mismatch",
			session: adminSession,
			mutate:  func(d *domain.BookingDraft) { d.CashAmount = "700" },
			wantErr: ErrPaymentMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			_, err := ValidateForSubmit(draft, tt.session, catalog)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestValidateForSubmit_BranchResolution(t *testing.T) {
	catalog := testCatalog()

	branchID, err := ValidateForSubmit(validDraft(), adminSession, catalog)
	require.NoError(t, err)
	assert.Equal(t, "b1", branchID)

	// Сотрудник всегда оформляет в своём филиале, выбранный в форме игнорируется
	branchID, err = ValidateForSubmit(validDraft(), staffSession, catalog)
	require.NoError(t, err)
	assert.Equal(t, "b2", branchID)
}

func TestValidateForSubmit_Reconciliation(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name  string
		cash  string
		upi   string
		valid bool
	}{
		{name: "exact cash", cash: "800", upi: "0", valid: true},
		{name: "exact split", cash: "300", upi: "500", valid: true},
		{name: "within epsilon", cash: "799.9995", upi: "0", valid: true},
		{name: "one short", cash: "799", upi: "0", valid: false},
		{name: "overpaid", cash: "800", upi: "0.01", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			draft.CashAmount = tt.cash
			draft.UPIAmount = tt.upi

			_, err := ValidateForSubmit(draft, adminSession, catalog)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrPaymentMismatch)
		})
	}
}

func TestBuildPayload(t *testing.T) {
	catalog := testCatalog()
	draft := validDraft()
	draft.Items = []domain.LineDraft{
		{ProductID: "tattoo-s", Quantity: 4, UnitPrice: "999"},
		{ProductID: "custom", Quantity: 1, UnitPrice: "250"},
	}
	draft.CashAmount = "1050"
	draft.Email = "  "

	payload := BuildPayload(draft, "b1", catalog)

	require.Len(t, payload.Items, 2)
	assert.Equal(t, 4, payload.Items[0].Quantity)
	assert.Nil(t, payload.Items[0].UnitPrice)
	assert.Equal(t, 1, payload.Items[1].Quantity)
	require.NotNil(t, payload.Items[1].UnitPrice)
	assert.Equal(t, 250.0, *payload.Items[1].UnitPrice)
	assert.Equal(t, "b1", payload.BranchID)
	assert.Nil(t, payload.Email)
	assert.Equal(t, 1050.0, payload.CashAmount)
	assert.Equal(t, 0.0, payload.UPIAmount)
}
