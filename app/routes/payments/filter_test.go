package payments

import (
	"testing"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func view(name string, status models.PaymentStatus, paymentType models.PaymentType) *models.PaymentView {
	return &models.PaymentView{
		Payment:     models.Payment{Status: status, PaymentType: paymentType},
		AthleteName: name,
	}
}

func TestFilterPayments(t *testing.T) {
	views := []*models.PaymentView{
		view("Karim Ziani", models.PaymentPaid, models.TypeMonthlyFee),
		view("Karim Ziani", models.PaymentUnpaid, models.TypeYearlyLicense),
		view("Lina Cherif", models.PaymentPaid, models.TypeMonthlyFee),
	}

	// No constraints.
	assert.Len(t, FilterPayments(views, "", "", ""), 3)
	assert.Len(t, FilterPayments(views, "", "all", "all"), 3)

	// Name search is substring and case-insensitive.
	assert.Len(t, FilterPayments(views, "karim", "", ""), 2)

	// Filters compose with AND.
	got := FilterPayments(views, "karim", "Paid", "Monthly Fee")
	require.Len(t, got, 1)
	assert.Equal(t, models.PaymentPaid, got[0].Status)

	// A filter that matches nothing yields an empty slice, not nil.
	assert.NotNil(t, FilterPayments(views, "zzz", "", ""))
	assert.Empty(t, FilterPayments(views, "karim", "Paid", "Yearly License"))
}
