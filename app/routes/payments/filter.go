package payments

import (
	"strings"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
)

// FilterPayments applies the list filters with AND semantics: substring
// match on athlete name (case-insensitive), exact status, exact type. An
// empty or "all" value places no constraint.
func FilterPayments(views []*models.PaymentView, search, status, paymentType string) []*models.PaymentView {
	filtered := make([]*models.PaymentView, 0, len(views))
	needle := strings.ToLower(search)
	for _, v := range views {
		if needle != "" && !strings.Contains(strings.ToLower(v.AthleteName), needle) {
			continue
		}
		if status != "" && status != "all" && string(v.Status) != status {
			continue
		}
		if paymentType != "" && paymentType != "all" && string(v.PaymentType) != paymentType {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}
