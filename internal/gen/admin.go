package gen

import (
	"github.com/google/uuid"

	"staygen/internal/dataset"
	"staygen/internal/fake"
)

// Admins lists every admin user in the admin table with a weighted
// platform role. The user table must carry at least the minimum of
// admin users.
func Admins(fp *fake.Provider, users []dataset.User, min int) ([]dataset.Admin, error) {
	if len(users) == 0 {
		return nil, validationf("users table is empty, cannot populate admins")
	}

	var admins []dataset.Admin
	for _, u := range users {
		if u.Role != dataset.RoleAdmin {
			continue
		}
		admins = append(admins, dataset.Admin{
			ID:     len(admins) + 1,
			UserID: u.ID,
			Role:   fake.WeightedPick(fp, adminRoles, adminRoleWeights),
		})
	}
	if len(admins) < min {
		return nil, validationf("insufficient admin users, found %d, required %d", len(admins), min)
	}
	return admins, nil
}

// AdminActions records ten actions per admin, with a floor, spread
// evenly across admins.
func AdminActions(fp *fake.Provider, admins []dataset.Admin, min int) ([]dataset.AdminAction, error) {
	if len(admins) == 0 {
		return nil, validationf("admins table is empty, cannot populate admin actions")
	}

	total := Scaled(len(admins), 10, min)
	counts := SpreadEvenly(total, len(admins))

	actions := make([]dataset.AdminAction, 0, total)
	for i, admin := range admins {
		for n := 0; n < counts[i]; n++ {
			actions = append(actions, dataset.AdminAction{
				ID:          len(actions) + 1,
				AdminID:     admin.ID,
				Description: fake.Pick(fp, adminActionDescriptions),
				Date:        fp.DateThisYear(),
			})
		}
	}
	return actions, nil
}

// Transactions records ledger entries against existing payments. The
// total defaults to one per payment and may exceed it, but never
// undershoot it.
func Transactions(fp *fake.Provider, payments []dataset.Payment, total int) ([]dataset.Transaction, error) {
	if len(payments) == 0 {
		return nil, validationf("payments table is empty, cannot generate transactions")
	}
	if total <= 0 {
		total = len(payments)
	}
	if total < len(payments) {
		return nil, validationf("total transactions %d must be at least the number of payments %d", total, len(payments))
	}

	transactions := make([]dataset.Transaction, 0, total)
	for id := 1; id <= total; id++ {
		payment := fake.Pick(fp, payments)
		transactions = append(transactions, dataset.Transaction{
			ID:        id,
			PaymentID: payment.ID,
			Date:      fp.DateThisYear(),
			Type:      fake.Pick(fp, transactionTypes),
			Amount:    round2(payment.Amount),
			Method:    fake.Pick(fp, transactionMethods),
			Reference: uuid.NewString(),
		})
	}
	return transactions, nil
}
