package mapping

import (
	"database/sql"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		CategoryID:    nullString(d.CategoryID),
		Date:          d.Date,
		Amount:        d.Amount,
		Payee:         d.Payee,
		Notes:         nullString(d.Notes),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID.String,
		CategoryName:  m.CategoryName.String,
		Date:          m.Date,
		Amount:        m.Amount,
		Payee:         m.Payee,
		Notes:         m.Notes.String,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
