package payment

import (
	"errors"
	"time"

	parcelModel "parcel-delivery/models/parcel"
	paymentModel "parcel-delivery/models/payment"
	paymentTypes "parcel-delivery/types/payment"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// ErrParcelNotPayable means the parcel is absent or already marked paid. The
// two cases are deliberately not distinguished, matching the reference
// behavior (both map to 404 at the HTTP boundary).
var ErrParcelNotPayable = errors.New("parcel not found or already paid")

// Service owns the parcel/payment consistency workflow.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// RecordPayment flips the parcel's payment_status unpaid -> paid and inserts
// the payment row in a single transaction. The conditional WHERE clause makes
// the flip at-most-once even under concurrent duplicate requests, and a
// failed insert rolls the flip back.
func (s *Service) RecordPayment(req paymentTypes.RecordPaymentRequest) (*paymentModel.Payment, error) {
	paidAt := time.Now()
	pay := &paymentModel.Payment{
		ParcelID:      req.ParcelID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		PaidAt:        paidAt,
		PaidAtString:  paidAt.Format(time.RFC3339),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&parcelModel.Parcel{}).
			Where("id = ? AND payment_status = ?", req.ParcelID, parcelModel.PaymentStatusUnpaid).
			Update("payment_status", parcelModel.PaymentStatusPaid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrParcelNotPayable
		}

		return tx.Create(pay).Error
	})
	if err != nil {
		return nil, err
	}

	return pay, nil
}

// ListByEmail returns the payment history for one email, newest first.
func (s *Service) ListByEmail(email string) ([]paymentModel.Payment, error) {
	var payments []paymentModel.Payment
	if err := s.DB.Where("email = ?", email).Order("paid_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Summary aggregates one email's payments for a single day.
type Summary struct {
	Date        string `json:"date"`
	Count       int64  `json:"count"`
	TotalAmount int64  `json:"total_amount"`
}

// SummaryForToday aggregates the caller's payments between today's day
// bounds in server-local time.
func (s *Service) SummaryForToday(email string) (*Summary, error) {
	from := now.BeginningOfDay()
	to := now.EndOfDay()

	summary := &Summary{Date: from.Format("2006-01-02")}

	row := s.DB.Model(&paymentModel.Payment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Where("email = ? AND paid_at BETWEEN ? AND ?", email, from, to).
		Row()
	if err := row.Scan(&summary.Count, &summary.TotalAmount); err != nil {
		return nil, err
	}

	return summary, nil
}
