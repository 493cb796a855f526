// Package donation implements the donation recorder: validation, the atomic
// profile update, and the fire-and-forget receipt dispatch.
package donation

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"donation_platform/internal/domain"
	"donation_platform/internal/mail"
)

// Error kinds mapped to HTTP statuses at the API layer
var (
	ErrInvalidAmount     = errors.New("donation amount must be greater than zero") // 400
	ErrMissingIdentifier = errors.New("missing donation identifier")               // 400
	ErrUserNotFound      = errors.New("user not found")                            // 404
)

// Identifier selects a donor by username or email (exactly one must be set)
type Identifier struct {
	Username string // Unique username
	Email    string // Unique email
}

// Service records donations against donor profiles
type Service struct {
	db          *gorm.DB    // Profile store
	mailer      mail.Sender // Receipt transport, may be nil to disable receipts
	impactRatio float64     // Currency units per impact unit
}

// NewService builds a recorder. impactRatio must be positive.
func NewService(db *gorm.DB, mailer mail.Sender, impactRatio float64) *Service {
	return &Service{db: db, mailer: mailer, impactRatio: impactRatio}
}

// ImpactIncrement converts a donation amount into impact units: the floor of
// amount/ratio, never less than one for a valid donation. Deterministic so
// the counter is testable and auditable.
func ImpactIncrement(amount, ratio float64) int64 {
	inc := int64(math.Floor(amount / ratio))
	if inc < 1 {
		inc = 1
	}
	return inc
}

// validAmount reports whether the amount is a finite number strictly above zero
func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// Record validates the request, applies the donation to the matching profile
// in one atomic UPDATE, and attempts the receipt email. The email is
// best-effort: its failure is logged and the donation still succeeds, with a
// nil mail result. Returns the updated profile.
func (s *Service) Record(ctx context.Context, id Identifier, amount float64, lang string) (*domain.User, *mail.Result, error) {
	if !validAmount(amount) {
		return nil, nil, ErrInvalidAmount
	}
	if id.Username == "" && id.Email == "" {
		return nil, nil, ErrMissingIdentifier
	}
	// Resolve the profile by username first, mirroring the HTTP contract
	var user domain.User
	query := s.db.WithContext(ctx)
	if id.Username != "" {
		query = query.Where("username = ?", id.Username)
	} else {
		query = query.Where("email = ?", id.Email)
	}
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return s.apply(ctx, &user, amount, lang)
}

// RecordByID applies a donation to the profile with the given primary key
func (s *Service) RecordByID(ctx context.Context, userID uint, amount float64, lang string) (*domain.User, *mail.Result, error) {
	if !validAmount(amount) {
		return nil, nil, ErrInvalidAmount
	}
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return s.apply(ctx, &user, amount, lang)
}

// apply performs the atomic increment and the receipt side effect.
// Both counters are updated with SQL increment expressions in a single
// UPDATE, so concurrent donations to the same profile accumulate correctly.
func (s *Service) apply(ctx context.Context, user *domain.User, amount float64, lang string) (*domain.User, *mail.Result, error) {
	livesInc := ImpactIncrement(amount, s.impactRatio)

	res := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"total_donated": gorm.Expr("total_donated + ?", amount),
			"lives_touched": gorm.Expr("lives_touched + ?", livesInc),
		})
	if res.Error != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"amount":  amount,
			"error":   res.Error.Error(),
		}).Error("Donation update failed")
		return nil, nil, res.Error
	}

	// Re-read the row so the response carries the post-increment values
	var updated domain.User
	if err := s.db.WithContext(ctx).First(&updated, user.ID).Error; err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         updated.ID,
		"amount":          amount,
		"lives_increment": livesInc,
		"total_donated":   updated.TotalDonated,
	}).Info("Donation recorded")

	// Receipt email is best-effort and must never fail the donation
	var mailResult *mail.Result
	if s.mailer != nil {
		result, err := s.mailer.SendDonationReceipt(ctx, mail.Receipt{
			To:           updated.Email,
			Name:         displayName(&updated),
			Amount:       amount,
			TotalDonated: updated.TotalDonated,
			LivesTouched: updated.LivesTouched,
			Lang:         lang,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": updated.ID,
				"error":   err.Error(),
			}).Error("Failed to send donation receipt")
		} else {
			mailResult = result
		}
	}

	return &updated, mailResult, nil
}

// displayName prefers the profile name and falls back to the username
func displayName(u *domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
