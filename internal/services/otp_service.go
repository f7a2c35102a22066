package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"go.uber.org/zap"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	otpRepo         domain.OTPRepository
	notificationSvc domain.NotificationService
	logger          *zap.Logger
	config          OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.OTPRepository, notificationSvc domain.NotificationService, logger *zap.Logger, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		otpRepo:         otpRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
		config:          config,
	}
}

// IssueIfAbsent implements domain.OTPService. While an unexpired code exists
// for the mobile this is a no-op, so repeated check-mobile calls cannot flood
// a number with codes.
func (s *OTPServiceImpl) IssueIfAbsent(ctx context.Context, mobile string) error {
	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	otp := &domain.OTPCode{
		Mobile:    mobile,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	created, err := s.otpRepo.CreateIfAbsent(ctx, otp)
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if !created {
		// A live code is still out there, resending would reissue it.
		return nil
	}

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendSMS(mobile, message); err != nil {
		// Delivery failure does not invalidate the stored code, the caller
		// can retry delivery through a later check-mobile once it expires.
		s.logger.Warn("otp sms delivery failed", zap.String("mobile", mobile), zap.Error(err))
	}

	return nil
}

// Consume implements domain.OTPService
func (s *OTPServiceImpl) Consume(ctx context.Context, mobile, code string) error {
	return s.otpRepo.Consume(ctx, mobile, code)
}

// generateSecureCode generates a numeric code with each digit uniformly
// random, leading zeros allowed.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
