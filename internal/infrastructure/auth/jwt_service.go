package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"github.com/golang-jwt/jwt/v5"
)

// JWTServiceImpl implements domain.TokenService. Tokens carry the account id,
// its mobile number and the selected role id, if any.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(accountID uint, mobile string, roleID *uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     accountID,
		"mobile": mobile,
		"iss":    j.issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(j.ttl).Unix(),
		"jti":    j.generateJTI(),
	}
	if roleID != nil {
		claims["role_id"] = *roleID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. Every parsing failure is
// normalized to a sentinel error, nothing propagates raw.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	accountID, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	mobile, ok := claims["mobile"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	tokenClaims := &domain.TokenClaims{
		AccountID: uint(accountID),
		Mobile:    mobile,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if roleID, ok := claims["role_id"].(float64); ok {
		id := uint(roleID)
		tokenClaims.RoleID = &id
	}

	return tokenClaims, nil
}
