package jwt

import (
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimStaffID = "staff_id"
	ClaimRole    = "role"
	ClaimType    = "type"

	TokenTypeAccess = "access"
)

// Service verifies access tokens. GenerateAccessToken exists for tests and
// local tooling; token issuance to end users lives outside this service.
type Service interface {
	GenerateAccessToken(staffID string, role staff.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(staffID string, role staff.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimStaffID: staffID,
		ClaimRole:    string(role),
		ClaimType:    TokenTypeAccess,
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}
