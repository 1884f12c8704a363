package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/studyquest/backend/internal/model"
)

const tokenTTL = 24 * time.Hour

// IssueToken signs an HS256 session token for the user, valid for 24 hours.
func IssueToken(secret string, user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"email":      user.Email,
		"is_student": user.IsStudent,
		"is_teacher": user.IsTeacher,
		"is_admin":   user.IsAdmin,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
