package database

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// UserService provides identity and history logic on top of the repository.
// Users are anonymous: a session token pins a browser to a user ID, and
// requests without a valid token fall back to IP-based identity.
type UserService struct {
	repo      *Repository
	jwtSecret []byte
}

// NewUserService creates a new user service
func NewUserService(repo *Repository, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
	}
}

// ResolveUser identifies the user behind a request. A valid session token
// wins; otherwise the user is looked up (or created) by IP address.
func (s *UserService) ResolveUser(tokenString, ipAddress, userAgent string) (*User, error) {
	if tokenString != "" {
		if userID, err := s.ValidateSessionToken(tokenString); err == nil {
			if user, err := s.repo.GetUser(userID); err == nil && user != nil {
				return user, nil
			}
		}
	}

	return s.repo.GetOrCreateUser(ipAddress, userAgent)
}

// GenerateSessionToken generates a JWT token for the user session
func (s *UserService) GenerateSessionToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken validates a JWT token and returns the user ID
func (s *UserService) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(string)
		if !ok {
			return "", fmt.Errorf("user_id not found in token")
		}
		return userID, nil
	}

	return "", fmt.Errorf("invalid token")
}

// History returns the user's check-ins, oldest first.
func (s *UserService) History(userID string) ([]*types.ResponseRecord, error) {
	return s.repo.History(userID)
}

// Trend summarizes the user's score history: per-point samples, the latest
// versus previous delta and the running average.
func (s *UserService) Trend(userID string) (*types.TrendSummary, error) {
	records, err := s.repo.History(userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &types.TrendSummary{Direction: "none"}, nil
	}

	summary := &types.TrendSummary{
		Points:    make([]types.TrendPoint, 0, len(records)),
		Direction: "steady",
	}

	total := 0
	for _, rec := range records {
		score := rec.DisplayScore()
		total += score
		summary.Points = append(summary.Points, types.TrendPoint{
			Timestamp: rec.Timestamp,
			Score:     score,
			Platform:  rec.Platform,
		})
	}

	summary.Latest = summary.Points[len(summary.Points)-1].Score
	summary.AverageScore = float64(total) / float64(len(records))

	if len(summary.Points) > 1 {
		prev := summary.Points[len(summary.Points)-2].Score
		delta := summary.Latest - prev
		summary.Previous = &prev
		summary.Delta = &delta

		switch {
		case delta > 0:
			summary.Direction = "improving"
		case delta < 0:
			summary.Direction = "declining"
		}
	}

	return summary, nil
}
