package repoargs

import (
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
)

type CreateUser struct {
	Username          string
	Password          string
	Email             string
	PhoneNumber       *string
	UserType          domain.UserType
	PreferredLanguage domain.Language
}

type UpdateProfile struct {
	UserID            int64
	State             string
	LGA               string
	Community         string
	Bio               string
	DateOfBirth       *time.Time
	PreferredLanguage domain.Language
}

type UpsertBusinessVerification struct {
	UserID         int64
	CertificateKey *string
	RCNumber       string
	TIN            string
}

type ReviewBusinessVerification struct {
	UserID int64
	Status domain.VerificationStatusType
	Notes  string
}
