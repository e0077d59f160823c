package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnsupportedUserType = errors.New("unsupported user type")

// Profile - ролевой профиль. Конкретная форма определяется UserType аккаунта.
type Profile interface {
	UserType() UserType
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,max=255"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,max=255"`
	TikTok    string `json:"tiktok,omitempty" validate:"omitempty,max=255"`
	YouTube   string `json:"youtube,omitempty" validate:"omitempty,max=255"`
	Other     string `json:"other,omitempty" validate:"omitempty,max=255"`
}

type Address struct {
	AddressLine1 string `json:"addressLine1" validate:"max=255"`
	AddressLine2 string `json:"addressLine2" validate:"max=255"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"max=100"`
	Country      string `json:"country" validate:"max=100"`
	ZipCode      string `json:"zipCode" validate:"max=20"`
}

type GeneralProfile struct {
	Country   string   `json:"country" validate:"max=100"`
	State     string   `json:"state" validate:"max=100"`
	Gender    string   `json:"gender" validate:"max=50"`
	DOB       string   `json:"dob" validate:"max=32"`
	Interests []string `json:"interests" validate:"max=50,dive,max=100"`
}

func (GeneralProfile) UserType() UserType { return UserTypeGeneral }

type InfluencerProfile struct {
	Country          string      `json:"country" validate:"max=100"`
	State            string      `json:"state" validate:"max=100"`
	Gender           string      `json:"gender" validate:"max=50"`
	DOB              string      `json:"dob" validate:"max=32"`
	Niche            []string    `json:"niche" validate:"max=50,dive,max=100"`
	About            string      `json:"about" validate:"max=2000"`
	BrandStatement   string      `json:"brandStatement" validate:"max=2000"`
	WorkedWithBrands []string    `json:"workedWithBrands" validate:"max=100,dive,max=255"`
	SocialLinks      SocialLinks `json:"socialLinks"`
}

func (InfluencerProfile) UserType() UserType { return UserTypeInfluencer }

type Identification struct {
	Status    string `json:"status" validate:"max=50"`
	SessionID string `json:"sessionId" validate:"max=255"`
}

type BusinessContact struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"max=50"`
}

type BusinessAddress struct {
	SameAsResidential bool `json:"sameAsResidential"`
	Address
}

type VendorProfile struct {
	FullName             string          `json:"fullName" validate:"max=255"`
	DOB                  string          `json:"dob" validate:"max=32"`
	Gender               string          `json:"gender" validate:"max=50"`
	Address              Address         `json:"address"`
	Identification       Identification  `json:"identification"`
	Categories           []string        `json:"categories" validate:"max=50,dive,max=100"`
	BusinessName         string          `json:"businessName" validate:"max=255"`
	HasDBA               bool            `json:"hasDba"`
	DBATradeName         string          `json:"dbaTradeName" validate:"max=255"`
	BusinessContact      BusinessContact `json:"businessContact"`
	BusinessAddress      BusinessAddress `json:"businessAddress"`
	BusinessWebsite      string          `json:"businessWebsite" validate:"max=255"`
	BusinessType         string          `json:"businessType" validate:"max=100"`
	IsRegisteredBusiness bool            `json:"isRegisteredBusiness"`
	IsManufacturer       bool            `json:"isManufacturer"`
	BrandCountry         string          `json:"brandCountry" validate:"max=100"`
	BrandLaunchYear      string          `json:"brandLaunchYear" validate:"max=4"`
	SocialLinks          SocialLinks     `json:"socialLinks"`
	IsAllowedEverywhere  bool            `json:"isAllowedEveryWhere"`
	ProductCountries     []string        `json:"productCountries" validate:"max=250,dive,max=100"`
	BrandPromotionalPlan string          `json:"brandPromotionalPlan" validate:"max=2000"`
	ProductDescription   string          `json:"productDescription" validate:"max=2000"`
	ProductUSP           string          `json:"productUSP" validate:"max=2000"`
	DocumentStatus       DocumentStatus  `json:"documentStatus" validate:"omitempty,oneof=Pending Approved Rejected"`
}

func (VendorProfile) UserType() UserType { return UserTypeVendor }

// NewProfile возвращает пустой профиль для роли
func NewProfile(userType UserType) (Profile, error) {
	switch userType {
	case UserTypeGeneral:
		return &GeneralProfile{}, nil
	case UserTypeInfluencer:
		return &InfluencerProfile{}, nil
	case UserTypeVendor:
		return &VendorProfile{Identification: Identification{Status: string(DocumentStatusPending)}, DocumentStatus: DocumentStatusPending}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedUserType, userType)
	}
}

// DecodeProfile строго разбирает JSON в профиль роли: неизвестные поля - ошибка.
func DecodeProfile(userType UserType, raw []byte) (Profile, error) {
	profile, err := NewProfile(userType)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return profile, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(profile); err != nil {
		return nil, fmt.Errorf("invalid %s profile: %w", userType, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid %s profile: trailing data", userType)
	}

	if v, ok := profile.(*VendorProfile); ok && v.DocumentStatus == "" {
		v.DocumentStatus = DocumentStatusPending
	}
	return profile, nil
}
