package models

type UserType string
type DeviceClass string
type OTPPurpose string
type DocumentStatus string

const (
	UserTypeGeneral    UserType = "general"
	UserTypeInfluencer UserType = "influencer"
	UserTypeVendor     UserType = "vendor"

	DeviceWeb    DeviceClass = "web"
	DeviceMobile DeviceClass = "mobile"

	OTPPurposeVerification  OTPPurpose = "email_verification"
	OTPPurposePasswordReset OTPPurpose = "password_reset"

	DocumentStatusPending  DocumentStatus = "Pending"
	DocumentStatusApproved DocumentStatus = "Approved"
	DocumentStatusRejected DocumentStatus = "Rejected"
)

// UserTypes - все допустимые роли
var UserTypes = []UserType{UserTypeGeneral, UserTypeInfluencer, UserTypeVendor}

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeGeneral, UserTypeInfluencer, UserTypeVendor:
		return true
	}
	return false
}

func (d DeviceClass) IsValid() bool {
	return d == DeviceWeb || d == DeviceMobile
}

// ParseDeviceClass разбирает заголовок X-Client-Type; по умолчанию web
func ParseDeviceClass(header string) DeviceClass {
	if DeviceClass(header) == DeviceMobile {
		return DeviceMobile
	}
	return DeviceWeb
}
