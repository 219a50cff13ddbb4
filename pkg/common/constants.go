package common

import "time"

const (
	DefaultSessionTTL          = 2 * time.Hour
	DefaultVerificationTTL     = 30 * time.Minute
	DefaultSiteVerifyTimeout   = 10 * time.Second
	DefaultSiteVerifyURL       = "https://www.google.com/recaptcha/api/siteverify"
	DefaultSessionCookieName   = "formguard_session"
	VerificationResponseKeyFmt = "recaptcha:%s:%s"
)
