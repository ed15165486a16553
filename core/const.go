package core

const (
	RequesterActorCtxKey = "chp-requesterActor"
	RequesterClaimsKey   = "chp-requesterClaims"
	CaptchaVerifiedKey   = "chp-captchaVerified"
)

const (
	CaptchaHeader = "captcha"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleSystem = "system"
)

const (
	PostTypePost      = "post"
	PostTypeChallenge = "challenge"
	PostTypeNotice    = "notice"
)

const (
	LikeTypeLike    = "like"
	LikeTypeDislike = "dislike"
)

const (
	LikeTargetPost      = "post"
	LikeTargetComment   = "comment"
	LikeTargetChallenge = "challenge"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
