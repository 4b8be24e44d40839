package common

// Cookie names used to deliver tokens to browsers. The HTTP layer sets and
// clears these; services never touch transport concerns.
const (
	AccessTokenCookieName  = "accessToken"
	RefreshTokenCookieName = "refreshToken"
)

// VerificationCreditBonus is granted exactly once when an account's email
// address is verified.
const VerificationCreditBonus = 25
