package errors

var (
	// Domain errors returned by the prekey usecase
	ErrInvalidUserID                = BadRequest("user id is required")
	ErrInvalidIdentityKey           = InvalidFormat("identity key must be a base64 encoded 32 byte public key")
	ErrIdentityKeyExists            = Conflict("identity key already registered")
	ErrIdentityKeyNotFound          = NotFound("identity key not registered")
	ErrInvalidSignedPreKey          = InvalidFormat("signed prekey must be a base64 encoded 32 byte public key")
	ErrInvalidSignedPreKeySignature = InvalidFormat("signed prekey signature must be a base64 encoded 64 byte signature")
	ErrSignedPreKeySignatureInvalid = InvalidFormat("signed prekey signature verification failed")
	ErrInvalidExpiry                = InvalidFormat("signed prekey expiry must be in the future")
	ErrSignedPreKeyExists           = Conflict("signed prekey id already exists")
	ErrSignedPreKeyNotFound         = NotFound("no valid signed prekey")
	ErrOneTimePreKeyBatchEmpty      = BadRequest("at least one one-time prekey is required")
	ErrOneTimePreKeyBatchTooLarge   = BadRequest("too many one-time prekeys in one upload")
	ErrDuplicateOneTimePreKeyID     = BadRequest("duplicate one-time prekey id in upload")
	ErrInvalidOneTimePreKey         = InvalidFormat("one-time prekey must be a base64 encoded 32 byte public key")
	ErrOneTimePreKeyExists          = Conflict("one-time prekey id already exists")
	ErrOneTimePreKeyNotFound        = NotFound("one-time prekey not found")
	ErrOneTimePreKeyAlreadyUsed     = BadRequest("one-time prekey already used")
)

func ErrStorageUnavailable(cause error) error {
	return Unavailable("storage temporarily unavailable", cause)
}

func ErrStorageFailed(cause error) error {
	return Wrap(CodeInternal, "storage failure", cause)
}
