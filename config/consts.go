package config

import "time"

const (
	RANGE_API_URL          = "https://api.pwnedpasswords.com/range/"
	HASH_PREFIX_LENGTH     = 5
	SHA1_HASH_LENGTH       = 40 // sha1 in hex
	NTLM_HASH_LENGTH       = 32 // md4 in hex
	HTTP_CLIENT_TIMEOUT    = 10 * time.Second
	HTTP_CLIENT_USER_AGENT = "checkmypass"
	PADDING_HEADER         = "Add-Padding"
	DEFAULT_MODE           = "sha1"
)
