package analyzer

import "sync"

// commonPasswords lists frequently leaked passwords, lowercase.
var commonPasswords = []string{
	"password", "123456", "password123", "admin", "qwerty",
	"letmein", "welcome", "monkey", "1234567890", "abc123",
	"password1", "123456789", "welcome123", "admin123",
	"12345678", "12345", "1234567", "111111", "123123",
	"000000", "654321", "666666", "121212", "112233",
	"iloveyou", "dragon", "sunshine", "princess", "football",
	"baseball", "basketball", "soccer", "hockey", "master",
	"shadow", "superman", "batman", "trustno1", "starwars",
	"michael", "jennifer", "jordan", "hunter", "hunter2",
	"charlie", "thomas", "jessica", "ashley", "daniel",
	"login", "access", "secret", "changeme", "default",
	"passw0rd", "p@ssw0rd", "p@ssword", "qwerty123", "qwertyuiop",
	"1q2w3e4r", "1qaz2wsx", "zaq12wsx", "asdfghjkl", "zxcvbnm",
	"whatever", "freedom", "mustang", "killer", "pepper",
	"ginger", "cookie", "flower", "orange", "banana",
	"computer", "internet", "matrix", "summer", "winter",
	"spring", "autumn", "love", "lovely", "loveme",
	"qazwsx", "trustme", "solo", "starwars1", "pokemon",
	"test", "test123", "guest", "root", "toor",
	"administrator", "user", "temp", "pass", "pass123",
}

// commonTerms are flagged anywhere inside a longer password.
var commonTerms = []string{"password", "admin", "user", "login"}

// commonSet holds commonPasswords after fold.
var commonSet = sync.OnceValue(func() map[string]struct{} {
	set := make(map[string]struct{}, len(commonPasswords))
	for _, p := range commonPasswords {
		set[fold(p)] = struct{}{}
	}
	return set
})
