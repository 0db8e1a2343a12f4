package model

import "time"

// Login is one saved credential from the browser's login store.
// PasswordValue holds the decrypted secret: it exists only in memory between
// decryption and either export serialization or re-encryption, never at rest
// outside an explicitly requested export artifact.
type Login struct {
	ID            int64
	OriginURL     string
	UsernameValue string
	PasswordValue string
	SignonRealm   string
	DateCreated   time.Time
}

// ExportedLogin is the JSON shape of one credential in passwords.json.
// Callers must treat files containing these records as highly sensitive.
type ExportedLogin struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Exported converts the login to its export-artifact form.
func (l Login) Exported() ExportedLogin {
	return ExportedLogin{URL: l.OriginURL, Username: l.UsernameValue, Password: l.PasswordValue}
}

// Login converts an exported record back to a domain login.
func (e ExportedLogin) Login() Login {
	return Login{OriginURL: e.URL, UsernameValue: e.Username, PasswordValue: e.Password}
}
