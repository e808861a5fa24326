package models

// User is an account document. Email is stored normalized and must be
// unique across the collection; Password holds the bcrypt hash, never
// the plaintext.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"` // "user" or "admin"
}

func (u User) Doc() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"password": u.Password,
		"type":     u.Type,
	}
}
