package models

// User is one record of the persisted collection. The JSON tags define the
// on-disk format: the datastore is a single array of these objects, with
// Senha holding a bcrypt hash, never a plaintext password.
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// PublicUser is the projection returned to API clients: a User minus its
// password hash.
type PublicUser struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// Public returns the public-safe projection of the record.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Nome: u.Nome, Email: u.Email}
}
