// Package models holds the wire types exchanged with the artshop backend.
// Field tags mirror the backend's JSON exactly, MongoDB-style "_id" included.
package models

// User is the account record as the backend returns it.
type User struct {
	ID      string `json:"_id"`
	Nom     string `json:"nom"`
	Prenom  string `json:"prenom"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

// FullName returns "Nom Prenom" for display.
func (u User) FullName() string {
	return u.Nom + " " + u.Prenom
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is the body of successful login and register calls.
type AuthResponse struct {
	Msg   string `json:"msg"`
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}
