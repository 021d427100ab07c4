package models

// Credentials is the payload of a login request. Both fields are required;
// the handler rejects the request before any lookup when either is empty.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned on a successful login.
// The response shape is constant: an unknown email and a wrong password
// produce byte-identical failure responses upstream, so no field here may
// depend on which lookup matched.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
