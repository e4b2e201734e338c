package models

import "golang.org/x/oauth2"

// UserProfile is the cached copy of the backend user record, fetched at
// session hydration and refreshed after profile edits. Email is immutable
// on the backend; Fullname can be edited through user/edit.
type UserProfile struct {
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	UserCreated string `json:"usercreated"`
}

// Session holds the persisted credentials for one logged-in user. An empty
// access token is equivalent to "logged out".
type Session struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user,omitempty"`
}

// Token exposes the credential pair as an oauth2 token, used to attach the
// Authorization: Bearer header to outgoing requests.
func (s *Session) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
}
