package models

import "encoding/json"

// User is the account returned by the auth endpoint.
type User struct {
	ID       string
	Username string
	Email    string
}

type userWire struct {
	ID       opaqueID `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	var w userWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*u = User{ID: string(w.ID), Username: w.Username, Email: w.Email}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userWire{ID: opaqueID(u.ID), Username: u.Username, Email: u.Email})
}
