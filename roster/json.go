package roster

import json "github.com/goccy/go-json"

var _ json.Marshaler = Roster{}

// MarshalJSON encodes the roster as the plain array of its users, in order.
func (r Roster) MarshalJSON() ([]byte, error) {
	if r.users == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.users)
}
