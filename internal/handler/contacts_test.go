package handler

import (
	"encoding/json"
	"testing"
)

func TestCreateContactActiveDefault(t *testing.T) {
	cases := []struct {
		body string
		want bool
	}{
		{`{"name":"Suporte","number":"+55 11 99999-0000"}`, true},
		{`{"name":"Suporte","number":"+55 11 99999-0000","is_active":false}`, false},
		{`{"name":"Suporte","number":"+55 11 99999-0000","is_active":true}`, true},
	}
	for _, c := range cases {
		var req createContactRequest
		if err := json.Unmarshal([]byte(c.body), &req); err != nil {
			t.Fatalf("decode failed for %s: %v", c.body, err)
		}
		contact := req.contact()
		if contact.IsActive != c.want {
			t.Errorf("IsActive for %s = %v, want %v", c.body, contact.IsActive, c.want)
		}
		if contact.Name != "Suporte" || contact.Number != "+55 11 99999-0000" {
			t.Errorf("fields lost in conversion: %+v", contact)
		}
	}
}
