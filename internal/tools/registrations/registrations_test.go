package registrations

import "testing"

func TestPlayerSpecUnmarshalText(t *testing.T) {
	cases := []struct {
		in      string
		name    string
		role    string
		captain bool
		ok      bool
	}{
		{"Asha", "Asha", "player", false, true},
		{"Asha:keeper", "Asha", "keeper", false, true},
		{"Asha:keeper:captain", "Asha", "keeper", true, true},
		{"Asha::c", "Asha", "player", true, true},
		{"", "", "", false, false},
		{"a:b:c:d", "", "", false, false},
		{"Asha:keeper:vice", "", "", false, false},
	}
	for _, c := range cases {
		var p PlayerSpec
		err := p.UnmarshalText([]byte(c.in))
		if c.ok && err != nil {
			t.Errorf("%q: expected no error, got %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%q: expected an error", c.in)
			}
			continue
		}
		if p.Name != c.name || p.Role != c.role || p.IsCaptain != c.captain {
			t.Errorf("%q: expected {%s %s %v}, got {%s %s %v}",
				c.in, c.name, c.role, c.captain, p.Name, p.Role, p.IsCaptain)
		}
	}
}
