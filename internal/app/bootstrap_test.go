package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "3000", want: ":3000"},
		{in: ":3000", want: ":3000"},
		{in: " 8080 ", want: ":8080"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ListenAddr(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ListenAddr(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ListenAddr(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
