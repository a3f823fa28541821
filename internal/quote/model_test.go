package quote

import "testing"

func TestValidate(t *testing.T) {
	valid := Request{Name: "Dana", Email: "dana@example.com", BoardType: "rigid-flex", Quantity: "250"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	cases := map[string]Request{
		"missing name":      {Email: "dana@example.com", BoardType: "rigid-flex", Quantity: "250"},
		"missing email":     {Name: "Dana", BoardType: "rigid-flex", Quantity: "250"},
		"missing boardType": {Name: "Dana", Email: "dana@example.com", Quantity: "250"},
		"missing quantity":  {Name: "Dana", Email: "dana@example.com", BoardType: "rigid-flex"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if err := req.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
