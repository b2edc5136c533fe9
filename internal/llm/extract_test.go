package llm

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"pure object", `{"isCat": true}`, `{"isCat": true}`, true},
		{"prose around object", `Sure! {"isCat": true, "reason": "whiskers visible"} Hope that helps.`, `{"isCat": true, "reason": "whiskers visible"}`, true},
		{"nested object", `result: {"a": {"b": 1}, "c": 2}`, `{"a": {"b": 1}, "c": 2}`, true},
		{"first of multiple fragments", `{"first": 1} and later {"second": 2}`, `{"first": 1}`, true},
		{"brace inside string literal", `{"reason": "uses { and } in prose"}`, `{"reason": "uses { and } in prose"}`, true},
		{"escaped quote inside string", `{"reason": "she said \"hi}\" once"}`, `{"reason": "she said \"hi}\" once"}`, true},
		{"unbalanced open", `{"isCat": true`, "", false},
		{"no object at all", `definitely a cat`, "", false},
		{"empty input", "", "", false},
		{"closing before opening", `} {"a": 1}`, `{"a": 1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.in)
			if ok != tt.ok {
				t.Fatalf("ExtractJSONObject(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
