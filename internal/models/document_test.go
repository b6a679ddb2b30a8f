package models

import (
	"encoding/json"
	"testing"
)

func TestDocumentID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DocumentID
		wantErr bool
	}{
		{"string", `"abc"`, "abc", false},
		{"integer", `42`, "42", false},
		{"float", `1712345678901.123`, "1712345678901.123", false},
		{"null", `null`, "", false},
		{"object", `{}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id DocumentID
			err := json.Unmarshal([]byte(tt.in), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}
		})
	}
}

func TestDocument_Text(t *testing.T) {
	var nilDoc *Document
	if _, ok := nilDoc.Text(); ok {
		t.Error("nil document should have no text")
	}
	if _, ok := (&Document{ID: "1"}).Text(); ok {
		t.Error("absent content should have no text")
	}
	if text, ok := NewDocument("1", "a.txt", "").Text(); !ok || text != "" {
		t.Errorf("empty content should be present, got %q, %v", text, ok)
	}
	bad := "bad\xffbytes"
	if _, ok := (&Document{ID: "1", Content: &bad}).Text(); ok {
		t.Error("invalid UTF-8 should have no text")
	}
	text, ok := NewDocument("1", "a.txt", "hello").Text()
	if !ok || text != "hello" {
		t.Errorf("got %q, %v", text, ok)
	}
}

func TestDocument_UnmarshalMissingContent(t *testing.T) {
	var d Document
	if err := json.Unmarshal([]byte(`{"id":1,"name":"a.txt"}`), &d); err != nil {
		t.Fatal(err)
	}
	if d.Content != nil {
		t.Error("content should be nil when absent")
	}
	if d.ID != "1" {
		t.Errorf("id: got %q", d.ID)
	}
}

func TestPairID(t *testing.T) {
	a := NewDocument("1", "a", "x")
	b := NewDocument("2", "b", "y")
	if got := PairID(a, b); got != "1-2" {
		t.Errorf("PairID = %q", got)
	}
	r := NewResult(a, b, 12.34, StatusScored)
	if r.ID != "1-2" || r.File1 != a || r.File2 != b || r.Similarity != 12.34 {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     *AnalyzeRequest
		wantErr bool
	}{
		{"empty", &AnalyzeRequest{}, false},
		{"null document", &AnalyzeRequest{Documents: []*Document{nil}}, true},
		{"name sort", &AnalyzeRequest{Sort: "name"}, false},
		{"bad sort", &AnalyzeRequest{Sort: "size"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
