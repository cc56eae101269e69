package api

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCamelizeKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"simple snake", "created_at", "createdAt"},
		{"multiple segments", "leads_by_status", "leadsByStatus"},
		{"already camel", "createdAt", "createdAt"},
		{"no underscore", "name", "name"},
		{"leading underscore", "_id", "Id"},
		{"trailing underscore kept", "name_", "name_"},
		{"underscore before digit kept", "line_2", "line_2"},
		{"underscore before uppercase kept", "API_Key", "API_Key"},
		{"double underscore collapses once", "a__b", "a_B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := camelizeKey(tt.key); got != tt.want {
				t.Errorf("camelizeKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestCamelizeJSON_Recursive(t *testing.T) {
	in := []byte(`{
		"project_type": "redesign",
		"pagination": {"total_pages": 3, "page": 1},
		"recent_leads": [
			{"created_at": "2025-01-02", "package_type": null},
			{"created_at": "2025-01-03"}
		]
	}`)

	out, err := camelizeJSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if got["projectType"] != "redesign" {
		t.Errorf("projectType = %v, want %q", got["projectType"], "redesign")
	}

	pagination, ok := got["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("pagination missing or wrong type: %v", got["pagination"])
	}
	if pagination["totalPages"] != float64(3) {
		t.Errorf("totalPages = %v, want 3", pagination["totalPages"])
	}

	leads, ok := got["recentLeads"].([]any)
	if !ok || len(leads) != 2 {
		t.Fatalf("recentLeads = %v, want 2 entries", got["recentLeads"])
	}

	first := leads[0].(map[string]any)
	if first["createdAt"] != "2025-01-02" {
		t.Errorf("array order not preserved: first createdAt = %v", first["createdAt"])
	}
	if v, present := first["packageType"]; !present || v != nil {
		t.Errorf("null value should survive under the renamed key, got %v (present=%v)", v, present)
	}
}

func TestCamelizeJSON_PreservesNumbers(t *testing.T) {
	in := []byte(`{"big_id": 9007199254740993, "rating": 4.5}`)

	out, err := camelizeJSON(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// float64 round-tripping would mangle this literal
	if string(got["bigId"]) != "9007199254740993" {
		t.Errorf("bigId = %s, want 9007199254740993", got["bigId"])
	}
	if string(got["rating"]) != "4.5" {
		t.Errorf("rating = %s, want 4.5", got["rating"])
	}
}

func TestCamelizeJSON_TopLevelArrayAndScalars(t *testing.T) {
	out, err := camelizeJSON([]byte(`[{"display_order": 1}, {"display_order": 2}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := []map[string]any{{"displayOrder": float64(1)}, {"displayOrder": float64(2)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Empty input passes through untouched.
	out, err = camelizeJSON([]byte("  "))
	if err != nil {
		t.Fatalf("unexpected error on blank input: %v", err)
	}
	if string(out) != "  " {
		t.Errorf("blank input changed to %q", out)
	}
}

func TestCamelizeJSON_InvalidJSON(t *testing.T) {
	if _, err := camelizeJSON([]byte(`{"broken`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
