package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReporter_Report(t *testing.T) {
	result := &Result{}
	result.AddError("name", "Name too short", "Al")
	result.AddWarning("email", "looks unusual", "a@b")
	result.AddInfo("password", "strength 3/5 (Fair)", nil)
	result.Issues[0].Context = map[string]string{"form": "signup"}

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"1 error(s)",
			"1 warning(s)",
			"name: Name too short",
			"(form=signup)",
			"[Al]",
			"Notes:",
			"password: strength 3/5 (Fair)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatJSON)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded struct {
			Valid  bool    `json:"valid"`
			Issues []Issue `json:"issues"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}

		if decoded.Valid {
			t.Error("decoded valid = true, want false")
		}
		if len(decoded.Issues) != 3 {
			t.Errorf("decoded issues count = %d, want 3", len(decoded.Issues))
		}
		if decoded.Issues[0].Severity != SeverityError {
			t.Errorf("first issue severity = %v, want error", decoded.Issues[0].Severity)
		}
	})

	t.Run("passing result still shows notes", func(t *testing.T) {
		r := &Result{}
		r.AddInfo("password", "strength 5/5 (Strong)", nil)

		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatText).Report(r); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Validation passed") {
			t.Error("output missing success message")
		}
		if !strings.Contains(out, "strength 5/5 (Strong)") {
			t.Error("output missing strength note")
		}
	})

	t.Run("empty result json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatJSON).Report(&Result{}); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if !strings.Contains(buf.String(), `"issues": []`) {
			t.Errorf("expected empty issues array, got %s", buf.String())
		}
	})
}
