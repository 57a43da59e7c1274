package compose

import (
	"testing"
)

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"  yep ", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := isYes(tt.answer); got != tt.want {
			t.Errorf("isYes(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestNormalizeMediaType(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"image", "image"},
		{"VIDEO", "video"},
		{" gif ", "gif"},
		{"audio", "image"},
		{"", "image"},
	}

	for _, tt := range tests {
		if got := normalizeMediaType(tt.value); got != tt.want {
			t.Errorf("normalizeMediaType(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestModel_AdvanceStages(t *testing.T) {
	m := NewModel()

	// Text entry does not finish without a trailing blank line
	m.textarea.SetValue("my first post")
	if m.advance() {
		t.Fatal("advance finished without a blank line")
	}
	if m.stage != stageText {
		t.Fatalf("stage = %v, want stageText", m.stage)
	}

	// Blank line after content moves to the media prompt
	m.textarea.SetValue("my first post\n")
	if m.advance() {
		t.Fatal("advance should not finish at the text stage")
	}
	if m.stage != stageMedia {
		t.Fatalf("stage = %v, want stageMedia", m.stage)
	}
	if m.post.Text != "my first post" {
		t.Errorf("Text = %q, want %q (trailing newline trimmed)", m.post.Text, "my first post")
	}

	// Media yes leads to the type prompt
	m.input.SetValue("y")
	m.advance()
	if m.stage != stageMediaType {
		t.Fatalf("stage = %v, want stageMediaType", m.stage)
	}
	if !m.post.HasMedia {
		t.Error("HasMedia = false, want true")
	}

	// Unrecognized type falls back to image
	m.input.SetValue("hologram")
	m.advance()
	if m.post.MediaType != "image" {
		t.Errorf("MediaType = %q, want %q", m.post.MediaType, "image")
	}
	if m.stage != stageReply {
		t.Fatalf("stage = %v, want stageReply", m.stage)
	}

	// Reply answer completes composition
	m.input.SetValue("n")
	if !m.advance() {
		t.Fatal("advance should finish after the reply prompt")
	}
	if m.post.IsReply {
		t.Error("IsReply = true, want false")
	}

	post := m.Post()
	if post.Text != "my first post" || !post.HasMedia || post.MediaType != "image" {
		t.Errorf("composed post = %+v", post)
	}
}

func TestModel_NoMediaSkipsTypePrompt(t *testing.T) {
	m := NewModel()
	m.stage = stageMedia
	m.input.SetValue("n")
	m.advance()

	if m.stage != stageReply {
		t.Fatalf("stage = %v, want stageReply (type prompt skipped)", m.stage)
	}
	if m.post.HasMedia {
		t.Error("HasMedia = true, want false")
	}
}

func TestModel_BlankTextDoesNotAdvance(t *testing.T) {
	m := NewModel()
	m.textarea.SetValue("\n\n")
	if m.advance() {
		t.Fatal("advance finished on whitespace-only input")
	}
	if m.stage != stageText {
		t.Errorf("stage = %v, want stageText (needs prior content)", m.stage)
	}
}
