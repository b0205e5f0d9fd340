package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/td/internal/form"
	"github.com/amonks/td/todo"
)

func TestRenderTodoTOML_Create(t *testing.T) {
	content, err := RenderTodoTOML(DataFromDraft("", todo.NewDraft()))
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	if !strings.Contains(content, `name = ""`) {
		t.Error("expected empty name")
	}
	if !strings.Contains(content, "priority = 3") {
		t.Error("expected default priority 3")
	}
	if !strings.Contains(content, `deadline = ""`) {
		t.Error("expected empty deadline")
	}
	if strings.Contains(content, "# editing") {
		t.Error("create should not name an ID")
	}
}

func TestRenderTodoTOML_Update(t *testing.T) {
	deadline := time.Date(2024, time.November, 2, 17, 30, 0, 0, time.Local)
	data := DataFromDraft("abc12345", todo.Draft{Name: "Test Todo", Priority: 1, Deadline: &deadline})

	content, err := RenderTodoTOML(data)
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	if !strings.Contains(content, "# editing abc12345") {
		t.Error("expected ID comment")
	}
	if !strings.Contains(content, `name = "Test Todo"`) {
		t.Error("expected name to be set")
	}
	if !strings.Contains(content, "priority = 1") {
		t.Error("expected priority 1")
	}
	if !strings.Contains(content, `deadline = "2024-11-02 17:30"`) {
		t.Errorf("expected formatted deadline, got:\n%s", content)
	}
}

func TestRenderedTemplateParses(t *testing.T) {
	deadline := time.Date(2024, time.November, 2, 17, 30, 0, 0, time.Local)
	want := todo.Draft{Name: `quote "me"`, Priority: 2, Deadline: &deadline}

	content, err := RenderTodoTOML(DataFromDraft("id", want))
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}
	got, err := ParseTodoTOML(content)
	if err != nil {
		t.Fatalf("ParseTodoTOML failed: %v", err)
	}
	if got.Name != want.Name || got.Priority != want.Priority || !got.Deadline.Equal(deadline) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseTodoTOML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, d todo.Draft)
	}{
		{
			name:    "no deadline",
			content: "name = \"buy milk\"\npriority = 2\ndeadline = \"\"\n",
			check: func(t *testing.T, d todo.Draft) {
				if d.Name != "buy milk" || d.Priority != 2 || d.Deadline != nil {
					t.Errorf("unexpected draft %+v", d)
				}
			},
		},
		{
			name:    "missing priority defaults to high",
			content: "name = \"buy milk\"\n",
			check: func(t *testing.T, d todo.Draft) {
				if d.Priority != todo.PriorityHigh {
					t.Errorf("priority = %d, want %d", d.Priority, todo.PriorityHigh)
				}
			},
		},
		{
			name:    "date only deadline",
			content: "name = \"buy milk\"\ndeadline = \"2024-11-11\"\n",
			check: func(t *testing.T, d todo.Draft) {
				want := time.Date(2024, time.November, 11, 0, 0, 0, 0, time.Local)
				if d.Deadline == nil || !d.Deadline.Equal(want) {
					t.Errorf("deadline = %v, want %v", d.Deadline, want)
				}
			},
		},
		{
			name:    "short name",
			content: "name = \"a\"\n",
			wantErr: todo.ErrInvalidName,
		},
		{
			name:    "bad priority",
			content: "name = \"buy milk\"\npriority = 7\n",
			wantErr: todo.ErrInvalidPriority,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTodoTOML(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTodoTOML failed: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestParseTodoTOML_Errors(t *testing.T) {
	for _, content := range []string{
		"name = \n",
		"name = \"buy milk\"\ndeadline = \"someday\"\n",
	} {
		if _, err := ParseTodoTOML(content); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestEditFormUsesEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'name = \"from editor\"\\npriority = 1\\ndeadline = \"\"\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	f := form.New()
	f.BeginAdd()
	if err := EditForm(f); err != nil {
		t.Fatalf("EditForm failed: %v", err)
	}
	d := f.Draft()
	if d.Name != "from editor" || d.Priority != 1 {
		t.Fatalf("unexpected draft %+v", d)
	}
	if !f.CanSubmit() {
		t.Fatal("form should be submittable")
	}
}

func TestEditFormClosed(t *testing.T) {
	if err := EditForm(form.New()); !errors.Is(err, form.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}
