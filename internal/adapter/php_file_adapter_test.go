package adapter

import (
	"context"
	"strings"
	"testing"
)

func TestLocalPHPFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalPHPFileAdapter()

	t.Run("valid file", func(t *testing.T) {
		file, err := adapter.Parse(context.Background(), []byte("<?php\nnamespace App\\Model;\n\nclass User { public function getId(): int { return $this->id; } }\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		if file.HasErrors() {
			t.Fatalf("Parse() reported errors: %v", file.Errors)
		}

		if file.Root.Kind != "program" {
			t.Errorf("root kind = %q, want program", file.Root.Kind)
		}

		namespace := file.Root.ChildOfKind("namespace_definition")
		if namespace == nil {
			t.Fatal("namespace_definition not found")
		}

		name := namespace.ChildOfKind("namespace_name")
		if name == nil || !name.IsLeaf() || name.Text != `App\Model` {
			t.Errorf("namespace_name = %+v, want atomic leaf App\\Model", name)
		}

		class := file.Root.ChildOfKind("class_declaration")
		if class == nil {
			t.Fatal("class_declaration not found")
		}

		if got := class.ChildByField("name"); got == nil || got.Text != "User" {
			t.Errorf("class name = %+v, want User", got)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		file, err := adapter.Parse(context.Background(), []byte("<?php\nclass Broken { public function ( }\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		if !file.HasErrors() {
			t.Fatal("expected syntax errors")
		}

		if !strings.Contains(file.Errors[0], "line 2") {
			t.Errorf("error %q does not name line 2", file.Errors[0])
		}
	})

	t.Run("open tag only", func(t *testing.T) {
		file, err := adapter.Parse(context.Background(), []byte("<?php\n"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		if file.HasErrors() {
			t.Fatalf("Parse() reported errors: %v", file.Errors)
		}

		if file.Root.ChildOfKind("class_declaration") != nil {
			t.Error("unexpected class_declaration")
		}
	})
}
