package languages

import (
	"errors"
	"testing"
)

func validSpec(id string) *LanguageSpec {
	return &LanguageSpec{
		ID:             id,
		Name:           "Test",
		Extension:      "test",
		MethodTemplate: "codec.test.tmpl",
		Enabled:        true,
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected empty registry, got count=%d", r.Count())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	spec := validSpec("test")

	if err := r.Register(spec); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if r.Count() != 1 {
		t.Errorf("expected count=1, got %d", r.Count())
	}

	if err := r.Register(spec); err != ErrLanguageAlreadyExists {
		t.Errorf("expected ErrLanguageAlreadyExists, got: %v", err)
	}
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		spec *LanguageSpec
		err  error
	}{
		{
			name: "missing ID",
			spec: &LanguageSpec{Name: "Test", Extension: "t", MethodTemplate: "x"},
			err:  ErrInvalidLanguageID,
		},
		{
			name: "missing name",
			spec: &LanguageSpec{ID: "t", Extension: "t", MethodTemplate: "x"},
			err:  ErrInvalidLanguageName,
		},
		{
			name: "missing extension",
			spec: &LanguageSpec{ID: "t", Name: "T", MethodTemplate: "x"},
			err:  ErrInvalidExtension,
		},
		{
			name: "no template",
			spec: &LanguageSpec{ID: "t", Name: "T", Extension: "t"},
			err:  ErrMissingTemplate,
		},
		{
			name: "bad ignore pattern",
			spec: &LanguageSpec{ID: "t", Name: "T", Extension: "t", MethodTemplate: "x", IgnorePatterns: []string{"Map.[a"}},
			err:  ErrInvalidIgnorePattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.spec)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got: %v", tt.err, err)
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewDefaultRegistry()

	spec, err := r.Get(LanguageJava)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if spec.Name != "Java" {
		t.Errorf("expected Java, got %s", spec.Name)
	}

	if _, err := r.Get("go"); err != ErrLanguageNotFound {
		t.Errorf("expected ErrLanguageNotFound, got: %v", err)
	}
}

func TestRegistry_List(t *testing.T) {
	r := NewDefaultRegistry()

	specs := r.List()
	if len(specs) != 6 {
		t.Fatalf("expected 6 default languages, got %d", len(specs))
	}
	for i := 1; i < len(specs); i++ {
		if specs[i-1].ID >= specs[i].ID {
			t.Errorf("expected sorted IDs, got %s before %s", specs[i-1].ID, specs[i].ID)
		}
	}
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry()

	if err := r.Update(validSpec("test")); err != ErrLanguageNotFound {
		t.Errorf("expected ErrLanguageNotFound, got: %v", err)
	}

	_ = r.Register(validSpec("test"))
	updated := validSpec("test")
	updated.Enabled = false
	if err := r.Update(updated); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if r.IsEnabled("test") {
		t.Error("expected language to be disabled")
	}
	if r.IsEnabled("missing") {
		t.Error("expected unknown language to report disabled")
	}
}
