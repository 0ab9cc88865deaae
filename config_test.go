package codewatch

import (
	"reflect"
	"testing"
	"time"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestAppConfig_AsyncTimeout(t *testing.T) {
	config := NewAppConfig()
	if got := config.AsyncTimeout(); got != 0 {
		t.Errorf("AsyncTimeout = %v, want 0 when unset", got)
	}

	config.AsyncTimeoutMs = int64Ptr(2500)
	if got := config.AsyncTimeout(); got != 2500*time.Millisecond {
		t.Errorf("AsyncTimeout = %v, want 2.5s", got)
	}
}

func TestAppConfig_Merge(t *testing.T) {
	base := &AppConfig{
		AsyncTimeoutMs: int64Ptr(1000),
		Languages: map[string]LanguageConfig{
			"javascript": {PreferProviders: []string{"A"}},
			"python":     {PreferredOnly: boolPtr(true)},
		},
		Providers: []CommandProviderConfig{
			{Name: "base", Language: "*", Command: []string{"true"}},
		},
	}

	override := &AppConfig{
		AsyncTimeoutMs: int64Ptr(5000),
		Enabled:        boolPtr(false),
		Languages: map[string]LanguageConfig{
			"javascript": {PreferProviders: []string{"B", "A"}},
			"markdown":   {PreferProviders: []string{"M"}},
		},
		Extensions: map[string]string{".lit": "literate"},
		Providers: []CommandProviderConfig{
			{Name: "extra", Language: "javascript", Command: []string{"true"}},
		},
	}

	base.Merge(override)

	if *base.AsyncTimeoutMs != 5000 {
		t.Errorf("AsyncTimeoutMs = %d, want override's 5000", *base.AsyncTimeoutMs)
	}
	if base.Enabled == nil || *base.Enabled {
		t.Error("Enabled should be merged to false")
	}

	js := base.Languages["javascript"]
	if !reflect.DeepEqual(js.PreferProviders, []string{"B", "A"}) {
		t.Errorf("javascript prefer = %v, want override's [B A]", js.PreferProviders)
	}

	// Fields absent in the override survive
	py := base.Languages["python"]
	if py.PreferredOnly == nil || !*py.PreferredOnly {
		t.Error("python preferredOnly should survive the merge")
	}
	if _, ok := base.Languages["markdown"]; !ok {
		t.Error("markdown language config should be added")
	}

	if base.Extensions[".lit"] != "literate" {
		t.Errorf("extensions = %v, want .lit mapping", base.Extensions)
	}

	// Provider declarations append rather than replace
	if len(base.Providers) != 2 {
		t.Errorf("got %d providers after merge, want 2", len(base.Providers))
	}
}

func TestAppConfig_MergeNil(t *testing.T) {
	base := &AppConfig{AsyncTimeoutMs: int64Ptr(1000)}
	base.Merge(nil)
	if *base.AsyncTimeoutMs != 1000 {
		t.Error("merging nil should be a no-op")
	}
}
