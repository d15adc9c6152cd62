package main

import (
	"testing"

	"github.com/3-lines-studio/syntax/internal/navigation"
)

func TestMissingPages(t *testing.T) {
	nav := navigation.Tree{
		{Title: "Start", Links: []navigation.Link{
			{Title: "Install", Href: "/docs/install"},
			{Title: "Config", Href: "/docs/config"},
		}},
	}

	got := missingPages(nav, []string{"/", "/docs/install"})
	if len(got) != 1 || got[0].Href != "/docs/config" {
		t.Errorf("missingPages() = %v, want [/docs/config]", got)
	}

	if got := missingPages(nav, []string{"/docs/install", "/docs/config"}); len(got) != 0 {
		t.Errorf("missingPages() = %v, want none", got)
	}
}
