// Package navigation holds the documentation sidebar: an ordered list of
// sections, each an ordered list of links. The tree is data only; it is
// loaded from navigation.yaml and never changes at runtime.
package navigation

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/syntax/internal/core"
)

//go:embed navigation.yaml
var defaultYAML []byte

var ErrInvalidTree = errors.New("invalid navigation tree")

type Link struct {
	Title string `yaml:"title"`
	Href  string `yaml:"href"`
}

type Section struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

type Tree []Section

func Parse(data []byte) (Tree, error) {
	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}

var (
	defaultOnce sync.Once
	defaultTree Tree
)

// Default returns the site navigation. The embedded file is part of the
// binary, so a tree that fails to parse stops the process.
func Default() Tree {
	defaultOnce.Do(func() {
		tree, err := Parse(defaultYAML)
		if err != nil {
			panic(err)
		}
		defaultTree = tree
	})
	return defaultTree
}

func (t Tree) Validate() error {
	seen := make(map[string]string)
	for _, section := range t {
		if section.Title == "" {
			return fmt.Errorf("%w: section without a title", ErrInvalidTree)
		}
		for _, link := range section.Links {
			if link.Title == "" {
				return fmt.Errorf("%w: link %q in %q has no title", ErrInvalidTree, link.Href, section.Title)
			}
			if err := core.ValidateRoutePath(link.Href); err != nil {
				return fmt.Errorf("%w: link %q in %q: %v", ErrInvalidTree, link.Title, section.Title, err)
			}
			if prev, ok := seen[link.Href]; ok {
				return fmt.Errorf("%w: %s listed in both %q and %q", ErrInvalidTree, link.Href, prev, section.Title)
			}
			seen[link.Href] = section.Title
		}
	}
	return nil
}

// Links flattens the tree in reading order.
func (t Tree) Links() []Link {
	var links []Link
	for _, section := range t {
		links = append(links, section.Links...)
	}
	return links
}

func (t Tree) SectionOf(path string) (Section, bool) {
	path = core.NormalizePath(path)
	for _, section := range t {
		for _, link := range section.Links {
			if link.Href == path {
				return section, true
			}
		}
	}
	return Section{}, false
}

func (t Tree) Find(path string) (Link, bool) {
	path = core.NormalizePath(path)
	for _, link := range t.Links() {
		if link.Href == path {
			return link, true
		}
	}
	return Link{}, false
}

// Adjacent returns the links before and after path in reading order.
func (t Tree) Adjacent(path string) (prev, next *Link) {
	path = core.NormalizePath(path)
	links := t.Links()
	for i := range links {
		if links[i].Href != path {
			continue
		}
		if i > 0 {
			prev = &links[i-1]
		}
		if i < len(links)-1 {
			next = &links[i+1]
		}
		return prev, next
	}
	return nil, nil
}
